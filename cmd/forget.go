package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var forgetCmd = &cobra.Command{
	Use:   "forget <control-key|binding-id>",
	Short: "Remove a control binding so it can be relearned",
	Long: `Forget removes one record from the binding table. Bindings are never
overwritten in place; forgetting a control and teaching it again is how a
control is reprogrammed. The argument is the control key as shown by
'xtouch-mini bindings' (e.g. 176_16) or a unique prefix of the binding ID.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}

		key, ok := store.Resolve(args[0])
		if !ok {
			return fmt.Errorf("no binding matches %q", args[0])
		}
		binding, _ := store.Get(key)
		store.Delete(key)
		if err := store.Save(); err != nil {
			return err
		}

		fmt.Printf("removed %s -> %s %s\n", key, binding.Target.String(), binding.Type)
		return nil
	},
}
