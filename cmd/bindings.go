package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "Show the stored control bindings",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		if store.Len() == 0 {
			fmt.Println("No bindings stored.")
			return nil
		}

		fmt.Printf("%-10s %-10s %-10s %s\n", "CONTROL", "TARGET", "TYPE", "ID")
		for _, key := range store.Keys() {
			b, _ := store.Get(key)
			fmt.Printf("%-10s %-10s %-10s %s\n", key, b.Target.String(), b.Type, shortID(b.ID))
		}
		return nil
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
