package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsimai/xtouch-mini/internal/midi"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List available MIDI input devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := midi.NewManager()
		defer mgr.Close()

		ports := mgr.ListInPorts()
		if len(ports) == 0 {
			fmt.Println("No MIDI devices found.")
			return nil
		}
		for i, p := range ports {
			fmt.Printf("%d: %s\n", i, p)
		}
		return nil
	},
}
