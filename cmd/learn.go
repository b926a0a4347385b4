package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rsimai/xtouch-mini/internal/control"
	"github.com/rsimai/xtouch-mini/internal/learn"
	"github.com/rsimai/xtouch-mini/internal/midi"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Interactively teach controls to the binding table",
	Long: `Learn watches the MIDI controller and prompts for a mixer channel and
control type whenever an unknown control is exercised. Already-mapped controls
are skipped; remove a record with 'xtouch-mini forget' to reprogram it.
Press Ctrl+C to save and exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}

		prompter := learn.NewTerminalPrompter()
		mgr := midi.NewManager()
		defer mgr.Close()
		port, err := selectInputPort(mgr, prompter)
		if err != nil {
			return err
		}

		session := learn.NewSession(store, prompter)

		events := make(chan control.Event, 64)
		stop, err := mgr.Listen(port, func(ev control.Event) {
			select {
			case events <- ev:
			default:
				slog.Warn("dropping event, queue full", "control", ev.Key)
			}
		})
		if err != nil {
			return err
		}
		defer stop()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		// An interrupt may arrive while a prompt is blocked on stdin. The
		// session has already persisted every completed binding, so the
		// final save only matters for a store that was migrated on load;
		// the in-progress prompt is discarded.
		go func() {
			<-ctx.Done()
			if err := store.Save(); err != nil {
				slog.Error("saving bindings failed", "error", err)
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "\nsaved %d bindings\n", store.Len())
			os.Exit(0)
		}()

		slog.Info("learn mode: exercise controls to map them, press Ctrl+C to save and exit", "port", port)
		for ev := range events {
			if err := session.Handle(ev); err != nil {
				return err
			}
		}
		return nil
	},
}
