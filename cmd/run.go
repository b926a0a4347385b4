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
	"github.com/rsimai/xtouch-mini/internal/engine"
	"github.com/rsimai/xtouch-mini/internal/learn"
	"github.com/rsimai/xtouch-mini/internal/midi"
	"github.com/rsimai/xtouch-mini/internal/mixer"
)

var mixerIP string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Translate controller events into mixer commands",
	Long: `Run connects to the mixer and the MIDI controller and translates
control events into OSC commands until interrupted. Only controls that were
taught with 'xtouch-mini learn' have any effect.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		if store.Len() == 0 {
			return fmt.Errorf("no bindings found, run 'xtouch-mini learn' first")
		}

		prompter := learn.NewTerminalPrompter()
		if mixerIP != "" {
			cfg.MixerIP = mixerIP
		}

		// The mixer must answer before we start; a wrong address would
		// otherwise swallow every command silently.
		for {
			slog.Info("checking mixer", "ip", cfg.MixerIP, "port", cfg.MixerPort)
			if mixer.Reachable(cfg.MixerIP) {
				break
			}
			answer, err := prompter.Ask(fmt.Sprintf("mixer at %s not reachable, enter mixer IP address: ", cfg.MixerIP))
			if err != nil {
				return err
			}
			if answer == "" {
				return fmt.Errorf("no mixer address given")
			}
			cfg.MixerIP = answer
			if err := cfg.Save(cfgFile); err != nil {
				slog.Warn("could not save mixer address", "error", err)
			}
		}

		client := mixer.NewClient(cfg.MixerIP, cfg.MixerPort)
		if err := client.EnableRemote(); err != nil {
			return fmt.Errorf("enabling remote control: %w", err)
		}

		mgr := midi.NewManager()
		defer mgr.Close()
		port, err := selectInputPort(mgr, prompter)
		if err != nil {
			return err
		}

		eng := engine.New(store, engine.NewToggles(), client)

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

		slog.Info("translating controller events, press Ctrl+C to exit", "port", port)
		for {
			select {
			case <-ctx.Done():
				slog.Info("exiting")
				return nil
			case ev := <-events:
				if err := eng.Handle(ev); err != nil {
					slog.Error("sending command failed", "control", ev.Key, "error", err)
				}
			}
		}
	},
}

func init() {
	runCmd.Flags().StringVar(&mixerIP, "mixer", "", "mixer IP address (overrides config)")
}
