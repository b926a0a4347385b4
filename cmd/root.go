package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rsimai/xtouch-mini/internal/config"
	"github.com/rsimai/xtouch-mini/internal/learn"
	"github.com/rsimai/xtouch-mini/internal/mapping"
	"github.com/rsimai/xtouch-mini/internal/midi"
)

var (
	cfg          *config.Config
	cfgFile      string
	bindingsFile string
	verboseLevel int
)

var rootCmd = &cobra.Command{
	Use:   "xtouch-mini",
	Short: "MIDI control surface to XR18 mixer bridge",
	Long: `xtouch-mini translates events from a small MIDI controller into OSC
commands for a Behringer XR18 digital mixer.

Controls are taught interactively with 'xtouch-mini learn': press a control,
answer which channel and function it should drive, and the binding is stored.
'xtouch-mini run' then translates controller movement into mixer commands.
To reprogram a control, remove its record with 'xtouch-mini forget' and learn
it again.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(verboseLevel)

		if cfgFile == "" {
			path, err := config.DefaultPath()
			if err != nil {
				return fmt.Errorf("resolving config path: %w", err)
			}
			cfgFile = path
		}
		if bindingsFile == "" {
			path, err := mapping.DefaultPath()
			if err != nil {
				return fmt.Errorf("resolving bindings path: %w", err)
			}
			bindingsFile = path
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the user config dir)")
	rootCmd.PersistentFlags().StringVar(&bindingsFile, "bindings", "", "bindings file (default is the user config dir)")
	rootCmd.PersistentFlags().IntVarP(&verboseLevel, "verbose", "v", 0, "verbose level: 0=info, 1=debug")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(bindingsCmd)
	rootCmd.AddCommand(forgetCmd)
}

// setupLogging configures slog based on the verbose level.
func setupLogging(level int) {
	slogLevel := slog.LevelInfo
	if level >= 1 {
		slogLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})
	slog.SetDefault(slog.New(handler))
}

// loadStore opens the bindings file. A damaged file is fatal here; a missing
// one loads an empty store.
func loadStore() (*mapping.Store, error) {
	store := mapping.NewStore(bindingsFile)
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

// selectInputPort picks the MIDI input port to use. A remembered port that is
// still present is used silently; otherwise the user picks from a list and
// the choice is persisted.
func selectInputPort(mgr *midi.Manager, prompter learn.Prompter) (string, error) {
	ports := mgr.ListInPorts()
	if len(ports) == 0 {
		return "", fmt.Errorf("no MIDI input devices found")
	}

	if cfg.MidiDevice != "" {
		for _, p := range ports {
			if p == cfg.MidiDevice {
				slog.Info("using saved MIDI device", "port", p)
				return p, nil
			}
		}
		slog.Warn("saved MIDI device not present", "port", cfg.MidiDevice)
	}

	fmt.Println("Available MIDI devices:")
	for i, p := range ports {
		fmt.Printf("%d: %s\n", i, p)
	}
	answer, err := prompter.Ask("Select device (number): ")
	if err != nil {
		return "", err
	}
	index, err := strconv.Atoi(answer)
	if err != nil || index < 0 || index >= len(ports) {
		return "", fmt.Errorf("invalid device selection %q", answer)
	}

	selected := ports[index]
	if cfg.MidiDevice != selected {
		cfg.MidiDevice = selected
		if err := cfg.Save(cfgFile); err != nil {
			slog.Warn("could not save device selection", "error", err)
		}
	}
	return selected, nil
}
