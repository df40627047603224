// Package cmd wires the CLI: the root command runs the session player,
// subcommands manage config and list assets.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bwilliford/zenOut/internal/config"
	"github.com/bwilliford/zenOut/internal/log"
	"github.com/bwilliford/zenOut/internal/sound"
	"github.com/bwilliford/zenOut/internal/ui/app"
	"github.com/bwilliford/zenOut/internal/ui/styles"
)

var (
	cfgFile string
	noSound bool
)

var rootCmd = &cobra.Command{
	Use:   "zenout",
	Short: "A guided breathing and meditation session in your terminal",
	Long: `zenout walks you through a short wind-down: deep breathing, humming,
and ear, neck, and eye massage, with a pulsing visual metronome and
synchronized audio cues.`,
	RunE: runRoot,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .zenout/config.yaml, then ~/.config/zenout/config.yaml)")
	rootCmd.Flags().BoolVar(&noSound, "no-sound", false, "disable all audio")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if err := styles.ApplyTheme(cfg.Theme.Preset); err != nil {
		return err
	}

	// Logging is best-effort: if the log file can't be opened the app
	// runs with logging disabled.
	if err := log.Init(config.LogPath(cfg.Path()), cfg.Debug); err == nil {
		defer log.Close()
	}

	var sounds sound.Service = sound.NoopService{}
	if !noSound {
		svc := sound.NewSystemService(cfg.Sounds)
		defer svc.Cleanup()
		sounds = svc
	}

	p := tea.NewProgram(app.New(cfg, sounds), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
