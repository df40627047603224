package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bwilliford/zenOut/internal/config"
	"github.com/bwilliford/zenOut/internal/sound"
)

var soundsCmd = &cobra.Command{
	Use:   "sounds",
	Short: "List audio cues and check playback support",
	Long:  `Display the session's audio cues, their configured state, and whether an audio player was detected on this system.`,
	RunE:  runSounds,
}

func init() {
	rootCmd.AddCommand(soundsCmd)
}

func runSounds(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	svc := sound.NewSystemService(cfg.Sounds)
	defer svc.Cleanup()

	fmt.Println("Audio cues:")
	fmt.Println()
	for _, cue := range []string{sound.CueChime, sound.CueHum, sound.CueAmbience} {
		ev := cfg.SoundEvent(cue)
		state := "enabled"
		if !ev.Enabled {
			state = "disabled"
		}
		if ev.Override != "" {
			state += ", override: " + ev.Override
		}
		fmt.Printf("  %-9s %s\n", cue, state)
	}

	fmt.Println()
	if svc.Available() {
		fmt.Println("Audio player: detected")
	} else {
		fmt.Println("Audio player: not found (the session runs silently)")
	}
	return nil
}
