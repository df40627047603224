package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bwilliford/zenOut/internal/ui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available theme presets",
	Long:  `Display all built-in theme presets that can be used in your config file.`,
	Run:   runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) {
	fmt.Println("Available theme presets:")
	fmt.Println()

	names := styles.PresetNames()

	// Find max name length for alignment
	maxLen := 0
	for _, name := range names {
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}

	for _, name := range names {
		preset := styles.Presets[name]
		fmt.Printf("  %-*s  %s\n", maxLen, name, preset.Description)
	}

	fmt.Println()
	fmt.Println("Use in config.yaml:")
	fmt.Println("  theme:")
	fmt.Println("    preset: <name>")
}
