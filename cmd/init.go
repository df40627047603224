package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bwilliford/zenOut/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a zenout config file in the current directory",
	Long:  `Creates a .zenout/config.yaml file in the current directory with default settings.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := ".zenout/config.yaml"

	if err := config.WriteDefaultConfig(configPath); err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}

	fmt.Printf("Created %s\n", configPath)
	return nil
}
