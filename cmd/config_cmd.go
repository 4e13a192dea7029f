package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmaia/cpidash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("Config file:      %s", config.ConfigPath())
	if !config.Exists() {
		fmt.Printf("  (not written, using defaults)")
	}
	fmt.Println()
	fmt.Printf("Dataset URL:      %s\n", config.DatasetURL(cfg))
	fmt.Printf("Default category: %s\n", orNone(cfg.General.DefaultCategory))
	fmt.Printf("Default state:    %s\n", orNone(cfg.General.DefaultState))
	fmt.Printf("Theme:            %s\n", cfg.Appearance.Theme)
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		return fmt.Errorf("config already exists at %s", config.ConfigPath())
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", config.ConfigPath())
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
