package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/dmaia/cpidash/internal/config"
	"github.com/dmaia/cpidash/internal/tui"
	"github.com/dmaia/cpidash/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes.
	// Without this, lipgloss may default to Ascii profile (no colors).
	lipgloss.SetColorProfile(termenv.TrueColor)

	url := flagURL
	if url == "" {
		url = config.DatasetURL(cfg)
	}

	defaultCategory := flagCategory
	if defaultCategory == "" {
		defaultCategory = cfg.General.DefaultCategory
	}
	defaultState := flagState
	if defaultState == "" {
		defaultState = cfg.General.DefaultState
	}

	app := tui.NewApp(url, defaultCategory, defaultState)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
