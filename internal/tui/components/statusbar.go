package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmaia/cpidash/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// current selection and data age on the right.
func RenderStatusBar(width int, selection, dataAge string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [c]ategory  [r]egion  [t]range  [?]help  [q]uit"
	right := ""
	if selection != "" {
		right = selection
	}
	if dataAge != "" {
		if right != "" {
			right += "  ·  "
		}
		right += fmt.Sprintf("loaded in %s", dataAge)
	}
	right += " "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
