package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dmaia/cpidash/internal/tui/theme"
)

// Tab represents a single page in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines the two dashboard pages.
var Tabs = []Tab{
	{Name: "Data View", Key: 'd', KeyPos: 0},
	{Name: "Forecast", Key: 'f', KeyPos: 0},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	dimKeyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	bar := inactiveStyle.Render(" ")
	for i, tab := range Tabs {
		if i > 0 {
			bar += dimKeyStyle.Render(" │ ")
		}
		if i == activeIdx {
			bar += activeStyle.Render(tab.Name)
			continue
		}
		before := tab.Name[:tab.KeyPos]
		key := string(tab.Name[tab.KeyPos])
		after := tab.Name[tab.KeyPos+1:]
		bar += inactiveStyle.Render(before) +
			dimKeyStyle.Render("[") + keyStyle.Render(key) + dimKeyStyle.Render("]") +
			inactiveStyle.Render(after)
	}

	rowStyle := lipgloss.NewStyle().Background(t.Surface).Width(width)
	return rowStyle.Render(bar)
}

// TabVisualWidth returns the rendered cell width of one tab, used for mouse
// hitboxes. Must match RenderTabBar's layout.
func TabVisualWidth(tab Tab, active bool) int {
	if active {
		return len(tab.Name)
	}
	return len(tab.Name) + 2 // "[" + "]" around the shortcut letter
}
