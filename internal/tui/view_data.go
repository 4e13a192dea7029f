package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmaia/cpidash/internal/cli"
	"github.com/dmaia/cpidash/internal/tui/components"
	"github.com/dmaia/cpidash/internal/tui/theme"
)

// renderDataTab renders the historical page: latest reading, line plot, and
// descriptive statistics for the current (possibly date-narrowed) selection.
func (a App) renderDataTab(cw, contentH int) string {
	t := theme.Active

	if len(a.series) == 0 {
		return components.ContentCard("Data View",
			noticeLine("No data in the selected range."), cw)
	}

	var b strings.Builder

	// Row 1: metric cards
	latest, _ := a.series.Latest()
	first := a.series[0]
	cards := []struct{ Label, Value, Sub string }{
		{"Latest MoM", cli.FormatSigned(latest.InflationMoM) + "%", cli.FormatMonthName(latest.Date)},
		{"Observations", cli.FormatCount(len(a.series)),
			fmt.Sprintf("%s – %s", cli.FormatMonth(first.Date), cli.FormatMonth(latest.Date))},
		{"Mean MoM", cli.FormatSigned(a.stats.Mean) + "%", "over selection"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: line plot of inflation vs date
	chartH := contentH - 14
	if chartH < 6 {
		chartH = 6
	}
	if chartH > 14 {
		chartH = 14
	}
	name := latest.Label
	b.WriteString(components.ContentCard(
		fmt.Sprintf("MoM Inflation · %s · %s", name, a.state),
		components.LineChart(a.series.Values(), nil, chartMonthLabels(a.series.Dates()),
			components.CardInnerWidth(cw), chartH),
		cw,
	))
	b.WriteString("\n")

	// Row 3: descriptive statistics
	if a.statsOK {
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

		rows := []struct {
			label string
			value string
		}{
			{"count", cli.FormatCount(a.stats.Count)},
			{"mean", cli.FormatValue(a.stats.Mean)},
			{"std", cli.FormatValue(a.stats.Std)},
			{"min", cli.FormatValue(a.stats.Min)},
			{"25%", cli.FormatValue(a.stats.P25)},
			{"50%", cli.FormatValue(a.stats.Median)},
			{"75%", cli.FormatValue(a.stats.P75)},
			{"max", cli.FormatValue(a.stats.Max)},
		}

		var stats strings.Builder
		for _, r := range rows {
			fmt.Fprintf(&stats, "%s %s\n",
				labelStyle.Render(fmt.Sprintf("%-6s", r.label)),
				valStyle.Render(fmt.Sprintf("%10s", r.value)))
		}
		b.WriteString(components.ContentCard("Descriptive Statistics", stats.String(), cw))
	}

	return b.String()
}

// noticeLine styles an inline recoverable-condition notice.
func noticeLine(msg string) string {
	t := theme.Active
	return lipgloss.NewStyle().
		Foreground(t.Orange).
		Background(t.Surface).
		Render("⚠ " + msg)
}
