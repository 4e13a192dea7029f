package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmaia/cpidash/internal/category"
	"github.com/dmaia/cpidash/internal/cli"
	"github.com/dmaia/cpidash/internal/pipeline"
	"github.com/dmaia/cpidash/internal/tui/components"
	"github.com/dmaia/cpidash/internal/tui/theme"
)

// renderForecastTab renders the projection page. The fit always uses the
// full history for the selected category+state, ignoring any date-range
// narrowing applied on the Data View page.
func (a App) renderForecastTab(cw, contentH int) string {
	t := theme.Active
	name, _ := category.LabelFor(a.division)
	title := fmt.Sprintf("Forecast · %s · %s", name, a.state)

	if len(a.full) == 0 {
		return components.ContentCard(title,
			noticeLine("No data for this selection."), cw)
	}

	if a.fcErr != nil {
		if errors.Is(a.fcErr, pipeline.ErrInsufficientHistory) {
			return components.ContentCard(title, noticeLine(fmt.Sprintf(
				"Not enough data to forecast: %d observations, need at least %d.",
				len(a.full), pipeline.MinHistory)), cw)
		}
		return components.ContentCard(title, noticeLine(a.fcErr.Error()), cw)
	}

	var b strings.Builder

	// Combined chart: history (solid) + 6 projected points (hollow).
	fcVals := make([]float64, len(a.forecast))
	dates := a.full.Dates()
	for _, p := range a.forecast {
		dates = append(dates, p.Date)
	}
	for i, p := range a.forecast {
		fcVals[i] = p.Predicted
	}

	chartH := contentH - 13
	if chartH < 6 {
		chartH = 6
	}
	if chartH > 16 {
		chartH = 16
	}
	b.WriteString(components.ContentCard(
		title+" · next 6 months",
		components.LineChart(a.full.Values(), fcVals, chartMonthLabels(dates),
			components.CardInnerWidth(cw), chartH),
		cw,
	))
	b.WriteString("\n")

	// Forecast table
	monthStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var table strings.Builder
	for _, p := range a.forecast {
		fmt.Fprintf(&table, "%s %s\n",
			monthStyle.Render(cli.FormatMonth(p.Date)),
			valStyle.Render(fmt.Sprintf("%12s", cli.FormatValue(p.Predicted))))
	}
	b.WriteString(components.ContentCard("Projected MoM Inflation", table.String(), cw))

	return b.String()
}
