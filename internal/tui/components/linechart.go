package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmaia/cpidash/internal/tui/theme"
)

// cell kinds for the chart grid
const (
	cellEmpty = iota
	cellHist
	cellForecast
	cellLine
	cellZero
)

// LineChart renders a time-ordered line plot with a signed y-axis.
// values is the historical series; forecast (optional) is appended to the
// right and drawn with hollow markers. labels, if provided, must cover
// len(values)+len(forecast) x positions.
func LineChart(values, forecast []float64, labels []string, width, height int) string {
	n := len(values) + len(forecast)
	if n == 0 {
		return ""
	}
	if height < 3 {
		height = 3
	}

	t := theme.Active

	// Value bounds over both series.
	var lo, hi float64
	if len(values) > 0 {
		lo, hi = values[0], values[0]
	} else {
		lo, hi = forecast[0], forecast[0]
	}
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	for _, v := range forecast {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi += 0.5
		lo -= 0.5
	}

	// Y-axis label gutter sized from the extreme tick labels.
	yLabelW := len(formatTick(hi))
	if w := len(formatTick(lo)); w > yLabelW {
		yLabelW = w
	}
	yLabelW++

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	// Downsample when there are more points than columns.
	combined := make([]float64, 0, n)
	combined = append(combined, values...)
	combined = append(combined, forecast...)
	histLen := len(values)
	if n > chartW {
		sampled := make([]float64, chartW)
		var sampledLabels []string
		if len(labels) == n {
			sampledLabels = make([]string, chartW)
		}
		newHist := 0
		for i := range sampled {
			srcIdx := i * (n - 1) / (chartW - 1)
			sampled[i] = combined[srcIdx]
			if srcIdx < histLen {
				newHist = i + 1
			}
			if sampledLabels != nil {
				sampledLabels[i] = labels[srcIdx]
			}
		}
		combined = sampled
		labels = sampledLabels
		histLen = newHist
		n = chartW
	}

	// Spread points across the chart width.
	step := 1
	if n > 1 {
		step = (chartW - 1) / (n - 1)
		if step < 1 {
			step = 1
		}
		if step > 4 {
			step = 4
		}
	}
	axisLen := (n-1)*step + 1

	rowOf := func(v float64) int {
		r := int(math.Round((hi - v) / (hi - lo) * float64(height-1)))
		if r < 0 {
			r = 0
		}
		if r >= height {
			r = height - 1
		}
		return r
	}

	grid := make([][]int, height)
	for r := range grid {
		grid[r] = make([]int, axisLen)
	}

	// Zero baseline, drawn first so markers overwrite it.
	if lo < 0 && hi > 0 {
		zr := rowOf(0)
		for c := 0; c < axisLen; c++ {
			grid[zr][c] = cellZero
		}
	}

	// Connectors between consecutive points, then the markers themselves.
	prevRow := -1
	for i, v := range combined {
		col := i * step
		r := rowOf(v)
		if prevRow >= 0 {
			from, to := prevRow, r
			if from > to {
				from, to = to, from
			}
			for rr := from + 1; rr < to; rr++ {
				if grid[rr][col] == cellEmpty || grid[rr][col] == cellZero {
					grid[rr][col] = cellLine
				}
			}
		}
		if i < histLen {
			grid[r][col] = cellHist
		} else {
			grid[r][col] = cellForecast
		}
		prevRow = r
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	histStyle := lipgloss.NewStyle().Foreground(t.Blue).Background(t.Surface).Bold(true)
	fcStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Bold(true)
	lineStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	zeroStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	fillStyle := lipgloss.NewStyle().Background(t.Surface)

	// Tick rows: top, bottom, and roughly every quarter in between.
	tickEvery := height / 4
	if tickEvery < 1 {
		tickEvery = 1
	}

	var b strings.Builder
	for r := 0; r < height; r++ {
		label := ""
		if r == 0 || r == height-1 || r%tickEvery == 0 {
			label = formatTick(hi - (hi-lo)*float64(r)/float64(height-1))
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		run := func(style lipgloss.Style, s string) { b.WriteString(style.Render(s)) }
		for c := 0; c < axisLen; c++ {
			switch grid[r][c] {
			case cellHist:
				run(histStyle, "●")
			case cellForecast:
				run(fcStyle, "○")
			case cellLine:
				run(lineStyle, "│")
			case cellZero:
				run(zeroStyle, "╌")
			default:
				run(fillStyle, " ")
			}
		}
		b.WriteString("\n")
	}

	// X-axis line
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	// X-axis labels, greedily placed without overlap.
	if len(labels) == n && n > 0 {
		buf := make([]byte, axisLen+8)
		for i := range buf {
			buf[i] = ' '
		}
		lastEnd := -2
		for i := 0; i < n; i++ {
			lbl := labels[i]
			if lbl == "" {
				continue
			}
			pos := i * step
			end := pos + len(lbl)
			if pos <= lastEnd || end > len(buf) {
				continue
			}
			copy(buf[pos:end], lbl)
			lastEnd = end + 1
		}
		b.WriteString("\n")
		b.WriteString(fillStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}

func formatTick(v float64) string {
	switch {
	case math.Abs(v) >= 100:
		return fmt.Sprintf("%.0f", v)
	case math.Abs(v) >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
