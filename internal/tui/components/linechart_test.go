package components

import (
	"strings"
	"testing"
)

func TestLineChart_MarkersAndHeight(t *testing.T) {
	hist := []float64{0.1, 0.3, -0.2, 0.5, 0.4, 0.2}
	fc := []float64{0.25, 0.3}

	out := LineChart(hist, fc, nil, 60, 8)
	if out == "" {
		t.Fatal("empty chart")
	}

	if got := strings.Count(out, "●"); got != len(hist) {
		t.Errorf("historical markers = %d, want %d", got, len(hist))
	}
	if got := strings.Count(out, "○"); got != len(fc) {
		t.Errorf("forecast markers = %d, want %d", got, len(fc))
	}

	// 8 chart rows + x-axis line (no labels supplied).
	if lines := strings.Count(out, "\n") + 1; lines != 9 {
		t.Errorf("rendered %d lines, want 9", lines)
	}

	// Values cross zero, so the baseline must be drawn.
	if !strings.Contains(out, "╌") {
		t.Error("missing zero baseline")
	}
}

func TestLineChart_Empty(t *testing.T) {
	if out := LineChart(nil, nil, nil, 40, 6); out != "" {
		t.Errorf("expected empty string, got %q", out)
	}
}

func TestLineChart_FlatSeries(t *testing.T) {
	// A constant series must not divide by zero.
	out := LineChart([]float64{0.2, 0.2, 0.2}, nil, nil, 40, 6)
	if !strings.Contains(out, "●") {
		t.Error("flat series rendered no markers")
	}
}

func TestLayoutRow_SumsExactly(t *testing.T) {
	widths := LayoutRow(103, 4)
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != 103 {
		t.Errorf("widths sum = %d, want 103", sum)
	}
}
