package pipeline

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/dmaia/cpidash/internal/model"
)

// linearSeries builds a monthly series ending at last with values 2*i + 3.
func linearSeries(t *testing.T, n int, last time.Time) model.Series {
	t.Helper()
	series := make(model.Series, n)
	for i := 0; i < n; i++ {
		series[i] = model.Observation{
			Date:         last.AddDate(0, i-(n-1), 0),
			Division:     "07",
			State:        "São Paulo",
			InflationMoM: 2*float64(i) + 3,
			Label:        "Transport",
		}
	}
	return series
}

func TestFit_RecoversPerfectLine(t *testing.T) {
	vals := make([]float64, 10)
	for i := range vals {
		vals[i] = 2*float64(i) + 3
	}

	slope, intercept := Fit(vals)
	if math.Abs(slope-2) > 1e-9 {
		t.Errorf("slope = %v, want 2", slope)
	}
	if math.Abs(intercept-3) > 1e-9 {
		t.Errorf("intercept = %v, want 3", intercept)
	}
}

func TestForecast_ContinuesPerfectLine(t *testing.T) {
	last := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	series := linearSeries(t, 10, last)

	points, err := Forecast(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 6 {
		t.Fatalf("got %d points, want 6", len(points))
	}

	for i, p := range points {
		tIdx := 10 + i
		want := 2*float64(tIdx) + 3
		if math.Abs(p.Predicted-want) > 1e-9 {
			t.Errorf("point %d: predicted = %v, want %v (t=%d)", i, p.Predicted, want, tIdx)
		}
	}
}

func TestForecast_DateSequence(t *testing.T) {
	last := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	series := linearSeries(t, 10, last)

	points, err := Forecast(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"2024-07-01", "2024-08-01", "2024-09-01", "2024-10-01", "2024-11-01", "2024-12-01"}
	for i, p := range points {
		if got := p.Date.Format("2006-01-02"); got != want[i] {
			t.Errorf("point %d: date = %s, want %s", i, got, want[i])
		}
	}
}

func TestForecast_MidMonthDatesLandOnFirst(t *testing.T) {
	// Even if the history is anchored mid-month, forecast dates must land on
	// the first of each following month.
	last := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	series := linearSeries(t, 6, last)

	points, err := Forecast(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := points[0].Date
	if first.Day() != 1 || first.Month() != time.July || first.Year() != 2024 {
		t.Errorf("first forecast date = %v, want 2024-07-01", first)
	}
}

func TestForecast_InsufficientHistory(t *testing.T) {
	last := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	series := linearSeries(t, 3, last)

	_, err := Forecast(series)
	if !errors.Is(err, ErrInsufficientHistory) {
		t.Fatalf("err = %v, want ErrInsufficientHistory", err)
	}
}

func TestForecast_YearRollover(t *testing.T) {
	last := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)
	series := linearSeries(t, 8, last)

	points, err := Forecast(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"2023-11", "2023-12", "2024-01", "2024-02", "2024-03", "2024-04"}
	for i, p := range points {
		if got := p.Date.Format("2006-01"); got != want[i] {
			t.Errorf("point %d: month = %s, want %s", i, got, want[i])
		}
	}
}
