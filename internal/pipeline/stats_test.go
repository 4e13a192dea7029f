package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/dmaia/cpidash/internal/model"
)

func seriesFromValues(vals []float64) model.Series {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := make(model.Series, len(vals))
	for i, v := range vals {
		s[i] = model.Observation{
			Date:         base.AddDate(0, i, 0),
			Division:     "01",
			State:        "Ceará",
			InflationMoM: v,
		}
	}
	return s
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestDescribe_KnownValues(t *testing.T) {
	ds, ok := Describe(seriesFromValues([]float64{1, 2, 3, 4}))
	if !ok {
		t.Fatal("Describe returned !ok for non-empty series")
	}

	if ds.Count != 4 {
		t.Errorf("Count = %d, want 4", ds.Count)
	}
	approx(t, "Mean", ds.Mean, 2.5)
	// Sample standard deviation of 1..4
	approx(t, "Std", ds.Std, math.Sqrt(5.0/3.0))
	approx(t, "Min", ds.Min, 1)
	approx(t, "P25", ds.P25, 1.75)
	approx(t, "Median", ds.Median, 2.5)
	approx(t, "P75", ds.P75, 3.25)
	approx(t, "Max", ds.Max, 4)
}

func TestDescribe_UnsortedInput(t *testing.T) {
	// Percentiles must not depend on observation order.
	ds, ok := Describe(seriesFromValues([]float64{4, 1, 3, 2}))
	if !ok {
		t.Fatal("Describe returned !ok")
	}
	approx(t, "Median", ds.Median, 2.5)
	approx(t, "Min", ds.Min, 1)
	approx(t, "Max", ds.Max, 4)
}

func TestDescribe_SingleObservation(t *testing.T) {
	ds, ok := Describe(seriesFromValues([]float64{0.42}))
	if !ok {
		t.Fatal("Describe returned !ok")
	}
	if ds.Count != 1 {
		t.Errorf("Count = %d, want 1", ds.Count)
	}
	approx(t, "Std", ds.Std, 0)
	approx(t, "Median", ds.Median, 0.42)
	approx(t, "P25", ds.P25, 0.42)
}

func TestDescribe_Empty(t *testing.T) {
	if _, ok := Describe(nil); ok {
		t.Error("Describe(nil) ok = true, want false")
	}
}

func TestDescribe_NegativeInflation(t *testing.T) {
	ds, ok := Describe(seriesFromValues([]float64{-0.5, -0.25, 0.25, 0.5}))
	if !ok {
		t.Fatal("Describe returned !ok")
	}
	approx(t, "Mean", ds.Mean, 0)
	approx(t, "Min", ds.Min, -0.5)
	approx(t, "Median", ds.Median, 0)
}
