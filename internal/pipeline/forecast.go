package pipeline

import (
	"errors"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/dmaia/cpidash/internal/model"
)

// MinHistory is the smallest series the forecast will fit on.
const MinHistory = 6

// Horizon is the number of months projected forward.
const Horizon = 6

// ErrInsufficientHistory indicates a selection has fewer than MinHistory
// observations. Recoverable: the forecast page shows a notice instead.
var ErrInsufficientHistory = errors.New("pipeline: not enough history to forecast")

// Fit runs an ordinary least-squares line fit y = slope*t + intercept over
// the values at integer time indices t = 0, 1, 2, ...
func Fit(values []float64) (slope, intercept float64) {
	t := make([]float64, len(values))
	for i := range t {
		t[i] = float64(i)
	}
	intercept, slope = stat.LinearRegression(t, values, nil, false)
	return slope, intercept
}

// Forecast fits a line to the full historical series and evaluates it at the
// next Horizon integer time indices. Forecast dates start one calendar month
// after the last historical date and land on the first day of each month.
// The series must be ascending by date, as produced by the selection filter.
func Forecast(series model.Series) ([]model.ForecastPoint, error) {
	n := len(series)
	if n < MinHistory {
		return nil, ErrInsufficientHistory
	}

	slope, intercept := Fit(series.Values())

	last := series[n-1].Date
	base := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, time.UTC)

	points := make([]model.ForecastPoint, Horizon)
	for i := 0; i < Horizon; i++ {
		t := float64(n + i)
		points[i] = model.ForecastPoint{
			Date:      base.AddDate(0, i+1, 0),
			Predicted: intercept + slope*t,
		}
	}
	return points, nil
}
