// Package model defines domain types for the regional CPI dataset.
package model

import "time"

// Observation is one row of the dataset: the month-over-month inflation
// reading for one spending division in one state, for one calendar month.
// For a given (division, state) pair there is at most one observation per date.
type Observation struct {
	Date         time.Time // calendar month, normalized to midnight UTC
	Division     string    // short category code, e.g. "07"
	State        string    // region name, e.g. "São Paulo"
	InflationMoM float64   // percent change from the previous month
	Label        string    // display name for Division; empty if unmapped
}

// Series is an ordered sequence of observations for a single division+state
// selection, ascending by date. It is recomputed per interaction and never
// mutated after construction.
type Series []Observation

// Dates returns the observation dates in series order.
func (s Series) Dates() []time.Time {
	out := make([]time.Time, len(s))
	for i, o := range s {
		out[i] = o.Date
	}
	return out
}

// Values returns the inflation readings in series order.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, o := range s {
		out[i] = o.InflationMoM
	}
	return out
}

// Latest returns the most recent observation. The second return is false
// for an empty series.
func (s Series) Latest() (Observation, bool) {
	if len(s) == 0 {
		return Observation{}, false
	}
	return s[len(s)-1], true
}

// ForecastPoint is a synthetic (date, predicted value) pair produced by the
// forecast fit. It is never persisted.
type ForecastPoint struct {
	Date      time.Time
	Predicted float64
}

// DateRange is a closed [From, To] calendar-month interval.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether d falls inside the closed interval.
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.From) && !d.After(r.To)
}
