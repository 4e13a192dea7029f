package model

// DescriptiveStats summarizes the inflation readings of a filtered series,
// matching the usual describe() layout: count, mean, std, min, quartiles, max.
type DescriptiveStats struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	P25    float64
	Median float64
	P75    float64
	Max    float64
}
