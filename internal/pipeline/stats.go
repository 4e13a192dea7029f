package pipeline

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/dmaia/cpidash/internal/model"
)

// Describe computes descriptive statistics over the inflation readings of a
// series. ok is false for an empty series; no statistic is defined then.
func Describe(series model.Series) (model.DescriptiveStats, bool) {
	if len(series) == 0 {
		return model.DescriptiveStats{}, false
	}

	vals := series.Values()
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	ds := model.DescriptiveStats{
		Count:  len(vals),
		Mean:   stat.Mean(vals, nil),
		Min:    sorted[0],
		P25:    percentile(sorted, 0.25),
		Median: percentile(sorted, 0.50),
		P75:    percentile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}

	// Sample standard deviation; undefined for a single observation,
	// reported as 0.
	if len(vals) > 1 {
		ds.Std = stat.StdDev(vals, nil)
	}

	return ds, true
}

// percentile evaluates the p-th quantile of sorted data with linear
// interpolation between order statistics (the convention where the median of
// [1,2,3,4] is 2.5). gonum's Quantile cumulant kinds interpolate the
// empirical CDF differently, so this is computed directly.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	h := p * float64(n-1)
	i := int(math.Floor(h))
	if i >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(i)
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}
