package source

import (
	"bytes"
	"fmt"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/dmaia/cpidash/internal/category"
	"github.com/dmaia/cpidash/internal/model"
)

// Decode parses the parquet payload into observations. Date values are
// truncated to midnight UTC of their calendar day, and the derived display
// label is attached from the division table (empty for unmapped codes).
func Decode(data []byte) ([]model.Observation, error) {
	rows, err := parquet.Read[RawRow](bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding parquet: %v", ErrDataUnavailable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: dataset has no rows", ErrDataUnavailable)
	}

	obs := make([]model.Observation, len(rows))
	for i, r := range rows {
		o := model.Observation{
			Date:         normalizeDate(r.Date),
			Division:     r.Division,
			State:        r.State,
			InflationMoM: r.InflationMoM,
		}
		if name, ok := category.LabelFor(r.Division); ok {
			o.Label = name
		}
		obs[i] = o
	}
	return obs, nil
}

// normalizeDate drops any time-of-day component the timestamp column carried.
func normalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
