package pipeline

import (
	"fmt"
	"time"

	"github.com/dmaia/cpidash/internal/model"
)

// ParseRange builds a closed date interval from "2006-01" month strings.
// Either side may be empty; both empty yields nil (full available range).
// The "to" month is extended to its last day so mid-month dates stay inside.
func ParseRange(from, to string) (*model.DateRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}

	r := &model.DateRange{
		From: time.Time{},
		To:   time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	if from != "" {
		t, err := time.ParseInLocation("2006-01", from, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid --from %q (want YYYY-MM)", from)
		}
		r.From = t
	}
	if to != "" {
		t, err := time.ParseInLocation("2006-01", to, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid --to %q (want YYYY-MM)", to)
		}
		r.To = t.AddDate(0, 1, -1)
	}

	if r.From.After(r.To) {
		return nil, fmt.Errorf("--from %s is after --to %s", from, to)
	}
	return r, nil
}
