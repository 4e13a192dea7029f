package pipeline

import (
	"errors"
	"fmt"

	"github.com/dmaia/cpidash/internal/category"
	"github.com/dmaia/cpidash/internal/model"
	"github.com/dmaia/cpidash/internal/store"
)

// ErrEmptySelection indicates a filter matched zero rows. It is recoverable:
// callers surface a notice and keep the rest of the surface usable.
var ErrEmptySelection = errors.New("pipeline: selection matched no rows")

// Selection identifies one division+state slice of the dataset, with an
// optional closed date interval. A nil Range means the full available range.
type Selection struct {
	Division string
	State    string
	Range    *model.DateRange
}

// ResolveCategory accepts either a division code or a display label and
// returns the code. Labels work only for the 13 mapped divisions.
func ResolveCategory(input string) (string, error) {
	if category.Known(input) {
		return input, nil
	}
	if code, ok := category.CodeFor(input); ok {
		return code, nil
	}
	return "", fmt.Errorf("unknown category %q", input)
}

// SeriesFor returns the filtered series for a selection, ascending by date.
// An empty result is returned as-is; callers decide whether that is a notice
// (views) or an ErrEmptySelection (CLI commands).
func SeriesFor(st *store.Store, sel Selection) (model.Series, error) {
	return st.Filter(sel.Division, sel.State, sel.Range)
}

// FullSeriesFor returns the date-unfiltered series for a selection. The
// forecast always fits on full history, regardless of any date-range
// narrowing applied on the data page.
func FullSeriesFor(st *store.Store, sel Selection) (model.Series, error) {
	return st.Filter(sel.Division, sel.State, nil)
}
