package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/dmaia/cpidash/internal/category"
	"github.com/dmaia/cpidash/internal/cli"
	"github.com/dmaia/cpidash/internal/model"
)

// pickerKind identifies which selector overlay is open.
type pickerKind int

const (
	pickNone pickerKind = iota
	pickCategory
	pickState
	pickRange
)

// pickerValues receives the huh form results.
type pickerValues struct {
	category string
	state    string
	from     string
	to       string
}

func selectOptions(values []string) []huh.Option[string] {
	opts := make([]huh.Option[string], len(values))
	for i, v := range values {
		opts[i] = huh.NewOption(v, v)
	}
	return opts
}

func (a App) openCategoryPicker() (tea.Model, tea.Cmd) {
	if len(a.categories) == 0 {
		return a, nil
	}

	a.pickVals = pickerValues{}
	if name, ok := category.LabelFor(a.division); ok {
		a.pickVals.category = name
	}

	a.pickerKind = pickCategory
	a.picker = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Category").
			Options(selectOptions(a.categories)...).
			Value(&a.pickVals.category),
	))
	return a.startPicker()
}

func (a App) openStatePicker() (tea.Model, tea.Cmd) {
	if len(a.states) == 0 {
		return a, nil
	}

	a.pickVals = pickerValues{state: a.state}
	a.pickerKind = pickState
	a.picker = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Region").
			Options(selectOptions(a.states)...).
			Value(&a.pickVals.state),
	))
	return a.startPicker()
}

func (a App) openRangePicker() (tea.Model, tea.Cmd) {
	if len(a.months) == 0 {
		return a, nil
	}

	monthOpts := make([]string, len(a.months))
	for i, m := range a.months {
		monthOpts[i] = cli.FormatMonth(m)
	}

	// Preselect the current range, or the full span.
	a.pickVals = pickerValues{
		from: monthOpts[0],
		to:   monthOpts[len(monthOpts)-1],
	}
	if a.dateRange != nil {
		a.pickVals.from = cli.FormatMonth(a.dateRange.From)
		a.pickVals.to = cli.FormatMonth(a.dateRange.To)
	}

	a.pickerKind = pickRange
	a.picker = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("From").
			Options(selectOptions(monthOpts)...).
			Value(&a.pickVals.from),
		huh.NewSelect[string]().
			Title("To").
			Options(selectOptions(monthOpts)...).
			Value(&a.pickVals.to),
	))
	return a.startPicker()
}

func (a App) startPicker() (tea.Model, tea.Cmd) {
	if a.width > 0 {
		a.picker = a.picker.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.picker.Init()
}

// updatePicker forwards messages to the open huh form and applies the
// selection once the form completes.
func (a App) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.picker.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.picker = f
	}

	if a.picker.State == huh.StateCompleted {
		a.applyPicker()
		a.picker = nil
		a.pickerKind = pickNone
		return a, nil
	}

	if a.picker.State == huh.StateAborted {
		a.picker = nil
		a.pickerKind = pickNone
		return a, nil
	}

	return a, cmd
}

// applyPicker folds the completed form values into the selection state and
// recomputes the visible pages.
func (a *App) applyPicker() {
	switch a.pickerKind {
	case pickCategory:
		if code, ok := category.CodeFor(a.pickVals.category); ok && code != a.division {
			a.division = code
			a.refreshStates()
		}
	case pickState:
		if a.pickVals.state != "" && a.pickVals.state != a.state {
			a.state = a.pickVals.state
			a.months, _ = a.st.Months(a.division, a.state)
			a.dateRange = nil
		}
	case pickRange:
		from, errF := time.ParseInLocation("2006-01", a.pickVals.from, time.UTC)
		to, errT := time.ParseInLocation("2006-01", a.pickVals.to, time.UTC)
		if errF != nil || errT != nil {
			break
		}
		// Closed interval with from <= to; a reversed pick is swapped
		// rather than rejected.
		if from.After(to) {
			from, to = to, from
		}
		// Cover the whole "to" month in case dates land mid-month.
		to = to.AddDate(0, 1, -1)
		a.dateRange = &model.DateRange{From: from, To: to}
	}
	a.recompute()
}
