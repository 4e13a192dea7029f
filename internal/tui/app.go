// Package tui provides the interactive Bubble Tea dashboard for cpidash.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmaia/cpidash/internal/category"
	"github.com/dmaia/cpidash/internal/cli"
	"github.com/dmaia/cpidash/internal/model"
	"github.com/dmaia/cpidash/internal/pipeline"
	"github.com/dmaia/cpidash/internal/store"
	"github.com/dmaia/cpidash/internal/tui/components"
	"github.com/dmaia/cpidash/internal/tui/theme"
)

// DataLoadedMsg is sent when the dataset fetch and indexing finishes.
type DataLoadedMsg struct {
	Store    *store.Store
	LoadTime time.Duration
}

// LoadFailedMsg is sent when the dataset could not be loaded. This is fatal
// to the session: nothing partial is rendered.
type LoadFailedMsg struct {
	Err error
}

const (
	tabData = iota
	tabForecast
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5
)

// App is the root Bubble Tea model.
type App struct {
	// Dataset (immutable after load)
	st       *store.Store
	loaded   bool
	loadErr  error
	loadTime time.Duration

	// Selection state
	categories []string // mapped labels present in the data, sorted
	states     []string // states present for the selected division, sorted
	months     []time.Time
	division   string
	state      string
	dateRange  *model.DateRange // nil = full available range

	// Preferred defaults applied once the data arrives
	defaultCategory string
	defaultState    string

	// Computed per selection change
	series    model.Series // date-filtered, feeds the Data View
	full      model.Series // full history, feeds the Forecast page
	stats     model.DescriptiveStats
	statsOK   bool
	forecast  []model.ForecastPoint
	fcErr     error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Selector overlay (huh form)
	picker     *huh.Form
	pickerKind pickerKind
	pickVals   pickerValues

	spinner    spinner.Model
	datasetURL string
}

// NewApp creates the root TUI model. defaultCategory accepts a division code
// or label; both defaults are applied only if present in the loaded data.
func NewApp(datasetURL, defaultCategory, defaultState string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		datasetURL:      datasetURL,
		defaultCategory: defaultCategory,
		defaultState:    defaultState,
		spinner:         sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.datasetURL),
		a.spinner.Tick,
	)
}

// loadDataCmd runs the memoized dataset load in a background goroutine.
func loadDataCmd(url string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		st, err := pipeline.Load(ctx, url)
		if err != nil {
			return LoadFailedMsg{Err: err}
		}
		return DataLoadedMsg{Store: st, LoadTime: time.Since(start)}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.picker != nil {
			a.picker = a.picker.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.picker != nil {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case DataLoadedMsg:
		a.st = msg.Store
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.initSelection()
		a.recompute()
		return a, nil

	case LoadFailedMsg:
		a.loadErr = msg.Err
		return a, nil

	case spinner.TickMsg:
		if !a.loaded && a.loadErr == nil {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the picker form (cursor blinks, etc.)
	if a.picker != nil {
		return a.updatePicker(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// A failed load leaves nothing to interact with.
	if a.loadErr != nil {
		return a, tea.Quit
	}

	if !a.loaded {
		return a, nil
	}

	// Selector overlay intercepts all keys while open.
	if a.picker != nil {
		return a.updatePicker(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "d":
		a.activeTab = tabData
	case "f":
		a.activeTab = tabForecast
	case "left", "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	case "c":
		return a.openCategoryPicker()
	case "r":
		return a.openStatePicker()
	case "t":
		// Date-range narrowing only applies to the Data View page.
		if a.activeTab == tabData {
			return a.openRangePicker()
		}
	case "x":
		// Reset the date range to the full available span.
		a.dateRange = nil
		a.recompute()
	}
	return a, nil
}

// initSelection populates the selectors from the loaded data and applies the
// configured defaults where they exist.
func (a *App) initSelection() {
	a.categories, _ = a.st.Categories()
	if len(a.categories) == 0 {
		return
	}

	a.division = ""
	if a.defaultCategory != "" {
		if code, err := pipeline.ResolveCategory(a.defaultCategory); err == nil {
			if name, ok := category.LabelFor(code); ok && containsString(a.categories, name) {
				a.division = code
			}
		}
	}
	if a.division == "" {
		a.division, _ = category.CodeFor(a.categories[0])
	}

	a.refreshStates()
}

// refreshStates reloads the state selector for the current division and
// keeps the current state when it is still offered.
func (a *App) refreshStates() {
	a.states, _ = a.st.States(a.division)
	if !containsString(a.states, a.state) {
		a.state = ""
		if a.defaultState != "" && containsString(a.states, a.defaultState) {
			a.state = a.defaultState
		} else if len(a.states) > 0 {
			a.state = a.states[0]
		}
	}
	a.months, _ = a.st.Months(a.division, a.state)
	a.dateRange = nil
}

// recompute rebuilds every derived view input for the current selection.
// The whole visible state is recomputed synchronously per interaction.
func (a *App) recompute() {
	sel := pipeline.Selection{Division: a.division, State: a.state, Range: a.dateRange}

	a.series, _ = pipeline.SeriesFor(a.st, sel)
	a.full, _ = pipeline.FullSeriesFor(a.st, sel)
	a.stats, a.statsOK = pipeline.Describe(a.series)
	a.forecast, a.fcErr = pipeline.Forecast(a.full)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.loadErr != nil {
		return a.viewFatal()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.picker != nil {
		return a.picker.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  cpidash needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ cpidash"))
	b.WriteString(subtitleStyle.Render(" · Regional CPI Dashboard"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Fetching dataset..."))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// viewFatal renders the whole-session failure screen. There is no partial
// dashboard behind it and no retry; any key exits.
func (a App) viewFatal() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Red).
		Background(t.Surface).
		Bold(true)

	textStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Dataset unavailable"))
	b.WriteString("\n\n")
	b.WriteString(textStyle.Render(wrapText(a.loadErr.Error(), 60)))
	b.WriteString("\n\n")
	b.WriteString(textStyle.Render("Restart cpidash to try again. Press any key to exit."))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"d f", "Data View / Forecast page"},
		{"← →", "Switch page"},
		{"c", "Pick category"},
		{"r", "Pick region"},
		{"t", "Pick date range (Data View)"},
		{"x", "Clear date range"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-6s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	dataAge := fmt.Sprintf("%.1fs", a.loadTime.Seconds())
	statusBar := components.RenderStatusBar(w, a.selectionLabel(), dataAge)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabData:
		content = a.renderDataTab(cw, contentH)
	case tabForecast:
		content = a.renderForecastTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// selectionLabel builds the status-bar summary of the current selection.
func (a App) selectionLabel() string {
	name, _ := category.LabelFor(a.division)
	label := fmt.Sprintf("%s · %s", name, a.state)
	if a.dateRange != nil {
		label += fmt.Sprintf(" · %s→%s", cli.FormatMonth(a.dateRange.From), cli.FormatMonth(a.dateRange.To))
	}
	return label
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 3 // " │ " separator
	}
	return -1
}

// chartMonthLabels builds compact x-axis labels for a chronological monthly
// series: the year at January (and at the first point), blank elsewhere.
// The chart places labels greedily so blanks collapse away.
func chartMonthLabels(dates []time.Time) []string {
	labels := make([]string, len(dates))
	for i, d := range dates {
		switch {
		case i == 0:
			labels[i] = d.Format("Jan06")
		case d.Month() == time.January:
			labels[i] = d.Format("2006")
		default:
			labels[i] = ""
		}
	}
	return labels
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

func wrapText(s string, width int) string {
	words := strings.Fields(s)
	var b strings.Builder
	lineLen := 0
	for _, w := range words {
		if lineLen > 0 && lineLen+len(w)+1 > width {
			b.WriteString("\n")
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
