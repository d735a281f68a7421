// Package tui provides the interactive Bubble Tea dashboard for spent.
package tui

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/logging"
	"github.com/theirongolddev/spent/internal/model"
	"github.com/theirongolddev/spent/internal/pipeline"
	"github.com/theirongolddev/spent/internal/store"
	"github.com/theirongolddev/spent/internal/tui/components"
	"github.com/theirongolddev/spent/internal/tui/theme"
)

// Options configures a new App.
type Options struct {
	Currency  string
	WeekStart time.Weekday
	Clock     func() time.Time // nil means time.Now
	Logger    zerolog.Logger
}

// App is the root Bubble Tea model.
type App struct {
	store     *store.Store
	log       zerolog.Logger
	now       func() time.Time
	currency  string
	weekStart time.Weekday

	// Snapshot and everything derived from it, rebuilt by recompute.
	expenses        []model.Expense
	periods         model.PeriodTotals
	monthAll        []model.Expense
	monthList       []model.Expense
	monthTotal      decimal.Decimal
	analytics       []model.Expense
	analyticsTotals []model.CategoryTotal
	analyticsTotal  decimal.Decimal
	months          []int
	years           []int
	history         pipeline.History
	histList        []model.Expense // selected history month, newest date first
	loadErr         error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	flash     string
	flashErr  bool
	crash     string

	overview  overviewState
	analysis  analyticsState
	hist      historyState
	form      *expenseForm
	confirmID string
}

type overviewState struct {
	cursor      int
	searching   bool
	searchInput textinput.Model
	query       string
	category    model.Category // "" means all
}

type analyticsState struct {
	filter pipeline.AnalyticsFilter
	cursor int // index into model.Categories
}

type historyState struct {
	key    string
	cursor int // index into histList
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates a new TUI app model over s.
func NewApp(s *store.Store, opts Options) App {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	currency := opts.Currency
	if currency == "" {
		currency = "$"
	}

	a := App{
		store:     s,
		log:       logging.Component(opts.Logger, logging.ComponentTUI),
		now:       clock,
		currency:  currency,
		weekStart: opts.WeekStart,
		analysis:  analyticsState{filter: pipeline.AnalyticsFilter{Period: pipeline.AllTime()}},
	}
	a.hist.key = pipeline.DefaultHistoryKey(clock())
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// recompute rebuilds every derived view from a fresh store snapshot.
func (a *App) recompute() {
	now := a.now()

	exps, err := a.store.Snapshot()
	if err != nil {
		a.loadErr = err
		a.log.Error().Err(err).Msg("snapshot failed")
		return
	}
	a.loadErr = nil
	a.expenses = exps

	a.periods = pipeline.PeriodTotals(exps, now, a.weekStart)

	a.monthAll = pipeline.FilterCurrentMonth(exps, now)
	a.monthTotal = pipeline.Total(a.monthAll)
	a.monthList = pipeline.SortByDateDesc(
		pipeline.FilterSearch(a.monthAll, a.overview.query, a.overview.category))
	a.overview.cursor = clamp(a.overview.cursor, 0, len(a.monthList)-1)

	a.months = pipeline.AvailableMonths(exps)
	a.years = pipeline.AvailableYears(exps)
	a.analytics = pipeline.FilterAnalytics(exps, a.analysis.filter, now)
	a.analyticsTotals = pipeline.CategoryTotals(a.analytics)
	a.analyticsTotal = pipeline.Total(a.analytics)

	a.history = pipeline.GroupHistory(exps, now)
	a.selectHistory(a.history.Resolve(a.hist.key))
}

// selectHistory shows the month key in the history tab. The cursor is
// kept when the month is unchanged and reset otherwise.
func (a *App) selectHistory(key string) {
	if key != a.hist.key {
		a.hist.cursor = 0
	}
	a.hist.key = key
	a.histList = a.history.Bucket(key).Expenses
	a.hist.cursor = clamp(a.hist.cursor, 0, len(a.histList)-1)
}

// Update implements tea.Model. A panic while handling a message is
// recovered here and replaces the UI with a crash notice.
func (a App) Update(msg tea.Msg) (m tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			a.recordCrash(r)
			m, cmd = a, nil
		}
	}()
	return a.update(msg)
}

func (a *App) recordCrash(r any) {
	a.crash = fmt.Sprint(r)
	a.log.Error().
		Str(logging.FieldStack, string(debug.Stack())).
		Msgf("recovered panic: %v", r)
}

func (a App) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form.resize(msg.Width, msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.crash != "" || a.form != nil || a.showHelp {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return a, tea.Quit
		}
		if a.crash != "" {
			if key == "q" || key == "esc" {
				return a, tea.Quit
			}
			return a, nil
		}
		if a.form != nil {
			return a.updateForm(msg)
		}
		if a.confirmID != "" {
			return a.updateConfirm(key)
		}
		if a.activeTab == components.TabOverview && a.overview.searching {
			return a.updateSearch(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		a.flash = ""
		if key == "q" {
			return a, tea.Quit
		}

		switch a.activeTab {
		case components.TabOverview:
			if next, cmd, ok := a.updateOverviewKey(key); ok {
				return next, cmd
			}
		case components.TabAnalytics:
			if next, ok := a.updateAnalyticsKey(key); ok {
				return next, nil
			}
		case components.TabHistory:
			if next, cmd, ok := a.updateHistoryKey(key); ok {
				return next, cmd
			}
		}

		switch key {
		case "left", "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(msg.Runes) == 1 {
				if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	// Cursor blinks and other internal messages belong to the open form.
	if a.form != nil {
		return a.updateForm(msg)
	}
	if a.overview.searching {
		var cmd tea.Cmd
		a.overview.searchInput, cmd = a.overview.searchInput.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		switch {
		case a.activeTab == components.TabOverview && a.overview.cursor > 0:
			a.overview.cursor--
		case a.activeTab == components.TabHistory && a.hist.cursor > 0:
			a.hist.cursor--
		}
	case tea.MouseButtonWheelDown:
		switch {
		case a.activeTab == components.TabOverview && a.overview.cursor < len(a.monthList)-1:
			a.overview.cursor++
		case a.activeTab == components.TabHistory && a.hist.cursor < len(a.histList)-1:
			a.hist.cursor++
		}
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

// updateConfirm resolves a pending delete.
func (a App) updateConfirm(key string) (tea.Model, tea.Cmd) {
	id := a.confirmID
	switch key {
	case "y", "Y", "enter":
		a.confirmID = ""
		if err := a.store.Remove(id); err != nil {
			a.setFlash(err.Error(), true)
			a.log.Warn().Err(err).Str(logging.FieldExpenseID, id).Msg("delete failed")
		} else {
			a.setFlash("Expense deleted", false)
		}
		a.recompute()
	case "n", "N", "esc", "q":
		a.confirmID = ""
	}
	return a, nil
}

func (a *App) setFlash(s string, isErr bool) {
	a.flash = s
	a.flashErr = isErr
}

func (a App) money(d decimal.Decimal) string {
	return cli.FormatMoney(d, a.currency)
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			a.recordCrash(r)
			out = a.viewCrash()
		}
	}()

	if a.crash != "" {
		return a.viewCrash()
	}
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewCrash() string {
	t := theme.Active
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Padding(1, 3).
		Render(
			lipgloss.NewStyle().Foreground(t.Red).Bold(true).Render("Something went wrong") + "\n\n" +
				lipgloss.NewStyle().Foreground(t.TextMuted).Render("The error was written to the log.\nPress q to quit."))
	if a.width == 0 || a.height == 0 {
		return card
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  spent needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings [][2]string
	}{
		{"Navigation", [][2]string{
			{"o n h", "Jump to tab"},
			{"← → tab", "Previous / Next tab"},
			{"j k", "Move selection"},
		}},
		{"Overview", [][2]string{
			{"/", "Search title and description"},
			{"c", "Cycle category filter"},
			{"esc", "Clear search and filter"},
			{"a e d", "Add / Edit / Delete expense"},
		}},
		{"Analytics", [][2]string{
			{"space", "Toggle category"},
			{"x", "Clear categories"},
			{"m M", "Next / Previous month"},
			{"Y", "Cycle year"},
			{"1 6 y 0", "Last month / Last 6 months / This year / Clear"},
		}},
		{"History", [][2]string{
			{"[ ]", "Older / Newer month"},
			{"e d", "Edit / Delete selected expense"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind[0])),
				descStyle.Render(bind[1]))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	right := a.flash
	isErr := a.flashErr
	switch {
	case a.loadErr != nil:
		right, isErr = "store error: "+a.loadErr.Error(), true
	case a.confirmID != "":
		right, isErr = "Delete this expense? y/n", true
	case right == "":
		right = fmt.Sprintf("%s expenses", cli.FormatCount(len(a.expenses)))
	}
	statusBar := components.RenderStatusBar(w, a.hints(), right, isErr)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case components.TabOverview:
		content = a.renderOverviewTab(cw, contentH)
	case components.TabAnalytics:
		content = a.renderAnalyticsTab(cw)
	case components.TabHistory:
		content = a.renderHistoryTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) hints() string {
	switch a.activeTab {
	case components.TabOverview:
		if a.overview.searching {
			return "[enter]apply  [esc]cancel"
		}
		return "[a]dd [e]dit [d]elete  [/]search [c]ategory  [?]help [q]uit"
	case components.TabAnalytics:
		return "[space]toggle [m]onth [Y]ear  [1][6][y][0]quick  [?]help [q]uit"
	default:
		return "[ older  ] newer  [e]dit [d]elete  [?]help [q]uit"
	}
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the widths used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW
		if i < len(components.Tabs)-1 {
			pos++ // separator
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
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

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
