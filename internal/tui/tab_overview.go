package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/model"
	"github.com/theirongolddev/spent/internal/tui/components"
	"github.com/theirongolddev/spent/internal/tui/theme"
)

// updateOverviewKey handles keys owned by the overview tab. ok is false
// when the key should fall through to global navigation.
func (a App) updateOverviewKey(key string) (App, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.overview.cursor < len(a.monthList)-1 {
			a.overview.cursor++
		}
	case "k", "up":
		if a.overview.cursor > 0 {
			a.overview.cursor--
		}
	case "g", "home":
		a.overview.cursor = 0
	case "G", "end":
		a.overview.cursor = max(0, len(a.monthList)-1)
	case "/":
		a.overview.searching = true
		a.overview.searchInput = newSearchInput(a.overview.query)
		return a, textinput.Blink, true
	case "c":
		a.overview.category = nextCategory(a.overview.category)
		a.overview.cursor = 0
		a.recompute()
	case "esc":
		a.overview.query = ""
		a.overview.category = ""
		a.overview.cursor = 0
		a.recompute()
	case "a":
		next, cmd := a.openAddForm()
		return next, cmd, true
	case "e", "enter":
		if len(a.monthList) > 0 {
			next, cmd := a.openEditForm(a.monthList[a.overview.cursor])
			return next, cmd, true
		}
	case "d", "delete":
		if len(a.monthList) > 0 {
			a.confirmID = a.monthList[a.overview.cursor].ID
		}
	default:
		return a, nil, false
	}
	return a, nil, true
}

func newSearchInput(value string) textinput.Model {
	t := theme.Active
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search title or description"
	ti.CharLimit = 64
	ti.PromptStyle = lipgloss.NewStyle().Foreground(t.Accent)
	ti.TextStyle = lipgloss.NewStyle().Foreground(t.TextPrimary)
	ti.SetValue(value)
	ti.Focus()
	return ti
}

// nextCategory cycles "" -> first category -> ... -> last -> "".
func nextCategory(c model.Category) model.Category {
	i := c.Index()
	if i+1 >= len(model.Categories) {
		return ""
	}
	return model.Categories[i+1]
}

// updateSearch routes keys to the search input while it is open.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.overview.searching = false
		a.overview.query = strings.TrimSpace(a.overview.searchInput.Value())
		a.overview.cursor = 0
		a.recompute()
		return a, nil
	case "esc":
		a.overview.searching = false
		return a, nil
	}
	var cmd tea.Cmd
	a.overview.searchInput, cmd = a.overview.searchInput.Update(msg)
	return a, cmd
}

func (a App) renderOverviewTab(cw, h int) string {
	t := theme.Active
	p := a.periods
	var b strings.Builder

	metrics := []components.Metric{
		{Label: "Today", Value: a.money(p.Today)},
		{Label: "This Week", Value: a.money(p.ThisWeek)},
		{Label: "This Month", Value: a.money(p.ThisMonth), Color: t.AccentBright},
		{Label: "Daily Average", Value: a.money(p.DailyAverage), Note: "this month"},
	}
	cards := components.MetricCardRow(metrics, cw)
	b.WriteString(cards)
	b.WriteString("\n")

	title := fmt.Sprintf("This Month  %s  %s",
		cli.FormatCount(len(a.monthAll))+" expenses", a.money(a.monthTotal))
	listH := max(3, h-lipgloss.Height(cards)-4)
	b.WriteString(components.FocusCard(title, a.renderMonthList(components.CardInnerWidth(cw), listH), cw))

	return b.String()
}

func (a App) renderFilterLine() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	accent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	if a.overview.searching {
		return a.overview.searchInput.View()
	}

	var parts []string
	if a.overview.query != "" {
		parts = append(parts, muted.Render("search: ")+accent.Render(a.overview.query))
	}
	if a.overview.category != "" {
		parts = append(parts, muted.Render("category: ")+
			lipgloss.NewStyle().Foreground(t.CategoryColor(a.overview.category)).Background(t.Surface).
				Render(string(a.overview.category)))
	}
	if len(parts) == 0 {
		return muted.Render("all expenses  [/] search  [c] category")
	}
	return strings.Join(parts, muted.Render("  ")) + muted.Render("  [esc] clear")
}

func (a App) renderMonthList(w, h int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	lines := []string{a.renderFilterLine(), ""}

	if len(a.monthList) == 0 {
		msg := "No expenses this month. Press a to add one."
		if a.overview.query != "" || a.overview.category != "" {
			msg = "No expenses match the current filter."
		}
		lines = append(lines, muted.Render(msg))
		return strings.Join(lines, "\n")
	}

	rows := max(1, h-len(lines))
	start := 0
	if a.overview.cursor >= rows {
		start = a.overview.cursor - rows + 1
	}
	end := min(len(a.monthList), start+rows)

	today := a.now()
	const dateW, amountW, catW = 12, 12, 18
	titleW := max(8, w-dateW-amountW-catW-6)

	for i := start; i < end; i++ {
		e := a.monthList[i]
		selected := i == a.overview.cursor

		bg := t.Surface
		if selected {
			bg = t.SurfaceHover
		}
		base := lipgloss.NewStyle().Background(bg)
		text := base.Foreground(t.TextPrimary)
		dim := base.Foreground(t.TextMuted)
		cat := base.Foreground(t.CategoryColor(e.Category))
		if selected {
			text = text.Bold(true)
		}

		marker := "  "
		if selected {
			marker = "▸ "
		}

		line := base.Foreground(t.Accent).Render(marker) +
			text.Render(fmt.Sprintf("%-*s", titleW, truncStr(e.Title, titleW))) + base.Render(" ") +
			cat.Render(fmt.Sprintf("%-*s", catW, truncStr(string(e.Category), catW))) + base.Render(" ") +
			dim.Render(fmt.Sprintf("%-*s", dateW, cli.FormatAge(e.Date, today))) + base.Render(" ") +
			text.Render(fmt.Sprintf("%*s", amountW, a.money(e.Amount)))
		lines = append(lines, lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))

		if selected && e.Description != "" {
			lines = append(lines, dim.Render("    "+truncStr(e.Description, w-4)))
		}
	}

	if len(a.monthList) > rows {
		lines = append(lines, muted.Render(fmt.Sprintf("%d of %d", a.overview.cursor+1, len(a.monthList))))
	}
	return strings.Join(lines, "\n")
}
