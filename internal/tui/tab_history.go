package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/tui/components"
	"github.com/theirongolddev/spent/internal/tui/theme"
)

// updateHistoryKey handles keys owned by the history tab.
func (a App) updateHistoryKey(key string) (App, tea.Cmd, bool) {
	switch key {
	case "[", "pgdown":
		a.selectHistory(a.history.Prev(a.hist.key))
	case "]", "pgup":
		a.selectHistory(a.history.Next(a.hist.key))
	case "j", "down":
		if a.hist.cursor < len(a.histList)-1 {
			a.hist.cursor++
		}
	case "k", "up":
		if a.hist.cursor > 0 {
			a.hist.cursor--
		}
	case "a":
		next, cmd := a.openAddForm()
		return next, cmd, true
	case "e", "enter":
		if len(a.histList) > 0 {
			next, cmd := a.openEditForm(a.histList[a.hist.cursor])
			return next, cmd, true
		}
	case "d", "delete":
		if len(a.histList) > 0 {
			a.confirmID = a.histList[a.hist.cursor].ID
		}
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) renderHistoryTab(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if a.hist.key == "" {
		return components.ContentCard("History",
			muted.Render("No expenses before this month yet."), cw)
	}

	bucket := a.history.Bucket(a.hist.key)
	var b strings.Builder

	pos := 0
	for i, k := range a.history.Keys {
		if k == a.hist.key {
			pos = i
		}
	}
	metrics := []components.Metric{
		{Label: "Month", Value: cli.FormatMonthKey(bucket.Key),
			Note: fmt.Sprintf("%d of %d", pos+1, len(a.history.Keys))},
		{Label: "Total", Value: a.money(bucket.Total), Color: t.AccentBright},
		{Label: "Expenses", Value: cli.FormatCount(len(bucket.Expenses))},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	cols := components.LayoutRow(cw, 2)
	left := components.FocusCard("Expenses", a.renderBucketList(components.CardInnerWidth(cols[0])), cols[0])
	right := components.ContentCard("Monthly Totals", a.renderMonthTotals(components.CardInnerWidth(cols[1])), cols[1])
	b.WriteString(components.CardRow([]string{left, right}))

	return b.String()
}

func (a App) renderBucketList(w int) string {
	t := theme.Active
	base := lipgloss.NewStyle().Background(t.Surface)
	text := base.Foreground(t.TextPrimary)
	dim := base.Foreground(t.TextMuted)

	const dateW, amountW = 12, 12
	titleW := max(6, w-dateW-amountW-6)

	lines := make([]string, 0, len(a.histList))
	for i, e := range a.histList {
		selected := i == a.hist.cursor
		bg := t.Surface
		marker := "  "
		if selected {
			bg = t.SurfaceHover
			marker = "▸ "
		}
		row := base.Background(bg)
		line := row.Foreground(t.Accent).Render(marker) +
			row.Foreground(t.CategoryColor(e.Category)).Render("● ") +
			text.Background(bg).Bold(selected).Render(fmt.Sprintf("%-*s", titleW, truncStr(e.Title, titleW))) + row.Render(" ") +
			dim.Background(bg).Render(fmt.Sprintf("%-*s", dateW, e.Date.Format("Jan 2"))) +
			text.Background(bg).Render(fmt.Sprintf("%*s", amountW, a.money(e.Amount)))
		lines = append(lines, lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
	}
	return strings.Join(lines, "\n")
}

// renderMonthTotals charts every history month, newest first, with the
// selected month highlighted.
func (a App) renderMonthTotals(w int) string {
	keys := a.history.Keys
	labels := make([]string, len(keys))
	text := make([]string, len(keys))
	values := make([]float64, len(keys))
	highlight := -1
	for i, k := range keys {
		total := a.history.Total(k)
		labels[i] = cli.FormatMonthKey(k)
		text[i] = a.money(total)
		values[i] = total.InexactFloat64()
		if k == a.hist.key {
			highlight = i
		}
	}
	return components.MonthBars(labels, text, values, highlight, w)
}
