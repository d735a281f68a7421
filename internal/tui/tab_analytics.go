package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/model"
	"github.com/theirongolddev/spent/internal/pipeline"
	"github.com/theirongolddev/spent/internal/tui/components"
	"github.com/theirongolddev/spent/internal/tui/theme"
)

var quickKeys = map[string]pipeline.QuickFilter{
	"1": pipeline.QuickLastMonth,
	"6": pipeline.QuickLastSixMonths,
	"y": pipeline.QuickThisYear,
	"0": pipeline.QuickNone,
}

// updateAnalyticsKey handles keys owned by the analytics tab.
func (a App) updateAnalyticsKey(key string) (App, bool) {
	f := a.analysis.filter

	if q, ok := quickKeys[key]; ok {
		a.setAnalyticsFilter(q.Apply(a.now()))
		return a, true
	}

	switch key {
	case "j", "down":
		if a.analysis.cursor < len(model.Categories)-1 {
			a.analysis.cursor++
		}
	case "k", "up":
		if a.analysis.cursor > 0 {
			a.analysis.cursor--
		}
	case " ", "space", "enter":
		a.setAnalyticsFilter(f.ToggleCategory(model.Categories[a.analysis.cursor]))
	case "x":
		f.Categories = nil
		a.setAnalyticsFilter(f)
	case "m":
		f.Period = f.Period.WithMonth(cycle(a.months, currentMonth(f.Period), 1))
		a.setAnalyticsFilter(f)
	case "M":
		f.Period = f.Period.WithMonth(cycle(a.months, currentMonth(f.Period), -1))
		a.setAnalyticsFilter(f)
	case "Y":
		f.Period = f.Period.WithYear(cycle(a.years, currentYear(f.Period), 1))
		a.setAnalyticsFilter(f)
	default:
		return a, false
	}
	return a, true
}

func (a *App) setAnalyticsFilter(f pipeline.AnalyticsFilter) {
	a.analysis.filter = f
	a.recompute()
}

func currentMonth(p pipeline.Period) int {
	if p.Kind == pipeline.PeriodMonthYear {
		return p.Month
	}
	return 0
}

func currentYear(p pipeline.Period) int {
	if p.Kind == pipeline.PeriodMonthYear {
		return p.Year
	}
	return 0
}

// cycle steps through the choices 0, values[0], ..., values[n-1] and wraps.
// A current value missing from values restarts the cycle at 0.
func cycle(values []int, current, step int) int {
	opts := append([]int{0}, values...)
	idx := 0
	for i, v := range opts {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(opts)) % len(opts)
	return opts[idx]
}

func (a App) renderAnalyticsTab(cw int) string {
	t := theme.Active
	p := a.periods
	var b strings.Builder

	metrics := []components.Metric{
		{Label: "Last Month", Value: a.money(p.LastMonth)},
		{Label: "Last 6 Months", Value: a.money(p.LastSixMonths)},
		{Label: "This Year", Value: a.money(p.ThisYear)},
		{Label: "All Time", Value: a.money(p.AllTime), Color: t.AccentBright},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	cols := components.LayoutRow(cw, 3)
	leftW := cols[0]
	rightW := cw - leftW

	left := components.FocusCard("Filters", a.renderFilterPanel(components.CardInnerWidth(leftW)), leftW)

	title := fmt.Sprintf("By Category  %s  %s",
		a.money(a.analyticsTotal), cli.FormatCount(len(a.analytics))+" expenses")
	right := components.ContentCard(title, a.renderCategoryShares(components.CardInnerWidth(rightW)), rightW)

	b.WriteString(components.CardRow([]string{left, right}))
	return b.String()
}

func (a App) renderFilterPanel(w int) string {
	t := theme.Active
	f := a.analysis.filter
	now := a.now()

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	accent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	var lines []string
	lines = append(lines, muted.Render("Period ")+value.Render(cli.FormatPeriod(f.Period)))

	var quick []string
	active := pipeline.ActiveQuickFilter(f, now)
	labels := map[pipeline.QuickFilter]string{
		pipeline.QuickLastMonth:     "[1] last month",
		pipeline.QuickLastSixMonths: "[6] 6 months",
		pipeline.QuickThisYear:      "[y] this year",
	}
	for _, q := range pipeline.QuickFilters {
		if q == active {
			quick = append(quick, accent.Bold(true).Render(labels[q]))
		} else {
			quick = append(quick, muted.Render(labels[q]))
		}
	}
	lines = append(lines, strings.Join(quick, muted.Render(" ")), "")

	for i, c := range model.Categories {
		selected := i == a.analysis.cursor
		bg := t.Surface
		if selected {
			bg = t.SurfaceHover
		}
		base := lipgloss.NewStyle().Background(bg)

		box := "[ ]"
		if len(f.Categories) > 0 && f.Includes(c) {
			box = "[x]"
		}
		line := base.Foreground(t.TextMuted).Render(box+" ") +
			base.Foreground(t.CategoryColor(c)).Render("● ") +
			base.Foreground(t.TextPrimary).Render(truncStr(string(c), w-6))
		lines = append(lines, lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
	}

	lines = append(lines, "")
	if n := f.ActiveCount(); n > 0 {
		lines = append(lines, accent.Render(fmt.Sprintf("%d active filter%s", n, plural(n)))+
			muted.Render("  [0] clear"))
	} else {
		lines = append(lines, muted.Render("no filters"))
	}
	return strings.Join(lines, "\n")
}

func (a App) renderCategoryShares(w int) string {
	t := theme.Active
	if len(a.analyticsTotals) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("No expenses match the current filters.")
	}

	shares := make([]components.Share, len(a.analyticsTotals))
	for i, ct := range a.analyticsTotals {
		global := pipeline.Percent(ct.Amount, a.periods.AllTime)
		shares[i] = components.Share{
			Label: string(ct.Category),
			Value: a.money(ct.Amount),
			Pct:   ct.Percent,
			Extra: cli.FormatPercent(global) + " of all",
			Color: t.CategoryColor(ct.Category),
		}
	}
	return components.ShareChart(shares, w)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
