package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spent/internal/tui/theme"
)

// ShareBar renders pct (0-100) as a solid bar of the given width.
func ShareBar(pct float64, width int, color lipgloss.Color) string {
	t := theme.Active
	frac := max(0, min(pct/100, 1))

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.SurfaceBright)
	return bar.ViewAs(frac)
}

// Share is one row of a share chart.
type Share struct {
	Label string
	Value string  // preformatted amount
	Pct   float64 // 0-100
	Extra string  // optional trailing text
	Color lipgloss.Color
}

// ShareChart renders one labeled bar per share, stacked vertically.
// It stands in for a pie chart: every bar is scaled to 100%.
func ShareChart(shares []Share, width int) string {
	if len(shares) == 0 {
		return ""
	}
	t := theme.Active

	labelW, valueW, extraW := 0, 0, 0
	for _, s := range shares {
		labelW = max(labelW, lipgloss.Width(s.Label))
		valueW = max(valueW, lipgloss.Width(s.Value))
		extraW = max(extraW, lipgloss.Width(s.Extra))
	}
	const pctW = 6
	fixed := 2 + labelW + 1 + 1 + valueW + 1 + pctW
	if extraW > 0 {
		fixed += 2 + extraW
	}
	barW := max(8, width-fixed)

	space := lipgloss.NewStyle().Background(t.Surface)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	lines := make([]string, len(shares))
	for i, s := range shares {
		swatch := lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("● ")
		line := swatch +
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, s.Label)) +
			space.Render(" ") +
			ShareBar(s.Pct, barW, s.Color) +
			space.Render(" ") +
			valueStyle.Render(fmt.Sprintf("%*s", valueW, s.Value)) +
			mutedStyle.Render(fmt.Sprintf(" %*.1f%%", pctW-1, s.Pct))
		if extraW > 0 {
			line += mutedStyle.Render("  " + s.Extra)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// MonthBars renders one horizontal bar per label scaled to the largest
// value; the row at highlight is drawn in the accent color.
func MonthBars(labels, valueText []string, values []float64, highlight, width int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	labelW, valueW := 0, 0
	for i := range labels {
		labelW = max(labelW, lipgloss.Width(labels[i]))
		valueW = max(valueW, lipgloss.Width(valueText[i]))
	}
	barW := max(6, width-labelW-valueW-4)

	lines := make([]string, len(values))
	for i, v := range values {
		color := t.Blue
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		if i == highlight {
			color = t.AccentBright
			labelStyle = labelStyle.Foreground(t.TextPrimary).Bold(true)
		}
		pct := 0.0
		if peak > 0 {
			pct = v / peak * 100
		}
		lines[i] = labelStyle.Render(fmt.Sprintf("%-*s  ", labelW, labels[i])) +
			ShareBar(pct, barW, color) +
			labelStyle.Render(fmt.Sprintf("  %*s", valueW, valueText[i]))
	}
	return strings.Join(lines, "\n")
}
