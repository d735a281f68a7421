package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spent/internal/tui/theme"
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
	dim    lipgloss.Style
	border lipgloss.Color
}

// currentStyles derives report styles from the active theme.
func currentStyles() styles {
	t := theme.Active
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Align(lipgloss.Center),
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		value:  lipgloss.NewStyle().Foreground(t.TextPrimary),
		muted:  lipgloss.NewStyle().Foreground(t.TextMuted),
		dim:    lipgloss.NewStyle().Foreground(t.TextDim),
		border: t.Border,
	}
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
	Left    int   // number of leading columns aligned left, at least 1
}

// SeparatorRow marks a horizontal rule inside Table.Rows.
var SeparatorRow = []string{"---"}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	st := currentStyles()
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.border).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(st.title.Render(title))
}

// RenderNote renders a muted one-line remark.
func RenderNote(s string) string {
	return "  " + currentStyles().muted.Render(s)
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}
	st := currentStyles()

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	left := t.Left
	if left < 1 {
		left = 1
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			widths[i] = max(widths[i], lipgloss.Width(h))
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols {
					widths[i] = max(widths[i], lipgloss.Width(cell))
				}
			}
		}
	}

	rule := func(l, mid, r string) string {
		var b strings.Builder
		b.WriteString(st.dim.Render(l))
		for i, w := range widths {
			b.WriteString(st.dim.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(st.dim.Render(mid))
			}
		}
		b.WriteString(st.dim.Render(r))
		b.WriteString("\n")
		return b.String()
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(st.header.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(st.dim.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(st.header.Render(pad(h, widths[i], i < left)))
			if i < numCols-1 {
				b.WriteString(st.dim.Render("│"))
			}
		}
		b.WriteString(st.dim.Render("│"))
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == SeparatorRow[0] {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}

		b.WriteString(st.dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// Amounts and counts sit right of the text columns.
			b.WriteString(st.value.Render(pad(cell, widths[i], i < left)))
			if i < numCols-1 {
				b.WriteString(st.dim.Render("│"))
			}
		}
		b.WriteString(st.dim.Render("│"))
		b.WriteString("\n")
	}

	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}

func pad(s string, w int, leftAlign bool) string {
	gap := w - lipgloss.Width(s)
	if gap < 0 {
		gap = 0
	}
	if leftAlign {
		return " " + s + strings.Repeat(" ", gap) + " "
	}
	return " " + strings.Repeat(" ", gap) + s + " "
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

// RenderShareBar renders a pct (0-100) share as a fixed-width bar.
func RenderShareBar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(pct / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// RenderKeyValue renders an aligned label and value line.
func RenderKeyValue(label, value string, labelWidth int) string {
	st := currentStyles()
	return fmt.Sprintf("  %s %s",
		st.muted.Render(fmt.Sprintf("%-*s", labelWidth, label)),
		st.value.Render(value))
}
