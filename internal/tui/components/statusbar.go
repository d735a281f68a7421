package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spent/internal/tui/theme"
)

// RenderStatusBar renders the bottom bar: key hints left, a flash message
// or summary right. isErr colors the right side as a warning.
func RenderStatusBar(width int, hints, right string, isErr bool) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	rightStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	if isErr {
		rightStyle = rightStyle.Foreground(t.Red).Bold(true)
	}

	left := " " + hints
	if right != "" {
		right += " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Hints give way to the message on narrow terminals.
		left = ""
		gap = max(0, width-lipgloss.Width(right))
	}

	bar := base.Render(left) + base.Render(spaces(gap)) + rightStyle.Render(right)
	return lipgloss.NewStyle().Background(t.Surface).Width(width).MaxWidth(width).Render(bar)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
