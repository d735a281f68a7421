package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spent/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name
}

// Tab indexes.
const (
	TabOverview = iota
	TabAnalytics
	TabHistory
)

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o', KeyPos: 0},
	{Name: "Analytics", Key: 'n', KeyPos: 1},
	{Name: "History", Key: 'h', KeyPos: 0},
}

const tabPadding = 1

// TabVisualWidth returns the rendered width of a tab, including padding.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(tabLabel(tab, active, false)) + 2*tabPadding
}

// tabLabel marks the shortcut letter of inactive tabs as "[k]".
func tabLabel(tab Tab, active, styled bool) string {
	if active || tab.KeyPos < 0 || tab.KeyPos >= len(tab.Name) {
		return tab.Name
	}
	before := tab.Name[:tab.KeyPos]
	key := string(tab.Name[tab.KeyPos])
	after := tab.Name[tab.KeyPos+1:]
	if !styled {
		return before + "[" + key + "]" + after
	}

	t := theme.Active
	inactive := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	return inactive.Render(before) + dim.Render("[") + keyStyle.Render(key) + dim.Render("]") + inactive.Render(after)
}

// RenderTabBar renders the tab bar with the given active index on one line.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, tabPadding)
	inactiveStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Padding(0, tabPadding)
	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface)

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts[i] = activeStyle.Render(tab.Name)
		} else {
			parts[i] = inactiveStyle.Render(tabLabel(tab, false, true))
		}
	}

	row := strings.Join(parts, sepStyle.Render("│"))
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(row)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
