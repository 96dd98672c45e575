package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/endorses/lippyphone/internal/pkg/tui/responsive"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// Tab is a single entry of the section bar
type Tab struct {
	Label      string // wide terminals ("Contacts")
	ShortLabel string // medium terminals ("Cont")
	Icon       string
}

type tabDisplayMode int

const (
	tabDisplayWide   tabDisplayMode = iota // icon + label
	tabDisplayMedium                       // icon + short label
	tabDisplayNarrow                       // icon only
)

// Tabs displays the section bar
type Tabs struct {
	tabs   []Tab
	active int
	width  int
	theme  themes.Theme
}

// NewTabs creates a tab bar with the first tab active
func NewTabs(tabs []Tab) Tabs {
	return Tabs{
		tabs:  tabs,
		width: 80,
		theme: themes.Solarized(),
	}
}

// SetTheme updates the theme
func (t *Tabs) SetTheme(theme themes.Theme) {
	t.theme = theme
}

// SetWidth sets the available width
func (t *Tabs) SetWidth(width int) {
	t.width = width
}

// SetActive marks the tab at index as active
func (t *Tabs) SetActive(index int) {
	if index >= 0 && index < len(t.tabs) {
		t.active = index
	}
}

// GetActive returns the active tab index
func (t *Tabs) GetActive() int {
	return t.active
}

// SetBadge appends a marker to a tab label, e.g. an unread count. An empty
// badge clears it.
func (t *Tabs) SetBadge(index int, badge string) {
	if index < 0 || index >= len(t.tabs) {
		return
	}
	label := t.tabs[index].Label
	if i := strings.Index(label, " ("); i >= 0 {
		label = label[:i]
	}
	if badge != "" {
		label += " (" + badge + ")"
	}
	t.tabs[index].Label = label
}

func (t *Tabs) content(tab Tab, mode tabDisplayMode) string {
	switch mode {
	case tabDisplayNarrow:
		return tab.Icon
	case tabDisplayMedium:
		if tab.ShortLabel != "" {
			return tab.Icon + " " + tab.ShortLabel
		}
	}
	return tab.Icon + " " + tab.Label
}

// totalWidth is border(1) + padding(3) + content + padding(3) + border(1)
// per tab plus one column gap between tabs
func (t *Tabs) totalWidth(mode tabDisplayMode) int {
	total := 0
	for i, tab := range t.tabs {
		total += 8 + lipgloss.Width(t.content(tab, mode))
		if i < len(t.tabs)-1 {
			total++
		}
	}
	return total
}

// displayMode starts from the breakpoint and narrows further on overflow
func (t *Tabs) displayMode() tabDisplayMode {
	var start tabDisplayMode
	switch responsive.GetWidthClass(t.width) {
	case responsive.Wide:
		start = tabDisplayWide
	case responsive.Medium:
		start = tabDisplayMedium
	default:
		start = tabDisplayNarrow
	}
	for mode := start; mode <= tabDisplayNarrow; mode++ {
		if t.totalWidth(mode) <= t.width {
			return mode
		}
	}
	return tabDisplayNarrow
}

// View renders the tab bar
func (t *Tabs) View() string {
	if len(t.tabs) == 0 {
		return ""
	}
	mode := t.displayMode()
	activeColor := t.theme.SectionColor(t.active)

	parts := make([]string, len(t.tabs))
	for i, tab := range t.tabs {
		color := t.theme.SectionColor(i)
		if i == t.active {
			label := tab.Label
			if mode == tabDisplayMedium && tab.ShortLabel != "" {
				label = tab.ShortLabel
			}
			content := tab.Icon
			if mode != tabDisplayNarrow {
				content += " " + lipgloss.NewStyle().
					Underline(true).
					Bold(true).
					Foreground(t.theme.Foreground).
					Render(label)
			}
			parts[i] = lipgloss.NewStyle().
				Foreground(t.theme.StatusBarFg).
				Bold(true).
				Padding(0, 3, 1, 3).
				Border(lipgloss.ThickBorder(), true, true, false, true).
				BorderForeground(color).
				Render(content)
			continue
		}
		parts[i] = lipgloss.NewStyle().
			Foreground(t.theme.StatusBarFg).
			Padding(0, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color).
			Render(t.content(tab, mode))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Bottom, joinWithGap(parts)...)
	if rest := t.width - lipgloss.Width(bar); rest > 0 {
		// Extend the baseline in the active section's color.
		line := lipgloss.NewStyle().Foreground(activeColor).Render(strings.Repeat("━", rest))
		lines := strings.Split(bar, "\n")
		lines[len(lines)-1] += line
		bar = strings.Join(lines, "\n")
	}
	return bar
}

func joinWithGap(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}
