package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/endorses/lippyphone/internal/pkg/call"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// CallWidget is the minimized call shown docked at the bottom right of
// every section
type CallWidget struct {
	theme   themes.Theme
	width   int
	session call.Session
}

// NewCallWidget creates a widget
func NewCallWidget() CallWidget {
	return CallWidget{theme: themes.Solarized(), width: 80}
}

// SetTheme updates the theme
func (w *CallWidget) SetTheme(theme themes.Theme) {
	w.theme = theme
}

// SetWidth sets the width the widget is right-aligned in
func (w *CallWidget) SetWidth(width int) {
	w.width = width
}

// SetSession updates the call shown
func (w *CallWidget) SetSession(s call.Session) {
	w.session = s
}

// Visible reports whether the widget is shown: an active, minimized call
func (w *CallWidget) Visible() bool {
	return w.session.Active && w.session.Minimized
}

// Height returns the number of lines View occupies
func (w *CallWidget) Height() int {
	if !w.Visible() {
		return 0
	}
	return lipgloss.Height(w.View())
}

// View renders the widget, right-aligned, or "" when not visible
func (w *CallWidget) View() string {
	if !w.Visible() {
		return ""
	}
	s := w.session

	color := w.theme.ConnectedColor
	state := "●"
	if s.OnHold {
		color = w.theme.HoldColor
		state = "⏸"
	}

	line := lipgloss.NewStyle().Foreground(color).Bold(true).Render(state+" "+s.CallerName) +
		"  " + lipgloss.NewStyle().Foreground(w.theme.Foreground).Render(s.Duration())
	var marks string
	if s.Muted {
		marks += " M"
	}
	if s.Recording {
		marks += " REC"
	}
	if marks != "" {
		line += lipgloss.NewStyle().Foreground(w.theme.WarningColor).Render(marks)
	}
	hint := lipgloss.NewStyle().Foreground(w.theme.MutedColor).Render("^o open · esc end")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, line, hint))

	return lipgloss.PlaceHorizontal(w.width, lipgloss.Right, box)
}
