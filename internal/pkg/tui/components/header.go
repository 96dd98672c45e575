package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/endorses/lippyphone/internal/pkg/call"
	"github.com/endorses/lippyphone/internal/pkg/nav"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// Header displays the top bar: user, active section and a call badge
type Header struct {
	width    int
	theme    themes.Theme
	userName string
	section  nav.Section
	call     call.Session
}

// NewHeader creates a header
func NewHeader() Header {
	return Header{
		width:    80,
		theme:    themes.Solarized(),
		userName: "You",
		section:  nav.SectionChats,
	}
}

// SetTheme updates the theme
func (h *Header) SetTheme(theme themes.Theme) {
	h.theme = theme
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetUserName sets the display name of the local user
func (h *Header) SetUserName(name string) {
	if strings.TrimSpace(name) != "" {
		h.userName = name
	}
}

// SetSection sets the active section title
func (h *Header) SetSection(s nav.Section) {
	h.section = s
}

// SetCall updates the call badge
func (h *Header) SetCall(s call.Session) {
	h.call = s
}

// CallBadge returns the plain text of the call badge, or "" when idle
func (h *Header) CallBadge() string {
	if !h.call.Active {
		return ""
	}
	if h.call.OnHold {
		return "⏸ ON HOLD " + h.call.Duration()
	}
	badge := "● " + h.call.CallerName + " " + h.call.Duration()
	if h.call.Recording {
		badge += " REC"
	}
	return badge
}

// View renders the header and its bottom border
func (h *Header) View() string {
	const sideWidth = 24

	user := lipgloss.NewStyle().
		Foreground(h.theme.HeaderFg).
		Bold(true).
		Padding(0, 1).
		Width(sideWidth).
		Render("☎ " + h.userName)

	badgeColor := h.theme.ConnectedColor
	if h.call.OnHold {
		badgeColor = h.theme.HoldColor
	}
	badge := lipgloss.NewStyle().
		Foreground(badgeColor).
		Bold(true).
		Padding(0, 1).
		Width(sideWidth).
		Align(lipgloss.Right).
		Render(h.CallBadge())

	middleWidth := h.width - 2*sideWidth
	if middleWidth < 10 {
		middleWidth = 10
	}
	title := lipgloss.NewStyle().
		Foreground(h.theme.SectionColor(h.section.Index())).
		Bold(true).
		Width(middleWidth).
		Align(lipgloss.Center).
		Render(h.section.Title())

	border := lipgloss.NewStyle().
		Foreground(h.theme.BorderColor).
		Render(strings.Repeat("─", h.width))

	return lipgloss.JoinHorizontal(lipgloss.Top, user, title, badge) + "\n" + border
}
