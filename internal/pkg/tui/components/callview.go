package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/endorses/lippyphone/internal/pkg/call"
	"github.com/endorses/lippyphone/internal/pkg/directory"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// CallView is the full call interface: caller identity, state, duration,
// control buttons and the in-call dial pad
type CallView struct {
	theme   themes.Theme
	width   int
	height  int
	session call.Session
	dialpad Dialpad
}

// NewCallView creates a call view
func NewCallView() CallView {
	return CallView{
		theme:   themes.Solarized(),
		width:   80,
		height:  24,
		dialpad: NewDialpad(),
	}
}

// SetTheme updates the theme
func (c *CallView) SetTheme(theme themes.Theme) {
	c.theme = theme
	c.dialpad.SetTheme(theme)
}

// SetSize sets the area the view is centered in
func (c *CallView) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.dialpad.SetCompact(height < 30)
}

// SetSession updates the call shown. The last DTMF symbol sent is
// highlighted on the pad.
func (c *CallView) SetSession(s call.Session) {
	if s.InCallDialerOpen && len(s.DialedNumber) > len(c.session.DialedNumber) &&
		c.session.ID == s.ID {
		c.dialpad.Press(rune(s.DialedNumber[len(s.DialedNumber)-1]))
	}
	if !s.InCallDialerOpen {
		c.dialpad.Press(0)
	}
	c.session = s
}

// Status returns the call state line
func (c *CallView) Status() string {
	switch {
	case !c.session.Active:
		return "Call ended"
	case c.session.OnHold:
		return "On hold"
	default:
		return "Connected"
	}
}

// View renders the call interface
func (c *CallView) View() string {
	s := c.session
	if !s.Active {
		return ""
	}

	stateColor := c.theme.ConnectedColor
	if s.OnHold {
		stateColor = c.theme.HoldColor
	}

	avatar := lipgloss.NewStyle().
		Foreground(c.theme.OnAccent).
		Background(c.theme.SectionColor(1)).
		Bold(true).
		Padding(1, 3).
		Render(avatarText(s))

	name := lipgloss.NewStyle().Foreground(c.theme.HeaderFg).Bold(true).Render(s.CallerName)
	number := lipgloss.NewStyle().Foreground(c.theme.MutedColor).Render(s.DialedNumber)
	state := lipgloss.NewStyle().Foreground(stateColor).Render(c.Status() + " · " + s.Duration())

	var flags []string
	if s.Recording {
		flags = append(flags, lipgloss.NewStyle().Foreground(c.theme.RecordingColor).Bold(true).Render("● REC"))
	}
	if s.Muted {
		flags = append(flags, lipgloss.NewStyle().Foreground(c.theme.WarningColor).Render("MUTED"))
	}
	if s.SpeakerOn {
		flags = append(flags, lipgloss.NewStyle().Foreground(c.theme.InfoColor).Render("SPEAKER"))
	}

	parts := []string{avatar, "", name, number, state}
	if len(flags) > 0 {
		parts = append(parts, strings.Join(flags, "  "))
	}
	parts = append(parts, "")
	if s.InCallDialerOpen {
		parts = append(parts, c.dialpad.View(), "")
	}
	parts = append(parts, c.controls())

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(c.width, c.height, lipgloss.Center, lipgloss.Center, body)
}

func avatarText(s call.Session) string {
	// Short avatars (emoji, initials) are drawn as is; image references are not.
	if a := []rune(s.CallerAvatar); len(a) > 0 && len(a) <= 3 {
		return s.CallerAvatar
	}
	if s.CallerName == call.DefaultCallerName {
		return "?"
	}
	return directory.Initials(s.CallerName)
}

// controls renders one button per call action; engaged toggles are
// highlighted
func (c *CallView) controls() string {
	s := c.session
	buttons := []struct {
		key   string
		label string
		on    bool
		color lipgloss.Color
	}{
		{call.KeyMute, onOff(s.Muted, "Unmute", "Mute"), s.Muted, c.theme.WarningColor},
		{call.KeyHold, onOff(s.OnHold, "Resume", "Hold"), s.OnHold, c.theme.HoldColor},
		{call.KeySpeaker, "Speaker", s.SpeakerOn, c.theme.InfoColor},
		{call.KeyInCallDialer, "Keypad", s.InCallDialerOpen, c.theme.AccentColor},
		{call.KeyRecording, onOff(s.Recording, "Stop", "Record"), s.Recording, c.theme.RecordingColor},
		{call.KeyMinimize, "Minimize", false, c.theme.BorderColor},
		{call.KeyEscape, "End", true, c.theme.ErrorColor},
	}

	cells := make([]string, 0, len(buttons))
	for _, b := range buttons {
		style := lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(b.color).
			Foreground(c.theme.Foreground)
		if b.on {
			style = style.Foreground(c.theme.OnAccent).Background(b.color)
		}
		cells = append(cells, style.Render(b.label+" ["+b.key+"]"))
	}

	// Wrap onto a second row when the buttons do not fit side by side.
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if lipgloss.Width(row) <= c.width {
		return row
	}
	half := (len(cells) + 1) / 2
	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, cells[:half]...),
		lipgloss.JoinHorizontal(lipgloss.Top, cells[half:]...))
}
