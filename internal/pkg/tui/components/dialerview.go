package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/endorses/lippyphone/internal/pkg/call"
	"github.com/endorses/lippyphone/internal/pkg/directory"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// DialerView is the dialer section: number entry with a dial pad and the
// recent calls list. While a call is active and maximized it shows the full
// call interface instead.
type DialerView struct {
	input    textinput.Model
	dialpad  Dialpad
	callView CallView
	session  call.Session
	recents  []directory.RecentCall
	cursor   int
	theme    themes.Theme
	width    int
	height   int
	now      func() time.Time
}

// NewDialerView creates a dialer
func NewDialerView() DialerView {
	ti := textinput.New()
	ti.Placeholder = "Enter a number"
	ti.CharLimit = 32
	ti.Prompt = "☎ "
	ti.Focus()

	return DialerView{
		input:    ti,
		dialpad:  NewDialpad(),
		callView: NewCallView(),
		cursor:   -1,
		theme:    themes.Solarized(),
		width:    80,
		height:   24,
		now:      time.Now,
	}
}

// SetTheme updates the theme
func (d *DialerView) SetTheme(theme themes.Theme) {
	d.theme = theme
	d.dialpad.SetTheme(theme)
	d.callView.SetTheme(theme)
	d.input.PromptStyle = lipgloss.NewStyle().Foreground(theme.DialerColor)
	d.input.TextStyle = lipgloss.NewStyle().Foreground(theme.HeaderFg).Bold(true)
	d.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.MutedColor)
}

// SetSize sets the content area size
func (d *DialerView) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.dialpad.SetCompact(height < 26)
	d.callView.SetSize(width, height)
}

// SetRecents replaces the recent calls list
func (d *DialerView) SetRecents(recents []directory.RecentCall) {
	d.recents = recents
	if d.cursor >= len(recents) {
		d.cursor = len(recents) - 1
	}
}

// SetSession updates the call state
func (d *DialerView) SetSession(s call.Session) {
	d.session = s
	d.callView.SetSession(s)
}

// Number returns the number being entered
func (d *DialerView) Number() string {
	return d.input.Value()
}

// SetNumber replaces the number being entered
func (d *DialerView) SetNumber(n string) {
	d.input.SetValue(n)
	d.input.CursorEnd()
}

// SelectedRecent returns the highlighted recent call
func (d *DialerView) SelectedRecent() (directory.RecentCall, bool) {
	if d.cursor < 0 || d.cursor >= len(d.recents) {
		return directory.RecentCall{}, false
	}
	return d.recents[d.cursor], true
}

// showingCall reports whether the full call interface replaces the dialer
func (d *DialerView) showingCall() bool {
	return d.session.Active && !d.session.Minimized
}

// Editing reports whether the number field is on screen and focused
func (d *DialerView) Editing() bool {
	return !d.showingCall()
}

// HandleKey processes a key for the dialer section
func (d *DialerView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if d.showingCall() {
		return nil
	}

	switch msg.String() {
	case "up":
		if d.cursor > -1 {
			d.cursor--
		}
		return nil
	case "down":
		if d.cursor < len(d.recents)-1 {
			d.cursor++
		}
		return nil
	case "esc":
		d.cursor = -1
		d.SetNumber("")
		d.dialpad.Press(0)
		return nil
	case "enter":
		return d.dial()
	case "backspace", "delete", "left", "right", "home", "end", "ctrl+u":
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return cmd
	}

	if msg.Type != tea.KeyRunes {
		return nil
	}
	for _, r := range msg.Runes {
		if !call.IsDTMF(r) && r != '+' {
			return nil
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	d.dialpad.Press(msg.Runes[len(msg.Runes)-1])
	return cmd
}

// dial starts a call to the entered number, or to the highlighted recent
// call when nothing was entered
func (d *DialerView) dial() tea.Cmd {
	if d.session.Active {
		return nil
	}
	req := DialRequestMsg{Number: strings.TrimSpace(d.input.Value())}
	if req.Number == "" {
		recent, ok := d.SelectedRecent()
		if !ok {
			return nil
		}
		req = DialRequestMsg{Number: recent.Number, Name: recent.Name, Avatar: recent.Avatar}
	}
	d.SetNumber("")
	d.dialpad.Press(0)
	return func() tea.Msg { return req }
}

// View renders the section
func (d *DialerView) View() string {
	if d.showingCall() {
		return d.callView.View()
	}

	d.input.Width = 24
	entry := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.theme.DialerColor).
		Padding(0, 1).
		Render(d.input.View())

	left := []string{entry, "", d.dialpad.View()}
	if d.session.Active {
		left = append(left, "", lipgloss.NewStyle().
			Foreground(d.theme.MutedColor).
			Italic(true).
			Render("Call in progress · ctrl+o to return"))
	}
	pad := lipgloss.JoinVertical(lipgloss.Center, left...)

	recents := d.renderRecents(max(d.width-lipgloss.Width(pad)-4, 30))
	if d.width < lipgloss.Width(pad)+34 {
		return lipgloss.JoinVertical(lipgloss.Left, pad, "", recents)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pad, "    ", recents)
}

func (d *DialerView) renderRecents(width int) string {
	title := lipgloss.NewStyle().Foreground(d.theme.DialerColor).Bold(true).Render("Recent calls")
	if len(d.recents) == 0 {
		return title + "\n" + lipgloss.NewStyle().Foreground(d.theme.MutedColor).Render("No recent calls")
	}

	lines := []string{title, ""}
	for i, r := range d.recents {
		icon, color := callTypeIcon(r.Type, d.theme)
		name := r.Name
		if name == "" {
			name = call.DefaultCallerName
		}
		meta := r.Number
		if r.Duration != "" {
			meta += " · " + r.Duration
		}
		meta += " · " + relativeTime(d.now(), r.At)

		line := lipgloss.NewStyle().Foreground(color).Render(icon) + " " + name +
			"  " + lipgloss.NewStyle().Foreground(d.theme.MutedColor).Render(meta)
		style := lipgloss.NewStyle().Width(width)
		if i == d.cursor {
			style = style.Foreground(d.theme.SelectionFg).Background(d.theme.SelectionBg)
			line = icon + " " + name + "  " + meta
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

// callTypeIcon returns the direction marker of a logged call
func callTypeIcon(t directory.CallType, theme themes.Theme) (string, lipgloss.Color) {
	switch t {
	case directory.CallIncoming:
		return "↙", theme.SuccessColor
	case directory.CallOutgoing:
		return "↗", theme.InfoColor
	default:
		return "✗", theme.MissedColor
	}
}

// relativeTime renders how long ago at was, falling back to a date after a
// week
func relativeTime(now, at time.Time) string {
	d := now.Sub(at)
	switch {
	case at.IsZero():
		return ""
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return at.Local().Format("Jan 2")
	}
}
