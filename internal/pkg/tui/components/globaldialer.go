package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/endorses/lippyphone/internal/pkg/call"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// CloseGlobalDialerMsg asks the application to close the dialer overlay
type CloseGlobalDialerMsg struct{}

// GlobalDialer is the dial overlay reachable from every section
type GlobalDialer struct {
	input   textinput.Model
	dialpad Dialpad
	theme   themes.Theme
}

// NewGlobalDialer creates the overlay
func NewGlobalDialer() GlobalDialer {
	ti := textinput.New()
	ti.Placeholder = "Number to call"
	ti.CharLimit = 32
	ti.Prompt = "☎ "
	ti.Width = 24
	ti.Focus()

	d := NewDialpad()
	d.SetCompact(true)
	return GlobalDialer{input: ti, dialpad: d, theme: themes.Solarized()}
}

// SetTheme updates the theme
func (g *GlobalDialer) SetTheme(theme themes.Theme) {
	g.theme = theme
	g.dialpad.SetTheme(theme)
	g.input.PromptStyle = lipgloss.NewStyle().Foreground(theme.DialerColor)
}

// Reset clears the number, ready for the next opening
func (g *GlobalDialer) Reset() {
	g.input.SetValue("")
	g.dialpad.Press(0)
}

// Number returns the number being entered
func (g *GlobalDialer) Number() string {
	return g.input.Value()
}

// HandleKey processes a key while the overlay is open
func (g *GlobalDialer) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+d":
		g.Reset()
		return func() tea.Msg { return CloseGlobalDialerMsg{} }
	case "enter":
		number := strings.TrimSpace(g.input.Value())
		if number == "" {
			return nil
		}
		g.Reset()
		return func() tea.Msg { return DialRequestMsg{Number: number} }
	case "backspace", "left", "right", "ctrl+u":
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
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
	g.input, cmd = g.input.Update(msg)
	g.dialpad.Press(msg.Runes[len(msg.Runes)-1])
	return cmd
}

// View renders the overlay body; the caller wraps it in modal chrome
func (g *GlobalDialer) View() string {
	entry := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(g.theme.DialerColor).
		Padding(0, 1).
		Render(g.input.View())
	return lipgloss.JoinVertical(lipgloss.Center, entry, "", g.dialpad.View())
}
