package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// dialpadKeys is the standard 4x3 telephone layout with its letter groups
var dialpadKeys = [4][3]struct {
	digit   rune
	letters string
}{
	{{'1', ""}, {'2', "ABC"}, {'3', "DEF"}},
	{{'4', "GHI"}, {'5', "JKL"}, {'6', "MNO"}},
	{{'7', "PQRS"}, {'8', "TUV"}, {'9', "WXYZ"}},
	{{'*', ""}, {'0', "+"}, {'#', ""}},
}

// Dialpad renders the telephone keypad. The most recently pressed key is
// highlighted.
type Dialpad struct {
	theme   themes.Theme
	pressed rune
	compact bool
}

// NewDialpad creates a dial pad
func NewDialpad() Dialpad {
	return Dialpad{theme: themes.Solarized()}
}

// SetTheme updates the theme
func (d *Dialpad) SetTheme(theme themes.Theme) {
	d.theme = theme
}

// SetCompact drops the letter groups so the pad fits short terminals
func (d *Dialpad) SetCompact(compact bool) {
	d.compact = compact
}

// Press highlights a key. Symbols that are not on the pad clear it.
func (d *Dialpad) Press(r rune) {
	d.pressed = 0
	for _, row := range dialpadKeys {
		for _, k := range row {
			if k.digit == r {
				d.pressed = r
			}
		}
	}
}

// Pressed returns the highlighted key, or 0
func (d *Dialpad) Pressed() rune {
	return d.pressed
}

// View renders the pad
func (d *Dialpad) View() string {
	key := lipgloss.NewStyle().
		Foreground(d.theme.Foreground).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.theme.BorderColor).
		Width(7).
		Align(lipgloss.Center)
	hot := key.
		Foreground(d.theme.SelectionFg).
		Background(d.theme.SelectionBg).
		BorderForeground(d.theme.FocusedBorderColor)
	letters := lipgloss.NewStyle().Foreground(d.theme.MutedColor)

	rows := make([]string, 0, len(dialpadKeys))
	for _, row := range dialpadKeys {
		cells := make([]string, 0, len(row))
		for _, k := range row {
			label := string(k.digit)
			if !d.compact {
				label += "\n" + letters.Render(padLetters(k.letters))
			}
			style := key
			if k.digit == d.pressed {
				style = hot
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func padLetters(s string) string {
	if s == "" {
		return " "
	}
	return strings.TrimSpace(s)
}
