package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/endorses/lippyphone/internal/pkg/logger"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// DevConsole shows the captured log ring buffer in a bottom panel. It is
// only available when the console buffer exists (LOG_LEVEL=DEBUG).
type DevConsole struct {
	buffer    *logger.ConsoleBuffer
	visible   bool
	width     int
	height    int
	scrollPos int // lines scrolled back from the newest entry
	theme     themes.Theme
}

// NewDevConsole creates a console reading the global log buffer
func NewDevConsole() *DevConsole {
	return NewDevConsoleWithBuffer(logger.GetConsoleBuffer())
}

// NewDevConsoleWithBuffer creates a console reading buf
func NewDevConsoleWithBuffer(buf *logger.ConsoleBuffer) *DevConsole {
	return &DevConsole{buffer: buf, theme: themes.Solarized()}
}

// Available reports whether there is a buffer to show
func (d *DevConsole) Available() bool {
	return d.buffer != nil
}

// SetTheme updates the theme
func (d *DevConsole) SetTheme(theme themes.Theme) {
	d.theme = theme
}

// SetSize sets the panel dimensions
func (d *DevConsole) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Toggle shows or hides the panel. Showing it jumps to the newest entry.
func (d *DevConsole) Toggle() {
	if !d.Available() {
		return
	}
	d.visible = !d.visible
	d.scrollPos = 0
}

// IsVisible reports whether the panel is shown
func (d *DevConsole) IsVisible() bool {
	return d.visible
}

// HandleKey scrolls or clears the console. It reports whether the key was
// used.
func (d *DevConsole) HandleKey(key string) bool {
	switch key {
	case "pgup", "up":
		d.scrollPos++
		if limit := d.buffer.Count() - 1; d.scrollPos > limit {
			d.scrollPos = max(limit, 0)
		}
	case "pgdown", "down":
		if d.scrollPos > 0 {
			d.scrollPos--
		}
	case "end":
		d.scrollPos = 0
	case "c":
		d.buffer.Clear()
		d.scrollPos = 0
	default:
		return false
	}
	return true
}

// View renders the panel, oldest visible entry at the top
func (d *DevConsole) View() string {
	if !d.visible || d.buffer == nil {
		return ""
	}

	rows := max(d.height-3, 1) // border + title + border
	width := max(d.width-2, 20)

	entries := d.buffer.GetRecent(rows + d.scrollPos)
	var lines []string
	for i := len(entries) - 1; i >= d.scrollPos; i-- {
		lines = append(lines, formatEntry(entries[i], width))
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}

	lineStyle := lipgloss.NewStyle().Foreground(d.theme.Foreground).Width(width)
	for i, l := range lines {
		lines[i] = lineStyle.Render(l)
	}

	position := "[live]"
	if d.scrollPos > 0 {
		position = fmt.Sprintf("[+%d]", d.scrollPos)
	}
	title := lipgloss.NewStyle().
		Foreground(d.theme.HeaderFg).
		Background(d.theme.HeaderBg).
		Bold(true).
		Width(width).
		Render(fmt.Sprintf(" Dev Console (%d) %s  ` close  PgUp/PgDn scroll  End live  c clear",
			d.buffer.Count(), position))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.theme.BorderColor).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n")))
}

// formatEntry renders "HH:MM:SS.mmm LVL message attrs", cut to width
func formatEntry(e logger.LogEntry, width int) string {
	line := e.Time.Format("15:04:05.000") + " " + logger.FormatLevel(e.Level) + " " + e.Message
	if e.Attrs != "" {
		line += " " + e.Attrs
	}
	if r := []rune(line); len(r) > width {
		line = string(r[:width-1]) + "…"
	}
	return line
}
