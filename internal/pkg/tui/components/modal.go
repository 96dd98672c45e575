package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// ModalRenderOptions configures modal rendering
type ModalRenderOptions struct {
	Title      string       // optional
	Content    string       // required
	Footer     string       // optional, usually key hints
	Width      int          // terminal width
	Height     int          // terminal height
	Theme      themes.Theme // color theme
	ModalWidth int          // 0 = auto
}

// RenderModal wraps content in the shared modal chrome, centered on screen.
// Every overlay (help, global dialer) goes through here.
func RenderModal(opts ModalRenderOptions) string {
	modalWidth := opts.ModalWidth
	if modalWidth == 0 {
		modalWidth = opts.Width * 7 / 10
		if modalWidth > 80 {
			modalWidth = 80
		}
		if modalWidth < 60 {
			modalWidth = 60
		}
	}
	if modalWidth > opts.Width-4 {
		modalWidth = opts.Width - 4
	}
	if modalWidth < 30 {
		modalWidth = 30
	}
	inner := modalWidth - 4

	var body string
	if opts.Title != "" {
		body = lipgloss.NewStyle().
			Foreground(opts.Theme.AccentColor).
			Bold(true).
			Padding(0, 1).
			Width(inner).
			Render(opts.Title) + "\n\n"
	}
	body += lipgloss.NewStyle().
		Foreground(opts.Theme.Foreground).
		Width(inner).
		Render(opts.Content)
	if opts.Footer != "" {
		body += "\n\n" + lipgloss.NewStyle().
			Foreground(opts.Theme.MutedColor).
			Italic(true).
			Width(inner).
			Render(opts.Footer)
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(opts.Theme.InfoColor).
		Padding(1, 2).
		Width(modalWidth).
		Render(body)

	return lipgloss.Place(opts.Width, opts.Height, lipgloss.Center, lipgloss.Center, modal)
}
