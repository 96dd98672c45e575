package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/endorses/lippyphone/internal/pkg/call"
	"github.com/endorses/lippyphone/internal/pkg/nav"
	"github.com/endorses/lippyphone/internal/pkg/tui/responsive"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
	"github.com/endorses/lippyphone/internal/pkg/version"
)

// TabKeybind is a single key hint
type TabKeybind struct {
	Key         string // display key ("Enter", "/")
	Description string // wide terminals
	ShortDesc   string // medium terminals
	Essential   bool   // still shown on narrow terminals
}

// Footer displays the key hints of the active section, the call shortcuts
// while a call is active, and the global keys
type Footer struct {
	width   int
	theme   themes.Theme
	section nav.Section
	editing bool
	call    call.Session
}

// NewFooter creates a footer
func NewFooter() Footer {
	return Footer{
		width:   200, // real size arrives with the first WindowSizeMsg
		theme:   themes.Solarized(),
		section: nav.SectionChats,
	}
}

// SetTheme updates the theme
func (f *Footer) SetTheme(theme themes.Theme) {
	f.theme = theme
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetSection sets the section whose hints are shown
func (f *Footer) SetSection(s nav.Section) {
	f.section = s
}

// SetEditing switches to text-entry hints
func (f *Footer) SetEditing(editing bool) {
	f.editing = editing
}

// SetCall updates the call whose shortcuts are shown
func (f *Footer) SetCall(s call.Session) {
	f.call = s
}

func (f *Footer) sectionKeybinds() []TabKeybind {
	if f.editing && f.section != nav.SectionDialer {
		return []TabKeybind{
			{Key: "Enter", Description: "confirm", ShortDesc: "ok", Essential: true},
			{Key: "Esc", Description: "done", ShortDesc: "done", Essential: true},
		}
	}

	switch f.section {
	case nav.SectionChats:
		return []TabKeybind{
			{Key: "↑/↓", Description: "select", ShortDesc: "sel", Essential: false},
			{Key: "Enter", Description: "write", ShortDesc: "wr", Essential: true},
		}
	case nav.SectionDialer:
		if f.call.Active && !f.call.Minimized {
			return nil
		}
		return []TabKeybind{
			{Key: "0-9*#", Description: "dial", ShortDesc: "dial", Essential: true},
			{Key: "Enter", Description: "call", ShortDesc: "call", Essential: true},
			{Key: "↑/↓", Description: "recents", ShortDesc: "rec", Essential: false},
		}
	case nav.SectionContacts:
		return []TabKeybind{
			{Key: "/", Description: "search", ShortDesc: "srch", Essential: true},
			{Key: "Enter", Description: "call", ShortDesc: "call", Essential: true},
			{Key: "p", Description: "play recording", ShortDesc: "play", Essential: false},
		}
	case nav.SectionSettings:
		return []TabKeybind{
			{Key: "↑/↓", Description: "select", ShortDesc: "sel", Essential: false},
			{Key: "Enter", Description: "edit/toggle", ShortDesc: "edit", Essential: true},
		}
	}
	return nil
}

func (f *Footer) callKeybinds() []TabKeybind {
	if !f.call.Active || f.editing {
		return nil
	}
	if f.call.Minimized {
		return []TabKeybind{
			{Key: "q", Description: "expand", ShortDesc: "exp", Essential: true},
			{Key: "m", Description: onOff(f.call.Muted, "unmute", "mute"), ShortDesc: "mute", Essential: false},
			{Key: "Esc", Description: "end call", ShortDesc: "end", Essential: true},
		}
	}
	return []TabKeybind{
		{Key: "m", Description: onOff(f.call.Muted, "unmute", "mute"), ShortDesc: "mute", Essential: true},
		{Key: "h", Description: onOff(f.call.OnHold, "resume", "hold"), ShortDesc: "hold", Essential: true},
		{Key: "s", Description: "speaker", ShortDesc: "spk", Essential: false},
		{Key: "d", Description: "keypad", ShortDesc: "pad", Essential: false},
		{Key: "r", Description: onOff(f.call.Recording, "stop rec", "record"), ShortDesc: "rec", Essential: false},
		{Key: "q", Description: "minimize", ShortDesc: "min", Essential: false},
		{Key: "Esc", Description: onOff(f.call.InCallDialerOpen, "close keypad", "end call"), ShortDesc: "end", Essential: true},
	}
}

func (f *Footer) generalKeybinds() []TabKeybind {
	binds := []TabKeybind{
		{Key: "Tab", Description: "section", ShortDesc: "sec", Essential: false},
	}
	if f.call.Active && f.call.Minimized {
		binds = append(binds, TabKeybind{Key: "^o", Description: "open call", ShortDesc: "call", Essential: true})
	} else if !f.call.Active {
		binds = append(binds, TabKeybind{Key: "^d", Description: "dial", ShortDesc: "dial", Essential: true})
	}
	return append(binds,
		TabKeybind{Key: "?", Description: "help", ShortDesc: "help", Essential: true},
		TabKeybind{Key: "^c", Description: "quit", ShortDesc: "quit", Essential: true},
	)
}

func onOff(on bool, whenOn, whenOff string) string {
	if on {
		return whenOn
	}
	return whenOff
}

// renderKeybinds formats hints for the current width class: full
// descriptions when wide, short ones when medium, essential keys only when
// narrow
func (f *Footer) renderKeybinds(binds []TabKeybind, keyColor lipgloss.Color) string {
	class := responsive.GetWidthClass(f.width)
	keyStyle := lipgloss.NewStyle().Foreground(keyColor).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(f.theme.Foreground)

	var parts []string
	for _, kb := range binds {
		switch class {
		case responsive.Narrow:
			if kb.Essential {
				parts = append(parts, keyStyle.Render(kb.Key))
			}
		case responsive.Medium:
			desc := kb.ShortDesc
			if desc == "" {
				desc = kb.Description
			}
			parts = append(parts, keyStyle.Render(kb.Key)+descStyle.Render(":"+desc))
		default:
			parts = append(parts, keyStyle.Render(kb.Key)+descStyle.Render(": "+kb.Description))
		}
	}
	if len(parts) == 0 {
		return ""
	}

	sep := " │ "
	if class == responsive.Wide {
		sep = "  │  "
	}
	sep = lipgloss.NewStyle().Foreground(f.theme.BorderColor).Render(sep)
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, sep))
}

// View renders a separator line and one line of hints
func (f *Footer) View() string {
	sectionColor := f.theme.SectionColor(f.section.Index())
	blocks := []string{f.renderKeybinds(f.sectionKeybinds(), sectionColor)}
	callColor := f.theme.ConnectedColor
	if f.call.OnHold {
		callColor = f.theme.HoldColor
	}
	blocks = append(blocks,
		f.renderKeybinds(f.callKeybinds(), callColor),
		f.renderKeybinds(f.generalKeybinds(), f.theme.SettingsColor))

	sep := lipgloss.NewStyle().Foreground(f.theme.BorderColor).Render(" ║ ")
	content := ""
	for _, b := range blocks {
		if b == "" {
			continue
		}
		candidate := b
		if content != "" {
			candidate = content + sep + b
		}
		if lipgloss.Width(candidate) > f.width && content != "" {
			break
		}
		content = candidate
	}

	versionText := lipgloss.NewStyle().
		Foreground(f.theme.MutedColor).
		Render(fmt.Sprintf("lp v%s ", version.GetVersion()))
	if rest := f.width - lipgloss.Width(content); rest >= lipgloss.Width(versionText) {
		content += strings.Repeat(" ", rest-lipgloss.Width(versionText)) + versionText
	} else if rest > 0 {
		content += strings.Repeat(" ", rest)
	}

	line := lipgloss.NewStyle().Foreground(f.theme.BorderColor).Render(strings.Repeat("─", f.width))
	return line + "\n" + content
}
