package components

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

type settingKind int

const (
	settingText settingKind = iota
	settingChoice
	settingToggle
)

// setting is one editable row of the settings section
type setting struct {
	key     string
	label   string
	group   string
	kind    settingKind
	choices []string
	text    string
	on      bool
}

func (s setting) value() any {
	switch s.kind {
	case settingToggle:
		return s.on
	default:
		return s.text
	}
}

// SettingsView is the settings section: profile, appearance and
// notification preferences
type SettingsView struct {
	items   []setting
	cursor  int
	editor  textinput.Model
	editing bool
	theme   themes.Theme
	width   int
	height  int
}

// Setting keys edited by the settings section
const (
	SettingUserName       = "user.name"
	SettingUserStatus     = "user.status"
	SettingTheme          = "tui.theme"
	SettingNotifyCalls    = "notifications.calls"
	SettingNotifyMessages = "notifications.messages"
	SettingNotifySounds   = "notifications.sounds"
	SettingNotifyDesktop  = "notifications.desktop"
)

// NewSettingsView creates the settings section with default values
func NewSettingsView() SettingsView {
	ti := textinput.New()
	ti.CharLimit = 40
	ti.Prompt = ""

	return SettingsView{
		items: []setting{
			{key: SettingUserName, label: "Display name", group: "Profile", kind: settingText, text: "You"},
			{key: SettingUserStatus, label: "Status", group: "Profile", kind: settingChoice,
				choices: []string{"online", "busy", "away", "offline"}, text: "online"},
			{key: SettingTheme, label: "Theme", group: "Appearance", kind: settingChoice,
				choices: []string{themes.NameDark, themes.NameLight}, text: themes.NameDark},
			{key: SettingNotifyCalls, label: "Incoming calls", group: "Notifications", kind: settingToggle, on: true},
			{key: SettingNotifyMessages, label: "New messages", group: "Notifications", kind: settingToggle, on: true},
			{key: SettingNotifySounds, label: "Sounds", group: "Notifications", kind: settingToggle, on: true},
			{key: SettingNotifyDesktop, label: "Desktop notifications", group: "Notifications", kind: settingToggle},
		},
		editor: ti,
		theme:  themes.Solarized(),
		width:  80,
		height: 24,
	}
}

// SetTheme updates the theme
func (s *SettingsView) SetTheme(theme themes.Theme) {
	s.theme = theme
	s.editor.TextStyle = lipgloss.NewStyle().Foreground(theme.HeaderFg)
}

// SetSize sets the content area size
func (s *SettingsView) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetValue loads a value without reporting a change. Unknown keys and
// values of the wrong type are ignored.
func (s *SettingsView) SetValue(key string, value any) {
	for i := range s.items {
		it := &s.items[i]
		if it.key != key {
			continue
		}
		switch v := value.(type) {
		case bool:
			if it.kind == settingToggle {
				it.on = v
			}
		case string:
			if it.kind == settingText || (it.kind == settingChoice && slices.Contains(it.choices, v)) {
				it.text = v
			}
		}
	}
}

// Value returns the current value of a setting, or nil
func (s *SettingsView) Value(key string) any {
	for _, it := range s.items {
		if it.key == key {
			return it.value()
		}
	}
	return nil
}

// Editing reports whether a text setting is being edited
func (s *SettingsView) Editing() bool {
	return s.editing
}

// HandleKey processes a key for the settings section
func (s *SettingsView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if s.editing {
		switch msg.String() {
		case "esc":
			s.editing = false
			s.editor.Blur()
			return nil
		case "enter":
			s.editing = false
			s.editor.Blur()
			v := strings.TrimSpace(s.editor.Value())
			if v == "" || v == s.items[s.cursor].text {
				return nil
			}
			s.items[s.cursor].text = v
			return s.changed(s.items[s.cursor])
		}
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
	case "enter", " ", "right", "l":
		return s.activate(1)
	case "left":
		return s.activate(-1)
	}
	return nil
}

// activate edits, cycles or flips the highlighted setting
func (s *SettingsView) activate(dir int) tea.Cmd {
	it := &s.items[s.cursor]
	switch it.kind {
	case settingText:
		if dir < 0 {
			return nil
		}
		s.editing = true
		s.editor.SetValue(it.text)
		s.editor.CursorEnd()
		return s.editor.Focus()
	case settingChoice:
		i := max(slices.Index(it.choices, it.text), 0)
		it.text = it.choices[(i+dir+len(it.choices))%len(it.choices)]
	case settingToggle:
		it.on = !it.on
	}
	return s.changed(*it)
}

func (s *SettingsView) changed(it setting) tea.Cmd {
	msg := SettingChangedMsg{Key: it.key, Value: it.value()}
	return func() tea.Msg { return msg }
}

// View renders the section
func (s *SettingsView) View() string {
	groupStyle := lipgloss.NewStyle().Foreground(s.theme.SettingsColor).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(s.theme.Foreground).Width(26)
	valueStyle := lipgloss.NewStyle().Foreground(s.theme.HeaderFg)
	onStyle := lipgloss.NewStyle().Foreground(s.theme.SuccessColor).Bold(true)
	offStyle := lipgloss.NewStyle().Foreground(s.theme.MutedColor)

	var lines []string
	group := ""
	for i, it := range s.items {
		if it.group != group {
			if group != "" {
				lines = append(lines, "")
			}
			group = it.group
			lines = append(lines, groupStyle.Render(group))
		}

		var value string
		switch it.kind {
		case settingText:
			value = valueStyle.Render(it.text)
			if s.editing && i == s.cursor {
				s.editor.Width = 30
				value = s.editor.View()
			}
		case settingChoice:
			value = valueStyle.Render("‹ " + it.text + " ›")
		case settingToggle:
			value = offStyle.Render("○ off")
			if it.on {
				value = onStyle.Render("● on")
			}
		}

		marker := "  "
		if i == s.cursor {
			marker = lipgloss.NewStyle().Foreground(s.theme.SettingsColor).Render("▸ ")
		}
		lines = append(lines, marker+labelStyle.Render(it.label)+value)
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}
