// Package store holds the TUI's component tree and layout state.
package store

import (
	"github.com/endorses/lippyphone/internal/pkg/constants"
	"github.com/endorses/lippyphone/internal/pkg/nav"
	"github.com/endorses/lippyphone/internal/pkg/tui/components"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// Fixed chrome heights
const (
	HeaderHeight = 2 // title line + border
	TabsHeight   = 4 // tallest tab + baseline
	FooterHeight = 2 // separator + hints
	BottomHeight = 3 // toast or blank area above the footer
)

// UIState owns the UI components. It is only touched from the bubbletea
// update loop.
type UIState struct {
	// UI Components
	Header       components.Header
	Footer       components.Footer
	Tabs         components.Tabs
	Toast        components.Toast
	HelpView     components.HelpView
	DevConsole   *components.DevConsole
	ChatsView    components.ChatsView
	DialerView   components.DialerView
	ContactsView components.ContactsView
	SettingsView components.SettingsView
	CallWidget   components.CallWidget
	GlobalDialer components.GlobalDialer

	// UI State
	Width    int
	Height   int
	Quitting bool
	Theme    themes.Theme
	ShowHelp bool
}

// NewUIState creates the component tree styled with theme
func NewUIState(theme themes.Theme) *UIState {
	s := &UIState{
		Header:       components.NewHeader(),
		Footer:       components.NewFooter(),
		Tabs:         components.NewTabs(SectionTabs()),
		Toast:        components.NewToast(),
		HelpView:     components.NewHelpView(),
		DevConsole:   components.NewDevConsole(),
		ChatsView:    components.NewChatsView(),
		DialerView:   components.NewDialerView(),
		ContactsView: components.NewContactsView(),
		SettingsView: components.NewSettingsView(),
		CallWidget:   components.NewCallWidget(),
		GlobalDialer: components.NewGlobalDialer(),
		Width:        constants.MinTerminalWidth * 2,
		Height:       constants.MinTerminalHeight * 2,
	}
	s.ApplyTheme(theme)
	return s
}

// SectionTabs returns one tab per section, in nav.Sections order
func SectionTabs() []components.Tab {
	icons := map[nav.Section]string{
		nav.SectionChats:    "💬",
		nav.SectionDialer:   "☎",
		nav.SectionContacts: "👥",
		nav.SectionSettings: "⚙",
	}
	tabs := make([]components.Tab, len(nav.Sections))
	for i, s := range nav.Sections {
		label := s.Title()
		short := label
		if len(short) > 4 {
			short = short[:4]
		}
		tabs[i] = components.Tab{Label: label, ShortLabel: short, Icon: icons[s]}
	}
	return tabs
}

// ApplyTheme styles every component with theme
func (s *UIState) ApplyTheme(theme themes.Theme) {
	s.Theme = theme
	s.Header.SetTheme(theme)
	s.Footer.SetTheme(theme)
	s.Tabs.SetTheme(theme)
	s.Toast.SetTheme(theme)
	s.HelpView.SetTheme(theme)
	s.DevConsole.SetTheme(theme)
	s.ChatsView.SetTheme(theme)
	s.DialerView.SetTheme(theme)
	s.ContactsView.SetTheme(theme)
	s.SettingsView.SetTheme(theme)
	s.CallWidget.SetTheme(theme)
	s.GlobalDialer.SetTheme(theme)
}

// ContentHeight returns the rows left for the active section. The docked
// call widget and the dev console take rows from it.
func (s *UIState) ContentHeight() int {
	h := s.Height - HeaderHeight - TabsHeight - BottomHeight - FooterHeight - s.CallWidget.Height()
	if s.DevConsole.IsVisible() {
		h -= s.consoleHeight()
	}
	return max(h, 1)
}

func (s *UIState) consoleHeight() int {
	return max(s.Height/3, 6)
}

// SetSize propagates a terminal resize to every component
func (s *UIState) SetSize(width, height int) {
	s.Width = width
	s.Height = height

	s.Header.SetWidth(width)
	s.Footer.SetWidth(width)
	s.Tabs.SetWidth(width)
	s.Toast.SetWidth(width)
	s.CallWidget.SetWidth(width)
	s.DevConsole.SetSize(width, s.consoleHeight())
	s.HelpView.SetSize(min(width-8, 76), max(height-12, 5))

	content := s.ContentHeight()
	s.ChatsView.SetSize(width, content)
	s.DialerView.SetSize(width, content)
	s.ContactsView.SetSize(width, content)
	s.SettingsView.SetSize(width, content)
}
