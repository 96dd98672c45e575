package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/endorses/lippyphone/internal/pkg/keys"
	"github.com/endorses/lippyphone/internal/pkg/nav"
)

// sectionKeys maps the direct section shortcuts
var sectionKeys = map[string]nav.Section{
	"alt+1": nav.SectionChats,
	"alt+2": nav.SectionDialer,
	"alt+3": nav.SectionContacts,
	"alt+4": nav.SectionSettings,
}

// handleKeyboard routes a key press. The first layer that consumes the key
// wins, so overlays shadow the call shortcuts and the shortcuts shadow the
// section views.
func (m Model) handleKeyboard(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.ctrl.EndCall()
		m.uiState.Quitting = true
		return m, tea.Quit
	}

	// Dev console (only when LOG_LEVEL=DEBUG)
	if key == "`" && m.uiState.DevConsole.Available() {
		m.uiState.DevConsole.Toggle()
		m.uiState.SetSize(m.uiState.Width, m.uiState.Height)
		return m, nil
	}
	if m.uiState.DevConsole.IsVisible() && m.uiState.DevConsole.HandleKey(key) {
		return m, nil
	}

	if m.router.OverlayOpen() {
		cmd := m.uiState.GlobalDialer.HandleKey(msg)
		return m, cmd
	}

	if m.uiState.ShowHelp {
		return m.handleHelpKey(msg)
	}

	if m.keyboard.Dispatch(keys.Event{Key: key, InTextField: m.editing()}) {
		cmd := m.syncState()
		return m, cmd
	}

	switch key {
	case "tab":
		if !m.navigationLocked() {
			m.router.Next()
			cmd := m.syncState()
			return m, cmd
		}
	case "shift+tab":
		if !m.navigationLocked() {
			m.router.Previous()
			cmd := m.syncState()
			return m, cmd
		}
	case "ctrl+d":
		m.uiState.GlobalDialer.Reset()
		m.router.OpenOverlay()
		return m, nil
	case "ctrl+o":
		m.ctrl.MaximizeCall()
		cmd := m.syncState()
		return m, cmd
	case "?":
		if !m.navigationLocked() {
			m.uiState.ShowHelp = true
			if m.uiState.HelpView.NeedsContentLoad() {
				return m, m.uiState.HelpView.LoadContentAsync()
			}
			return m, nil
		}
	}

	if section, ok := sectionKeys[key]; ok {
		m.router.SetActive(section)
		cmd := m.syncState()
		return m, cmd
	}

	return m.handleSectionKey(msg)
}

// handleHelpKey drives the help overlay. esc and ? close it unless a
// search is being typed.
func (m Model) handleHelpKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.uiState.HelpView.IsSearchMode() {
		switch msg.String() {
		case "esc", "?", "q":
			m.uiState.ShowHelp = false
			return m, nil
		}
	}
	return m, m.uiState.HelpView.HandleKey(msg)
}

// handleSectionKey forwards a key to the active section view
func (m Model) handleSectionKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	ui := m.uiState
	var cmd tea.Cmd
	switch m.router.Active() {
	case nav.SectionChats:
		cmd = ui.ChatsView.HandleKey(msg)
	case nav.SectionDialer:
		cmd = ui.DialerView.HandleKey(msg)
	case nav.SectionContacts:
		cmd = ui.ContactsView.HandleKey(msg)
	case nav.SectionSettings:
		cmd = ui.SettingsView.HandleKey(msg)
	}

	// Focus or unread counts may have changed.
	sync := m.syncState()
	return m, tea.Batch(cmd, sync)
}
