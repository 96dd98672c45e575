// Package tui is the terminal interface of the softphone: four sections
// (chats, dialer, contacts, settings), the call view and its minimized
// widget, a global dialer overlay and embedded help.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/endorses/lippyphone/internal/pkg/call"
	"github.com/endorses/lippyphone/internal/pkg/directory"
	"github.com/endorses/lippyphone/internal/pkg/keys"
	"github.com/endorses/lippyphone/internal/pkg/nav"
	"github.com/endorses/lippyphone/internal/pkg/tui/components"
	"github.com/endorses/lippyphone/internal/pkg/tui/store"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// CallStateMsg tells the model the call session changed. The model reads
// the current snapshot itself, so several changes may arrive as one message.
type CallStateMsg struct{}

// DirectoryReloadedMsg carries a directory swapped in by the watcher
type DirectoryReloadedMsg struct {
	Dir *directory.Directory
}

// DirectoryErrorMsg reports a failed directory reload. The previous
// directory stays in use.
type DirectoryErrorMsg struct {
	Err error
}

// Options wires the model to its collaborators
type Options struct {
	Controller *call.Controller
	Router     *nav.Router
	Keyboard   *keys.Hub
	Directory  *directory.Store
	Theme      themes.Theme
	Settings   Settings
}

// Model is the bubbletea model of the application
type Model struct {
	ctrl     *call.Controller
	router   *nav.Router
	keyboard *keys.Hub
	dirStore *directory.Store
	uiState  *store.UIState

	// session is the last call snapshot applied to the components; it is
	// the baseline for call notifications
	session     call.Session
	notifyCalls bool
}

// NewModel builds the model. It connects the router and the controller:
// section changes drive the call's minimized state and the controller's
// navigation requests go to the router.
func NewModel(opts Options) Model {
	opts.Controller.SetNavigator(opts.Router)
	opts.Router.OnSectionChange(opts.Controller.HandleSectionChange)

	m := Model{
		ctrl:        opts.Controller,
		router:      opts.Router,
		keyboard:    opts.Keyboard,
		dirStore:    opts.Directory,
		uiState:     store.NewUIState(opts.Theme),
		notifyCalls: true,
	}
	m.applySettings(opts.Settings)
	m.applyDirectory(opts.Directory.Get())
	m.syncState()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("lp")
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyboard(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case CallStateMsg:
		cmd := m.syncState()
		return m, cmd

	case components.ToastTickMsg:
		return m, m.uiState.Toast.Update(msg)

	case components.HelpContentLoadedMsg:
		m.uiState.HelpView.HandleContentLoaded(msg)
		return m, nil

	case components.DialRequestMsg:
		return m.handleDialRequest(msg)

	case components.CloseGlobalDialerMsg:
		m.router.CloseOverlay()
		cmd := m.syncState()
		return m, cmd

	case components.PlayRecordingMsg:
		return m.handlePlayRecording(msg)

	case components.SettingChangedMsg:
		return m.handleSettingChanged(msg)

	case components.MessageSentMsg:
		return m.handleMessageSent(msg)

	case DirectoryReloadedMsg:
		return m.handleDirectoryReloaded(msg)

	case DirectoryErrorMsg:
		return m, m.uiState.Toast.Show("Directory reload failed: "+msg.Err.Error(),
			components.ToastError, components.ToastDurationLong)
	}
	return m, nil
}

// Session returns the call snapshot last shown
func (m Model) Session() call.Session {
	return m.session
}

// UIState exposes the component tree
func (m Model) UIState() *store.UIState {
	return m.uiState
}

// editing reports whether keyboard focus is inside a text-entry field of
// the active section
func (m Model) editing() bool {
	switch m.router.Active() {
	case nav.SectionChats:
		return m.uiState.ChatsView.Editing()
	case nav.SectionDialer:
		return m.uiState.DialerView.Editing()
	case nav.SectionContacts:
		return m.uiState.ContactsView.Editing()
	case nav.SectionSettings:
		return m.uiState.SettingsView.Editing()
	}
	return false
}

// navigationLocked reports whether tab and ? belong to a text field. The
// dialer's number field takes dial pad symbols only.
func (m Model) navigationLocked() bool {
	return m.editing() && m.router.Active() != nav.SectionDialer
}
