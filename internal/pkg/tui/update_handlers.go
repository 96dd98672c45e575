package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/endorses/lippyphone/internal/pkg/call"
	"github.com/endorses/lippyphone/internal/pkg/directory"
	"github.com/endorses/lippyphone/internal/pkg/logger"
	"github.com/endorses/lippyphone/internal/pkg/nav"
	"github.com/endorses/lippyphone/internal/pkg/tui/components"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// handleWindowSizeMsg lays the components out for the new terminal size
func (m Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.uiState.SetSize(msg.Width, msg.Height)
	if m.uiState.ShowHelp && m.uiState.HelpView.NeedsContentLoad() {
		return m, m.uiState.HelpView.LoadContentAsync()
	}
	return m, nil
}

// handleDialRequest starts a call and brings up the call view in the dialer
func (m Model) handleDialRequest(msg components.DialRequestMsg) (Model, tea.Cmd) {
	if m.ctrl.Active() {
		return m, m.uiState.Toast.ShowWithKey("A call is already in progress",
			components.ToastWarning, components.ToastDurationNormal, components.ToastKeyCall("state"))
	}

	name, avatar := msg.Name, msg.Avatar
	if name == "" {
		if c, ok := m.dirStore.Get().Lookup(msg.Number); ok {
			name, avatar = c.Name, c.Avatar
		}
	}

	m.ctrl.InitiateCall(msg.Number, call.WithCallerName(name), call.WithCallerAvatar(avatar))
	m.router.CloseOverlay()
	m.router.SetActive(nav.SectionDialer)
	cmd := m.syncState()
	return m, cmd
}

// handlePlayRecording reports that recordings cannot be played back
func (m Model) handlePlayRecording(msg components.PlayRecordingMsg) (Model, tea.Cmd) {
	if msg.Recording.URL == "" {
		return m, m.uiState.Toast.Show("No recordings for "+msg.Contact.Name,
			components.ToastInfo, components.ToastDurationShort)
	}
	logger.Warn("Recording playback unavailable",
		"contact_id", msg.Contact.ID,
		"url", msg.Recording.URL)
	return m, m.uiState.Toast.Show("Unable to play recording",
		components.ToastError, components.ToastDurationLong)
}

// handleSettingChanged applies an edited setting for this session
func (m Model) handleSettingChanged(msg components.SettingChangedMsg) (Model, tea.Cmd) {
	savePreference(msg.Key, msg.Value)

	switch msg.Key {
	case components.SettingTheme:
		name, _ := msg.Value.(string)
		return m.handleThemeChange(themes.GetTheme(name))
	case components.SettingUserName:
		name, _ := msg.Value.(string)
		m.uiState.Header.SetUserName(name)
	case components.SettingNotifyCalls:
		m.notifyCalls, _ = msg.Value.(bool)
	}
	return m, nil
}

// handleThemeChange restyles every component
func (m Model) handleThemeChange(theme themes.Theme) (Model, tea.Cmd) {
	m.uiState.ApplyTheme(theme)
	cmds := []tea.Cmd{
		m.uiState.Toast.Show("Theme: "+theme.Name, components.ToastInfo, components.ToastDurationShort),
	}
	if m.uiState.ShowHelp {
		cmds = append(cmds, m.uiState.HelpView.LoadContentAsync())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleMessageSent(msg components.MessageSentMsg) (Model, tea.Cmd) {
	logger.Debug("Message sent", "conversation_id", msg.ConversationID, "message_id", msg.Message.ID)
	m.syncState()
	return m, nil
}

// handleDirectoryReloaded switches every view to the new directory
func (m Model) handleDirectoryReloaded(msg DirectoryReloadedMsg) (Model, tea.Cmd) {
	m.applyDirectory(msg.Dir)
	m.syncState()
	return m, m.uiState.Toast.ShowWithKey(
		fmt.Sprintf("Directory reloaded: %d contacts", len(msg.Dir.Contacts())),
		components.ToastInfo, components.ToastDurationShort, "directory")
}

func (m Model) applyDirectory(d *directory.Directory) {
	if d == nil {
		return
	}
	m.uiState.ChatsView.SetDirectory(d)
	m.uiState.ContactsView.SetDirectory(d)
	m.uiState.DialerView.SetRecents(d.Recents())
}

// syncState pushes router and call state into the components and returns
// notifications for call changes since the last sync
func (m *Model) syncState() tea.Cmd {
	s := m.ctrl.Snapshot()
	section := m.router.Active()
	ui := m.uiState

	ui.Tabs.SetActive(section.Index())
	if unread := ui.ChatsView.Unread(); unread > 0 {
		ui.Tabs.SetBadge(nav.SectionChats.Index(), fmt.Sprint(unread))
	} else {
		ui.Tabs.SetBadge(nav.SectionChats.Index(), "")
	}
	ui.Header.SetSection(section)
	ui.Header.SetCall(s)
	ui.Footer.SetSection(section)
	ui.Footer.SetCall(s)
	ui.DialerView.SetSession(s)
	ui.Footer.SetEditing(m.editing())

	// The docked widget takes rows from the sections.
	wasVisible := ui.CallWidget.Visible()
	ui.CallWidget.SetSession(s)
	if ui.CallWidget.Visible() != wasVisible {
		ui.SetSize(ui.Width, ui.Height)
	}

	prev := m.session
	m.session = s
	if !m.notifyCalls {
		return nil
	}
	return m.callNotifications(prev, s)
}

// callNotifications turns a call transition into toasts. Each aspect of the
// call has its own supersession key so rapid toggling shows the final state.
func (m *Model) callNotifications(prev, cur call.Session) tea.Cmd {
	toast := &m.uiState.Toast
	show := func(aspect, text string, typ components.ToastType) tea.Cmd {
		return toast.ShowWithKey(text, typ, components.ToastDurationShort, components.ToastKeyCall(aspect))
	}

	switch {
	case !prev.Active && cur.Active:
		return show("state", "Calling "+cur.CallerName+"…", components.ToastInfo)
	case prev.Active && !cur.Active:
		return show("state", "Call ended · "+prev.Duration(), components.ToastInfo)
	case !cur.Active || prev.ID != cur.ID:
		return nil
	}

	var cmds []tea.Cmd
	if prev.Muted != cur.Muted {
		cmds = append(cmds, show("mute", onOff(cur.Muted, "Muted", "Unmuted"), components.ToastInfo))
	}
	if prev.OnHold != cur.OnHold {
		typ := components.ToastInfo
		if cur.OnHold {
			typ = components.ToastWarning
		}
		cmds = append(cmds, show("hold", onOff(cur.OnHold, "Call on hold", "Call resumed"), typ))
	}
	if prev.SpeakerOn != cur.SpeakerOn {
		cmds = append(cmds, show("speaker", onOff(cur.SpeakerOn, "Speaker on", "Speaker off"), components.ToastInfo))
	}
	if prev.Recording != cur.Recording {
		typ := components.ToastInfo
		if cur.Recording {
			typ = components.ToastWarning
		}
		cmds = append(cmds, show("recording", onOff(cur.Recording, "Recording started", "Recording stopped"), typ))
	}
	return tea.Batch(cmds...)
}

func onOff(on bool, whenOn, whenOff string) string {
	if on {
		return whenOn
	}
	return whenOff
}
