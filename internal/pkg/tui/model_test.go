package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/endorses/lippyphone/internal/pkg/call"
	"github.com/endorses/lippyphone/internal/pkg/directory"
	"github.com/endorses/lippyphone/internal/pkg/keys"
	"github.com/endorses/lippyphone/internal/pkg/nav"
	"github.com/endorses/lippyphone/internal/pkg/tui/components"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noopScheduler never fires, so call durations stay at zero
type noopScheduler struct{}

func (noopScheduler) Every(time.Duration, func()) func() { return func() {} }

type harness struct {
	m      Model
	ctrl   *call.Controller
	router *nav.Router
	dir    *directory.Directory
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Cleanup(viper.Reset)

	d, err := directory.Sample()
	require.NoError(t, err)

	hub := keys.NewHub()
	router := nav.NewRouter(nav.SectionChats)
	ctrl := call.NewController(call.WithScheduler(noopScheduler{}), call.WithKeyboard(hub))
	t.Cleanup(ctrl.EndCall)

	h := &harness{
		m: NewModel(Options{
			Controller: ctrl,
			Router:     router,
			Keyboard:   hub,
			Directory:  directory.NewStore(d),
			Theme:      themes.Solarized(),
		}),
		ctrl:   ctrl,
		router: router,
		dir:    d,
	}
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

// send delivers msg and returns the command the model produced
func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

// press delivers a key given in tea.KeyMsg.String() form for runes
func (h *harness) press(s string) tea.Cmd {
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) key(t tea.KeyType) tea.Cmd {
	return h.send(tea.KeyMsg{Type: t})
}

func (h *harness) alt(s string) tea.Cmd {
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true})
}

// dial starts a call to Sarah and clears the resulting toast
func (h *harness) dial(t *testing.T) {
	t.Helper()
	h.send(components.DialRequestMsg{Number: "+1 (555) 123-4567"})
	require.True(t, h.ctrl.Active())
	h.m.UIState().Toast.Hide()
}

func TestModel_DialRequestStartsCallInDialer(t *testing.T) {
	h := newHarness(t)
	h.alt("3")
	require.Equal(t, nav.SectionContacts, h.router.Active())

	h.send(components.DialRequestMsg{Number: "+1 (555) 123-4567"})

	s := h.ctrl.Snapshot()
	assert.True(t, s.Active)
	assert.Equal(t, "Sarah Wilson", s.CallerName, "caller resolved through the directory")
	assert.False(t, s.Minimized)
	assert.Equal(t, nav.SectionDialer, h.router.Active())
	assert.Equal(t, s, h.m.Session())
	assert.Contains(t, h.m.UIState().Toast.Message(), "Calling Sarah Wilson")
}

func TestModel_DialRequestUnknownNumber(t *testing.T) {
	h := newHarness(t)
	h.send(components.DialRequestMsg{Number: "42"})

	assert.Equal(t, call.DefaultCallerName, h.ctrl.Snapshot().CallerName)
}

func TestModel_DialRequestDuringCallWarns(t *testing.T) {
	h := newHarness(t)
	h.dial(t)
	id := h.ctrl.Snapshot().ID

	h.send(components.DialRequestMsg{Number: "+1 (555) 987-6543"})

	assert.Equal(t, id, h.ctrl.Snapshot().ID)
	assert.Equal(t, components.ToastWarning, h.m.UIState().Toast.Type())
	assert.Contains(t, h.m.UIState().Toast.Message(), "already in progress")
}

func TestModel_LeavingDialerMinimizesCall(t *testing.T) {
	h := newHarness(t)
	h.dial(t)

	h.key(tea.KeyTab)

	assert.Equal(t, nav.SectionContacts, h.router.Active())
	assert.True(t, h.ctrl.Snapshot().Minimized)
	assert.True(t, h.m.UIState().CallWidget.Visible())

	h.key(tea.KeyShiftTab)

	assert.Equal(t, nav.SectionDialer, h.router.Active())
	assert.False(t, h.ctrl.Snapshot().Minimized)
	assert.False(t, h.m.UIState().CallWidget.Visible())
}

func TestModel_CtrlOMaximizesFromAnySection(t *testing.T) {
	h := newHarness(t)
	h.dial(t)
	h.alt("4")
	require.True(t, h.ctrl.Snapshot().Minimized)

	h.key(tea.KeyCtrlO)

	assert.Equal(t, nav.SectionDialer, h.router.Active())
	assert.False(t, h.ctrl.Snapshot().Minimized)
}

func TestModel_CallShortcuts(t *testing.T) {
	h := newHarness(t)
	h.dial(t)

	h.press("m")
	assert.True(t, h.ctrl.Snapshot().Muted)
	assert.True(t, h.m.Session().Muted, "model synced after the shortcut")
	assert.Equal(t, "Muted", h.m.UIState().Toast.Message())

	h.press("h")
	assert.True(t, h.ctrl.Snapshot().OnHold)

	h.press("d")
	assert.True(t, h.ctrl.Snapshot().InCallDialerOpen)
	h.press("5")
	assert.Equal(t, "+1 (555) 123-45675", h.ctrl.Snapshot().DialedNumber)

	// esc closes the keypad first, then ends the call
	h.key(tea.KeyEsc)
	assert.True(t, h.ctrl.Active())
	assert.False(t, h.ctrl.Snapshot().InCallDialerOpen)

	h.key(tea.KeyEsc)
	assert.False(t, h.ctrl.Active())
	assert.True(t, h.m.Session().IsIdle())
}

func TestModel_TypingInComposeDoesNotTriggerShortcuts(t *testing.T) {
	h := newHarness(t)
	h.dial(t)
	h.alt("1")
	require.Equal(t, nav.SectionChats, h.router.Active())

	h.press("i")
	require.True(t, h.m.UIState().ChatsView.Editing())

	h.press("m")
	h.press("q")
	s := h.ctrl.Snapshot()
	assert.False(t, s.Muted)
	assert.True(t, s.Minimized, "q typed into the compose field")

	// esc leaves the field instead of ending the call
	h.key(tea.KeyEsc)
	assert.True(t, h.ctrl.Active())
	assert.False(t, h.m.UIState().ChatsView.Editing())

	h.press("m")
	assert.True(t, h.ctrl.Snapshot().Muted)
}

func TestModel_TabIgnoredWhileEditing(t *testing.T) {
	h := newHarness(t)
	h.press("i")
	require.True(t, h.m.UIState().ChatsView.Editing())

	h.key(tea.KeyTab)

	assert.Equal(t, nav.SectionChats, h.router.Active())
}

func TestModel_MinimizedCallOnDialerKeepsNumberFocus(t *testing.T) {
	h := newHarness(t)
	h.dial(t)

	h.press("q")
	require.True(t, h.ctrl.Snapshot().Minimized)
	require.Equal(t, nav.SectionDialer, h.router.Active())
	require.True(t, h.m.UIState().DialerView.Editing())

	h.press("m")
	h.press("h")
	h.press("5")
	s := h.ctrl.Snapshot()
	assert.False(t, s.Muted)
	assert.False(t, s.OnHold)
	assert.Equal(t, "5", h.m.UIState().DialerView.Number())

	// esc clears the number instead of ending the call
	h.key(tea.KeyEsc)
	assert.True(t, h.ctrl.Active())
	assert.Empty(t, h.m.UIState().DialerView.Number())

	h.key(tea.KeyTab)
	assert.Equal(t, nav.SectionContacts, h.router.Active())
	h.press("m")
	assert.True(t, h.ctrl.Snapshot().Muted)
}

func TestModel_IdleDialerKeepsNavigation(t *testing.T) {
	h := newHarness(t)
	h.alt("2")
	require.True(t, h.m.UIState().DialerView.Editing())

	h.press("?")
	assert.True(t, h.m.UIState().ShowHelp)
	h.key(tea.KeyEsc)

	h.key(tea.KeyTab)
	assert.Equal(t, nav.SectionContacts, h.router.Active())
}

func TestModel_DialShortenedNumberResolvesContact(t *testing.T) {
	h := newHarness(t)
	h.send(components.DialRequestMsg{Number: "555-123-4567"})

	assert.Equal(t, "Sarah Wilson", h.ctrl.Snapshot().CallerName)
}

func TestModel_ShortcutsIgnoredWhileIdle(t *testing.T) {
	h := newHarness(t)
	h.alt("3")

	h.press("m")
	h.key(tea.KeyEsc)

	assert.True(t, h.ctrl.Snapshot().IsIdle())
}

func TestModel_GlobalDialer(t *testing.T) {
	h := newHarness(t)

	h.key(tea.KeyCtrlD)
	require.True(t, h.router.OverlayOpen())

	for _, r := range "5551234567" {
		h.press(string(r))
	}
	assert.False(t, h.ctrl.Active(), "digits go to the overlay")

	msg := h.key(tea.KeyEnter)()
	req, ok := msg.(components.DialRequestMsg)
	require.True(t, ok)
	assert.Equal(t, "5551234567", req.Number)

	h.send(req)
	assert.True(t, h.ctrl.Active())
	assert.False(t, h.router.OverlayOpen())
	assert.Equal(t, nav.SectionDialer, h.router.Active())
}

func TestModel_GlobalDialerEscCloses(t *testing.T) {
	h := newHarness(t)
	h.key(tea.KeyCtrlD)

	cmd := h.key(tea.KeyEsc)
	require.NotNil(t, cmd)
	h.send(cmd())

	assert.False(t, h.router.OverlayOpen())
	assert.Equal(t, nav.SectionChats, h.router.Active())
}

func TestModel_MinimizeClosesGlobalDialer(t *testing.T) {
	h := newHarness(t)
	h.dial(t)
	h.router.OpenOverlay()

	h.ctrl.ToggleCallMinimized()

	assert.False(t, h.router.OverlayOpen())
}

func TestModel_PlayRecording(t *testing.T) {
	h := newHarness(t)
	sarah, err := h.dir.Contact("1")
	require.NoError(t, err)

	h.send(components.PlayRecordingMsg{
		Contact:   sarah,
		Recording: directory.Recording{URL: "recordings/sarah-2025-06-12.mp3"},
	})
	assert.Equal(t, components.ToastError, h.m.UIState().Toast.Type())
	assert.Equal(t, "Unable to play recording", h.m.UIState().Toast.Message())

	h.m.UIState().Toast.Hide()
	h.send(components.PlayRecordingMsg{Contact: directory.Contact{Name: "Emily Chen"}})
	assert.Equal(t, "No recordings for Emily Chen", h.m.UIState().Toast.Message())
}

func TestModel_ThemeSetting(t *testing.T) {
	h := newHarness(t)

	h.send(components.SettingChangedMsg{Key: components.SettingTheme, Value: themes.NameLight})

	assert.Equal(t, themes.SolarizedLight().Name, h.m.UIState().Theme.Name)
	assert.Equal(t, themes.NameLight, viper.GetString("tui.theme"))
}

func TestModel_DisablingCallNotifications(t *testing.T) {
	h := newHarness(t)
	h.send(components.SettingChangedMsg{Key: components.SettingNotifyCalls, Value: false})
	h.m.UIState().Toast.Hide()

	h.dial(t)
	h.press("m")

	assert.False(t, h.m.UIState().Toast.IsActive())
	assert.True(t, h.m.Session().Muted)
}

func TestModel_UserNameSetting(t *testing.T) {
	h := newHarness(t)

	h.send(components.SettingChangedMsg{Key: components.SettingUserName, Value: "Ada"})

	assert.Contains(t, h.m.UIState().Header.View(), "Ada")
	assert.Equal(t, "Ada", viper.GetString("user.name"))
}

func TestModel_CallStateMsgSyncsSnapshot(t *testing.T) {
	h := newHarness(t)
	h.dial(t)

	h.ctrl.ToggleRecording()
	assert.False(t, h.m.Session().Recording, "not synced until the bridge delivers")

	h.send(CallStateMsg{})
	assert.True(t, h.m.Session().Recording)
	assert.Contains(t, h.m.UIState().Header.CallBadge(), "REC")
}

func TestModel_CallEndedToast(t *testing.T) {
	h := newHarness(t)
	h.dial(t)

	h.ctrl.EndCall()
	h.send(CallStateMsg{})

	assert.Equal(t, "Call ended · 00:00", h.m.UIState().Toast.Message())
}

func TestModel_Help(t *testing.T) {
	h := newHarness(t)

	cmd := h.press("?")
	assert.True(t, h.m.UIState().ShowHelp)
	require.NotNil(t, cmd)

	h.key(tea.KeyEsc)
	assert.False(t, h.m.UIState().ShowHelp)

	// ? is text inside the compose field
	h.press("i")
	h.press("?")
	assert.False(t, h.m.UIState().ShowHelp)
}

func TestModel_CtrlCEndsCallAndQuits(t *testing.T) {
	h := newHarness(t)
	h.dial(t)

	cmd := h.key(tea.KeyCtrlC)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, h.ctrl.Active())
	assert.Empty(t, h.m.View())
}

func TestModel_DirectoryReload(t *testing.T) {
	h := newHarness(t)
	d := directory.New([]directory.Contact{{ID: "9", Name: "Zoe", Phone: "+1 555 000 1111"}}, nil, nil)

	h.send(DirectoryReloadedMsg{Dir: d})

	assert.Len(t, h.m.UIState().ContactsView.Shown(), 1)
	assert.Equal(t, "Directory reloaded: 1 contacts", h.m.UIState().Toast.Message())
}

func TestModel_View(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.m.View(), "Chats")

	h.dial(t)
	h.alt("3")
	assert.Contains(t, h.m.View(), "Sarah Wilson")

	h.send(tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Contains(t, h.m.View(), "Terminal too small")
}
