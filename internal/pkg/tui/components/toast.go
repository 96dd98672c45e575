package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/endorses/lippyphone/internal/pkg/constants"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// ToastType defines the severity of a toast notification
type ToastType int

const (
	ToastSuccess ToastType = iota
	ToastError
	ToastInfo
	ToastWarning
)

// Toast durations
const (
	ToastDurationShort  = constants.ToastDurationShort
	ToastDurationNormal = constants.ToastDurationNormal
	ToastDurationLong   = constants.ToastDurationLong
)

type toastQueueItem struct {
	message         string
	toastType       ToastType
	duration        time.Duration
	supersessionKey string
}

// Toast is a temporary notification shown centered above the footer.
// Toasts shown while another is visible are queued.
type Toast struct {
	active     bool
	message    string
	toastType  ToastType
	startTime  time.Time
	duration   time.Duration
	currentKey string
	theme      themes.Theme
	width      int
	queue      []toastQueueItem
}

// ToastTickMsg is sent periodically to check whether the toast expired
type ToastTickMsg struct {
	Time time.Time
}

// ToastKeyCall returns the supersession key for notifications about one
// aspect of the active call ("mute", "hold", "state", ...). A newer toast
// about the same aspect replaces an older one instead of queueing behind it.
func ToastKeyCall(aspect string) string {
	return "call:" + aspect
}

// NewToast creates a hidden toast
func NewToast() Toast {
	return Toast{
		duration: ToastDurationShort,
		theme:    themes.Solarized(),
	}
}

// Show displays a toast, or queues it if one is already visible
func (t *Toast) Show(message string, toastType ToastType, duration time.Duration) tea.Cmd {
	return t.ShowWithKey(message, toastType, duration, "")
}

// ShowWithKey displays a toast that supersedes any visible or queued toast
// carrying the same non-empty key
func (t *Toast) ShowWithKey(message string, toastType ToastType, duration time.Duration, key string) tea.Cmd {
	if key != "" {
		kept := t.queue[:0]
		for _, item := range t.queue {
			if item.supersessionKey != key {
				kept = append(kept, item)
			}
		}
		t.queue = kept

		if t.active && t.currentKey == key {
			// Replace in place; the running tick chain keeps going.
			t.message = message
			t.toastType = toastType
			t.duration = duration
			t.startTime = time.Now()
			return nil
		}
	}

	if t.active {
		t.queue = append(t.queue, toastQueueItem{
			message:         message,
			toastType:       toastType,
			duration:        duration,
			supersessionKey: key,
		})
		return nil
	}

	t.active = true
	t.message = message
	t.toastType = toastType
	t.startTime = time.Now()
	t.duration = duration
	t.currentKey = key
	return t.tickCmd()
}

// Hide dismisses the visible toast
func (t *Toast) Hide() {
	t.active = false
	t.currentKey = ""
}

// IsActive returns whether a toast is visible
func (t *Toast) IsActive() bool {
	return t.active
}

// Message returns the visible message, or "" when hidden
func (t *Toast) Message() string {
	if !t.active {
		return ""
	}
	return t.message
}

// Type returns the severity of the visible toast
func (t *Toast) Type() ToastType {
	return t.toastType
}

// SetTheme updates the toast's theme
func (t *Toast) SetTheme(theme themes.Theme) {
	t.theme = theme
}

// SetWidth updates the width the toast is centered in
func (t *Toast) SetWidth(width int) {
	t.width = width
}

// Update expires the toast on tick and shows the next queued one
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(ToastTickMsg)
	if !ok || !t.active {
		return nil
	}
	if tick.Time.Sub(t.startTime) < t.duration {
		return t.tickCmd()
	}

	t.Hide()
	if len(t.queue) == 0 {
		return nil
	}
	next := t.queue[0]
	t.queue = t.queue[1:]
	return t.ShowWithKey(next.message, next.toastType, next.duration, next.supersessionKey)
}

func (t *Toast) tickCmd() tea.Cmd {
	return tea.Tick(constants.TUITickInterval, func(now time.Time) tea.Msg {
		return ToastTickMsg{Time: now}
	})
}

func (t *Toast) icon() string {
	switch t.toastType {
	case ToastSuccess:
		return "✓"
	case ToastError:
		return "✗"
	case ToastWarning:
		return "‼"
	default:
		return "ⓘ "
	}
}

// View renders the toast, or "" when hidden
func (t *Toast) View() string {
	if !t.active {
		return ""
	}

	bg := t.theme.InfoColor
	switch t.toastType {
	case ToastSuccess:
		bg = t.theme.SuccessColor
	case ToastError:
		bg = t.theme.ErrorColor
	case ToastWarning:
		bg = t.theme.WarningColor
	}

	style := lipgloss.NewStyle().
		Foreground(t.theme.OnAccent).
		Background(bg).
		Padding(1, 2)

	return lipgloss.PlaceHorizontal(t.width, lipgloss.Center,
		style.Render(" "+t.icon()+" "+t.message+" "))
}
