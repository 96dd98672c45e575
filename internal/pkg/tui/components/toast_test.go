package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToast_QueuesWhileActive(t *testing.T) {
	toast := NewToast()

	cmd := toast.Show("Call started", ToastInfo, ToastDurationShort)
	assert.NotNil(t, cmd, "first toast starts the tick chain")
	assert.Nil(t, toast.Show("Muted", ToastInfo, ToastDurationShort))

	assert.Equal(t, "Call started", toast.Message())
	require.Len(t, toast.queue, 1)
	assert.Equal(t, "Muted", toast.queue[0].message)
}

func TestToast_SameKeyReplacesVisibleToast(t *testing.T) {
	toast := NewToast()

	toast.ShowWithKey("Muted", ToastInfo, ToastDurationShort, ToastKeyCall("mute"))
	toast.ShowWithKey("Unmuted", ToastInfo, ToastDurationShort, ToastKeyCall("mute"))

	assert.Equal(t, "Unmuted", toast.Message())
	assert.Equal(t, "call:mute", toast.currentKey)
	assert.Empty(t, toast.queue)
}

func TestToast_SameKeyReplacesQueuedToast(t *testing.T) {
	toast := NewToast()

	toast.ShowWithKey("Call started", ToastInfo, ToastDurationShort, ToastKeyCall("state"))
	toast.ShowWithKey("On hold", ToastWarning, ToastDurationShort, ToastKeyCall("hold"))
	toast.Show("Settings saved", ToastSuccess, ToastDurationShort)
	toast.ShowWithKey("Call resumed", ToastInfo, ToastDurationShort, ToastKeyCall("hold"))

	require.Len(t, toast.queue, 2)
	assert.Equal(t, "Settings saved", toast.queue[0].message)
	assert.Equal(t, "Call resumed", toast.queue[1].message)
	assert.Equal(t, "call:hold", toast.queue[1].supersessionKey)
}

func TestToast_ExpiryShowsNextWithKey(t *testing.T) {
	toast := NewToast()

	toast.ShowWithKey("First", ToastInfo, time.Second, "a")
	toast.ShowWithKey("Second", ToastError, time.Second, "b")

	// Not yet expired: keeps ticking
	assert.NotNil(t, toast.Update(ToastTickMsg{Time: toast.startTime.Add(500 * time.Millisecond)}))
	assert.Equal(t, "First", toast.Message())

	toast.startTime = time.Now().Add(-time.Hour)
	toast.Update(ToastTickMsg{Time: time.Now()})

	assert.True(t, toast.IsActive())
	assert.Equal(t, "Second", toast.Message())
	assert.Equal(t, ToastError, toast.Type())
	assert.Equal(t, "b", toast.currentKey)
	assert.Empty(t, toast.queue)
}

func TestToast_HideClearsKey(t *testing.T) {
	toast := NewToast()
	toast.ShowWithKey("Recording", ToastWarning, ToastDurationShort, "k")

	toast.Hide()

	assert.False(t, toast.IsActive())
	assert.Empty(t, toast.currentKey)
	assert.Empty(t, toast.View())
	assert.Nil(t, toast.Update(ToastTickMsg{Time: time.Now()}))
}

func TestToast_ViewContainsMessage(t *testing.T) {
	toast := NewToast()
	toast.SetWidth(60)
	toast.Show("Unable to play recording", ToastError, ToastDurationLong)

	assert.Contains(t, toast.View(), "Unable to play recording")
}
