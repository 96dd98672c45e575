package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Section
		wantErr bool
	}{
		{"chats", "chats", SectionChats, false},
		{"upper case", "DIALER", SectionDialer, false},
		{"padded", "  contacts ", SectionContacts, false},
		{"settings", "settings", SectionSettings, false},
		{"sentinel is not a section", CloseGlobalDialer, "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSection(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRouter_SetActiveNotifiesOncePerChange(t *testing.T) {
	r := NewRouter(SectionChats)
	var seen []Section
	r.OnSectionChange(func(s Section) { seen = append(seen, s) })

	r.SetActive(SectionContacts)
	r.SetActive(SectionContacts)
	r.SetActive(SectionDialer)

	assert.Equal(t, []Section{SectionContacts, SectionDialer}, seen)
	assert.Equal(t, SectionDialer, r.Active())
}

func TestRouter_NavigateSentinelClosesOverlay(t *testing.T) {
	r := NewRouter(SectionDialer)
	notified := false
	r.OnSectionChange(func(Section) { notified = true })

	r.OpenOverlay()
	require.True(t, r.OverlayOpen())

	r.Navigate(CloseGlobalDialer)
	assert.False(t, r.OverlayOpen())
	assert.Equal(t, SectionDialer, r.Active())
	assert.False(t, notified, "closing the overlay is not a section change")
}

func TestRouter_NavigateUnknownTargetIgnored(t *testing.T) {
	r := NewRouter(SectionSettings)
	r.Navigate("voicemail")
	assert.Equal(t, SectionSettings, r.Active())
}

func TestRouter_NextPreviousWrap(t *testing.T) {
	r := NewRouter(SectionSettings)
	r.Next()
	assert.Equal(t, SectionChats, r.Active())
	r.Previous()
	assert.Equal(t, SectionSettings, r.Active())
}

func TestRouter_ListenerMayReenter(t *testing.T) {
	r := NewRouter(SectionChats)
	r.OnSectionChange(func(s Section) {
		// A listener navigating to the section it was told about must not loop.
		r.Navigate(string(s))
	})

	r.Navigate("dialer")
	assert.Equal(t, SectionDialer, r.Active())
}

func TestNewRouter_UnknownStartFallsBack(t *testing.T) {
	assert.Equal(t, SectionChats, NewRouter("lobby").Active())
}
