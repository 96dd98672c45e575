package store

import (
	"testing"

	"github.com/endorses/lippyphone/internal/pkg/call"
	"github.com/endorses/lippyphone/internal/pkg/nav"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionTabs(t *testing.T) {
	tabs := SectionTabs()
	require.Len(t, tabs, len(nav.Sections))
	assert.Equal(t, "Chats", tabs[0].Label)
	assert.Equal(t, "Cont", tabs[2].ShortLabel)
	assert.Equal(t, "⚙", tabs[3].Icon)
}

func TestContentHeight(t *testing.T) {
	s := NewUIState(themes.Solarized())
	s.SetSize(100, 40)
	base := s.ContentHeight()
	assert.Equal(t, 40-HeaderHeight-TabsHeight-BottomHeight-FooterHeight, base)

	s.CallWidget.SetSession(call.Session{Active: true, Minimized: true, CallerName: "Unknown"})
	assert.Equal(t, base-s.CallWidget.Height(), s.ContentHeight())

	s.SetSize(10, 5)
	assert.Equal(t, 1, s.ContentHeight(), "never below one row")
}

func TestApplyTheme(t *testing.T) {
	s := NewUIState(themes.Solarized())
	s.ApplyTheme(themes.SolarizedLight())
	assert.Equal(t, themes.NameLight, s.Theme.Key())
}
