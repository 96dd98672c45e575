package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/endorses/lippyphone/internal/pkg/directory"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// typeText sends each rune of s as its own key press
func typeText(handle func(tea.KeyMsg) tea.Cmd, s string) {
	for _, r := range s {
		handle(runes(string(r)))
	}
}

// runCmd executes cmd and returns its message, or nil
func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func sampleDirectory(t *testing.T) *directory.Directory {
	t.Helper()
	d, err := directory.Sample()
	require.NoError(t, err)
	return d
}
