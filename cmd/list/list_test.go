package list

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/endorses/lippyphone/internal/pkg/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *directory.Directory {
	t.Helper()
	d, err := directory.Sample()
	require.NoError(t, err)
	return d
}

func TestWriteContacts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeContacts(&buf, sample(t), false))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Sarah Wilson")
	assert.Contains(t, out, "+1 (555) 123-4567")
	assert.Contains(t, out, "★")
}

func TestWriteContacts_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeContacts(&buf, sample(t), true))

	var contacts []directory.Contact
	require.NoError(t, json.Unmarshal(buf.Bytes(), &contacts))
	assert.Len(t, contacts, 5)
}

func TestWriteCalls(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCalls(&buf, sample(t), false))

	out := buf.String()
	assert.Contains(t, out, "missed")
	assert.Contains(t, out, "+1 (555) 987-6543")
}

func TestWriteChats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeChats(&buf, sample(t), false))

	out := buf.String()
	assert.Contains(t, out, "Marketing Team")
	assert.Contains(t, out, "UNREAD")
}

func TestWriteEmpty(t *testing.T) {
	empty := directory.New(nil, nil, nil)

	tests := []struct {
		name  string
		write writerFunc
		want  string
	}{
		{"contacts", writeContacts, "No contacts."},
		{"calls", writeCalls, "No recent calls."},
		{"chats", writeChats, "No conversations."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.write(&buf, empty, false))
			assert.Equal(t, tt.want+"\n", buf.String())
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
