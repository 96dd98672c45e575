package directory

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneContact = "contacts:\n  - id: a\n    name: Alice\n    phone: \"555-0100\"\n"
const twoContacts = oneContact + "  - id: b\n    name: Bob\n    phone: \"555-0199\"\n"

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir.yaml")
	require.NoError(t, os.WriteFile(path, []byte(oneContact), 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	store := NewStore(d)

	var failures atomic.Int32
	w := NewWatcher(path, store,
		WithDebounce(10*time.Millisecond),
		WithErrorHandler(func(error) { failures.Add(1) }))
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte(twoContacts), 0o600))
	require.Eventually(t, func() bool {
		return len(store.Get().Contacts()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	// A broken file keeps the last good directory. Replace it atomically so
	// no empty intermediate state is observed.
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte("contacts: [\n"), 0o600))
	require.NoError(t, os.Rename(tmp, path))
	require.Eventually(t, func() bool {
		return failures.Load() > 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Len(t, store.Get().Contacts(), 2)
}

func TestWatcher_StartTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir.yaml")
	require.NoError(t, os.WriteFile(path, []byte(oneContact), 0o600))
	d, err := Load(path)
	require.NoError(t, err)

	w := NewWatcher(path, NewStore(d))
	require.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()))
	w.Stop()
	w.Stop()
}
