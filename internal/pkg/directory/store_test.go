package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SwapNotifiesSubscribers(t *testing.T) {
	initial, err := Sample()
	require.NoError(t, err)

	store := NewStore(initial)
	assert.Same(t, initial, store.Get())

	var first, second []*Directory
	store.Subscribe(func(d *Directory) { first = append(first, d) })
	store.Subscribe(func(d *Directory) { second = append(second, d) })

	next := New([]Contact{{ID: "front-desk", Name: "Front Desk", Phone: "555-0100"}}, nil, nil)
	store.Swap(next)

	assert.Same(t, next, store.Get())
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Same(t, next, first[0])
	assert.Same(t, next, second[0])
}

func TestStore_SubscribeDuringSwap(t *testing.T) {
	store := NewStore(New(nil, nil, nil))

	calls := 0
	store.Subscribe(func(*Directory) {
		calls++
		store.Subscribe(func(*Directory) { calls += 10 })
	})

	store.Swap(New(nil, nil, nil))
	assert.Equal(t, 1, calls)

	store.Swap(New(nil, nil, nil))
	assert.Equal(t, 12, calls)
}
