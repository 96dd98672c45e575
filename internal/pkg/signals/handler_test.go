package signals

import (
	"context"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupHandler_CancelsContextOnSignal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleanup := SetupHandler(ctx, cancel)
	defer cleanup()

	proc, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, proc.Signal(syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled after signal")
	}
}

func TestSetupHandlerWithCallback_NotCalledAfterContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	cleanup := SetupHandlerWithCallback(ctx, func() { calls.Add(1) })
	cancel()
	cleanup()
	cleanup() // idempotent

	assert.Zero(t, calls.Load())
}

func TestSetupHandlerWithCallback_CleanupBeforeSignal(t *testing.T) {
	var calls atomic.Int32
	cleanup := SetupHandlerWithCallback(context.Background(), func() { calls.Add(1) })

	done := make(chan struct{})
	go func() {
		cleanup()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not return")
	}
	assert.Zero(t, calls.Load())
}
