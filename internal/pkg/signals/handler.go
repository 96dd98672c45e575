// Package signals turns termination signals into orderly shutdowns.
package signals

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/endorses/lippyphone/internal/pkg/constants"
	"github.com/endorses/lippyphone/internal/pkg/logger"
)

// Shutdown lists the signals that end the program
var Shutdown = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}

// SetupHandler cancels ctx via cancel on the first shutdown signal. The
// returned cleanup stops listening; it is safe to call more than once.
func SetupHandler(ctx context.Context, cancel context.CancelFunc) (cleanup func()) {
	return SetupHandlerWithCallback(ctx, cancel)
}

// SetupHandlerWithCallback invokes onSignal once on the first shutdown
// signal received before ctx ends. The returned cleanup stops listening and
// waits for the watcher goroutine to exit.
func SetupHandlerWithCallback(ctx context.Context, onSignal func()) (cleanup func()) {
	sigCh := make(chan os.Signal, constants.SignalChannelBuffer)
	signal.Notify(sigCh, Shutdown...)

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case sig := <-sigCh:
			logger.Info("Received signal, shutting down", "signal", sig.String())
			onSignal()
		case <-ctx.Done():
		case <-stop:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(stop)
			<-done
		})
	}
}
