// Package common provides the shutdown plumbing shared by the CLI tools.
package common

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/falk-werner/mqtt-tools/pkg/toolutil"
)

// SetupGracefulShutdown returns a context that is cancelled when SIGINT or
// SIGTERM arrives. The signal handler only forwards to a buffered channel; the
// cancellation itself happens on an ordinary goroutine, so the main path can
// simply block on ctx.Done(). The returned cancel must be deferred.
func SetupGracefulShutdown() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigc)
		select {
		case sig := <-sigc:
			toolutil.Logger().Info("received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
