package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownContext_Signal(t *testing.T) {
	// Keeps the test binary alive once shutdownContext releases its handler.
	guard := make(chan os.Signal, 2)
	signal.Notify(guard, syscall.SIGTERM)
	defer signal.Stop(guard)

	ctx, stop := shutdownContext(context.Background())
	defer stop()

	self, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	if err := self.Signal(syscall.SIGTERM); err != nil {
		t.Skipf("cannot signal own process: %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not cancelled by SIGTERM")
	}
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	// The second interrupt is still delivered after the context has ended.
	require.NoError(t, self.Signal(syscall.SIGTERM))
	assert.Eventually(t, func() bool { return len(guard) == 2 }, 5*time.Second, 10*time.Millisecond)
}

func TestShutdownContext_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := shutdownContext(parent)

	cancel()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context did not follow its parent")
	}

	assert.NotPanics(t, stop)
	assert.NotPanics(t, stop)
}
