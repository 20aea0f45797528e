//go:build unix

package shutdown

import (
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"advanced-notepad/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenOnSignal(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})

	var (
		mu  sync.Mutex
		got os.Signal
	)
	received := make(chan struct{})
	m.Listen(func(sig os.Signal) {
		mu.Lock()
		got = sig
		mu.Unlock()
		close(received)
	})

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("signal not delivered")
	}

	mu.Lock()
	assert.Equal(t, syscall.SIGTERM, got)
	mu.Unlock()
	m.Shutdown()
}
