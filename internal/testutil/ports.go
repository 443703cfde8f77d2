// Package testutil holds helpers shared by tests that open real sockets.
package testutil

import (
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	portMutex = &sync.Mutex{}
	usedPorts = make(map[int]struct{})
)

// GetRandomPort returns a loopback port that was free a moment ago and has not
// been handed out earlier in this test binary.
func GetRandomPort(t *testing.T) int {
	t.Helper()
	portMutex.Lock()
	defer portMutex.Unlock()

	for {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err, "failed to get random port")
		p := listener.Addr().(*net.TCPAddr).Port
		require.NoError(t, listener.Close(), "failed to close listener")

		if _, ok := usedPorts[p]; ok {
			continue
		}
		usedPorts[p] = struct{}{}
		return p
	}
}

// ListenLoopback binds an ephemeral loopback port and closes it when the test ends.
func ListenLoopback(t *testing.T) net.Listener {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "failed to bind loopback listener")
	t.Cleanup(func() {
		// the code under test usually closes it first
		_ = listener.Close()
	})
	return listener
}
