package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomPort(t *testing.T) {
	port := GetRandomPort(t)
	assert.Greater(t, port, 0)
	assert.Less(t, port, 65536)
}

func TestGetRandomPortUnique(t *testing.T) {
	ports := make(map[int]bool)
	for range 10 {
		port := GetRandomPort(t)
		assert.False(t, ports[port], "Port %d was already used", port)
		ports[port] = true
	}
}

func TestListenLoopback(t *testing.T) {
	listener := ListenLoopback(t)
	assert.Equal(t, "tcp", listener.Addr().Network())
	assert.Contains(t, listener.Addr().String(), "127.0.0.1:")
}

func TestThreadSafeBuffer(t *testing.T) {
	buf := &ThreadSafeBuffer{}

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			_, err := buf.Write([]byte("line\n"))
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	assert.Len(t, buf.Lines(), 20)

	buf.Reset()
	assert.Empty(t, buf.String())
	assert.Empty(t, buf.Lines())
}
