// ABOUTME: Tests for the per-session send queue and teardown semantics.
// ABOUTME: Covers FIFO ordering, slow-consumer eviction and idempotent close.

package gateway

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWSConn is a scripted connection for tests that drive sessions
// without a real socket. Reads block until the connection is closed.
type fakeWSConn struct {
	mu     sync.Mutex
	writes [][]byte
	closed bool

	closeCh   chan struct{}
	closeOnce sync.Once
}

func newFakeWSConn() *fakeWSConn {
	return &fakeWSConn{closeCh: make(chan struct{})}
}

func (c *fakeWSConn) ReadMessage() (int, []byte, error) {
	if c.closeCh == nil {
		return 0, nil, errors.New("use newFakeWSConn for reading connections")
	}
	<-c.closeCh
	return 0, nil, errors.New("connection closed")
}

func (c *fakeWSConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.New("write on closed connection")
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	c.writes = append(c.writes, buf)
	return nil
}

func (c *fakeWSConn) SetReadLimit(int64)                        {}
func (c *fakeWSConn) SetReadDeadline(time.Time) error           { return nil }
func (c *fakeWSConn) SetWriteDeadline(time.Time) error          { return nil }
func (c *fakeWSConn) WriteControl(int, []byte, time.Time) error { return nil }

func (c *fakeWSConn) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.closeOnce.Do(func() {
		if c.closeCh != nil {
			close(c.closeCh)
		}
	})
	return nil
}

func (c *fakeWSConn) wasClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *fakeWSConn) written() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]byte, len(c.writes))
	copy(out, c.writes)
	return out
}

func TestSessionEnqueuePreservesOrder(t *testing.T) {
	s := newSession(1, newFakeWSConn(), slog.Default())

	for i := 0; i < 10; i++ {
		require.True(t, s.enqueue([]byte(fmt.Sprintf("frame-%d", i))))
	}

	for i := 0; i < 10; i++ {
		select {
		case frame := <-s.send:
			assert.Equal(t, fmt.Sprintf("frame-%d", i), string(frame))
		default:
			t.Fatalf("queue drained early at frame %d", i)
		}
	}
}

func TestSessionSlowConsumerTornDown(t *testing.T) {
	conn := newFakeWSConn()
	s := newSession(1, conn, slog.Default())

	// No write pump running, so the queue only fills.
	for i := 0; i < sendQueueSize; i++ {
		require.True(t, s.enqueue([]byte("x")))
	}

	assert.False(t, s.enqueue([]byte("overflow")))
	assert.True(t, s.closed())
	assert.True(t, conn.wasClosed())
}

func TestSessionEnqueueAfterTeardown(t *testing.T) {
	s := newSession(1, newFakeWSConn(), slog.Default())
	s.teardown()

	assert.False(t, s.enqueue([]byte("late")))
	assert.False(t, s.enqueueBlocking([]byte("late")))
}

func TestSessionTeardownIdempotent(t *testing.T) {
	s := newSession(1, newFakeWSConn(), slog.Default())
	s.teardown()
	s.teardown() // must not panic on the closed done channel
	assert.True(t, s.closed())
}

func TestSessionIdleTracksReads(t *testing.T) {
	s := newSession(1, newFakeWSConn(), slog.Default())
	time.Sleep(20 * time.Millisecond)
	require.GreaterOrEqual(t, s.idleFor(), 10*time.Millisecond)

	s.touch()
	assert.Less(t, s.idleFor(), 10*time.Millisecond)
}
