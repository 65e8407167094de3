// ABOUTME: Per-connection session state with a bounded FIFO send queue.
// ABOUTME: All outbound frames pass through one write pump, preserving order.

package gateway

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// sendQueueSize bounds the per-session outbound queue. A session that
	// cannot drain this many frames is a slow consumer and is torn down.
	sendQueueSize = 64

	// writeWait is the deadline applied to every outbound write.
	writeWait = 10 * time.Second
)

// wsConn is the subset of *websocket.Conn the gateway touches. Tests
// substitute a scripted connection.
type wsConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	Close() error
}

// chatJob is one accepted CHAT_SEND awaiting persistence. Jobs for a
// session are processed strictly in the order they were read off the
// socket, so acknowledgements mirror send order.
type chatJob struct {
	requestID string
	to        int64
	content   string
	ts        int64
}

// session is one authenticated WebSocket connection. Outbound frames are
// queued on send and written by the single write pump; enqueue order is
// delivery order.
type session struct {
	userID int64
	conn   wsConn
	logger *slog.Logger

	send chan []byte
	done chan struct{}

	// lastRead is the UnixNano timestamp of the most recent inbound frame.
	lastRead atomic.Int64

	// jobs queues CHAT_SENDs for the per-session drainer. Appended only by
	// the read pump; popped by at most one worker at a time.
	jobMu  sync.Mutex
	jobs   []chatJob
	saving bool

	closeOnce sync.Once
}

func newSession(userID int64, conn wsConn, logger *slog.Logger) *session {
	s := &session{
		userID: userID,
		conn:   conn,
		logger: logger,
		send:   make(chan []byte, sendQueueSize),
		done:   make(chan struct{}),
	}
	s.touch()
	return s
}

// touch records inbound activity for the heartbeat bookkeeping.
func (s *session) touch() {
	s.lastRead.Store(time.Now().UnixNano())
}

// idleFor returns how long the connection has been silent.
func (s *session) idleFor() time.Duration {
	return time.Since(time.Unix(0, s.lastRead.Load()))
}

// enqueue appends a frame to the send queue without blocking. A full queue
// means the peer is not draining its connection: the session is torn down
// as a slow consumer. Returns false when the frame was not queued.
func (s *session) enqueue(frame []byte) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.send <- frame:
		return true
	case <-s.done:
		return false
	default:
		s.logger.Warn("send queue full, dropping slow consumer", "user_id", s.userID)
		s.teardown()
		return false
	}
}

// enqueueBlocking waits for queue space instead of declaring the session
// slow. The join path uses it to stream presence seeds and large offline
// backlogs at whatever pace the socket drains.
func (s *session) enqueueBlocking(frame []byte) bool {
	select {
	case s.send <- frame:
		return true
	case <-s.done:
		return false
	}
}

// teardown closes the connection exactly once. Both pumps observe the
// closed connection or the done channel and exit.
func (s *session) teardown() {
	s.closeOnce.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}

// closed reports whether teardown has run.
func (s *session) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}
