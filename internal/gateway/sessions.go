// ABOUTME: Session table mapping user ids to their live WebSocket session.
// ABOUTME: Joining displaces any previous session; removal is compare-and-delete.

package gateway

import "sync"

// sessionTable tracks the live session for each locally connected user. A
// user holds at most one session per edge: joining with a fresh connection
// displaces the previous one. Callers must not perform I/O while holding
// the table lock; Join returns the displaced session so teardown happens
// after the lock is released.
type sessionTable struct {
	mu       sync.RWMutex
	sessions map[int64]*session
}

func newSessionTable() *sessionTable {
	return &sessionTable{sessions: make(map[int64]*session)}
}

// Join registers s as the session for its user and returns the session it
// displaced, if any.
func (t *sessionTable) Join(s *session) (displaced *session) {
	t.mu.Lock()
	defer t.mu.Unlock()
	displaced = t.sessions[s.userID]
	t.sessions[s.userID] = s
	return displaced
}

// Leave removes s only if the user still maps to this exact session. A
// false return means a newer session has already displaced s, so the
// caller must skip the per-user cleanup that belongs to the replacement.
func (t *sessionTable) Leave(s *session) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	current, ok := t.sessions[s.userID]
	if !ok || current != s {
		return false
	}
	delete(t.sessions, s.userID)
	return true
}

// Get returns the live session for userID.
func (t *sessionTable) Get(userID int64) (*session, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.sessions[userID]
	return s, ok
}

// UserIDs returns the ids of all locally connected users.
func (t *sessionTable) UserIDs() []int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]int64, 0, len(t.sessions))
	for id := range t.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Sessions returns a snapshot of all live sessions.
func (t *sessionTable) Sessions() []*session {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*session, 0, len(t.sessions))
	for _, s := range t.sessions {
		out = append(out, s)
	}
	return out
}

// Len returns the number of live sessions.
func (t *sessionTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.sessions)
}
