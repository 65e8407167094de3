// ABOUTME: Per-user logout debouncing so quick reconnects never flap to friends
// ABOUTME: A displaced session's logout is cancelled by the replacing session's login

package presence

import (
	"sync"
	"time"
)

// Debouncer delays logout side effects for a grace period. A Login arriving
// inside the window cancels the pending work, absorbing the offline/online
// flap a reconnect or displacement would otherwise broadcast.
//
// Each user carries a generation counter bumped by Cancel. The scheduled
// function receives the generation it was armed under and runs its side
// effects through Guard, so a cancellation that lands after the timer has
// fired but before the work has run still wins.
type Debouncer struct {
	mu     sync.Mutex
	grace  time.Duration
	timers map[int64]*time.Timer
	gens   map[int64]uint64
}

// NewDebouncer builds a debouncer with the given grace period
func NewDebouncer(grace time.Duration) *Debouncer {
	return &Debouncer{
		grace:  grace,
		timers: make(map[int64]*time.Timer),
		gens:   make(map[int64]uint64),
	}
}

// Schedule arms fn to run after the grace period unless cancelled first.
// Re-scheduling for the same user resets the timer.
func (d *Debouncer) Schedule(userID int64, fn func(gen uint64)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.timers[userID]; ok {
		t.Stop()
	}
	gen := d.gens[userID]
	d.timers[userID] = time.AfterFunc(d.grace, func() {
		d.mu.Lock()
		delete(d.timers, userID)
		d.mu.Unlock()
		fn(gen)
	})
}

// Cancel stops the user's pending logout, reporting whether one was armed.
// The generation bump also invalidates work whose timer already fired.
func (d *Debouncer) Cancel(userID int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gens[userID]++
	t, ok := d.timers[userID]
	if !ok {
		return false
	}
	t.Stop()
	delete(d.timers, userID)
	return true
}

// Guard runs fn only if gen is still the user's live generation, reporting
// whether it ran. The lock is held across fn, so a concurrent Cancel
// either lands first (fn is skipped) or waits until fn's effects are done
// and the canceller's own writes land after them.
func (d *Debouncer) Guard(userID int64, gen uint64, fn func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gens[userID] != gen {
		return false
	}
	fn()
	return true
}

// Current reports whether gen is still the user's live generation
func (d *Debouncer) Current(userID int64, gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gens[userID] == gen
}

// Stop cancels every pending timer, for shutdown
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for userID, t := range d.timers {
		t.Stop()
		delete(d.timers, userID)
	}
}
