// Package session holds the admin console's idle countdown: a one-second
// tick toward automatic logout, pushed back by user activity.
package session

import (
	"sync"
	"time"
)

// Countdown ticks once per second from an idle budget toward zero. Any user
// activity resets it to the full budget; reaching zero fires the logout
// callback exactly once. The countdown is decoupled from network traffic:
// it neither waits for in-flight requests nor is reset by them.
type Countdown struct {
	mu        sync.Mutex
	budget    int // seconds
	remaining int
	onLogout  func()
	fired     bool
	stopCh    chan struct{}
	stopped   bool
}

// NewCountdown creates a countdown with the given idle budget. onLogout runs
// on the countdown's own goroutine when the budget is exhausted.
func NewCountdown(idle time.Duration, onLogout func()) *Countdown {
	seconds := int(idle / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return &Countdown{
		budget:    seconds,
		remaining: seconds,
		onLogout:  onLogout,
		stopCh:    make(chan struct{}),
	}
}

// Start begins ticking
func (c *Countdown) Start() {
	go c.run()
}

func (c *Countdown) run() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			if c.tick() {
				return
			}
		}
	}
}

// tick decrements the counter and reports whether the countdown is done
func (c *Countdown) tick() bool {
	c.mu.Lock()

	if c.stopped || c.fired {
		c.mu.Unlock()
		return true
	}

	c.remaining--
	if c.remaining > 0 {
		c.mu.Unlock()
		return false
	}

	c.fired = true
	onLogout := c.onLogout
	c.mu.Unlock()

	if onLogout != nil {
		onLogout()
	}
	return true
}

// Reset pushes the countdown back to the full budget. Called on user
// activity. A countdown that already fired stays fired.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fired || c.stopped {
		return
	}
	c.remaining = c.budget
}

// Remaining returns the seconds left before auto-logout
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Fired reports whether the countdown reached zero and logged out
func (c *Countdown) Fired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fired
}

// Stop halts the countdown without firing the callback. Safe to call more
// than once.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}
	c.stopped = true
	close(c.stopCh)
}
