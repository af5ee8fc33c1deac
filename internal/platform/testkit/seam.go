package testkit

import (
	"sync"
	"testing"
	"time"
)

// Swap replaces *target for the rest of the test. Cleanup puts the original back
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

var serial sync.Mutex

// Serial holds a process-wide lock until the test ends. Use it in tests that touch
// shared seams or the environment from parallel subtests
func Serial(t *testing.T) {
	t.Helper()
	serial.Lock()
	t.Cleanup(serial.Unlock)
}

// Clock is a manual time source for code that reads time through a func var
type Clock struct {
	mu sync.Mutex
	t  time.Time
}

// NewClock starts a clock at start and installs its Now in *target for the test
func NewClock(t *testing.T, target *func() time.Time, start time.Time) *Clock {
	t.Helper()
	c := &Clock{t: start}
	Swap(t, target, c.Now)
	return c
}

// Now returns the current manual time
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Advance moves the clock forward by d
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}
