package mocks

import (
	"time"

	"github.com/vocabquest/vocabquest-go/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing.
// Scheduled timers never fire on their own; tests trigger them with
// FireDue after advancing the clock.
type MockClock struct {
	CurrentTime time.Time

	timers []*MockTimer
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// AfterFunc records a scheduled call without running it
func (c *MockClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	t := &MockTimer{
		When: c.CurrentTime.Add(d),
		fn:   f,
	}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.CurrentTime = t
}

// FireDue runs every pending timer whose deadline has passed.
// Returns the number of timers fired.
func (c *MockClock) FireDue() int {
	fired := 0
	for _, t := range c.timers {
		if t.fired || t.stopped {
			continue
		}
		if t.When.After(c.CurrentTime) {
			continue
		}
		t.fired = true
		t.fn()
		fired++
	}
	return fired
}

// PendingTimers returns the timers that have neither fired nor been stopped
func (c *MockClock) PendingTimers() []*MockTimer {
	var pending []*MockTimer
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			pending = append(pending, t)
		}
	}
	return pending
}

// MockTimer is a scheduled call recorded by MockClock
type MockTimer struct {
	When    time.Time
	fn      func()
	fired   bool
	stopped bool
}

// Stop cancels the timer
func (t *MockTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Fire runs the timer's function regardless of its deadline
func (t *MockTimer) Fire() {
	if t.fired || t.stopped {
		return
	}
	t.fired = true
	t.fn()
}
