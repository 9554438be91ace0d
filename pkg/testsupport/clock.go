package testsupport

import (
	"sort"
	"sync"
	"time"

	"github.com/goliatone/go-formguard/pkg/controller"
)

// FakeClock is a manual controller.Clock. Callbacks only run from Advance, on
// the calling goroutine, in due order.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *FakeClock
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

var _ controller.Clock = (*FakeClock)(nil)

// NewFakeClock returns a clock positioned at zero.
func NewFakeClock() *FakeClock {
	return &FakeClock{}
}

// AfterFunc schedules fn to run once the clock advanced by d.
func (c *FakeClock) AfterFunc(d time.Duration, fn func()) controller.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	timer := &fakeTimer{clock: c, at: c.now + d, fn: fn}
	c.timers = append(c.timers, timer)
	return timer
}

// Advance moves the clock forward and runs every callback that became due.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired && timer.at <= c.now {
			timer.fired = true
			due = append(due, timer)
		}
	}
	c.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, timer := range due {
		timer.fn()
	}
}

// Pending counts scheduled callbacks that neither ran nor were stopped.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired {
			count++
		}
	}
	return count
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
