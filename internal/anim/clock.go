package anim

import (
	"sort"
	"time"
)

// ManualClock is a deterministic Scheduler. Time only moves when Advance or
// Settle is called; frames fire every FrameInterval while any are queued.
type ManualClock struct {
	now       time.Time
	interval  time.Duration
	timers    []manualTimer
	frames    []func(time.Time)
	nextFrame time.Time
	seq       int
}

type manualTimer struct {
	at  time.Time
	seq int
	fn  func()
}

// NewManualClock returns a clock starting at the Unix epoch.
func NewManualClock(frame time.Duration) *ManualClock {
	if frame <= 0 {
		frame = DefaultFrameInterval
	}
	return &ManualClock{now: time.Unix(0, 0), interval: frame}
}

// Now returns the simulated time.
func (c *ManualClock) Now() time.Time { return c.now }

// After registers fn to run once simulated time reaches now+d.
func (c *ManualClock) After(d time.Duration, fn func()) {
	c.seq++
	c.timers = append(c.timers, manualTimer{at: c.now.Add(d), seq: c.seq, fn: fn})
}

// Frame queues fn for the next simulated frame.
func (c *ManualClock) Frame(fn func(now time.Time)) {
	if len(c.frames) == 0 {
		c.nextFrame = c.now.Add(c.interval)
	}
	c.frames = append(c.frames, fn)
}

// Pending reports how many timers and frame callbacks are waiting.
func (c *ManualClock) Pending() int { return len(c.timers) + len(c.frames) }

// Advance moves time forward by d, firing everything due on the way in
// time order. Timers win ties with frames.
func (c *ManualClock) Advance(d time.Duration) {
	target := c.now.Add(d)
	for c.step(target) {
	}
	c.now = target
}

// Settle advances until nothing is pending or limit simulated time has
// passed. It returns the simulated time consumed.
func (c *ManualClock) Settle(limit time.Duration) time.Duration {
	start := c.now
	deadline := start.Add(limit)
	for c.Pending() > 0 && c.step(deadline) {
	}
	return c.now.Sub(start)
}

// step fires the earliest due event at or before target.
func (c *ManualClock) step(target time.Time) bool {
	if len(c.timers) > 0 {
		sort.SliceStable(c.timers, func(i, j int) bool {
			if c.timers[i].at.Equal(c.timers[j].at) {
				return c.timers[i].seq < c.timers[j].seq
			}
			return c.timers[i].at.Before(c.timers[j].at)
		})
	}

	timerDue := len(c.timers) > 0 && !c.timers[0].at.After(target)
	frameDue := len(c.frames) > 0 && !c.nextFrame.After(target)

	switch {
	case timerDue && (!frameDue || !c.timers[0].at.After(c.nextFrame)):
		t := c.timers[0]
		c.timers = c.timers[1:]
		if t.at.After(c.now) {
			c.now = t.at
		}
		t.fn()
		return true
	case frameDue:
		if c.nextFrame.After(c.now) {
			c.now = c.nextFrame
		}
		pending := c.frames
		c.frames = nil
		for _, fn := range pending {
			fn(c.now)
		}
		return true
	}
	return false
}
