// Package anim runs timed, frame-driven sequences on a single-goroutine
// event loop.
package anim

import (
	"context"
	"sync"
	"time"
)

// DefaultFrameInterval is roughly one 60 Hz display frame.
const DefaultFrameInterval = 16 * time.Millisecond

// Scheduler is a cooperative single-goroutine scheduler. Every callback it
// invokes runs on the scheduler's goroutine, so callbacks may touch game
// state without locking. After and Frame must themselves only be called from
// that goroutine.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time
	// After runs fn once, d from now.
	After(d time.Duration, fn func())
	// Frame runs fn on the next animation frame with the frame's timestamp.
	Frame(fn func(now time.Time))
}

// Loop is the real-time Scheduler. Other goroutines hand work to it with Post.
type Loop struct {
	interval time.Duration
	posts    chan func()
	frames   []func(time.Time)

	stop     chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a Loop that fires frames every interval.
func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Loop{
		interval: interval,
		posts:    make(chan func(), 64),
		stop:     make(chan struct{}),
	}
}

// Now returns the wall clock time.
func (l *Loop) Now() time.Time { return time.Now() }

// After schedules fn on the loop goroutine once d has elapsed.
func (l *Loop) After(d time.Duration, fn func()) {
	time.AfterFunc(d, func() { l.Post(fn) })
}

// Frame queues fn for the next frame tick.
func (l *Loop) Frame(fn func(now time.Time)) {
	l.frames = append(l.frames, fn)
}

// Post hands fn to the loop goroutine. It is safe to call from any goroutine
// and returns false once the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stop:
		return false
	default:
	}
	select {
	case l.posts <- fn:
		return true
	case <-l.stop:
		return false
	}
}

// Stop ends Run. Safe to call more than once and from any goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Done is closed once the loop has been stopped.
func (l *Loop) Done() <-chan struct{} { return l.stop }

// Run processes posted work, timers and frames until ctx is cancelled or
// Stop is called. The frame ticker only runs while frames are pending.
func (l *Loop) Run(ctx context.Context) error {
	defer l.Stop()

	var ticker *time.Ticker
	var tick <-chan time.Time
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		switch {
		case len(l.frames) > 0 && ticker == nil:
			ticker = time.NewTicker(l.interval)
			tick = ticker.C
		case len(l.frames) == 0 && ticker != nil:
			ticker.Stop()
			ticker, tick = nil, nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return nil
		case fn := <-l.posts:
			fn()
		case now := <-tick:
			pending := l.frames
			l.frames = nil
			for _, fn := range pending {
				fn(now)
			}
		}
	}
}
