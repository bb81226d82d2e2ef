package anim

import (
	"testing"
	"time"
)

func TestManualClockFiresTimersInOrder(t *testing.T) {
	c := NewManualClock(10 * time.Millisecond)
	var got []string
	c.After(30*time.Millisecond, func() { got = append(got, "b") })
	c.After(10*time.Millisecond, func() { got = append(got, "a") })
	c.After(30*time.Millisecond, func() { got = append(got, "c") })

	c.Advance(20 * time.Millisecond)
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("after 20ms got %v, want [a]", got)
	}
	c.Advance(10 * time.Millisecond)
	if len(got) != 3 || got[1] != "b" || got[2] != "c" {
		t.Fatalf("after 30ms got %v, want [a b c]", got)
	}
	if c.Pending() != 0 {
		t.Errorf("expected nothing pending, got %d", c.Pending())
	}
}

func TestManualClockFramesStepAtInterval(t *testing.T) {
	c := NewManualClock(16 * time.Millisecond)
	start := c.Now()
	var stamps []time.Duration
	var frame func(time.Time)
	frame = func(now time.Time) {
		stamps = append(stamps, now.Sub(start))
		if len(stamps) < 3 {
			c.Frame(frame)
		}
	}
	c.Frame(frame)
	c.Advance(100 * time.Millisecond)

	want := []time.Duration{16 * time.Millisecond, 32 * time.Millisecond, 48 * time.Millisecond}
	if len(stamps) != len(want) {
		t.Fatalf("got %d frames, want %d", len(stamps), len(want))
	}
	for i := range want {
		if stamps[i] != want[i] {
			t.Errorf("frame %d at %v, want %v", i, stamps[i], want[i])
		}
	}
	if got := c.Now().Sub(start); got != 100*time.Millisecond {
		t.Errorf("clock at %v after Advance, want 100ms", got)
	}
}

func TestManualClockTimerScheduledFromCallback(t *testing.T) {
	c := NewManualClock(0)
	fired := 0
	c.After(5*time.Millisecond, func() {
		fired++
		c.After(5*time.Millisecond, func() { fired++ })
	})
	c.Advance(10 * time.Millisecond)
	if fired != 2 {
		t.Errorf("expected chained timer to fire within the same Advance, fired=%d", fired)
	}
}

func TestManualClockSettle(t *testing.T) {
	c := NewManualClock(0)
	done := false
	c.After(time.Second, func() { done = true })
	used := c.Settle(5 * time.Second)
	if !done {
		t.Fatal("Settle did not fire pending timer")
	}
	if used != time.Second {
		t.Errorf("Settle consumed %v, want 1s", used)
	}

	c.After(10*time.Second, func() {})
	c.Settle(time.Second)
	if c.Pending() != 1 {
		t.Error("Settle must not fire timers beyond its limit")
	}
}
