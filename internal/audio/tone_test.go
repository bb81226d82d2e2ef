package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns every sample.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestSweepLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewSweep(440, 220, 100*time.Millisecond, 0.5, rate)
	got := drain(s)
	if want := rate.N(100 * time.Millisecond); len(got) != want {
		t.Errorf("streamed %d samples, want %d", len(got), want)
	}
	if s.Err() != nil {
		t.Errorf("unexpected error: %v", s.Err())
	}
}

func TestSweepStaysWithinVolume(t *testing.T) {
	rate := beep.SampleRate(44100)
	for i, smp := range drain(NewSweep(300, 900, 50*time.Millisecond, 0.3, rate)) {
		if smp[0] < -0.3 || smp[0] > 0.3 {
			t.Fatalf("sample %d = %f exceeds volume 0.3", i, smp[0])
		}
		if smp[0] != smp[1] {
			t.Fatalf("sample %d is not mono: %v", i, smp)
		}
	}
}

func TestCuesAreFinite(t *testing.T) {
	cues := map[string]beep.Streamer{
		"step":      stepSound(sampleRate),
		"error":     errorSound(sampleRate),
		"sacrifice": sacrificeSound(sampleRate),
		"fall":      fallSound(sampleRate),
		"win":       winSound(sampleRate),
	}
	for name, s := range cues {
		n := len(drain(s))
		if n == 0 || n > sampleRate.N(3*time.Second) {
			t.Errorf("%s cue has %d samples", name, n)
		}
	}
}

func TestEnvelope(t *testing.T) {
	if envelope(0) != 0 {
		t.Error("envelope must start silent")
	}
	if envelope(0.05) != 1 {
		t.Errorf("envelope peak = %f, want 1", envelope(0.05))
	}
	if e := envelope(0.999); e > 0.01 {
		t.Errorf("envelope tail = %f, want near 0", e)
	}
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager()
	// Must not touch the speaker or panic before Initialize.
	sm.Step()
	sm.Win()
	sm.Cleanup()
	var _ Player = sm
	var _ Player = Silent{}
}
