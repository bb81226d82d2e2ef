package anim

import (
	"errors"
	"time"
)

// ErrSequenceInFlight is returned by Run while another sequence is running.
var ErrSequenceInFlight = errors.New("sequence already in flight")

// Kind selects which sequence to play.
type Kind uint8

const (
	// KindSuccess walks one full step across a mended span.
	KindSuccess Kind = iota
	// KindFailure walks half a step and falls.
	KindFailure
)

func (k Kind) String() string {
	if k == KindFailure {
		return "failure"
	}
	return "success"
}

// Request describes one sequence run.
type Request struct {
	Kind        Kind
	// PlaceMarker lays a persistent bridge tile before walking.
	PlaceMarker bool
	// ShowGap shows the transient sacrifice indicator while walking.
	ShowGap     bool
}

// Stage receives the visual updates a sequence produces.
type Stage interface {
	SetPosition(x float64)
	SetPose(p Pose)
	PlaceTile()
	ShowGap(visible bool)
}

// Timing holds the pacing of both sequences.
type Timing struct {
	Walk         time.Duration // full step duration
	StepDistance float64       // units per step
	PosePeriod   time.Duration // walk pose alternation period
	FallFraction float64       // share of Walk spent reaching the edge
	FallPause    time.Duration // delay between falling and completion
}

// DefaultTiming is the standard walk pacing.
func DefaultTiming() Timing {
	return Timing{
		Walk:         1000 * time.Millisecond,
		StepDistance: 120,
		PosePeriod:   200 * time.Millisecond,
		FallFraction: 0.6,
		FallPause:    2000 * time.Millisecond,
	}
}

// Sequencer plays at most one sequence at a time and reports completion
// through the callback handed to Run.
type Sequencer struct {
	sched   Scheduler
	stage   Stage
	timing  Timing
	x       float64
	running bool
}

// NewSequencer creates a sequencer whose walker starts at x.
func NewSequencer(sched Scheduler, stage Stage, timing Timing, x float64) *Sequencer {
	return &Sequencer{sched: sched, stage: stage, timing: timing, x: x}
}

// Position is the walker's current x.
func (s *Sequencer) Position() float64 { return s.x }

// Running reports whether a sequence is in flight.
func (s *Sequencer) Running() bool { return s.running }

// Reset moves the walker back to x and redraws it standing. It does nothing
// while a sequence is running.
func (s *Sequencer) Reset(x float64) {
	if s.running {
		return
	}
	s.x = x
	s.stage.SetPosition(x)
	s.stage.SetPose(PoseStand)
}

// Run starts the sequence described by req. onComplete is called exactly
// once, from a later scheduler callback, after every frame and timer of the
// sequence has fired.
func (s *Sequencer) Run(req Request, onComplete func(Kind)) error {
	if s.running {
		return ErrSequenceInFlight
	}
	s.running = true

	finish := func() {
		s.running = false
		if onComplete != nil {
			onComplete(req.Kind)
		}
	}

	if req.Kind == KindFailure {
		edge := s.x + s.timing.StepDistance/2
		d := time.Duration(float64(s.timing.Walk) * s.timing.FallFraction)
		s.walk(d, edge, func() {
			s.stage.SetPose(PoseFalling)
			s.sched.After(s.timing.FallPause, finish)
		})
		return nil
	}

	if req.PlaceMarker {
		s.stage.PlaceTile()
	}
	if req.ShowGap {
		s.stage.ShowGap(true)
	}
	s.walk(s.timing.Walk, s.x+s.timing.StepDistance, func() {
		if req.ShowGap {
			s.stage.ShowGap(false)
		}
		finish()
	})
	return nil
}

// walk interpolates x linearly to target over d, one update per frame, and
// calls done on the frame where the walker arrives.
func (s *Sequencer) walk(d time.Duration, target float64, done func()) {
	start := s.x
	pose := PoseStand
	s.stage.SetPose(pose)

	var began time.Time
	started := false
	var step func(now time.Time)
	step = func(now time.Time) {
		if !started {
			began, started = now, true
		}
		elapsed := now.Sub(began)
		if d > 0 && elapsed < d {
			s.x = start + (target-start)*(float64(elapsed)/float64(d))
			s.stage.SetPosition(s.x)
			if p := s.walkPose(elapsed); p != pose {
				pose = p
				s.stage.SetPose(p)
			}
			s.sched.Frame(step)
			return
		}
		s.x = target
		s.stage.SetPosition(target)
		s.stage.SetPose(PoseStand)
		done()
	}
	s.sched.Frame(step)
}

func (s *Sequencer) walkPose(elapsed time.Duration) Pose {
	if s.timing.PosePeriod <= 0 || (elapsed/s.timing.PosePeriod)%2 == 0 {
		return PoseWalkA
	}
	return PoseWalkB
}
