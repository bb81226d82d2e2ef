package bridge

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"riddle-bridge/assets"
	"riddle-bridge/internal/anim"
	"riddle-bridge/internal/riddle"
)

// Options tunes a Machine.
type Options struct {
	MaxLight       int
	// RiddleDelay is the pause before each riddle is presented.
	RiddleDelay    time.Duration
	// NoticeDuration is how long the sacrifice notice stays up.
	NoticeDuration time.Duration
	Logger         *slog.Logger
}

// DefaultOptions is the standard light and riddle pacing.
func DefaultOptions() Options {
	return Options{
		MaxLight:       DefaultMaxLight,
		RiddleDelay:    1000 * time.Millisecond,
		NoticeDuration: 2000 * time.Millisecond,
	}
}

// Machine is the progression state machine. It owns the State, asks the
// sequencer for one sequence per crossing and advances when that sequence
// completes. All methods must run on the scheduler's goroutine.
type Machine struct {
	state   *State
	tracker *Tracker
	table   *riddle.Table
	seq     Sequencer
	sched   anim.Scheduler
	view    Presenter
	opts    Options
	log     *slog.Logger

	started   bool
	closed    bool
	noticeGen int
}

// NewMachine creates a machine at the start of a fresh run.
func NewMachine(table *riddle.Table, seq Sequencer, sched anim.Scheduler, view Presenter, opts Options) *Machine {
	if opts.MaxLight <= 0 {
		opts.MaxLight = DefaultMaxLight
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	st := NewState(opts.MaxLight)
	return &Machine{
		state:   st,
		tracker: NewTracker(st, opts.MaxLight),
		table:   table,
		seq:     seq,
		sched:   sched,
		view:    view,
		opts:    opts,
		log:     log,
	}
}

// State returns a snapshot of the game record.
func (m *Machine) State() State { return *m.state }

// Total is the number of levels.
func (m *Machine) Total() int { return m.table.Len() }

// MaxLight is the light ceiling.
func (m *Machine) MaxLight() int { return m.tracker.Max() }

// Tier grades the run by its current light.
func (m *Machine) Tier() Tier { return TierFor(m.state.Light) }

// Start draws the HUD and schedules the first riddle.
func (m *Machine) Start() {
	if m.started {
		return
	}
	m.started = true
	m.view.ShowLight(m.state.Light, m.tracker.Max())
	m.view.ShowLevel(m.state.RiddleIndex, m.Total())
	m.view.EnableControls(false)
	m.log.Info("run started", "levels", m.Total(), "light", m.state.Light)
	m.sched.After(m.opts.RiddleDelay, m.present)
}

// Close detaches the machine from the view. Callbacks still queued on the
// scheduler become no-ops; used when a new run replaces this one.
func (m *Machine) Close() { m.closed = true }

// SubmitAnswer checks text against the current riddle. A match starts the
// success sequence; a mismatch shows the error indicator and returns
// ErrNoMatch.
func (m *Machine) SubmitAnswer(text string) error {
	if err := m.acceptInput("submit answer"); err != nil {
		return err
	}
	entry, _ := m.table.At(m.state.RiddleIndex)
	if !entry.Check(text) {
		m.state.WrongGuesses++
		m.view.ShowError(true)
		m.log.Info("wrong answer", "level", m.state.RiddleIndex+1)
		return fmt.Errorf("level %d: %w", m.state.RiddleIndex+1, ErrNoMatch)
	}
	m.state.Answered++
	m.view.ShowError(false)
	return m.begin(anim.KindSuccess)
}

// SacrificeLight spends one light to skip the riddle, or sends the walker
// into the lava when none is left.
func (m *Machine) SacrificeLight() error {
	if err := m.acceptInput("sacrifice light"); err != nil {
		return err
	}
	switch m.tracker.Sacrifice() {
	case Reduced:
		m.state.Sacrificed++
		m.view.ShowLight(m.state.Light, m.tracker.Max())
		m.flashNotice()
		m.log.Info("light sacrificed", "level", m.state.RiddleIndex+1, "light", m.state.Light)
		return m.begin(anim.KindSuccess)
	default:
		m.log.Info("light depleted", "level", m.state.RiddleIndex+1)
		return m.begin(anim.KindFailure)
	}
}

// OnSequenceComplete advances the game once the requested sequence has
// finished. The sequencer calls it exactly once per Run.
func (m *Machine) OnSequenceComplete(kind anim.Kind) {
	if m.closed {
		return
	}
	st := m.state
	if st.Phase != PhaseAdvancing {
		m.log.Warn("sequence completion outside advancing phase", "phase", st.Phase, "kind", kind)
		return
	}
	st.Busy = false

	if kind == anim.KindFailure {
		st.Phase = PhaseLost
		msg := ""
		if st.DiedFromHazard {
			msg = assets.LavaDeathMessage
		}
		m.view.ShowDeathScreen(msg)
		m.log.Info("run lost", "level", st.RiddleIndex+1, "hazard", st.DiedFromHazard)
		return
	}

	st.RiddleIndex++
	if st.RiddleIndex >= m.Total() {
		st.Phase = PhaseWon
		tier := TierFor(st.Light)
		m.view.ShowWinScreen(tier.Message())
		m.log.Info("run won", "light", st.Light, "tier", tier)
		return
	}
	st.Phase = PhaseAwaitingInput
	m.sched.After(m.opts.RiddleDelay, m.present)
}

// acceptInput gates player actions on the phase and busy flag.
func (m *Machine) acceptInput(op string) error {
	st := m.state
	var reason string
	switch {
	case m.closed:
		reason = "machine closed"
	case st.Phase.Terminal():
		reason = "game over"
	case st.Busy:
		reason = "sequence in flight"
	case st.Phase != PhaseAwaitingInput:
		reason = "not awaiting input"
	case st.RiddleIndex >= m.Total():
		reason = "no riddle left"
	case !st.Prompted:
		reason = "riddle not presented"
	default:
		return nil
	}
	m.log.Debug("input ignored", "op", op, "reason", reason, "phase", st.Phase)
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidAction, reason)
}

// begin moves to Advancing and hands the crossing to the sequencer.
func (m *Machine) begin(kind anim.Kind) error {
	st := m.state
	req := anim.Request{Kind: kind}
	if kind == anim.KindSuccess {
		req.PlaceMarker = st.RiddleIndex > 0
		req.ShowGap = !m.tracker.Full()
	}

	st.Busy = true
	st.Phase = PhaseAdvancing
	st.Prompted = false
	m.view.EnableControls(false)
	m.view.HideRiddle()

	if err := m.seq.Run(req, m.OnSequenceComplete); err != nil {
		m.log.Error("sequence refused", "kind", kind, "err", err)
		st.Busy = false
		st.Phase = PhaseAwaitingInput
		m.present()
		return fmt.Errorf("start %s sequence: %w", kind, err)
	}
	if req.PlaceMarker {
		st.TilesPlaced++
	}
	m.log.Debug("sequence started", "kind", kind, "level", st.RiddleIndex+1)
	return nil
}

// present shows the current riddle and re-enables input.
func (m *Machine) present() {
	st := m.state
	if m.closed || st.Busy || st.Phase != PhaseAwaitingInput {
		return
	}
	entry, ok := m.table.At(st.RiddleIndex)
	if !ok {
		return
	}
	m.view.ShowRiddle(entry.Prompt)
	m.view.ShowLevel(st.RiddleIndex, m.Total())
	m.view.ShowError(false)
	m.view.ShowSacrificeNotice(false)
	st.Prompted = true
	m.view.EnableControls(true)
}

func (m *Machine) flashNotice() {
	m.noticeGen++
	gen := m.noticeGen
	m.view.ShowSacrificeNotice(true)
	m.sched.After(m.opts.NoticeDuration, func() {
		if !m.closed && gen == m.noticeGen {
			m.view.ShowSacrificeNotice(false)
		}
	})
}
