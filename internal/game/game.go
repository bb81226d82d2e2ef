// Package game runs one riddle bridge session on a tcell screen: it owns the
// event loop, turns key presses into game actions, and restarts runs.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"riddle-bridge/internal/anim"
	"riddle-bridge/internal/audio"
	"riddle-bridge/internal/bridge"
	"riddle-bridge/internal/certificate"
	"riddle-bridge/internal/logging"
	"riddle-bridge/internal/render"
	"riddle-bridge/internal/riddle"

	"github.com/gdamore/tcell/v2"
)

// maxInput caps the answer field length.
const maxInput = 64

// originX is where the walker stands before the first crossing.
const originX = 150.0

// Options configures a session.
type Options struct {
	Timing anim.Timing
	Bridge bridge.Options
	Frame  time.Duration

	// CertificateDir is where won runs may print a certificate. Empty
	// disables the offer.
	CertificateDir string

	Sound  audio.Player
	Logger *slog.Logger
}

// Game is one player's session.
type Game struct {
	screen tcell.Screen
	table  *riddle.Table
	opts   Options
	log    *slog.Logger

	sched   anim.Scheduler
	view    *render.View
	seq     *anim.Sequencer
	machine *bridge.Machine
	input   []rune
	runs    int
	printed bool
	quit    bool
}

// New creates a session on an initialized screen.
func New(screen tcell.Screen, table *riddle.Table, opts Options) *Game {
	if opts.Sound == nil {
		opts.Sound = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Bridge.Logger == nil {
		opts.Bridge.Logger = opts.Logger
	}
	if opts.Timing.Walk <= 0 {
		opts.Timing = anim.DefaultTiming()
	}
	return &Game{
		screen: screen,
		table:  table,
		opts:   opts,
		log:    opts.Logger,
	}
}

// Run plays until the player quits or ctx is cancelled, then finalizes the
// screen. Input is read on its own goroutine and handed to the event loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	loop := anim.NewLoop(g.opts.Frame)
	loop.Post(func() { g.Start(loop) })

	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				loop.Stop()
				return
			}
			ok := loop.Post(func() {
				if g.HandleEvent(ev) {
					loop.Stop()
				}
			})
			if !ok {
				return
			}
		}
	}()

	err := loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Start begins the first run on sched. It must be called on the
// scheduler's goroutine, as must HandleEvent.
func (g *Game) Start(sched anim.Scheduler) {
	g.sched = sched
	g.view = render.NewView(g.screen, g.table.Len(), originX, g.opts.Timing.StepDistance)
	g.newRun()
}

// newRun replaces the machine with a fresh one and a fresh game record.
func (g *Game) newRun() {
	if g.machine != nil {
		g.machine.Close()
	}
	g.runs++
	g.input = g.input[:0]
	g.printed = false
	g.view.Reset()

	cued := cueView{View: g.view, sound: g.opts.Sound}
	g.seq = anim.NewSequencer(g.sched, cued, g.opts.Timing, originX)
	seq := endHook{Sequencer: g.seq, after: g.checkEnd}
	g.machine = bridge.NewMachine(g.table, seq, g.sched, cued, g.opts.Bridge)
	g.log.Info("run begins", "run", g.runs)
	g.machine.Start()
}

// HandleEvent applies one tcell event and reports whether the session
// should end.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.view.Resize()
	case *tcell.EventKey:
		ended := g.machine.State().Phase.Terminal()
		g.apply(keyToAction(ev, ended), ev.Rune())
	}
	return g.quit
}

func (g *Game) apply(a Action, r rune) {
	st := g.machine.State()
	switch a {
	case ActionQuit:
		g.log.Info("player quit", "phase", st.Phase)
		g.quit = true

	case ActionType:
		if !st.Prompted || len(g.input) >= maxInput {
			return
		}
		g.input = append(g.input, r)
		g.view.SetInput(string(g.input))

	case ActionErase:
		if !st.Prompted || len(g.input) == 0 {
			return
		}
		g.input = g.input[:len(g.input)-1]
		g.view.SetInput(string(g.input))

	case ActionSubmit:
		g.afterInput(g.machine.SubmitAnswer(string(g.input)))

	case ActionSacrifice:
		g.afterInput(g.machine.SacrificeLight())

	case ActionRestart:
		g.newRun()

	case ActionCertificate:
		g.printCertificate()
	}
}

// afterInput clears the answer field once a crossing begins.
func (g *Game) afterInput(err error) {
	switch {
	case err == nil:
		g.input = g.input[:0]
	case errors.Is(err, bridge.ErrNoMatch):
		// The error indicator is already showing; keep the text for editing.
	case errors.Is(err, bridge.ErrInvalidAction):
		// A crossing is underway or the riddle is not up yet.
	default:
		g.log.Error("input failed", "err", err)
	}
}

// endHook runs after each completed sequence, once the machine has
// processed it.
type endHook struct {
	*anim.Sequencer
	after func()
}

func (h endHook) Run(req anim.Request, onComplete func(anim.Kind)) error {
	return h.Sequencer.Run(req, func(k anim.Kind) {
		onComplete(k)
		h.after()
	})
}

// checkEnd fills in the end screen extras once the run is over.
func (g *Game) checkEnd() {
	if st := g.machine.State(); st.Phase.Terminal() {
		g.showEnd(st)
	}
}

func (g *Game) showEnd(st bridge.State) {
	g.view.SetSummary(summaryLines(st, g.machine.Total(), g.machine.MaxLight()))
	g.view.OfferCertificate(st.Phase == bridge.PhaseWon && g.opts.CertificateDir != "")
	g.log.Info("run over", "run", g.runs, "phase", st.Phase, "light", st.Light,
		"answered", st.Answered, "sacrificed", st.Sacrificed)
}

func (g *Game) printCertificate() {
	st := g.machine.State()
	if st.Phase != bridge.PhaseWon || g.opts.CertificateDir == "" {
		return
	}
	if g.printed {
		return
	}
	path, err := certificate.WriteFile(g.opts.CertificateDir, certificate.Record{
		Message:    g.machine.Tier().Message(),
		Light:      st.Light,
		MaxLight:   g.machine.MaxLight(),
		Riddles:    g.machine.Total(),
		Answered:   st.Answered,
		Sacrificed: st.Sacrificed,
		Tiles:      st.TilesPlaced,
		Date:       g.sched.Now(),
	})
	if err != nil {
		g.log.Error("certificate failed", "err", err)
		g.view.SetStatus(fmt.Sprintf("Could not write certificate: %v", err))
		return
	}
	g.printed = true
	g.log.Info("certificate written", "path", path)
	g.view.SetStatus("Certificate saved to " + path)
}

// Machine exposes the current run's state machine.
func (g *Game) Machine() *bridge.Machine { return g.machine }
