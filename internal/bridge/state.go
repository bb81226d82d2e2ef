// Package bridge is the riddle bridge's game core: the mutable game record,
// the light tracker and the progression state machine.
package bridge

// Phase tracks the progression state machine.
type Phase uint8

const (
	PhaseAwaitingInput Phase = iota
	PhaseAdvancing
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingInput:
		return "awaiting-input"
	case PhaseAdvancing:
		return "advancing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	}
	return "unknown"
}

// Terminal reports whether no further transitions are possible.
func (p Phase) Terminal() bool { return p == PhaseWon || p == PhaseLost }

// DefaultMaxLight is the starting and maximum light level.
const DefaultMaxLight = 5

// State is the single mutable game record. It is owned by one Machine and
// only touched from its scheduler's goroutine.
type State struct {
	RiddleIndex    int
	Light          int
	Busy           bool
	DiedFromHazard bool
	Phase          Phase

	// Prompted is true while the current riddle is on screen and input is
	// accepted.
	Prompted bool

	// Run tally, reported on the end screens.
	TilesPlaced  int
	Answered     int
	Sacrificed   int
	WrongGuesses int
}

// NewState returns the starting record for a run.
func NewState(maxLight int) *State {
	return &State{Light: maxLight, Phase: PhaseAwaitingInput}
}
