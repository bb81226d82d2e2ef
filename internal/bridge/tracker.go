package bridge

// Outcome is the result of a sacrifice.
type Outcome uint8

const (
	// Reduced means one light was spent.
	Reduced Outcome = iota
	// Depleted means there was no light left to spend.
	Depleted
)

func (o Outcome) String() string {
	if o == Depleted {
		return "depleted"
	}
	return "reduced"
}

// Tracker owns the light level. Sacrifice is the only way light changes and
// light never increases.
type Tracker struct {
	state *State
	max   int
}

// NewTracker binds a tracker to st.
func NewTracker(st *State, max int) *Tracker {
	return &Tracker{state: st, max: max}
}

// Sacrifice spends one light. With none left it marks the hazard death.
func (t *Tracker) Sacrifice() Outcome {
	if t.state.Light > 0 {
		t.state.Light--
		return Reduced
	}
	t.state.DiedFromHazard = true
	return Depleted
}

// Level is the current light.
func (t *Tracker) Level() int { return t.state.Light }

// Max is the light ceiling.
func (t *Tracker) Max() int { return t.max }

// Full reports whether no light has been spent yet.
func (t *Tracker) Full() bool { return t.state.Light >= t.max }
