package bridge

import "riddle-bridge/assets"

// Tier is the narrative grade of a win, derived from the light left.
type Tier uint8

const (
	TierNeutral Tier = iota
	TierBarely
	TierIntact
)

// TierFor grades a win by the final light level.
func TierFor(light int) Tier {
	switch {
	case light <= 2:
		return TierBarely
	case light >= 4:
		return TierIntact
	}
	return TierNeutral
}

// Message is the win screen text for the tier.
func (t Tier) Message() string {
	switch t {
	case TierBarely:
		return assets.WinBarely
	case TierIntact:
		return assets.WinIntact
	}
	return assets.WinNeutral
}

func (t Tier) String() string {
	switch t {
	case TierBarely:
		return "barely"
	case TierIntact:
		return "intact"
	}
	return "neutral"
}
