package anim

// Pose is the walker's sprite state.
type Pose uint8

const (
	PoseStand Pose = iota
	PoseWalkA
	PoseWalkB
	PoseFalling
)

func (p Pose) String() string {
	switch p {
	case PoseStand:
		return "stand"
	case PoseWalkA:
		return "walk-a"
	case PoseWalkB:
		return "walk-b"
	case PoseFalling:
		return "falling"
	}
	return "unknown"
}
