package game

import (
	"riddle-bridge/internal/anim"
	"riddle-bridge/internal/audio"
	"riddle-bridge/internal/render"
)

// cueView is the presenter the machine drives: the tcell view with sound
// cues layered on top.
type cueView struct {
	*render.View
	sound audio.Player
}

func (c cueView) SetPose(p anim.Pose) {
	switch p {
	case anim.PoseWalkA, anim.PoseWalkB:
		c.sound.Step()
	case anim.PoseFalling:
		c.sound.Fall()
	}
	c.View.SetPose(p)
}

func (c cueView) ShowError(visible bool) {
	if visible {
		c.sound.Error()
	}
	c.View.ShowError(visible)
}

func (c cueView) ShowSacrificeNotice(visible bool) {
	if visible {
		c.sound.Sacrifice()
	}
	c.View.ShowSacrificeNotice(visible)
}

func (c cueView) ShowWinScreen(message string) {
	c.sound.Win()
	c.View.ShowWinScreen(message)
}
