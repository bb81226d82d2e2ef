package bridge

import "riddle-bridge/internal/anim"

// Presenter renders the game. The machine calls it from the scheduler
// goroutine only. Level indices are zero-based.
type Presenter interface {
	anim.Stage

	ShowRiddle(prompt string)
	HideRiddle()
	ShowLevel(index, total int)
	ShowLight(level, max int)
	ShowError(visible bool)
	ShowSacrificeNotice(visible bool)
	// ShowDeathScreen shows the death screen; an empty message hides the
	// cause line.
	ShowDeathScreen(message string)
	ShowWinScreen(message string)
	EnableControls(enabled bool)
}

// Sequencer plays animation sequences for the machine.
type Sequencer interface {
	Run(req anim.Request, onComplete func(anim.Kind)) error
}
