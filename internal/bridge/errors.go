package bridge

import "errors"

var (
	// ErrInvalidAction is returned for input arriving while a sequence is
	// running, before a riddle is shown, or after the game ended. It is
	// logged for diagnostics and never shown to the player.
	ErrInvalidAction = errors.New("invalid action")
	// ErrNoMatch is returned for a wrong answer. The player may retry.
	ErrNoMatch = errors.New("answer does not match")
)
