package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionType
	ActionErase
	ActionSubmit
	ActionSacrifice
	ActionRestart
	ActionCertificate
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionType:
		return "type"
	case ActionErase:
		return "erase"
	case ActionSubmit:
		return "submit"
	case ActionSacrifice:
		return "sacrifice"
	case ActionRestart:
		return "restart"
	case ActionCertificate:
		return "certificate"
	case ActionQuit:
		return "quit"
	}
	return "none"
}

// keyToAction maps a tcell key event to a game action. On the end screens
// letters are commands; while playing they go into the answer field.
func keyToAction(ev *tcell.EventKey, ended bool) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return ActionQuit
	case tcell.KeyEnter:
		if ended {
			return ActionNone
		}
		return ActionSubmit
	case tcell.KeyTab:
		if ended {
			return ActionNone
		}
		return ActionSacrifice
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if ended {
			return ActionNone
		}
		return ActionErase
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	if !ended {
		return ActionType
	}

	// Rune keys.
	switch ev.Rune() {
	case 'r', 'R':
		return ActionRestart
	case 'p', 'P':
		return ActionCertificate
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
