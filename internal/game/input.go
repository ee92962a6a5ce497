package game

import (
	"shadow-leap/internal/level"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionPause
	ActionRestart
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyRight:
		return ActionMoveRight
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W', 'k', 'K':
		return ActionMoveUp
	case 's', 'S', 'j', 'J':
		return ActionMoveDown
	case 'd', 'D', 'l', 'L':
		return ActionMoveRight
	case 'a', 'A', 'h', 'H':
		return ActionMoveLeft
	case 'p', 'P', ' ':
		return ActionPause
	case 'r', 'R':
		return ActionRestart
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDirection converts a movement action to a step direction.
func actionToDirection(a Action) (level.Direction, bool) {
	switch a {
	case ActionMoveUp:
		return level.Up, true
	case ActionMoveDown:
		return level.Down, true
	case ActionMoveLeft:
		return level.Left, true
	case ActionMoveRight:
		return level.Right, true
	}
	return 0, false
}
