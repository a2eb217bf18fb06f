package ui

import (
	"github.com/gdamore/tcell/v2"
)

// Action is a game command produced by a key event
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateCW
	ActionRotateCCW
)

// MapKey translates a terminal key event into a game action. Unbound keys
// map to ActionNone. Ctrl+C arrives as its own key code in raw mode and is
// treated as quit.
func MapKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyRight:
		return ActionMoveRight
	case tcell.KeyDown:
		return ActionSoftDrop
	case tcell.KeyUp:
		return ActionRotateCW
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return ActionQuit
		case 'a':
			return ActionMoveLeft
		case 'd':
			return ActionMoveRight
		case 's':
			return ActionSoftDrop
		case 'w', 'k':
			return ActionRotateCW
		case 'j':
			return ActionRotateCCW
		case ' ':
			return ActionHardDrop
		}
	}
	return ActionNone
}
