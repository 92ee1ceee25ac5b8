package tui

import "github.com/gdamore/tcell/v2"

// Action identifies a viewer command bound to a key.
type Action int

// Viewer actions.
const (
	ActionNone Action = iota
	ActionQuit
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionAnchor
	ActionCancel
	ActionSnap
	ActionHighlight
	ActionUnhighlight
	ActionYank
	ActionWrite
	ActionReload
)

// actionFor maps a key event to a viewer action.
func actionFor(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape:
		return ActionCancel
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return ActionQuit
		case 'h':
			return ActionLeft
		case 'l':
			return ActionRight
		case 'k':
			return ActionUp
		case 'j':
			return ActionDown
		case 'v':
			return ActionAnchor
		case 'w':
			return ActionSnap
		case 'H':
			return ActionHighlight
		case 'u':
			return ActionUnhighlight
		case 'y':
			return ActionYank
		case 'W':
			return ActionWrite
		case 'r':
			return ActionReload
		}
	}
	return ActionNone
}
