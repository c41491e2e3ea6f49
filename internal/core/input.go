package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move paddle left
	ActionRight          // D, Right arrow - move paddle right
	ActionFire           // Space - fire paddle laser / launch
	ActionMagnet         // M - toggle paddle magnet
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionMagnet:
		return "Magnet"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions pressed during one simulation tick.
// It is a plain value: copies are independent and frames compare with ==.
type InputFrame struct {
	bits uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a > ActionPause {
		return
	}
	f.bits |= 1 << uint(a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a > ActionPause {
		return false
	}
	return f.bits&(1<<uint(a)) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}
