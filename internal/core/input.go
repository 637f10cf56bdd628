package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left, h - shift piece left
	ActionRight           // Right, l - shift piece right
	ActionDown            // Down, j - soft drop one row
	ActionDrop            // Space - hard drop
	ActionRotate          // Up, k, x - rotate clockwise
	ActionPause           // P - pause/unpause game
	ActionRestart         // R key - restart game after game over
	ActionQuit            // Q, Ctrl+C - exit game
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
	case ActionDown:
		return "Down"
	case ActionDrop:
		return "Drop"
	case ActionRotate:
		return "Rotate"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions delivered between two driver ticks.
// Actions keep their arrival order; the same action may appear more than once.
type InputFrame struct {
	Actions []Action
	At      time.Time // Tick timestamp, set by the driver before stepping
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make([]Action, 0, 8),
	}
}

// Push appends an action to the frame.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets all actions for the next frame, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
	f.At = time.Time{}
}
