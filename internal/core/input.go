package core

// Action represents a semantic, edge-triggered game action, abstracted from
// physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Up, W, Space - jump / wall jump
	ActionDash           // X - dash in the facing direction
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R - reset the world
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDash:
		return "Dash"
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

// InputFrame represents the input state for one simulation tick: the held
// horizontal movement flags plus the actions triggered during the tick.
type InputFrame struct {
	Left  bool // Left held
	Right bool // Right held

	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Horizontal returns right_held - left_held: -1, 0 or 1.
func (f InputFrame) Horizontal() float64 {
	h := 0.0
	if f.Right {
		h++
	}
	if f.Left {
		h--
	}
	return h
}

// Clear resets the triggered actions for the next frame. Held flags persist
// because they follow key-down/key-up edges, not ticks.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Left = f.Left
	clone.Right = f.Right
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
