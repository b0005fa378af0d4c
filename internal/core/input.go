package core

// Action represents a discrete game action, abstracted from physical key
// presses. The platform maps keys to actions so the simulation never sees
// raw input events.
type Action int

const (
	ActionNone     Action = iota
	ActionDescribe        // G key - request a caption for the cell
	ActionQuit            // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionDescribe:
		return "Describe"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// The pointer is a continuous sample (the most recent position is carried
// from frame to frame); actions are edge-triggered and cleared every tick.
type InputFrame struct {
	// PointerX, PointerY hold the latest pointer position in viewport
	// cell coordinates.
	PointerX, PointerY int

	// PointerSeen is false until the first pointer sample arrives, so the
	// cell does not chase a fabricated (0,0) target at startup.
	PointerSeen bool

	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// SetPointer records a pointer sample in viewport cell coordinates.
func (f *InputFrame) SetPointer(x, y int) {
	f.PointerX = x
	f.PointerY = y
	f.PointerSeen = true
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

// Clear resets the edge-triggered actions for the next frame. The pointer
// sample is kept so the movement target persists between pointer events.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
