package core

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm   // Enter: start game, commit name
	ActionBackspace // delete last name character
	ActionPause
	ActionReset     // back to menu with a fresh run
	ActionQuit      // leave the game
	ActionToggleFPS // show or hide the frame counter
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBackspace:
		return "Backspace"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	case ActionToggleFPS:
		return "ToggleFPS"
	default:
		return "Unknown"
	}
}

// DirectionPriority is the order in which held direction keys are considered
// when several are down at once.
var DirectionPriority = [4]Action{ActionUp, ActionDown, ActionLeft, ActionRight}

// InputFrame is the input snapshot for one simulation tick. Backends build it
// once per tick and the game reads it; nothing polls the keyboard directly.
type InputFrame struct {
	// Actions holds edge-triggered actions (key went down this tick).
	Actions map[Action]bool
	// Held holds level-triggered state (key is down right now).
	Held map[Action]bool
	// Text holds printable characters typed this tick.
	Text []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered this tick.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a was triggered this tick.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Hold marks an action as currently held.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld reports whether a is held, or was triggered this tick.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a] || f.Actions[a]
}

// Type appends a typed character.
func (f *InputFrame) Type(r rune) {
	f.Text = append(f.Text, r)
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
	f.Text = f.Text[:0]
}

// Clone returns a deep copy of the frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	for k, v := range f.Held {
		c.Held[k] = v
	}
	c.Text = append([]rune(nil), f.Text...)
	return c
}
