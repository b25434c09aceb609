package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys, buttons and pointer events into actions.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionUp               // W, Up arrow - move forward, focus previous button
	ActionDown             // S, Down arrow - move backward, focus next button
	ActionConfirm          // Enter, Space - activate focused button
	ActionBack             // Escape - leave the current screen
	ActionRestart          // R - restart the run
	ActionQuit             // Q, Ctrl+C - exit the program
	ActionFocusNext        // Tab
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionFocusNext:
		return "FocusNext"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse state in world coordinates.
type Pointer struct {
	Pos   Vec2
	Down  bool // primary button held
	Valid bool // false when the pointer is outside the play area or unknown
}

// InputFrame is the input state for one simulated frame.
// Held actions are polled continuously (movement); pressed actions are
// edge-triggered and fire once.
type InputFrame struct {
	Held    map[Action]bool
	Pressed map[Action]bool
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Press marks an action as triggered this frame.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// IsHeld reports whether the action is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// IsPressed reports whether the action was triggered this frame.
func (f InputFrame) IsPressed(a Action) bool {
	return f.Pressed[a]
}

// Clear resets all actions for the next frame. The pointer is kept since
// frontends only report it when it changes.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
}
