package dodger

import "github.com/vovakirdan/triangle-dodger/internal/core"

// Command is an action a control triggers on activation.
type Command interface {
	Execute()
}

// CommandFunc adapts a function to the Command interface.
type CommandFunc func()

// Execute calls f().
func (f CommandFunc) Execute() { f() }

// ButtonStyle is the face colour per interaction state.
type ButtonStyle struct {
	Normal, Hover, Pressed core.Color
}

// Button styles used on the menu screens.
var (
	StyleGreen = ButtonStyle{core.ColorButtonGreen, core.ColorButtonGreenHover, core.ColorButtonGreenPressed}
	StyleRed   = ButtonStyle{core.ColorButtonRed, core.ColorButtonRedHover, core.ColorButtonRedPressed}
	StyleBlue  = ButtonStyle{core.ColorButtonBlue, core.ColorButtonBlueHover, core.ColorButtonBluePressed}
)

// Button is a clickable rectangle with a centred label. It fires its command
// when the pointer is released over it after being pressed over it.
type Button struct {
	Label   string
	Bounds  core.Rect
	Style   ButtonStyle
	Command Command

	hovered bool
	pressed bool
}

// NewButton creates a button.
func NewButton(label string, bounds core.Rect, style ButtonStyle, cmd Command) *Button {
	return &Button{Label: label, Bounds: bounds, Style: style, Command: cmd}
}

// Update feeds the pointer state and reports whether the button fired.
func (b *Button) Update(pointer core.Vec2, down bool) bool {
	b.hovered = b.Bounds.Contains(pointer)

	fired := false
	switch {
	case b.hovered && down:
		b.pressed = true
	case !down:
		if b.pressed && b.hovered {
			b.Activate()
			fired = true
		}
		b.pressed = false
	}
	return fired
}

// Activate runs the command directly, as keyboard confirm does.
func (b *Button) Activate() {
	if b.Command != nil {
		b.Command.Execute()
	}
}

// Hovered reports whether the pointer is over the button.
func (b *Button) Hovered() bool { return b.hovered }

// Pressed reports whether a press started on the button is being held.
func (b *Button) Pressed() bool { return b.pressed }

// Color returns the face colour for the current state.
func (b *Button) Color() core.Color {
	switch {
	case b.pressed:
		return b.Style.Pressed
	case b.hovered:
		return b.Style.Hover
	default:
		return b.Style.Normal
	}
}

// ButtonGroup is the buttons of one screen plus a keyboard focus.
type ButtonGroup struct {
	Buttons []*Button
	focus   int
}

// Update feeds the pointer to every button. An invalid pointer is treated as
// released outside all buttons.
func (g *ButtonGroup) Update(p core.Pointer) {
	pos, down := p.Pos, p.Down
	if !p.Valid {
		pos, down = core.V(-1, -1), false
	}
	for i, b := range g.Buttons {
		if b.Update(pos, down) {
			g.focus = i
			return
		}
		if b.Hovered() {
			g.focus = i
		}
	}
}

// Next moves focus down, wrapping.
func (g *ButtonGroup) Next() {
	if len(g.Buttons) > 0 {
		g.focus = (g.focus + 1) % len(g.Buttons)
	}
}

// Prev moves focus up, wrapping.
func (g *ButtonGroup) Prev() {
	if n := len(g.Buttons); n > 0 {
		g.focus = (g.focus - 1 + n) % n
	}
}

// Focus returns the index of the focused button.
func (g *ButtonGroup) Focus() int { return g.focus }

// Activate fires the focused button.
func (g *ButtonGroup) Activate() {
	if g.focus < len(g.Buttons) {
		g.Buttons[g.focus].Activate()
	}
}

// ResetFocus puts focus back on the first button and drops pointer state.
func (g *ButtonGroup) ResetFocus() {
	g.focus = 0
	for _, b := range g.Buttons {
		b.hovered, b.pressed = false, false
	}
}
