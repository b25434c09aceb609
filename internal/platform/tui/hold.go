package tui

import (
	"time"

	"github.com/vovakirdan/triangle-dodger/internal/core"
)

// DefaultHoldWindow covers the gap between a key press and the terminal's
// first auto-repeat on common setups.
const DefaultHoldWindow = 220 * time.Millisecond

// heldKeys emulates key-down polling. Terminals only report presses (and
// auto-repeats), so a direction counts as held until its window expires
// without a new event.
type heldKeys struct {
	window time.Duration
	until  map[core.Action]time.Time
}

func newHeldKeys(window time.Duration) *heldKeys {
	return &heldKeys{window: window, until: make(map[core.Action]time.Time)}
}

var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// press (re)starts the window for a direction and releases the opposite one.
func (h *heldKeys) press(a core.Action, now time.Time) {
	h.until[a] = now.Add(h.window)
	delete(h.until, opposite[a])
}

// apply marks every direction still inside its window as held and forgets
// the expired ones.
func (h *heldKeys) apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.until {
		if now.After(t) {
			delete(h.until, a)
			continue
		}
		frame.Hold(a)
	}
}

func (h *heldKeys) releaseAll() {
	clear(h.until)
}
