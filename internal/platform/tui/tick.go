// Package tui runs Triangle Dodger in the terminal with Bubble Tea. It maps
// keys and mouse events onto input frames, steps the session on a tick and
// draws frames into a cell buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxTickDelta caps a single step after the terminal stalls (suspend, slow
// redraw), so obstacles never jump through the player.
const maxTickDelta = 250 * time.Millisecond

// TickMsg carries the wall-clock time of a simulation tick.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickClock turns tick timestamps into simulation steps in seconds.
type tickClock struct {
	last    time.Time
	nominal float64
}

func newTickClock(tickRate int) tickClock {
	return tickClock{nominal: 1 / float64(tickRate)}
}

// step returns the time since the previous tick. The first tick, and any
// tick arriving out of order, uses the nominal interval.
func (c *tickClock) step(now time.Time) float64 {
	prev := c.last
	c.last = now
	if prev.IsZero() || !now.After(prev) {
		return c.nominal
	}
	return min(now.Sub(prev), maxTickDelta).Seconds()
}
