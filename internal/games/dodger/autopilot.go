package dodger

import "github.com/vovakirdan/triangle-dodger/internal/core"

// Autopilot steers the player for headless runs and demos. It looks at the
// obstacles that will reach the player's row soon and strafes away from the
// nearest threat, drifting back to its home position when the lane is clear.
type Autopilot struct {
	// Lookahead is how many seconds ahead a threat is considered.
	Lookahead float64
	// Margin is extra clearance added around the player, in world units.
	Margin float64
}

// NewAutopilot returns an autopilot with reasonable defaults.
func NewAutopilot() Autopilot {
	return Autopilot{Lookahead: 0.6, Margin: 12}
}

// Controls decides the movement for this frame.
func (a Autopilot) Controls(g *Game) Controls {
	p := g.Player()
	cfg := g.Config()
	reach := p.Size() + a.Margin

	var threat *Obstacle
	bestTime := a.Lookahead
	for _, o := range g.Obstacles() {
		if o.Vel.Y <= 0 || o.Pos.Y > p.Pos.Y+reach {
			continue
		}
		if abs(o.Pos.X-p.Pos.X) > o.Radius+reach {
			continue
		}
		t := (p.Pos.Y - reach - o.Radius - o.Pos.Y) / o.Vel.Y
		if t < bestTime {
			bestTime = t
			threat = o
		}
	}

	if threat == nil {
		return a.home(p, cfg.Player.StartX, cfg.Player.StartY)
	}

	var c Controls
	goLeft := threat.Pos.X > p.Pos.X
	// Near a wall, dodge the other way.
	if goLeft && p.Pos.X-reach < p.Size()*2 {
		goLeft = false
	} else if !goLeft && p.Pos.X+reach > cfg.World.Width-p.Size()*2 {
		goLeft = true
	}
	c.Left, c.Right = goLeft, !goLeft
	// Back off when the threat is nearly on top of us.
	if bestTime < a.Lookahead/3 {
		c.Down = true
	}
	return c
}

func (a Autopilot) home(p *Player, x, y float64) Controls {
	const deadzone = 8
	var c Controls
	d := core.V(x, y).Sub(p.Pos)
	c.Left = d.X < -deadzone
	c.Right = d.X > deadzone
	c.Up = d.Y < -deadzone
	c.Down = d.Y > deadzone
	return c
}
