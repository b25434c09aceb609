package dodger

import (
	"github.com/vovakirdan/triangle-dodger/internal/config"
	"github.com/vovakirdan/triangle-dodger/internal/core"
)

// PowerState is a timed visual mode of the player. Only one is active at a
// time; a new pulse overwrites the current one.
type PowerState int

const (
	PowerNormal PowerState = iota
	PowerSpeedBoost
	PowerInvulnerable
	PowerCharging
	PowerOvercharged
)

// String returns a human-readable name for the power state.
func (s PowerState) String() string {
	switch s {
	case PowerNormal:
		return "Normal"
	case PowerSpeedBoost:
		return "SpeedBoost"
	case PowerInvulnerable:
		return "Invulnerable"
	case PowerCharging:
		return "Charging"
	case PowerOvercharged:
		return "Overcharged"
	default:
		return "Unknown"
	}
}

// Colors returns the fill and outline colour of the triangle in state s.
func (s PowerState) Colors() (fill, outline core.Color) {
	switch s {
	case PowerSpeedBoost:
		return core.ColorSky, core.ColorWhite
	case PowerInvulnerable:
		return core.ColorYellow, core.ColorWhite
	case PowerCharging:
		return core.ColorGreen, core.ColorWhite
	case PowerOvercharged:
		return core.ColorRed, core.ColorYellow
	default:
		return core.ColorWhite, core.ColorCyan
	}
}

// Player is the triangle the user steers. Pos is the triangle's centre.
type Player struct {
	Pos            core.Vec2
	Rotation       float64 // degrees, always in [0, 360)
	TargetRotation float64

	power         PowerState
	powerElapsed  float64
	powerDuration float64

	flashing  bool
	flashTime float64

	cfg    config.PlayerConfig
	worldW float64
	maxY   float64
}

// NewPlayer creates a player at its start position.
func NewPlayer(cfg config.DodgerConfig) *Player {
	p := &Player{
		cfg:    cfg.Player,
		worldW: cfg.World.Width,
		maxY:   cfg.MaxY(),
	}
	p.Reset()
	return p
}

// Reset restores start position, rotation and power state in place.
func (p *Player) Reset() {
	p.Pos = core.V(p.cfg.StartX, p.cfg.StartY)
	p.Rotation = 0
	p.TargetRotation = 0
	p.power = PowerNormal
	p.powerElapsed = 0
	p.powerDuration = 0
}

// Size returns the half extent of the triangle.
func (p *Player) Size() float64 {
	return p.cfg.Size
}

// MoveLeft strafes left and banks the triangle.
func (p *Player) MoveLeft(dt float64) {
	p.Pos.X -= p.cfg.Speed * dt
	p.clamp()
	p.TargetRotation = -p.cfg.TiltSide
}

// MoveRight strafes right and banks the triangle.
func (p *Player) MoveRight(dt float64) {
	p.Pos.X += p.cfg.Speed * dt
	p.clamp()
	p.TargetRotation = p.cfg.TiltSide
}

// MoveForward moves up the screen.
func (p *Player) MoveForward(dt float64) {
	p.Pos.Y -= p.cfg.Speed * dt
	p.clamp()
	p.TargetRotation = -p.cfg.TiltForward
}

// MoveBackward moves down the screen.
func (p *Player) MoveBackward(dt float64) {
	p.Pos.Y += p.cfg.Speed * dt
	p.clamp()
	p.TargetRotation = p.cfg.TiltForward
}

func (p *Player) clamp() {
	p.Pos.X = core.ClampF(p.Pos.X, p.cfg.Size, p.worldW-p.cfg.Size)
	p.Pos.Y = core.ClampF(p.Pos.Y, p.cfg.MinY, p.maxY)
}

// Update turns toward the target rotation along the shortest arc and
// advances the flash and power timers.
func (p *Player) Update(dt float64) {
	p.updateRotation(dt)

	if p.flashing {
		p.flashTime += dt
	}

	if p.powerDuration > 0 {
		p.powerElapsed += dt
		if p.powerElapsed >= p.powerDuration {
			p.power = PowerNormal
			p.powerDuration = 0
		}
	}

	p.clamp()
}

func (p *Player) updateRotation(dt float64) {
	diff := core.AngleDiff(p.Rotation, p.TargetRotation)
	step := p.cfg.RotationSpeed * dt

	switch {
	case diff > 1 || diff < -1:
		if abs(diff) <= step {
			p.Rotation = p.TargetRotation
		} else if diff > 0 {
			p.Rotation += step
		} else {
			p.Rotation -= step
		}
	default:
		p.Rotation = p.TargetRotation
	}
	p.Rotation = core.NormalizeDeg(p.Rotation)
}

// SetPowerState starts a power pulse lasting duration seconds.
func (p *Player) SetPowerState(s PowerState, duration float64) {
	p.power = s
	p.powerElapsed = 0
	p.powerDuration = duration
}

// PowerState returns the active power state.
func (p *Player) PowerState() PowerState {
	return p.power
}

// SetFlashing turns blinking on or off. The blink phase restarts only when
// the flag actually changes.
func (p *Player) SetFlashing(on bool) {
	if on == p.flashing {
		return
	}
	p.flashing = on
	p.flashTime = 0
}

// Flashing reports whether the player is blinking.
func (p *Player) Flashing() bool {
	return p.flashing
}

// Visible reports whether the triangle is drawn this frame.
func (p *Player) Visible() bool {
	if !p.flashing {
		return true
	}
	return int(p.flashTime*p.cfg.FlashRate)%2 == 0
}

// Points returns the triangle's vertices in world space: tip first, then
// bottom-left and bottom-right.
func (p *Player) Points() [3]core.Vec2 {
	s := p.cfg.Size
	local := [3]core.Vec2{core.V(0, -s), core.V(-s, s), core.V(s, s)}
	var out [3]core.Vec2
	for i, v := range local {
		out[i] = p.Pos.Add(v.Rotate(p.Rotation))
	}
	return out
}

// Bounds returns the axis-aligned box around the rotated triangle.
func (p *Player) Bounds() core.Rect {
	pts := p.Points()
	return core.BoundsOf(pts[:]...)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
