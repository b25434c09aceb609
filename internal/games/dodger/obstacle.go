package dodger

import (
	"math"

	"github.com/vovakirdan/triangle-dodger/internal/config"
	"github.com/vovakirdan/triangle-dodger/internal/core"
)

// Obstacle is a falling circle. Pos is the circle's centre.
type Obstacle struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Tint   core.Color
}

// NewObstacle creates an obstacle falling straight down. Its speed is
// baseSpeed jittered by SpeedVariation; the tint reflects how fast it is
// compared to the current game speed.
func NewObstacle(pos core.Vec2, baseSpeed, gameSpeed float64, cfg config.ObstacleConfig, rng core.Rand) *Obstacle {
	radius := core.Uniform(rng, cfg.MinRadius, cfg.MaxRadius)
	v := SpeedVariation(baseSpeed)
	speed := baseSpeed * core.Uniform(rng, 1-v, 1+v)

	ratio := 1.0
	if gameSpeed > 0 {
		ratio = speed / gameSpeed
	}
	return &Obstacle{
		Pos:    pos,
		Vel:    core.V(0, speed),
		Radius: radius,
		Tint:   TintForRatio(ratio),
	}
}

// SpeedVariation returns the half width of the speed jitter band: 10% at the
// starting speed, shrinking toward 5% as the game speeds up.
func SpeedVariation(baseSpeed float64) float64 {
	return math.Max(0.05, 0.10-(baseSpeed-300)/900*0.05)
}

// TintForRatio colours an obstacle by speed relative to the game speed.
func TintForRatio(ratio float64) core.Color {
	switch {
	case ratio < 0.9:
		return core.ColorGreen
	case ratio < 1.1:
		return core.ColorYellow
	case ratio < 1.3:
		return core.ColorRed
	default:
		return core.ColorMagenta
	}
}

// Speed returns |Vel|.
func (o *Obstacle) Speed() float64 {
	return o.Vel.Len()
}

// Update integrates position.
func (o *Obstacle) Update(dt float64) {
	o.Pos = o.Pos.Add(o.Vel.Scale(dt))
}

// Bounds returns the square enclosing the circle.
func (o *Obstacle) Bounds() core.Rect {
	return core.RectAround(o.Pos, o.Radius, o.Radius)
}

// Offscreen reports whether the obstacle has fallen past cullY.
func (o *Obstacle) Offscreen(cullY float64) bool {
	return o.Pos.Y > cullY
}
