package dodger

import "github.com/vovakirdan/triangle-dodger/internal/config"

// SpeedRamp raises the game speed in fixed steps and shortens the spawn
// interval with each step.
type SpeedRamp struct {
	Speed         float64
	SpawnInterval float64

	clock float64
	cfg   config.SpeedConfig
}

// NewSpeedRamp creates a ramp at its starting values.
func NewSpeedRamp(cfg config.SpeedConfig) *SpeedRamp {
	r := &SpeedRamp{cfg: cfg}
	r.Reset()
	return r
}

// Reset restores the starting speed and spawn interval.
func (r *SpeedRamp) Reset() {
	r.Speed = r.cfg.Initial
	r.SpawnInterval = r.cfg.SpawnInterval
	r.clock = 0
}

// Advance accumulates dt and applies one step once a full interval has
// elapsed. It reports whether a step was applied. A zero increment disables
// the ramp entirely.
func (r *SpeedRamp) Advance(dt float64) bool {
	if r.cfg.Increment == 0 {
		return false
	}
	r.clock += dt
	if r.clock < r.cfg.Interval {
		return false
	}
	r.clock = 0

	r.Speed += r.cfg.Increment
	if r.Speed > r.cfg.Max {
		r.Speed = r.cfg.Max
	}
	if next := r.SpawnInterval - r.cfg.SpawnIntervalStep; next > r.cfg.SpawnIntervalMinimum {
		r.SpawnInterval = next
	}
	return true
}

// Overcharged reports whether the speed is past the overcharge threshold.
func (r *SpeedRamp) Overcharged() bool {
	return r.Speed > r.cfg.OverchargeThreshold
}
