package dodger

import "github.com/vovakirdan/triangle-dodger/internal/core"

// ScreenShake jitters the view for a fixed time after a hit.
type ScreenShake struct {
	Remaining float64 // seconds left
	Intensity float64 // max offset in world units
	Offset    core.Vec2
}

// Start (re)starts the shake.
func (s *ScreenShake) Start(duration, intensity float64) {
	s.Remaining = duration
	s.Intensity = intensity
}

// Update draws a new random offset each frame while active and settles back
// to zero when the time runs out.
func (s *ScreenShake) Update(dt float64, rng core.Rand) {
	if s.Remaining <= 0 {
		return
	}
	s.Remaining -= dt
	s.Offset = core.V(
		core.Uniform(rng, -1, 1)*s.Intensity,
		core.Uniform(rng, -1, 1)*s.Intensity,
	)
	if s.Remaining <= 0 {
		s.Remaining = 0
		s.Offset = core.Vec2{}
	}
}

// Active reports whether the shake is still running.
func (s *ScreenShake) Active() bool {
	return s.Remaining > 0
}

// Reset stops the shake immediately.
func (s *ScreenShake) Reset() {
	*s = ScreenShake{}
}
