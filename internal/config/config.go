// Package config provides YAML-based tuning for Triangle Dodger and the
// difficulty presets layered on top of it.
package config

import (
	"errors"
	"fmt"
)

// DodgerConfig contains every tunable number of the game.
type DodgerConfig struct {
	World     WorldConfig    `yaml:"world"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Speed     SpeedConfig    `yaml:"speed"`
	Session   SessionConfig  `yaml:"session"`
	Effects   EffectsConfig  `yaml:"effects"`
	Fonts     FontsConfig    `yaml:"fonts"`
}

// WorldConfig defines the logical play area in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the triangle's movement and look.
type PlayerConfig struct {
	StartX        float64 `yaml:"start_x"`
	StartY        float64 `yaml:"start_y"`
	Speed         float64 `yaml:"speed"`          // units per second
	Size          float64 `yaml:"size"`           // half extent of the triangle
	RotationSpeed float64 `yaml:"rotation_speed"` // degrees per second
	TiltSide      float64 `yaml:"tilt_side"`      // target rotation when strafing
	TiltForward   float64 `yaml:"tilt_forward"`   // target rotation when moving up/down
	MinY          float64 `yaml:"min_y"`
	BottomMargin  float64 `yaml:"bottom_margin"` // max y = world height - margin
	FlashRate     float64 `yaml:"flash_rate"`    // blinks per second while invulnerable
	BoostPulse    float64 `yaml:"boost_pulse"`   // seconds of SpeedBoost per forward frame
}

// ObstacleConfig defines spawning and physics of the falling circles.
type ObstacleConfig struct {
	MinRadius      float64 `yaml:"min_radius"`
	MaxRadius      float64 `yaml:"max_radius"`
	SpawnMinX      float64 `yaml:"spawn_min_x"`
	SpawnMaxX      float64 `yaml:"spawn_max_x"`
	SpawnY         float64 `yaml:"spawn_y"`
	MinSpeedFactor float64 `yaml:"min_speed_factor"` // times game speed
	MaxSpeedFactor float64 `yaml:"max_speed_factor"`
	CullY          float64 `yaml:"cull_y"`
	Restitution    float64 `yaml:"restitution"`
}

// SpeedConfig defines the stepwise speed ramp and the spawn cadence tied to it.
type SpeedConfig struct {
	Initial              float64 `yaml:"initial"`
	Increment            float64 `yaml:"increment"`
	Interval             float64 `yaml:"interval"` // seconds between bumps
	Max                  float64 `yaml:"max"`
	OverchargeThreshold  float64 `yaml:"overcharge_threshold"`
	OverchargePulse      float64 `yaml:"overcharge_pulse"`
	SpawnInterval        float64 `yaml:"spawn_interval"`
	SpawnIntervalStep    float64 `yaml:"spawn_interval_step"`
	SpawnIntervalMinimum float64 `yaml:"spawn_interval_minimum"` // exclusive floor
}

// SessionConfig defines lives, invulnerability and score milestones.
type SessionConfig struct {
	Lives              int     `yaml:"lives"`
	Invulnerability    float64 `yaml:"invulnerability"`
	ChargingEvery      int     `yaml:"charging_every"`
	ChargingDuration   float64 `yaml:"charging_duration"`
	OverchargeEvery    int     `yaml:"overcharge_every"`
	OverchargeDuration float64 `yaml:"overcharge_duration"`
}

// EffectsConfig defines particles and screen shake.
type EffectsConfig struct {
	ShakeDuration       float64 `yaml:"shake_duration"`
	ShakeIntensity      float64 `yaml:"shake_intensity"`
	ExplosionParticles  int     `yaml:"explosion_particles"`
	ExplosionSpeed      float64 `yaml:"explosion_speed"`
	ExplosionLifeMin    float64 `yaml:"explosion_life_min"`
	ExplosionLifeMax    float64 `yaml:"explosion_life_max"`
	TrailLife           float64 `yaml:"trail_life"`
	BackgroundParticles int     `yaml:"background_particles"`
	BackgroundScroll    float64 `yaml:"background_scroll"` // fraction of game speed
	IdleStep            float64 `yaml:"idle_step"`         // fixed dt on menu screens
}

// FontsConfig lists font files the raster renderer tries in order.
type FontsConfig struct {
	Paths []string `yaml:"paths"`
}

// MaxY returns the lowest allowed player centre.
func (c DodgerConfig) MaxY() float64 {
	return c.World.Height - c.Player.BottomMargin
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid tuning")

// Validate rejects tunings the simulation cannot run with.
func (c DodgerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	check(c.Player.Size > 0, "player.size must be positive, got %g", c.Player.Size)
	check(c.Player.MinY <= c.MaxY(), "player.min_y %g is below max y %g", c.Player.MinY, c.MaxY())
	check(c.Obstacles.MinRadius > 0 && c.Obstacles.MinRadius <= c.Obstacles.MaxRadius,
		"obstacle radius range [%g, %g] is invalid", c.Obstacles.MinRadius, c.Obstacles.MaxRadius)
	check(c.Obstacles.SpawnMinX <= c.Obstacles.SpawnMaxX,
		"obstacle spawn range [%g, %g] is invalid", c.Obstacles.SpawnMinX, c.Obstacles.SpawnMaxX)
	check(c.Obstacles.MinSpeedFactor > 0 && c.Obstacles.MinSpeedFactor <= c.Obstacles.MaxSpeedFactor,
		"obstacle speed factors [%g, %g] are invalid", c.Obstacles.MinSpeedFactor, c.Obstacles.MaxSpeedFactor)
	check(c.Obstacles.Restitution >= 0 && c.Obstacles.Restitution <= 1,
		"obstacles.restitution must be within [0, 1], got %g", c.Obstacles.Restitution)
	check(c.Speed.Initial > 0 && c.Speed.Initial <= c.Speed.Max,
		"speed.initial %g must be positive and not above speed.max %g", c.Speed.Initial, c.Speed.Max)
	check(c.Speed.Interval > 0, "speed.interval must be positive, got %g", c.Speed.Interval)
	check(c.Speed.SpawnInterval > 0, "speed.spawn_interval must be positive, got %g", c.Speed.SpawnInterval)
	check(c.Session.Lives >= 1, "session.lives must be at least 1, got %d", c.Session.Lives)
	check(c.Effects.ExplosionLifeMin > 0 && c.Effects.ExplosionLifeMin <= c.Effects.ExplosionLifeMax,
		"explosion life range [%g, %g] is invalid", c.Effects.ExplosionLifeMin, c.Effects.ExplosionLifeMax)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a flag value to a preset. Empty means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables the speed ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
