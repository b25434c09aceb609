package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

// DefaultDodgerConfig returns the built-in tuning. It mirrors
// defaults/dodger.yaml and is used when the embedded file cannot be parsed.
func DefaultDodgerConfig() DodgerConfig {
	return DodgerConfig{
		World: WorldConfig{
			Width:  480,
			Height: 853,
		},
		Player: PlayerConfig{
			StartX:        240,
			StartY:        650,
			Speed:         400,
			Size:          16,
			RotationSpeed: 360,
			TiltSide:      30,
			TiltForward:   15,
			MinY:          60,
			BottomMargin:  60,
			FlashRate:     8,
			BoostPulse:    0.1,
		},
		Obstacles: ObstacleConfig{
			MinRadius:      15,
			MaxRadius:      35,
			SpawnMinX:      60,
			SpawnMaxX:      420,
			SpawnY:         -50,
			MinSpeedFactor: 0.5,
			MaxSpeedFactor: 2.0,
			CullY:          880,
			Restitution:    0.8,
		},
		Speed: SpeedConfig{
			Initial:              300,
			Increment:            40,
			Interval:             2.0,
			Max:                  1200,
			OverchargeThreshold:  800,
			OverchargePulse:      0.5,
			SpawnInterval:        1.0,
			SpawnIntervalStep:    0.15,
			SpawnIntervalMinimum: 0.2,
		},
		Session: SessionConfig{
			Lives:              5,
			Invulnerability:    1.5,
			ChargingEvery:      10,
			ChargingDuration:   1.0,
			OverchargeEvery:    25,
			OverchargeDuration: 2.0,
		},
		Effects: EffectsConfig{
			ShakeDuration:       0.3,
			ShakeIntensity:      10,
			ExplosionParticles:  15,
			ExplosionSpeed:      200,
			ExplosionLifeMin:    0.5,
			ExplosionLifeMax:    1.0,
			TrailLife:           0.3,
			BackgroundParticles: 40,
			BackgroundScroll:    0.3,
			IdleStep:            0.016,
		},
		Fonts: FontsConfig{
			Paths: []string{
				"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
				"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
				"/usr/share/fonts/TTF/DejaVuSans.ttf",
				"/System/Library/Fonts/Helvetica.ttc",
				`C:\Windows\Fonts\arial.ttf`,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDodgerYAML
}
