package config

// ApplyDodgerPreset modifies the config based on a difficulty preset.
// Normal keeps the file's values.
func ApplyDodgerPreset(cfg *DodgerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 7
		cfg.Speed.Initial = 250
		cfg.Speed.Increment = 30
		cfg.Session.Invulnerability = 2.0
	case DifficultyHard:
		cfg.Session.Lives = 3
		cfg.Speed.Initial = 400
		cfg.Speed.Increment = 60
		cfg.Speed.SpawnInterval = 0.8
	case DifficultyFixed:
		cfg.Speed.Increment = 0
	}
	if cfg.Speed.Initial > cfg.Speed.Max {
		cfg.Speed.Initial = cfg.Speed.Max
	}
}
