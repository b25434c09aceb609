package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultDodgerYAML)
	if err != nil {
		t.Fatalf("parse(embedded) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDodgerConfig()) {
		t.Errorf("embedded YAML and DefaultDodgerConfig() differ:\n%+v\n%+v", cfg, DefaultDodgerConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, expected nil", err)
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := DefaultDodgerConfig()

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"world width", cfg.World.Width, 480},
		{"world height", cfg.World.Height, 853},
		{"max y", cfg.MaxY(), 793},
		{"initial speed", cfg.Speed.Initial, 300},
		{"speed cap", cfg.Speed.Max, 1200},
		{"lives", float64(cfg.Session.Lives), 5},
		{"invulnerability", cfg.Session.Invulnerability, 1.5},
		{"cull y", cfg.Obstacles.CullY, 880},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("%s = %v, expected %v", tc.name, tc.got, tc.expected)
			}
		})
	}
}

func TestLoadDodgerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("session:\n  lives: 9\nspeed:\n  increment: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodger(path)
	if err != nil {
		t.Fatalf("LoadDodger() error = %v", err)
	}
	if cfg.Session.Lives != 9 {
		t.Errorf("Lives = %d, expected 9", cfg.Session.Lives)
	}
	if cfg.Speed.Increment != 10 {
		t.Errorf("Increment = %v, expected 10", cfg.Speed.Increment)
	}
	// Untouched keys keep their defaults.
	if cfg.Player.Speed != 400 {
		t.Errorf("Player.Speed = %v, expected default 400", cfg.Player.Speed)
	}
}

func TestLoadDodgerErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDodger(filepath.Join(dir, "nope.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("LoadDodger() error = %v, expected ErrNotExist", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("world: [1, 2"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadDodger(path); err == nil {
			t.Error("LoadDodger() error = nil, expected parse error")
		}
	})

	t.Run("invalid tuning", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(path, []byte("session:\n  lives: 0\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := LoadDodger(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("LoadDodger() error = %v, expected ErrInvalidConfig", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DodgerConfig)
	}{
		{"zero world", func(c *DodgerConfig) { c.World.Width = 0 }},
		{"radius range", func(c *DodgerConfig) { c.Obstacles.MinRadius = 40 }},
		{"restitution", func(c *DodgerConfig) { c.Obstacles.Restitution = 1.5 }},
		{"speed above cap", func(c *DodgerConfig) { c.Speed.Initial = 2000 }},
		{"no lives", func(c *DodgerConfig) { c.Session.Lives = 0 }},
		{"explosion life", func(c *DodgerConfig) { c.Effects.ExplosionLifeMin = 2 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDodgerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}
	for _, tc := range tests {
		got, err := ParseDifficultyPreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficultyPreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParseDifficultyPreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestApplyDodgerPreset(t *testing.T) {
	normal := DefaultDodgerConfig()
	ApplyDodgerPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultDodgerConfig()) {
		t.Error("normal preset should not change the config")
	}

	fixed := DefaultDodgerConfig()
	ApplyDodgerPreset(&fixed, DifficultyFixed)
	if fixed.Speed.Increment != 0 {
		t.Errorf("fixed Increment = %v, expected 0", fixed.Speed.Increment)
	}

	easy := DefaultDodgerConfig()
	ApplyDodgerPreset(&easy, DifficultyEasy)
	hard := DefaultDodgerConfig()
	ApplyDodgerPreset(&hard, DifficultyHard)
	if easy.Session.Lives <= hard.Session.Lives {
		t.Errorf("easy lives %d should exceed hard lives %d", easy.Session.Lives, hard.Session.Lives)
	}
	if easy.Speed.Initial >= hard.Speed.Initial {
		t.Errorf("easy speed %v should be below hard speed %v", easy.Speed.Initial, hard.Speed.Initial)
	}
	for _, cfg := range []DodgerConfig{easy, hard, fixed} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultDodgerConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var back DodgerConfig
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.Speed.Max != 1200 || back.World.Height != 853 {
		t.Errorf("round trip lost values: %+v", back)
	}
}
