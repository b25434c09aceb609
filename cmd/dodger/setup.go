package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/triangle-dodger/internal/config"
	"github.com/vovakirdan/triangle-dodger/internal/core"
	"github.com/vovakirdan/triangle-dodger/internal/games/dodger"
	"github.com/vovakirdan/triangle-dodger/internal/logging"
	"github.com/vovakirdan/triangle-dodger/internal/telemetry"
)

// loadTuning reads the tuning config and applies the difficulty preset.
func loadTuning() (config.DodgerConfig, error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return config.DodgerConfig{}, err
	}
	cfg, err := config.LoadDodger(flagConfig)
	if err != nil {
		return config.DodgerConfig{}, err
	}
	config.ApplyDodgerPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.DodgerConfig{}, fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, nil
}

// newLogger builds the command logger. quiet discards output unless a log
// file was requested, for frontends that own the terminal.
func newLogger(quiet bool) (*log.Logger, io.Closer, error) {
	return logging.New(logging.Options{
		File:    flagLogFile,
		Discard: quiet,
		Level:   flagLogLevel,
	})
}

// newSession wires a session to the event logger and, if given, metrics.
func newSession(cfg config.DodgerConfig, logger *log.Logger, metrics *telemetry.Metrics) *dodger.Session {
	sinks := []dodger.EventSink{logging.NewEventLogger(logger, logging.DefaultDodgedPerSecond)}
	if metrics != nil {
		sinks = append(sinks, metrics)
	}
	preset, _ := config.ParseDifficultyPreset(flagDifficulty)
	logger.Debug("starting session",
		"seed", flagSeed,
		"difficulty", preset,
		"fixed_speed", config.IsFixedPreset(preset),
		"lives", cfg.Session.Lives)
	return dodger.NewSession(cfg, core.NewRand(flagSeed), dodger.Sinks(sinks...))
}

func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".dodger", "screenshots")
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
