package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/triangle-dodger/internal/platform/raster"
	"github.com/vovakirdan/triangle-dodger/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Triangle Dodger in a 480x853 window.

Controls:
  Arrows/WASD - Move
  Enter/Space - Select (or click a button)
  Tab         - Next button
  R           - Restart
  Esc         - Back to menu (quits from the menu)
  F12         - Screenshot to ~/.dodger/screenshots
  Q           - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg, err := loadTuning()
	if err != nil {
		fail(err)
	}
	logger, closer, err := newLogger(false)
	if err != nil {
		fail(err)
	}
	defer closer.Close()

	renderer := raster.New(int(cfg.World.Width), int(cfg.World.Height), cfg.Fonts.Paths, logger)
	if path := renderer.FontPath(); path != "" {
		logger.Debug("font loaded", "path", path)
	}

	err = window.Run(window.Options{
		Session:       newSession(cfg, logger, nil),
		Renderer:      renderer,
		Logger:        logger,
		TickRate:      flagFPS,
		ScreenshotDir: screenshotDir(),
	})
	if err != nil {
		fail(err)
	}
}
