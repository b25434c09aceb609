package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/triangle-dodger/internal/core"
	"github.com/vovakirdan/triangle-dodger/internal/platform/raster"
	"github.com/vovakirdan/triangle-dodger/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Triangle Dodger in the terminal.

Controls:
  Arrows/WASD - Move (terminals repeat keys, hold to keep moving)
  Enter/Tab   - Select / next button (mouse works too)
  R           - Restart
  Esc         - Back to menu (quits from the menu)
  Ctrl+S      - Screenshot to ~/.dodger/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - More lives, slower start, gentler ramp
  normal - Values from the tuning file
  hard   - Fewer lives, faster start, steeper ramp
  fixed  - No speed ramp

Examples:
  dodger play
  dodger play --difficulty easy
  dodger play --seed 42 --log-file dodger.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadTuning()
	if err != nil {
		fail(err)
	}
	logger, closer, err := newLogger(true)
	if err != nil {
		fail(err)
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Session: newSession(cfg, logger, nil),
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Renderer:      raster.New(int(cfg.World.Width), int(cfg.World.Height), cfg.Fonts.Paths, logger),
		Logger:        logger,
		ScreenshotDir: screenshotDir(),
	}
	if err := tui.Run(opts); err != nil {
		fail(err)
	}
}
