// Package window runs Triangle Dodger in a desktop window with Ebitengine.
// Frames are rasterized with gg and copied into the screen image.
package window

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/triangle-dodger/internal/core"
	"github.com/vovakirdan/triangle-dodger/internal/games/dodger"
	"github.com/vovakirdan/triangle-dodger/internal/platform/raster"
	"github.com/vovakirdan/triangle-dodger/internal/telemetry"
)

// Options configures the window frontend.
type Options struct {
	Session  *dodger.Session
	Renderer *raster.Renderer
	Metrics  *telemetry.Metrics
	Logger   *log.Logger
	TickRate int
	Title    string

	// ScreenshotDir receives F12 screenshots.
	ScreenshotDir string
}

// Game adapts a session to ebiten.Game. Ebitengine calls Update at a fixed
// TPS, so dt is constant.
type Game struct {
	session  *dodger.Session
	renderer *raster.Renderer
	metrics  *telemetry.Metrics
	logger   *log.Logger
	shotsDir string

	width, height int
	dt            float64
	input         core.InputFrame
	keys          keyState
}

// NewGame creates the ebiten adapter.
func NewGame(opts Options) *Game {
	tps := opts.TickRate
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	world := opts.Session.Frame().World
	return &Game{
		session:  opts.Session,
		renderer: opts.Renderer,
		metrics:  opts.Metrics,
		logger:   opts.Logger,
		shotsDir: opts.ScreenshotDir,
		width:    int(world.X),
		height:   int(world.Y),
		dt:       1 / float64(tps),
		input:    core.NewInputFrame(),
		keys:     ebitenKeys{},
	}
}

// Update polls input and steps the session.
func (g *Game) Update() error {
	g.input.Clear()
	pollInput(g.keys, &g.input, g.width, g.height)

	if g.keys.justPressed(ebiten.KeyF12) {
		g.screenshot()
	}

	start := time.Now()
	wasPlaying := g.session.State() == dodger.StatePlaying
	g.session.Update(g.dt, g.input)
	if g.metrics != nil && wasPlaying {
		g.metrics.ObserveFrame(time.Since(start), g.session.Game().Snapshot())
	}

	if g.session.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

// Draw rasterizes the current frame and uploads it.
func (g *Game) Draw(screen *ebiten.Image) {
	img := g.renderer.Draw(g.session.Frame())
	screen.WritePixels(img.Pix)
}

// Layout fixes the logical screen to the world size; Ebitengine scales it
// to the window, and cursor positions come back in world units.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func (g *Game) screenshot() {
	if g.shotsDir == "" {
		return
	}
	path := filepath.Join(g.shotsDir, fmt.Sprintf("dodger_%s.png", time.Now().Format("20060102_150405")))
	if err := g.renderer.SavePNG(path, g.session.Frame()); err != nil {
		if g.logger != nil {
			g.logger.Warn("failed to save screenshot", "error", err)
		}
		return
	}
	if g.logger != nil {
		g.logger.Info("screenshot saved", "path", path)
	}
}

// Run opens the window and blocks until the session quits or the window is
// closed.
func Run(opts Options) error {
	g := NewGame(opts)

	title := opts.Title
	if title == "" {
		title = "Triangle Dodger"
	}
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window frontend: %w", err)
	}
	return nil
}
