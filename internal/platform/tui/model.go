package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/triangle-dodger/internal/core"
	"github.com/vovakirdan/triangle-dodger/internal/games/dodger"
	"github.com/vovakirdan/triangle-dodger/internal/platform/raster"
	"github.com/vovakirdan/triangle-dodger/internal/telemetry"
)

// footerLines is the space reserved under the playfield for the help bar.
const footerLines = 1

// Options configures the terminal frontend.
type Options struct {
	Session *dodger.Session
	Runtime core.RuntimeConfig

	// Renderer, when set, adds a PNG next to each text screenshot.
	Renderer *raster.Renderer
	// Metrics, when set, records per-frame update timings.
	Metrics *telemetry.Metrics
	Logger  *log.Logger

	// ScreenshotDir defaults to ~/.dodger/screenshots.
	ScreenshotDir string
	HoldWindow    time.Duration
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	session *dodger.Session
	screen  *core.Screen
	config  core.RuntimeConfig

	keys *KeyMapper
	help help.Model
	held *heldKeys

	inputFrame core.InputFrame
	pointer    *pointerState
	clock      *tickClock

	renderer      *raster.Renderer
	metrics       *telemetry.Metrics
	logger        *log.Logger
	screenshotDir string

	quitting bool
}

// pointerState latches a press so a click shorter than one tick is still
// seen by the buttons.
type pointerState struct {
	core.Pointer
	pressUnseen    bool
	releasePending bool
}

// NewModel creates a new Bubble Tea model around a session.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	window := opts.HoldWindow
	if window <= 0 {
		window = DefaultHoldWindow
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	clock := newTickClock(cfg.TickRate)

	h := help.New()
	h.ShowAll = false

	return Model{
		session:       opts.Session,
		screen:        core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerLines, 1)),
		config:        cfg,
		keys:          NewKeyMapper(),
		help:          h,
		held:          newHeldKeys(window),
		inputFrame:    core.NewInputFrame(),
		pointer:       &pointerState{},
		clock:         &clock,
		renderer:      opts.Renderer,
		metrics:       opts.Metrics,
		logger:        logger,
		screenshotDir: opts.ScreenshotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.session.Quit()
		m.quitting = true
		return m, tea.Quit
	}

	m.inputFrame.Press(action)
	if isMovement(action) {
		m.held.press(action, now)
	}
	return m, nil
}

// handleMouse maps terminal cells back to world coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	world := m.session.Frame().World
	v := dodger.NewViewport(world, m.screen.Width(), m.screen.Height())
	pos, inside := v.ToWorld(msg.X, msg.Y)

	p := m.pointer
	p.Pos, p.Valid = pos, inside
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			p.Down = true
			p.pressUnseen = true
			p.releasePending = false
		}
	case tea.MouseActionRelease:
		if p.pressUnseen {
			p.releasePending = true
		} else {
			p.Down = false
		}
	}
	return m, nil
}

// handleResize processes window resize events. The playfield rescales; the
// game itself is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerLines, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the session by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.step(now)

	m.held.apply(&m.inputFrame, now)
	m.inputFrame.Pointer = m.pointer.Pointer

	start := time.Now()
	wasPlaying := m.session.State() == dodger.StatePlaying
	m.session.Update(dt, m.inputFrame)
	if m.metrics != nil && wasPlaying {
		m.metrics.ObserveFrame(time.Since(start), m.session.Game().Snapshot())
	}
	if m.session.State() != dodger.StatePlaying {
		m.held.releaseAll()
	}

	m.pointer.pressUnseen = false
	if m.pointer.releasePending {
		m.pointer.Down = false
		m.pointer.releasePending = false
	}
	m.inputFrame.Clear()

	if m.session.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as text, and as PNG when a raster
// renderer is available.
func (m *Model) saveScreenshot() {
	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("cannot resolve screenshot directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".dodger", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	frame := m.session.Frame()
	dodger.DrawFrame(m.screen, frame)

	base := filepath.Join(dir, fmt.Sprintf("dodger_%s", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("failed to save screenshot", "error", err)
		return
	}
	if m.renderer != nil {
		if err := m.renderer.SavePNG(base+".png", frame); err != nil {
			m.logger.Warn("failed to save screenshot", "error", err)
			return
		}
	}
	m.logger.Info("screenshot saved", "path", base)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	dodger.DrawFrame(m.screen, m.session.Frame())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal frontend: %w", err)
	}
	return nil
}
