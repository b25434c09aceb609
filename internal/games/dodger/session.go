package dodger

import (
	"github.com/vovakirdan/triangle-dodger/internal/config"
	"github.com/vovakirdan/triangle-dodger/internal/core"
)

// State is the screen the session is on.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Button geometry in world units.
const (
	buttonX = 140
	buttonW = 200
	buttonH = 50
)

// Session drives the menu, playing and game-over screens around a Game.
// Only the playing screen runs the simulation; the other two animate the
// background and handle their buttons.
type Session struct {
	game  *Game
	state State
	quit  bool

	menu     ButtonGroup
	gameOver ButtonGroup
}

// NewSession creates a session on the main menu.
func NewSession(cfg config.DodgerConfig, rng core.Rand, sink EventSink) *Session {
	s := &Session{game: NewGame(cfg, rng, sink)}

	start := CommandFunc(s.StartGame)
	toMenu := CommandFunc(s.ReturnToMenu)
	quit := CommandFunc(s.Quit)

	s.menu.Buttons = []*Button{
		NewButton("PLAY", core.NewRect(buttonX, 300, buttonW, buttonH), StyleGreen, start),
		NewButton("QUIT", core.NewRect(buttonX, 370, buttonW, buttonH), StyleRed, quit),
	}
	s.gameOver.Buttons = []*Button{
		NewButton("PLAY AGAIN", core.NewRect(buttonX, 400, buttonW, buttonH), StyleGreen, start),
		NewButton("MAIN MENU", core.NewRect(buttonX, 470, buttonW, buttonH), StyleBlue, toMenu),
		NewButton("QUIT", core.NewRect(buttonX, 540, buttonW, buttonH), StyleRed, quit),
	}
	return s
}

// Update advances the session by one frame.
func (s *Session) Update(dt float64, in core.InputFrame) {
	if in.IsPressed(core.ActionQuit) {
		s.Quit()
		return
	}

	switch s.state {
	case StateMenu:
		s.updateScreen(&s.menu, in)
	case StatePlaying:
		s.updatePlaying(dt, in)
	case StateGameOver:
		if in.IsPressed(core.ActionRestart) {
			s.StartGame()
			return
		}
		s.updateScreen(&s.gameOver, in)
	}
}

func (s *Session) updatePlaying(dt float64, in core.InputFrame) {
	switch {
	case in.IsPressed(core.ActionBack):
		s.setState(StateMenu)
		return
	case in.IsPressed(core.ActionRestart):
		s.game.Start()
		return
	}

	s.game.Update(dt, ControlsFrom(in))
	if s.game.Over() {
		s.setState(StateGameOver)
	}
}

// updateScreen handles a button screen: escape quits, arrows and tab move
// focus, confirm fires the focused button, the pointer drives hover/click.
func (s *Session) updateScreen(group *ButtonGroup, in core.InputFrame) {
	if in.IsPressed(core.ActionBack) {
		s.Quit()
		return
	}
	s.game.UpdateIdle()

	switch {
	case in.IsPressed(core.ActionUp):
		group.Prev()
	case in.IsPressed(core.ActionDown), in.IsPressed(core.ActionFocusNext):
		group.Next()
	case in.IsPressed(core.ActionConfirm):
		group.Activate()
		return
	}
	group.Update(in.Pointer)
}

// StartGame resets the game and enters the playing screen.
func (s *Session) StartGame() {
	s.game.Start()
	s.setState(StatePlaying)
}

// ReturnToMenu resets the game and shows the main menu.
func (s *Session) ReturnToMenu() {
	s.game.Reset()
	s.setState(StateMenu)
}

// Quit asks the frontend to exit.
func (s *Session) Quit() {
	s.quit = true
}

func (s *Session) setState(st State) {
	s.state = st
	switch st {
	case StateMenu:
		s.menu.ResetFocus()
	case StateGameOver:
		s.gameOver.ResetFocus()
	}
}

// State returns the current screen.
func (s *Session) State() State { return s.state }

// QuitRequested reports whether the user asked to exit.
func (s *Session) QuitRequested() bool { return s.quit }

// Game returns the underlying simulation.
func (s *Session) Game() *Game { return s.game }

// buttons returns the button group of the current screen, if any.
func (s *Session) buttons() *ButtonGroup {
	switch s.state {
	case StateMenu:
		return &s.menu
	case StateGameOver:
		return &s.gameOver
	default:
		return nil
	}
}
