package dodger

import (
	"fmt"

	"github.com/vovakirdan/triangle-dodger/internal/core"
)

// Frame is a plain-data picture of the session for presentation adapters.
// World-space items are drawn shifted by -Camera; HUD, Texts and Buttons
// are screen-fixed.
type Frame struct {
	State  State
	World  core.Vec2 // world size
	Camera core.Vec2 // screen shake offset

	Specks     []CircleView
	Trail      []CircleView
	Explosions []CircleView
	Obstacles  []CircleView
	Player     *PlayerView // nil outside the playing screen

	HUD     []TextView
	Texts   []TextView
	Buttons []ButtonView
}

// CircleView is a filled circle with an optional outline.
type CircleView struct {
	Pos     core.Vec2
	Radius  float64
	Fill    core.Color
	Alpha   float64 // fill opacity in [0, 1]
	Outline core.Color
	Stroke  float64 // outline width, 0 for none
}

// PlayerView is the triangle, already rotated into world space.
type PlayerView struct {
	Points  [3]core.Vec2
	Center  core.Vec2
	Fill    core.Color
	Outline core.Color
	Stroke  float64
	Visible bool // false during the off phase of a blink
}

// TextView is a line of text. Centered text is centred on Pos.X.
type TextView struct {
	Text     string
	Pos      core.Vec2
	Size     float64
	Color    core.Color
	Bold     bool
	Centered bool
}

// ButtonView is a button face with its label.
type ButtonView struct {
	Label     string
	Bounds    core.Rect
	Fill      core.Color
	Outline   core.Color
	Stroke    float64
	LabelSize float64
	Focused   bool
}

// Frame projects the current session state. It does not mutate anything.
func (s *Session) Frame() Frame {
	g := s.game
	cfg := g.cfg
	f := Frame{
		State: s.state,
		World: core.V(cfg.World.Width, cfg.World.Height),
	}

	for _, sp := range g.background.Specks() {
		f.Specks = append(f.Specks, CircleView{Pos: sp.Pos, Radius: sp.Radius, Fill: core.ColorGray, Alpha: 1})
	}

	centerX := cfg.World.Width / 2
	switch s.state {
	case StateMenu:
		f.Texts = append(f.Texts, TextView{Text: "TRIANGLE DODGER", Pos: core.V(centerX, 150), Size: 36, Color: core.ColorCyan, Bold: true, Centered: true})
	case StateGameOver:
		f.Texts = append(f.Texts,
			TextView{Text: "GAME OVER", Pos: core.V(centerX, 150), Size: 32, Color: core.ColorRed, Bold: true, Centered: true},
			TextView{Text: fmt.Sprintf("Final Score: %d", g.score), Pos: core.V(centerX, 220), Size: 24, Color: core.ColorWhite, Centered: true},
		)
	case StatePlaying:
		s.projectWorld(&f)
	}

	if group := s.buttons(); group != nil {
		for i, b := range group.Buttons {
			f.Buttons = append(f.Buttons, ButtonView{
				Label:     b.Label,
				Bounds:    b.Bounds,
				Fill:      b.Color(),
				Outline:   core.ColorWhite,
				Stroke:    2,
				LabelSize: 20,
				Focused:   i == group.Focus(),
			})
		}
	}
	return f
}

func (s *Session) projectWorld(f *Frame) {
	g := s.game
	f.Camera = g.shake.Offset

	for _, p := range g.trail.Particles() {
		f.Trail = append(f.Trail, CircleView{Pos: p.Pos, Radius: TrailRadius, Fill: core.ColorCyan, Alpha: p.Alpha()})
	}
	for _, p := range g.explosions.Particles() {
		f.Explosions = append(f.Explosions, CircleView{Pos: p.Pos, Radius: ExplosionRadius, Fill: core.ColorYellow, Alpha: p.Alpha()})
	}

	pl := g.player
	fill, outline := pl.PowerState().Colors()
	f.Player = &PlayerView{
		Points:  pl.Points(),
		Center:  pl.Pos,
		Fill:    fill,
		Outline: outline,
		Stroke:  1.5,
		Visible: pl.Visible(),
	}

	for _, o := range g.obstacles {
		f.Obstacles = append(f.Obstacles, CircleView{
			Pos: o.Pos, Radius: o.Radius, Fill: o.Tint, Alpha: 1, Outline: core.ColorWhite, Stroke: 1.5,
		})
	}

	f.HUD = []TextView{
		{Text: g.hud.Score, Pos: core.V(10, 10), Size: 18, Color: core.ColorWhite},
		{Text: g.hud.Speed, Pos: core.V(10, 35), Size: 16, Color: core.ColorYellow},
		{Text: g.hud.Lives, Pos: core.V(10, 60), Size: 18, Color: core.ColorRed},
	}
}
