package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/triangle-dodger/internal/core"
)

// keyState is the slice of Ebitengine's input API the frontend reads.
type keyState interface {
	pressed(k ebiten.Key) bool
	justPressed(k ebiten.Key) bool
	cursor() (int, int)
	mouseDown() bool
}

type ebitenKeys struct{}

func (ebitenKeys) pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) justPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) cursor() (int, int)            { return ebiten.CursorPosition() }
func (ebitenKeys) mouseDown() bool               { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) }

var movementKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
}

var actionKeys = map[core.Action][]ebiten.Key{
	core.ActionConfirm:   {ebiten.KeyEnter, ebiten.KeySpace},
	core.ActionFocusNext: {ebiten.KeyTab},
	core.ActionBack:      {ebiten.KeyEscape},
	core.ActionRestart:   {ebiten.KeyR},
	core.ActionQuit:      {ebiten.KeyQ},
}

// pollInput fills an input frame. Movement keys are both held (for steering)
// and edge-pressed (for menu focus). The pointer is valid only inside the
// width x height world.
func pollInput(ks keyState, in *core.InputFrame, width, height int) {
	for a, keys := range movementKeys {
		for _, k := range keys {
			if ks.pressed(k) {
				in.Hold(a)
			}
			if ks.justPressed(k) {
				in.Press(a)
			}
		}
	}
	for a, keys := range actionKeys {
		for _, k := range keys {
			if ks.justPressed(k) {
				in.Press(a)
			}
		}
	}

	x, y := ks.cursor()
	in.Pointer = core.Pointer{
		Pos:   core.V(float64(x), float64(y)),
		Down:  ks.mouseDown(),
		Valid: x >= 0 && y >= 0 && x < width && y < height,
	}
}
