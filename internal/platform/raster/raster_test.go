package raster

import (
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/triangle-dodger/internal/config"
	"github.com/vovakirdan/triangle-dodger/internal/core"
	"github.com/vovakirdan/triangle-dodger/internal/games/dodger"
)

func newSession() *dodger.Session {
	cfg := config.DefaultDodgerConfig()
	cfg.Speed.SpawnInterval = 1e9
	return dodger.NewSession(cfg, rand.New(rand.NewSource(5)), nil)
}

func TestMissingFontsFallBack(t *testing.T) {
	r := New(480, 853, []string{filepath.Join(t.TempDir(), "nope.ttf")}, nil)
	if r.FontPath() != "" {
		t.Errorf("FontPath() = %q, expected bitmap fallback", r.FontPath())
	}
	// text still renders without panicking
	r.Draw(newSession().Frame())
}

func TestDrawSize(t *testing.T) {
	r := New(480, 853, nil, nil)
	img := r.Draw(newSession().Frame())
	if b := img.Bounds(); b.Dx() != 480 || b.Dy() != 853 {
		t.Errorf("Draw() bounds = %v, expected 480x853", b)
	}
}

func TestDrawPlayerAndObstacle(t *testing.T) {
	s := newSession()
	s.StartGame()
	f := s.Frame()
	f.Specks = nil
	f.Obstacles = append(f.Obstacles, dodger.CircleView{
		Pos: core.V(100, 300), Radius: 20, Fill: core.ColorRed, Alpha: 1,
	})

	r := New(480, 853, nil, nil)
	img := r.Draw(f)

	// player centre is white when no power is active
	if c := img.RGBAAt(240, 652); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("player pixel = %v, expected white", c)
	}
	if c := img.RGBAAt(100, 300); c.R != 255 || c.G != 0 || c.B != 0 {
		t.Errorf("obstacle pixel = %v, expected red", c)
	}
	if c := img.RGBAAt(400, 450); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("empty pixel = %v, expected black", c)
	}
}

func TestHiddenPlayerNotDrawn(t *testing.T) {
	s := newSession()
	s.StartGame()
	f := s.Frame()
	f.Specks = nil
	f.Player.Visible = false

	img := New(480, 853, nil, nil).Draw(f)
	if c := img.RGBAAt(240, 652); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("hidden player pixel = %v, expected black", c)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shots", "menu.png")
	r := New(480, 853, nil, nil)
	if err := r.SavePNG(path, newSession().Frame()); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 480 || b.Dy() != 853 {
		t.Errorf("png bounds = %v", b)
	}
}

func TestSpecksFollowShake(t *testing.T) {
	f := dodger.Frame{
		World:  core.V(480, 853),
		Camera: core.V(10, 0),
		Specks: []dodger.CircleView{{Pos: core.V(100, 100), Radius: 3, Fill: core.ColorWhite, Alpha: 1}},
	}

	img := New(480, 853, nil, nil).Draw(f)
	if c := img.RGBAAt(90, 100); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("shifted speck pixel = %v, expected white", c)
	}
	if c := img.RGBAAt(100, 100); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("unshifted speck pixel = %v, expected black", c)
	}
}
