// Package raster draws dodger frames into RGBA images with gg. It backs the
// window frontend, PNG screenshots and the headless simulator's --png output.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/triangle-dodger/internal/core"
	"github.com/vovakirdan/triangle-dodger/internal/games/dodger"
)

// Renderer owns an off-screen canvas the size of the world.
type Renderer struct {
	img *image.RGBA
	dc  *gg.Context

	font     *opentype.Font
	fontPath string
	faces    map[float64]font.Face

	logger *log.Logger
}

// New creates a renderer for a width x height world. Fonts are tried in
// order; when none loads, text falls back to a built-in bitmap face.
func New(width, height int, fontPaths []string, logger *log.Logger) *Renderer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	r := &Renderer{
		img:    img,
		dc:     gg.NewContextForRGBA(img),
		faces:  make(map[float64]font.Face),
		logger: logger,
	}
	r.loadFont(fontPaths)
	return r
}

func (r *Renderer) loadFont(paths []string) {
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		f, err := opentype.Parse(data)
		if err != nil {
			r.warn("failed to parse font", "path", p, "error", err)
			continue
		}
		r.font, r.fontPath = f, p
		return
	}
	r.warn("no usable font found, using built-in bitmap face")
}

func (r *Renderer) warn(msg string, kv ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, kv...)
	}
}

// FontPath returns the loaded font file, or "" when the bitmap face is used.
func (r *Renderer) FontPath() string {
	return r.fontPath
}

func (r *Renderer) face(size float64) font.Face {
	if r.font == nil {
		return basicfont.Face7x13
	}
	if f, ok := r.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		r.warn("failed to create font face", "size", size, "error", err)
		return basicfont.Face7x13
	}
	r.faces[size] = f
	return f
}

// Draw renders the frame and returns the canvas. The image is reused by the
// next call.
func (r *Renderer) Draw(f dodger.Frame) *image.RGBA {
	dc := r.dc
	dc.SetColor(color.Black)
	dc.Clear()

	dc.Push()
	dc.Translate(-f.Camera.X, -f.Camera.Y)
	for _, c := range f.Specks {
		r.circle(c)
	}
	for _, c := range f.Trail {
		r.circle(c)
	}
	for _, c := range f.Explosions {
		r.circle(c)
	}
	if p := f.Player; p != nil && p.Visible {
		r.player(p)
	}
	for _, c := range f.Obstacles {
		r.circle(c)
	}
	dc.Pop()

	for _, t := range f.HUD {
		r.text(t)
	}
	for _, t := range f.Texts {
		r.text(t)
	}
	for _, b := range f.Buttons {
		r.button(b)
	}
	return r.img
}

func (r *Renderer) circle(c dodger.CircleView) {
	dc := r.dc
	dc.DrawCircle(c.Pos.X, c.Pos.Y, c.Radius)
	dc.SetColor(c.Fill.WithAlpha(c.Alpha))
	if c.Stroke <= 0 {
		dc.Fill()
		return
	}
	dc.FillPreserve()
	dc.SetColor(c.Outline.NRGBA())
	dc.SetLineWidth(c.Stroke)
	dc.Stroke()
}

func (r *Renderer) player(p *dodger.PlayerView) {
	dc := r.dc
	dc.MoveTo(p.Points[0].X, p.Points[0].Y)
	dc.LineTo(p.Points[1].X, p.Points[1].Y)
	dc.LineTo(p.Points[2].X, p.Points[2].Y)
	dc.ClosePath()
	dc.SetColor(p.Fill.NRGBA())
	dc.FillPreserve()
	dc.SetColor(p.Outline.NRGBA())
	dc.SetLineWidth(p.Stroke)
	dc.Stroke()
}

func (r *Renderer) text(t dodger.TextView) {
	dc := r.dc
	dc.SetFontFace(r.face(t.Size))
	dc.SetColor(t.Color.NRGBA())
	ax := 0.0
	if t.Centered {
		ax = 0.5
	}
	dc.DrawStringAnchored(t.Text, t.Pos.X, t.Pos.Y, ax, 1)
	if t.Bold {
		// faux bold
		dc.DrawStringAnchored(t.Text, t.Pos.X+1, t.Pos.Y, ax, 1)
	}
}

func (r *Renderer) button(b dodger.ButtonView) {
	dc := r.dc
	rect := b.Bounds
	dc.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
	dc.SetColor(b.Fill.NRGBA())
	dc.FillPreserve()
	outline := b.Outline
	if b.Focused {
		outline = core.ColorYellow
	}
	dc.SetColor(outline.NRGBA())
	dc.SetLineWidth(b.Stroke)
	dc.Stroke()

	c := rect.Center()
	dc.SetFontFace(r.face(b.LabelSize))
	dc.SetColor(core.ColorWhite.NRGBA())
	dc.DrawStringAnchored(b.Label, c.X, c.Y, 0.5, 0.5)
}

// SavePNG renders the frame and writes it to path, creating parent
// directories as needed.
func (r *Renderer) SavePNG(path string, f dodger.Frame) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create screenshot directory: %w", err)
	}
	r.Draw(f)
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save png %s: %w", path, err)
	}
	return nil
}
