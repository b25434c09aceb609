package dodger

import (
	"math"

	"github.com/vovakirdan/triangle-dodger/internal/core"
)

// Visual characters for terminal rendering.
const (
	SpeckChar    = '·'
	TrailChar    = '•'
	SparkChar    = '*'
	ObstacleChar = '█'
	ObstacleEdge = '▒'
	PlayerChar   = '▲'
	FocusLeft    = '▶'
	FocusRight   = '◀'
)

const (
	cellAspect   = 2.0 // a terminal cell is about twice as tall as wide
	minCellsWide = 8
	minCellsHigh = 8
)

// Viewport maps the world onto a grid of terminal cells, keeping the aspect
// ratio and centring the result.
type Viewport struct {
	CellW, CellH float64 // world units per cell
	OffX, OffY   int     // grid position of the world's top-left corner
	Cols, Rows   int     // cells covered by the world
}

// NewViewport fits a world of the given size into cols x rows cells.
func NewViewport(world core.Vec2, cols, rows int) Viewport {
	cols = max(cols, minCellsWide)
	rows = max(rows, minCellsHigh)

	cw := math.Max(world.X/float64(cols), world.Y/(cellAspect*float64(rows)))
	ch := cw * cellAspect
	usedCols := int(math.Ceil(world.X / cw))
	usedRows := int(math.Ceil(world.Y / ch))
	return Viewport{
		CellW: cw,
		CellH: ch,
		OffX:  (cols - usedCols) / 2,
		OffY:  (rows - usedRows) / 2,
		Cols:  usedCols,
		Rows:  usedRows,
	}
}

// ToCell returns the cell containing a world point.
func (v Viewport) ToCell(p core.Vec2) (int, int) {
	return v.OffX + int(math.Floor(p.X/v.CellW)), v.OffY + int(math.Floor(p.Y/v.CellH))
}

// ToWorld returns the world point at the centre of a cell, and whether the
// cell lies inside the world.
func (v Viewport) ToWorld(x, y int) (core.Vec2, bool) {
	cx, cy := x-v.OffX, y-v.OffY
	inside := cx >= 0 && cx < v.Cols && cy >= 0 && cy < v.Rows
	return core.V((float64(cx)+0.5)*v.CellW, (float64(cy)+0.5)*v.CellH), inside
}

// DrawFrame renders a frame into a terminal screen buffer.
func DrawFrame(dst *core.Screen, f Frame) {
	dst.Clear()
	v := NewViewport(f.World, dst.Width(), dst.Height())

	if v.OffX > 0 && v.OffY > 0 {
		dst.DrawBox(v.OffX-1, v.OffY-1, v.Cols+2, v.Rows+2, core.ColorGray)
	} else if v.OffX > 0 {
		for y := 0; y < dst.Height(); y++ {
			dst.SetCell(v.OffX-1, y, '│', core.ColorGray)
			dst.SetCell(v.OffX+v.Cols, y, '│', core.ColorGray)
		}
	}

	cam := f.Camera
	for _, c := range f.Specks {
		plot(dst, v, c.Pos.Sub(cam), SpeckChar, c.Fill)
	}
	for _, c := range f.Trail {
		if c.Alpha > 0.3 {
			plot(dst, v, c.Pos.Sub(cam), TrailChar, c.Fill)
		}
	}
	for _, c := range f.Explosions {
		plot(dst, v, c.Pos.Sub(cam), SparkChar, c.Fill)
	}
	if p := f.Player; p != nil && p.Visible {
		drawTriangle(dst, v, p, cam)
	}
	for _, c := range f.Obstacles {
		drawDisc(dst, v, c, cam)
	}

	for _, t := range f.HUD {
		drawText(dst, v, t)
	}
	for _, t := range f.Texts {
		drawText(dst, v, t)
	}
	// Buttons can share a row at small sizes, so every box goes down before
	// any label.
	for _, b := range f.Buttons {
		drawButtonBox(dst, v, b)
	}
	for _, b := range f.Buttons {
		drawButtonLabel(dst, v, b)
	}
}

func plot(dst *core.Screen, v Viewport, p core.Vec2, r rune, c core.Color) {
	if p.X < 0 || p.Y < 0 || p.X >= float64(v.Cols)*v.CellW || p.Y >= float64(v.Rows)*v.CellH {
		return
	}
	x, y := v.ToCell(p)
	dst.SetCell(x, y, r, c)
}

// drawDisc fills every cell whose centre lies inside the circle, and always
// marks the cell under the centre so small circles stay visible.
func drawDisc(dst *core.Screen, v Viewport, c CircleView, cam core.Vec2) {
	center := c.Pos.Sub(cam)
	x0, y0 := v.ToCell(center.Sub(core.V(c.Radius, c.Radius)))
	x1, y1 := v.ToCell(center.Add(core.V(c.Radius, c.Radius)))
	r2 := c.Radius * c.Radius
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			w, inside := v.ToWorld(x, y)
			if !inside {
				continue
			}
			d := w.Sub(center)
			if d.Dot(d) <= r2 {
				ch := ObstacleChar
				if d.Dot(d) > r2*0.6 {
					ch = ObstacleEdge
				}
				dst.SetCell(x, y, ch, c.Fill)
			}
		}
	}
	plot(dst, v, center, ObstacleChar, c.Fill)
}

func drawTriangle(dst *core.Screen, v Viewport, p *PlayerView, cam core.Vec2) {
	var pts [3]core.Vec2
	for i, pt := range p.Points {
		pts[i] = pt.Sub(cam)
	}
	bounds := core.BoundsOf(pts[:]...)
	x0, y0 := v.ToCell(core.V(bounds.X, bounds.Y))
	x1, y1 := v.ToCell(core.V(bounds.Right(), bounds.Bottom()))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			w, inside := v.ToWorld(x, y)
			if inside && inTriangle(w, pts) {
				dst.SetCell(x, y, PlayerChar, p.Fill)
			}
		}
	}
	plot(dst, v, p.Center.Sub(cam), PlayerChar, p.Outline)
}

func inTriangle(p core.Vec2, t [3]core.Vec2) bool {
	sign := func(a, b, c core.Vec2) float64 {
		return (a.X-c.X)*(b.Y-c.Y) - (b.X-c.X)*(a.Y-c.Y)
	}
	d1 := sign(p, t[0], t[1])
	d2 := sign(p, t[1], t[2])
	d3 := sign(p, t[2], t[0])
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func drawText(dst *core.Screen, v Viewport, t TextView) {
	x, y := v.ToCell(t.Pos)
	if t.Centered {
		x -= len([]rune(t.Text)) / 2
	}
	dst.DrawText(x, y, t.Text, t.Color)
}

func drawButtonBox(dst *core.Screen, v Viewport, b ButtonView) {
	x0, y0 := v.ToCell(core.V(b.Bounds.X, b.Bounds.Y))
	x1, y1 := v.ToCell(core.V(b.Bounds.Right(), b.Bounds.Bottom()))
	dst.DrawBox(x0, y0, x1-x0+1, y1-y0+1, b.Fill)
}

// drawButtonLabel centres the label on the cell holding the button centre.
func drawButtonLabel(dst *core.Screen, v Viewport, b ButtonView) {
	cx, cy := v.ToCell(b.Bounds.Center())
	label := []rune(b.Label)
	lx := cx - len(label)/2
	labelColor := core.ColorWhite
	if b.Focused {
		labelColor = core.ColorYellow
		dst.SetCell(lx-2, cy, FocusLeft, labelColor)
		dst.SetCell(lx+len(label)+1, cy, FocusRight, labelColor)
	}
	dst.DrawText(lx, cy, b.Label, labelColor)
}
