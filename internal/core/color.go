package core

import "image/color"

// Color is a palette entry shared by the terminal and raster renderers.
// Terminal output maps it to an ANSI 256 code, raster output to RGBA.
type Color uint8

// Palette used by the game.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorSky  // speed boost fill
	ColorGray // background specks

	// Button faces: normal, hover, pressed.
	ColorButtonGreen
	ColorButtonGreenHover
	ColorButtonGreenPressed
	ColorButtonRed
	ColorButtonRedHover
	ColorButtonRedPressed
	ColorButtonBlue
	ColorButtonBlueHover
	ColorButtonBluePressed
)

var palette = map[Color]color.NRGBA{
	ColorDefault: {0, 0, 0, 0},
	ColorRed:     {255, 0, 0, 255},
	ColorGreen:   {0, 255, 0, 255},
	ColorYellow:  {255, 255, 0, 255},
	ColorMagenta: {255, 0, 255, 255},
	ColorCyan:    {0, 255, 255, 255},
	ColorWhite:   {255, 255, 255, 255},
	ColorSky:     {100, 150, 255, 255},
	ColorGray:    {200, 200, 200, 100},

	ColorButtonGreen:        {0, 150, 0, 200},
	ColorButtonGreenHover:   {0, 200, 0, 200},
	ColorButtonGreenPressed: {0, 100, 0, 200},
	ColorButtonRed:          {150, 0, 0, 200},
	ColorButtonRedHover:     {200, 0, 0, 200},
	ColorButtonRedPressed:   {100, 0, 0, 200},
	ColorButtonBlue:         {0, 100, 150, 200},
	ColorButtonBlueHover:    {0, 150, 200, 200},
	ColorButtonBluePressed:  {0, 50, 100, 200},
}

// NRGBA returns the raster colour for c, not premultiplied.
func (c Color) NRGBA() color.NRGBA {
	return palette[c]
}

// WithAlpha returns the raster colour for c with its alpha scaled by a in [0, 1].
func (c Color) WithAlpha(a float64) color.NRGBA {
	rgba := palette[c]
	rgba.A = uint8(float64(rgba.A) * ClampF(a, 0, 1))
	return rgba
}
