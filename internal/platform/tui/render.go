package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/triangle-dodger/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Button faces are drawn as
// box outlines, so each gets the foreground closest to its fill.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorSky:     lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

	core.ColorButtonGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorButtonGreenHover:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	core.ColorButtonGreenPressed: lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Bold(true),
	core.ColorButtonRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
	core.ColorButtonRedHover:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	core.ColorButtonRedPressed:   lipgloss.NewStyle().Foreground(lipgloss.Color("88")).Bold(true),
	core.ColorButtonBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("31")),
	core.ColorButtonBlueHover:    lipgloss.NewStyle().Foreground(lipgloss.Color("38")).Bold(true),
	core.ColorButtonBluePressed:  lipgloss.NewStyle().Foreground(lipgloss.Color("24")).Bold(true),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string. Each row is split
// into runs of one color so every run costs a single escape sequence.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()
	var sb strings.Builder
	sb.Grow(w*h*2 + h)

	run := make([]rune, 0, w)
	for y := range h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; {
			runColor := s.GetCell(x, y).Color
			run = run[:0]
			for ; x < w; x++ {
				cell := s.GetCell(x, y)
				if cell.Color != runColor {
					break
				}
				run = append(run, cell.Rune)
			}
			sb.WriteString(styleFor(runColor).Render(string(run)))
		}
	}
	return sb.String()
}
