package core

import (
	"image/color"
	"testing"
)

func TestColorNRGBA(t *testing.T) {
	tests := []struct {
		c        Color
		expected color.NRGBA
	}{
		{ColorDefault, color.NRGBA{}},
		{ColorRed, color.NRGBA{255, 0, 0, 255}},
		{ColorGray, color.NRGBA{200, 200, 200, 100}},
		{ColorButtonBlueHover, color.NRGBA{0, 150, 200, 200}},
	}

	for _, tt := range tests {
		if got := tt.c.NRGBA(); got != tt.expected {
			t.Errorf("Color(%d).NRGBA() = %v, expected %v", tt.c, got, tt.expected)
		}
	}
}

func TestColorWithAlpha(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		expected uint8
	}{
		{"opaque", 1, 255},
		{"half", 0.5, 127},
		{"clamped low", -1, 0},
		{"clamped high", 3, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColorYellow.WithAlpha(tt.a)
			if got.A != tt.expected {
				t.Errorf("WithAlpha(%v).A = %d, expected %d", tt.a, got.A, tt.expected)
			}
			if got.R != 255 || got.G != 255 || got.B != 0 {
				t.Errorf("WithAlpha(%v) changed RGB: %v", tt.a, got)
			}
		})
	}
}
