package dodger

import (
	"testing"

	"github.com/vovakirdan/triangle-dodger/internal/config"
	"github.com/vovakirdan/triangle-dodger/internal/core"
)

func TestPlayerStaysInBounds(t *testing.T) {
	tests := []struct {
		name string
		move func(p *Player, dt float64)
	}{
		{"left", (*Player).MoveLeft},
		{"right", (*Player).MoveRight},
		{"forward", (*Player).MoveForward},
		{"backward", (*Player).MoveBackward},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(config.DefaultDodgerConfig())
			for range 50 {
				tc.move(p, 0.1)
				p.Update(0.1)
				if p.Pos.X < 16 || p.Pos.X > 464 {
					t.Fatalf("X = %f, expected within [16, 464]", p.Pos.X)
				}
				if p.Pos.Y < 60 || p.Pos.Y > 793 {
					t.Fatalf("Y = %f, expected within [60, 793]", p.Pos.Y)
				}
			}
		})
	}
}

func TestPlayerMovementAndTilt(t *testing.T) {
	p := NewPlayer(config.DefaultDodgerConfig())

	p.MoveLeft(0.1)
	if !near(p.Pos.X, 200) || p.TargetRotation != -30 {
		t.Errorf("MoveLeft: X = %f target = %f, expected 200 / -30", p.Pos.X, p.TargetRotation)
	}
	p.MoveRight(0.1)
	if p.TargetRotation != 30 {
		t.Errorf("MoveRight target = %f, expected 30", p.TargetRotation)
	}
	p.MoveForward(0.1)
	if !near(p.Pos.Y, 610) || p.TargetRotation != -15 {
		t.Errorf("MoveForward: Y = %f target = %f, expected 610 / -15", p.Pos.Y, p.TargetRotation)
	}
	p.MoveBackward(0.1)
	if p.TargetRotation != 15 {
		t.Errorf("MoveBackward target = %f, expected 15", p.TargetRotation)
	}
}

func TestRotationShortestArc(t *testing.T) {
	p := NewPlayer(config.DefaultDodgerConfig())
	p.Rotation = 350
	p.TargetRotation = 10

	for i := 0; i < 20 && p.Rotation != 10; i++ {
		p.Update(0.01) // 3.6 degrees per step
		if p.Rotation > 10 && p.Rotation < 350 {
			t.Fatalf("step %d: rotation %f left the short arc through 0", i, p.Rotation)
		}
		if p.Rotation < 0 || p.Rotation >= 360 {
			t.Fatalf("step %d: rotation %f not normalized", i, p.Rotation)
		}
	}
	if p.Rotation != 10 {
		t.Errorf("Rotation = %f, expected 10", p.Rotation)
	}
}

func TestRotationNegativeTargetNormalizes(t *testing.T) {
	p := NewPlayer(config.DefaultDodgerConfig())
	p.TargetRotation = -30

	p.Update(1) // step of 360 covers the whole turn
	if p.Rotation != 330 {
		t.Errorf("Rotation = %f, expected 330", p.Rotation)
	}
	// Already at the target modulo 360: stays put.
	p.Update(0.01)
	if p.Rotation != 330 {
		t.Errorf("Rotation = %f, expected 330 to be stable", p.Rotation)
	}
}

func TestRotationSnapsWithinOneDegree(t *testing.T) {
	p := NewPlayer(config.DefaultDodgerConfig())
	p.Rotation = 10.5
	p.TargetRotation = 10
	p.Update(0.0001)
	if p.Rotation != 10 {
		t.Errorf("Rotation = %f, expected snap to 10", p.Rotation)
	}
}

func TestPowerStateExpires(t *testing.T) {
	p := NewPlayer(config.DefaultDodgerConfig())
	p.SetPowerState(PowerCharging, 1.0)

	p.Update(0.5)
	if p.PowerState() != PowerCharging {
		t.Errorf("PowerState() = %v, expected Charging", p.PowerState())
	}
	p.Update(0.5)
	if p.PowerState() != PowerNormal {
		t.Errorf("PowerState() = %v, expected Normal after expiry", p.PowerState())
	}
}

func TestPowerStateColors(t *testing.T) {
	tests := []struct {
		state         PowerState
		fill, outline core.Color
	}{
		{PowerNormal, core.ColorWhite, core.ColorCyan},
		{PowerSpeedBoost, core.ColorSky, core.ColorWhite},
		{PowerInvulnerable, core.ColorYellow, core.ColorWhite},
		{PowerCharging, core.ColorGreen, core.ColorWhite},
		{PowerOvercharged, core.ColorRed, core.ColorYellow},
	}
	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			fill, outline := tc.state.Colors()
			if fill != tc.fill || outline != tc.outline {
				t.Errorf("Colors() = %v/%v, expected %v/%v", fill, outline, tc.fill, tc.outline)
			}
		})
	}
}

func TestFlashingBlinks(t *testing.T) {
	p := NewPlayer(config.DefaultDodgerConfig())
	if !p.Visible() {
		t.Fatal("player should be visible when not flashing")
	}

	p.SetFlashing(true)
	p.Update(0.1) // phase 0.8
	if !p.Visible() {
		t.Error("expected visible in first blink phase")
	}
	p.Update(0.05) // phase 1.2
	if p.Visible() {
		t.Error("expected hidden in second blink phase")
	}

	// Repeating SetFlashing(true) keeps the phase.
	p.SetFlashing(true)
	if p.Visible() {
		t.Error("SetFlashing(true) while flashing should not restart the blink")
	}

	p.SetFlashing(false)
	if !p.Visible() {
		t.Error("expected visible once flashing stops")
	}
}

func TestPlayerBounds(t *testing.T) {
	p := NewPlayer(config.DefaultDodgerConfig())
	b := p.Bounds()
	expected := core.NewRect(224, 634, 32, 32)
	if !near(b.X, expected.X) || !near(b.Y, expected.Y) || !near(b.W, expected.W) || !near(b.H, expected.H) {
		t.Errorf("Bounds() = %+v, expected %+v", b, expected)
	}

	p.Rotation = 30
	if rb := p.Bounds(); rb.W <= 0 || rb.H <= 0 || !rb.Contains(p.Pos) {
		t.Errorf("rotated Bounds() = %+v should contain the centre", rb)
	}
}

func TestPlayerReset(t *testing.T) {
	p := NewPlayer(config.DefaultDodgerConfig())
	p.MoveLeft(0.3)
	p.Rotation = 200
	p.SetPowerState(PowerOvercharged, 2)

	p.Reset()
	if p.Pos != core.V(240, 650) || p.Rotation != 0 || p.TargetRotation != 0 {
		t.Errorf("Reset() left pos=%v rot=%f target=%f", p.Pos, p.Rotation, p.TargetRotation)
	}
	if p.PowerState() != PowerNormal {
		t.Errorf("Reset() left power %v", p.PowerState())
	}
}
