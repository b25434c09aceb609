package telemetry

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vovakirdan/triangle-dodger/internal/games/dodger"
)

func TestOnEventCounts(t *testing.T) {
	m := New()

	m.OnEvent(dodger.Event{Kind: dodger.EventDodged, Count: 2, Score: 2, Lives: 5, Speed: 300})
	m.OnEvent(dodger.Event{Kind: dodger.EventDodged, Count: 1, Score: 3, Lives: 5, Speed: 340})
	m.OnEvent(dodger.Event{Kind: dodger.EventLifeLost, Score: 3, Lives: 4, Speed: 340})

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"dodged events", testutil.ToFloat64(m.events.WithLabelValues("dodged")), 2},
		{"life_lost events", testutil.ToFloat64(m.events.WithLabelValues("life_lost")), 1},
		{"obstacles dodged", testutil.ToFloat64(m.dodged), 3},
		{"score", testutil.ToFloat64(m.score), 3},
		{"lives", testutil.ToFloat64(m.lives), 4},
		{"speed", testutil.ToFloat64(m.speed), 340},
	}
	for _, tc := range tests {
		if tc.got != tc.expected {
			t.Errorf("%s = %v, expected %v", tc.name, tc.got, tc.expected)
		}
	}
}

func TestObserveFrame(t *testing.T) {
	m := New()
	m.ObserveFrame(2*time.Millisecond, dodger.Snapshot{Obstacles: 4, Particles: 30})

	if got := testutil.ToFloat64(m.obstacles); got != 4 {
		t.Errorf("obstacles = %v, expected 4", got)
	}
	if got := testutil.ToFloat64(m.particles); got != 30 {
		t.Errorf("particles = %v, expected 30", got)
	}
	if n := testutil.CollectAndCount(m.frameDuration); n != 1 {
		t.Errorf("frame duration series = %d, expected 1", n)
	}
}

func TestWriteText(t *testing.T) {
	m := New()
	m.OnEvent(dodger.Event{Kind: dodger.EventGameOver, Score: 9})

	var buf bytes.Buffer
	if err := m.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`dodger_events_total{kind="game_over"} 1`,
		"dodger_score 9",
		"# TYPE dodger_frame_duration_seconds histogram",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
