package dodger

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/triangle-dodger/internal/config"
	"github.com/vovakirdan/triangle-dodger/internal/core"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec(a, b core.Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

// quietConfig is the default tuning with spawning effectively disabled, so
// tests control every obstacle in play.
func quietConfig() config.DodgerConfig {
	cfg := config.DefaultDodgerConfig()
	cfg.Speed.SpawnInterval = 1e9
	return cfg
}

func newTestGame(t *testing.T, cfg config.DodgerConfig) (*Game, *eventLog) {
	t.Helper()
	log := &eventLog{}
	return NewGame(cfg, rand.New(rand.NewSource(42)), log), log
}

type eventLog struct {
	events []Event
}

func (l *eventLog) OnEvent(e Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(kind EventKind) int {
	n := 0
	for _, e := range l.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// constRand always returns the same value.
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }
