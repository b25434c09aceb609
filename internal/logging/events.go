package logging

import (
	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/vovakirdan/triangle-dodger/internal/games/dodger"
)

// DefaultDodgedPerSecond limits "dodged" lines, which can fire every frame
// at high speed.
const DefaultDodgedPerSecond = 2

// EventLogger writes simulation events to a logger. Frequent events are
// throttled; the number of suppressed lines is reported with the next one
// that gets through.
type EventLogger struct {
	logger     *log.Logger
	dodged     *rate.Limiter
	suppressed int
}

// NewEventLogger creates an event logger allowing perSecond dodged lines.
func NewEventLogger(logger *log.Logger, perSecond float64) *EventLogger {
	return &EventLogger{
		logger: logger,
		dodged: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

// OnEvent implements dodger.EventSink.
func (l *EventLogger) OnEvent(e dodger.Event) {
	switch e.Kind {
	case dodger.EventSessionStarted:
		l.logger.Debug("session started", "lives", e.Lives, "speed", e.Speed)
	case dodger.EventObstacleSpawned:
		l.logger.Debug("obstacle spawned", "x", int(e.Pos.X))
	case dodger.EventDodged:
		if !l.dodged.Allow() {
			l.suppressed++
			return
		}
		kv := []any{"count", e.Count, "score", e.Score}
		if l.suppressed > 0 {
			kv = append(kv, "suppressed", l.suppressed)
			l.suppressed = 0
		}
		l.logger.Info("dodged", kv...)
	case dodger.EventObstacleCollision:
		l.logger.Debug("obstacles collided", "x", int(e.Pos.X), "y", int(e.Pos.Y))
	case dodger.EventLifeLost:
		l.logger.Info("Lives remaining", "lives", e.Lives)
	case dodger.EventGameOver:
		l.logger.Info("Game Over! Final Score", "score", e.Score)
	case dodger.EventSpeedUp:
		l.logger.Debug("speed up", "speed", int(e.Speed))
	}
}

// Suppressed returns the number of dodged lines dropped since the last one
// written.
func (l *EventLogger) Suppressed() int {
	return l.suppressed
}
