package dodger

import "github.com/vovakirdan/triangle-dodger/internal/core"

// EventKind identifies something that happened during a frame.
type EventKind int

const (
	EventSessionStarted EventKind = iota
	EventObstacleSpawned
	EventDodged
	EventObstacleCollision
	EventLifeLost
	EventGameOver
	EventSpeedUp
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSessionStarted:
		return "session_started"
	case EventObstacleSpawned:
		return "obstacle_spawned"
	case EventDodged:
		return "dodged"
	case EventObstacleCollision:
		return "obstacle_collision"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventSpeedUp:
		return "speed_up"
	default:
		return "unknown"
	}
}

// Event carries a snapshot of the counters relevant to the event.
type Event struct {
	Kind  EventKind
	Count int // obstacles dodged this frame, for EventDodged
	Score int
	Lives int
	Speed float64
	Pos   core.Vec2 // where it happened, if anywhere
}

// EventSink receives simulation events. Sinks are called synchronously from
// the update loop and must not block.
type EventSink interface {
	OnEvent(Event)
}

// EventSinkFunc adapts a function to the EventSink interface.
type EventSinkFunc func(Event)

// OnEvent calls f(e).
func (f EventSinkFunc) OnEvent(e Event) { f(e) }

type multiSink []EventSink

func (m multiSink) OnEvent(e Event) {
	for _, s := range m {
		s.OnEvent(e)
	}
}

// Sinks fans events out to every non-nil sink.
func Sinks(sinks ...EventSink) EventSink {
	var out multiSink
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

type discardSink struct{}

func (discardSink) OnEvent(Event) {}
