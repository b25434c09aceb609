package dodger

import "testing"

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind     EventKind
		expected string
	}{
		{EventSessionStarted, "session_started"},
		{EventDodged, "dodged"},
		{EventGameOver, "game_over"},
		{EventKind(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.expected {
			t.Errorf("EventKind(%d).String() = %q, expected %q", tc.kind, got, tc.expected)
		}
	}
}

func TestSinksFanOut(t *testing.T) {
	a, b := &eventLog{}, &eventLog{}
	var seen int
	sink := Sinks(a, nil, b, EventSinkFunc(func(Event) { seen++ }))

	sink.OnEvent(Event{Kind: EventLifeLost, Lives: 2})

	if len(a.events) != 1 || len(b.events) != 1 || seen != 1 {
		t.Errorf("fan out = %d, %d, %d, expected one each", len(a.events), len(b.events), seen)
	}
}
