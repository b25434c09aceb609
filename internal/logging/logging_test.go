package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/triangle-dodger/internal/games/dodger"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected log.Level
		wantErr  bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{"warn", log.WarnLevel, false},
		{"loud", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			logger, closer, err := New(Options{Level: tc.level, Discard: true})
			if tc.wantErr {
				if err == nil {
					t.Error("New() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer closer.Close()
			if logger.GetLevel() != tc.expected {
				t.Errorf("GetLevel() = %v, expected %v", logger.GetLevel(), tc.expected)
			}
		})
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dodger.log")
	logger, closer, err := New(Options{File: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("hello", "n", 1)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "dodger") {
		t.Errorf("log file = %q", data)
	}
}

func newBufferLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
}

func TestEventLoggerMessages(t *testing.T) {
	var buf bytes.Buffer
	l := NewEventLogger(newBufferLogger(&buf), 100)

	l.OnEvent(dodger.Event{Kind: dodger.EventLifeLost, Lives: 4})
	l.OnEvent(dodger.Event{Kind: dodger.EventGameOver, Score: 17})

	out := buf.String()
	for _, want := range []string{"Lives remaining", "lives=4", "Game Over! Final Score", "score=17"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEventLoggerThrottlesDodged(t *testing.T) {
	var buf bytes.Buffer
	// One token and a very slow refill: only the first line gets through.
	l := NewEventLogger(newBufferLogger(&buf), 0.001)

	for i := range 5 {
		l.OnEvent(dodger.Event{Kind: dodger.EventDodged, Count: 1, Score: i + 1})
	}

	if n := strings.Count(buf.String(), "dodged"); n != 1 {
		t.Errorf("dodged lines = %d, expected 1:\n%s", n, buf.String())
	}
	if l.Suppressed() != 4 {
		t.Errorf("Suppressed() = %d, expected 4", l.Suppressed())
	}
}

func TestEventLoggerAsSink(t *testing.T) {
	var buf bytes.Buffer
	var sink dodger.EventSink = NewEventLogger(newBufferLogger(&buf), DefaultDodgedPerSecond)
	sink.OnEvent(dodger.Event{Kind: dodger.EventSpeedUp, Speed: 340})
	if !strings.Contains(buf.String(), "speed=340") {
		t.Errorf("output = %q", buf.String())
	}
}
