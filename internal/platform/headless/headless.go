// Package headless steps a session at a fixed dt without any display, for
// soak runs, benchmarks and reproducible replays.
package headless

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/triangle-dodger/internal/core"
	"github.com/vovakirdan/triangle-dodger/internal/games/dodger"
	"github.com/vovakirdan/triangle-dodger/internal/telemetry"
)

// ErrInvalidStep is returned for a non-positive dt or duration.
var ErrInvalidStep = errors.New("headless: dt and duration must be positive")

// Options configures Run.
type Options struct {
	Session  *dodger.Session
	DT       float64       // seconds per frame
	Duration time.Duration // simulated time budget
	// Autopilot steers the player; without it the player never moves.
	Autopilot bool
	Metrics   *telemetry.Metrics
	Logger    *log.Logger
}

// Result summarizes a run.
type Result struct {
	Snapshot  dodger.Snapshot
	Frames    int
	Simulated time.Duration
	GameOver  bool
	WallTime  time.Duration
}

// Run starts a fresh game and steps it until the game ends, the simulated
// duration is used up, or ctx is cancelled.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.DT <= 0 || opts.Duration <= 0 {
		return Result{}, ErrInvalidStep
	}

	s := opts.Session
	s.StartGame()
	g := s.Game()
	pilot := dodger.NewAutopilot()
	frames := int(opts.Duration.Seconds() / opts.DT)

	began := time.Now()
	res := Result{}
	for res.Frames < frames {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		in := core.NewInputFrame()
		if opts.Autopilot {
			holdControls(&in, pilot.Controls(g))
		}

		start := time.Now()
		s.Update(opts.DT, in)
		if opts.Metrics != nil {
			opts.Metrics.ObserveFrame(time.Since(start), g.Snapshot())
		}
		res.Frames++

		if s.State() == dodger.StateGameOver {
			res.GameOver = true
			break
		}
	}

	res.Snapshot = g.Snapshot()
	res.Simulated = time.Duration(g.Elapsed() * float64(time.Second))
	res.WallTime = time.Since(began)
	if opts.Logger != nil {
		opts.Logger.Info("simulation finished",
			"frames", res.Frames,
			"score", res.Snapshot.Score,
			"lives", res.Snapshot.Lives,
			"game_over", res.GameOver,
			"wall", res.WallTime)
	}
	return res, nil
}

func holdControls(in *core.InputFrame, c dodger.Controls) {
	if c.Left {
		in.Hold(core.ActionLeft)
	}
	if c.Right {
		in.Hold(core.ActionRight)
	}
	if c.Up {
		in.Hold(core.ActionUp)
	}
	if c.Down {
		in.Hold(core.ActionDown)
	}
}
