package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/triangle-dodger/internal/platform/headless"
	"github.com/vovakirdan/triangle-dodger/internal/platform/raster"
	"github.com/vovakirdan/triangle-dodger/internal/telemetry"
)

var (
	flagSimDuration  time.Duration
	flagSimDT        float64
	flagSimAutopilot bool
	flagSimPNG       string
	flagSimMetrics   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Step the game at a fixed dt without a display and print a summary.

The run ends when the game is over or the simulated duration is used up.
With the same --seed, --dt and tuning, runs are identical.

Examples:
  dodger sim --seed 7 --autopilot
  dodger sim --duration 5m --dt 0.008 --metrics
  dodger sim --autopilot --png last.png`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", 60*time.Second, "Simulated time budget")
	simCmd.Flags().Float64Var(&flagSimDT, "dt", 0.016, "Seconds per simulated frame")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Let the autopilot steer")
	simCmd.Flags().StringVar(&flagSimPNG, "png", "", "Save the final frame as PNG")
	simCmd.Flags().BoolVar(&flagSimMetrics, "metrics", false, "Print Prometheus metrics after the run")
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, err := loadTuning()
	if err != nil {
		fail(err)
	}
	logger, closer, err := newLogger(false)
	if err != nil {
		fail(err)
	}
	defer closer.Close()

	var metrics *telemetry.Metrics
	if flagSimMetrics {
		metrics = telemetry.New()
	}
	session := newSession(cfg, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := headless.Run(ctx, headless.Options{
		Session:   session,
		DT:        flagSimDT,
		Duration:  flagSimDuration,
		Autopilot: flagSimAutopilot,
		Metrics:   metrics,
		Logger:    logger,
	})
	if err != nil {
		fail(err)
	}

	s := res.Snapshot
	fmt.Printf("frames:    %d\n", res.Frames)
	fmt.Printf("simulated: %s\n", res.Simulated.Round(time.Millisecond))
	fmt.Printf("score:     %d\n", s.Score)
	fmt.Printf("lives:     %d\n", s.Lives)
	fmt.Printf("speed:     %.0f\n", s.Speed)
	fmt.Printf("game over: %v\n", res.GameOver)
	fmt.Printf("checksum:  %016x\n", s.Checksum)

	if flagSimPNG != "" {
		r := raster.New(int(cfg.World.Width), int(cfg.World.Height), cfg.Fonts.Paths, logger)
		if err := r.SavePNG(flagSimPNG, session.Frame()); err != nil {
			fail(err)
		}
		logger.Info("final frame saved", "path", flagSimPNG)
	}
	if metrics != nil {
		if err := metrics.WriteText(os.Stdout); err != nil {
			fail(err)
		}
	}
}
