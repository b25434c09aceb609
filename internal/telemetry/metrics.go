// Package telemetry exposes dodger simulation counters as Prometheus
// metrics on a private registry.
package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/vovakirdan/triangle-dodger/internal/games/dodger"
)

// Metrics counts events and samples per-frame gauges. Labels are bounded to
// the fixed set of event kinds.
type Metrics struct {
	registry *prometheus.Registry

	events        *prometheus.CounterVec
	dodged        prometheus.Counter
	score         prometheus.Gauge
	lives         prometheus.Gauge
	speed         prometheus.Gauge
	obstacles     prometheus.Gauge
	particles     prometheus.Gauge
	frameDuration prometheus.Histogram
}

// New creates metrics registered on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		events: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dodger_events_total",
			Help: "Simulation events by kind",
		}, []string{"kind"}),
		dodged: f.NewCounter(prometheus.CounterOpts{
			Name: "dodger_obstacles_dodged_total",
			Help: "Obstacles that fell past the bottom edge",
		}),
		score: f.NewGauge(prometheus.GaugeOpts{
			Name: "dodger_score",
			Help: "Current score",
		}),
		lives: f.NewGauge(prometheus.GaugeOpts{
			Name: "dodger_lives",
			Help: "Remaining lives",
		}),
		speed: f.NewGauge(prometheus.GaugeOpts{
			Name: "dodger_speed",
			Help: "Current game speed",
		}),
		obstacles: f.NewGauge(prometheus.GaugeOpts{
			Name: "dodger_obstacle_count",
			Help: "Live obstacles",
		}),
		particles: f.NewGauge(prometheus.GaugeOpts{
			Name: "dodger_particle_count",
			Help: "Live particles",
		}),
		frameDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "dodger_frame_duration_seconds",
			Help:    "Time spent updating one frame",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.033},
		}),
	}
}

// OnEvent implements dodger.EventSink.
func (m *Metrics) OnEvent(e dodger.Event) {
	m.events.WithLabelValues(e.Kind.String()).Inc()
	if e.Kind == dodger.EventDodged {
		m.dodged.Add(float64(e.Count))
	}
	m.score.Set(float64(e.Score))
	m.lives.Set(float64(e.Lives))
	m.speed.Set(e.Speed)
}

// ObserveFrame records how long one update took and the entity counts after
// it.
func (m *Metrics) ObserveFrame(d time.Duration, s dodger.Snapshot) {
	m.frameDuration.Observe(d.Seconds())
	m.obstacles.Set(float64(s.Obstacles))
	m.particles.Set(float64(s.Particles))
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteText dumps every metric in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
