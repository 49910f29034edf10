// Package telemetry exports tree growth statistics as Prometheus metrics.
package telemetry

import (
	"github.com/phanxgames/sapling"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sapling"

// Metrics holds the collectors fed by a Grower frame hook.
type Metrics struct {
	Frames        prometheus.Counter
	Executed      prometheus.Counter
	Segments      prometheus.Counter
	Pending       prometheus.Gauge
	FrameDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Number of drained animation frames.",
		}),
		Executed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_executed_total",
			Help:      "Number of queued branches grown.",
		}),
		Segments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "segments_drawn_total",
			Help:      "Number of line segments stroked by drained frames.",
		}),
		Pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_tasks",
			Help:      "Branches waiting in the queue after the last frame.",
		}),
		FrameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_duration_seconds",
			Help:      "Time spent draining one frame.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
	}
	reg.MustRegister(m.Frames, m.Executed, m.Segments, m.Pending, m.FrameDuration)
	return m
}

// ObserveFrame records one drained frame. Pass it to sapling.WithFrameHook,
// RunConfig.FrameHook or RenderOptions.FrameHook.
func (m *Metrics) ObserveFrame(s sapling.FrameStats) {
	m.Frames.Inc()
	m.Executed.Add(float64(s.Executed))
	m.Segments.Add(float64(s.Drawn))
	m.Pending.Set(float64(s.Pending()))
	m.FrameDuration.Observe(s.Duration.Seconds())
}
