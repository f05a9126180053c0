// Package metrics records generation timings and grid statistics with
// Prometheus.
package metrics

import (
	"net/http"

	"game-of-life/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// TickTimer implements core.Timer and core.Observer.
type TickTimer struct {
	durations   *prometheus.HistogramVec
	generations prometheus.Counter
	population  prometheus.Gauge
}

// NewTickTimer creates the collectors and registers them on reg.
func NewTickTimer(reg prometheus.Registerer) (*TickTimer, error) {
	t := &TickTimer{
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "life_span_duration_seconds",
			Help:    "Duration of timed simulation intervals in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 14),
		}, []string{"label"}),
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_generations_total",
			Help: "Total number of generations computed.",
		}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "life_population",
			Help: "Live cells after the most recent generation.",
		}),
	}
	for _, c := range []prometheus.Collector{t.durations, t.generations, t.population} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Start opens an interval observed into the histogram under label.
func (t *TickTimer) Start(label string) core.Span {
	return span{prometheus.NewTimer(t.durations.WithLabelValues(label))}
}

type span struct {
	timer *prometheus.Timer
}

func (s span) End() { s.timer.ObserveDuration() }

// Observe counts a generation and samples the population of sim.
func (t *TickTimer) Observe(sim core.Sim) {
	t.generations.Inc()
	t.population.Set(float64(sim.Cells().Count()))
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
