package app

import (
	"fmt"
	"log"
	"net/http"

	"game-of-life/internal/core"
	"game-of-life/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// NewRunner constructs the configured simulation and wraps it with the
// configured tick timer. The returned handler serves metrics when the
// Prometheus backend is selected and is nil otherwise.
func NewRunner(c *Config, logger *log.Logger) (*core.Runner, http.Handler, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, nil, fmt.Errorf("unknown sim %q (have %v)", c.Sim, core.SimNames())
	}
	sim, err := factory(c.Args())
	if err != nil {
		return nil, nil, fmt.Errorf("build %s: %w", c.Sim, err)
	}

	switch c.Timing {
	case TimingLog:
		return core.NewRunner(sim, core.NewLogTimer(logger)), nil, nil
	case TimingProm:
		reg := prometheus.NewRegistry()
		tt, err := metrics.NewTickTimer(reg)
		if err != nil {
			return nil, nil, err
		}
		return core.NewRunner(sim, tt, tt), metrics.Handler(reg), nil
	default:
		return core.NewRunner(sim, nil), nil, nil
	}
}

// ServeMetrics serves handler under /metrics on addr in the background.
func ServeMetrics(addr string, handler http.Handler) {
	go func() {
		log.Printf("metrics endpoint listening on %s/metrics", addr)
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Fatalf("metrics HTTP server failed: %v", err)
		}
	}()
}
