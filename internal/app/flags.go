package app

import (
	"flag"
	"fmt"
)

// Timing backends selectable with -timing.
const (
	TimingNone = "none"
	TimingLog  = "log"
	TimingProm = "prom"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string
	Scale  int
	TPS    int
	Seed   int64
	Timing string

	// MetricsAddr serves Prometheus metrics when non-empty.
	MetricsAddr string

	// SimArgs is passed to the simulation factory.
	SimArgs map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 2, TPS: 30, Seed: 42, Timing: TimingNone, SimArgs: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Timing, "timing", c.Timing, "tick timing backend: none, log or prom")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "address to serve Prometheus metrics on, e.g. :2112")
	for _, key := range []string{"w", "h", "mode", "glider", "pulsar"} {
		fs.Func(key, "simulation option "+key, func(v string) error {
			c.SimArgs[key] = v
			return nil
		})
	}
}

// Validate checks option combinations that flag parsing cannot.
func (c *Config) Validate() error {
	switch c.Timing {
	case TimingNone, TimingLog, TimingProm:
	default:
		return fmt.Errorf("unknown timing backend %q", c.Timing)
	}
	if c.MetricsAddr != "" && c.Timing != TimingProm {
		return fmt.Errorf("-metrics-addr requires -timing=%s", TimingProm)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	return nil
}

// Args returns the simulation options with the seed filled in.
func (c *Config) Args() map[string]string {
	args := make(map[string]string, len(c.SimArgs)+1)
	for k, v := range c.SimArgs {
		args[k] = v
	}
	args["seed"] = fmt.Sprint(c.Seed)
	return args
}
