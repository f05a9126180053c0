// Command life-text prints successive generations of a simulation to stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"game-of-life/internal/app"
	"game-of-life/internal/core"
	_ "game-of-life/internal/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	gens := flag.Int("gens", 10, "generations to print; 0 runs until interrupted")
	clearScreen := flag.Bool("clear", false, "clear the terminal before each frame")
	flag.Parse()
	if err := validateGens(*gens); err != nil {
		log.Fatalf("life-text: %v", err)
	}

	runner, metricsHandler, err := app.NewRunner(cfg, log.New(os.Stderr, "", log.LstdFlags))
	if err != nil {
		log.Fatalf("life-text: %v", err)
	}
	if cfg.MetricsAddr != "" {
		app.ServeMetrics(cfg.MetricsAddr, metricsHandler)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	pace := core.NewFixedStep(cfg.TPS)
	ticker := time.NewTicker(pace.Interval())
	defer ticker.Stop()

	frame(out, runner, *clearScreen)
	for *gens == 0 || runner.Steps() < uint64(*gens) {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		if !pace.ShouldStep() {
			continue
		}
		runner.Step()
		frame(out, runner, *clearScreen)
	}
}

func frame(out *bufio.Writer, r *core.Runner, clearScreen bool) {
	if clearScreen {
		fmt.Fprint(out, "\x1b[H\x1b[2J")
	}
	sim := r.Sim()
	fmt.Fprintf(out, "generation %d, population %d\n", generation(r), sim.Cells().Count())
	if s, ok := sim.(fmt.Stringer); ok {
		fmt.Fprint(out, s.String())
	}
	fmt.Fprintln(out)
	out.Flush()
}

func validateGens(gens int) error {
	if gens < 0 {
		return fmt.Errorf("-gens must not be negative, got %d", gens)
	}
	return nil
}

// generation prefers the simulation's own count, which restarts on reseed or
// clear, over the number of steps the runner has taken.
func generation(r *core.Runner) uint64 {
	if g, ok := r.Sim().(interface{ Generation() uint64 }); ok {
		return g.Generation()
	}
	return r.Steps()
}
