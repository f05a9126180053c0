//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"game-of-life/internal/app"
	"game-of-life/internal/render"
	_ "game-of-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	runner, metricsHandler, err := app.NewRunner(cfg, log.Default())
	if err != nil {
		log.Fatalf("life: %v", err)
	}
	if cfg.MetricsAddr != "" {
		app.ServeMetrics(cfg.MetricsAddr, metricsHandler)
	}

	sim := runner.Sim()
	game := app.New(runner, cfg.Scale, cfg.Seed)
	w, h := render.DefaultCanvas().Bounds(sim.Size().W, sim.Size().H)

	ebiten.SetWindowTitle("game of life — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
