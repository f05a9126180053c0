//go:build ebiten

package app

import (
	"log"
	"time"

	"game-of-life/internal/core"
	"game-of-life/internal/render"
	"game-of-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	runner  *core.Runner
	sim     core.Sim
	canvas  render.Canvas
	painter *render.GridPainter
	overlay *ui.Overlay

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game driving runner's simulation.
func New(runner *core.Runner, scale int, seed int64) *Game {
	sim := runner.Sim()
	canvas := render.DefaultCanvas()
	return &Game{
		runner:  runner,
		sim:     sim,
		canvas:  canvas,
		painter: render.NewGridPainter(canvas, sim.Size().W, sim.Size().H),
		overlay: ui.NewOverlay(sim),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		Restart(g.sim, g.seed)
		g.tickOnce = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if c, ok := g.sim.(Clearer); ok {
			c.Clear()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick()
	}

	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.runner.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleClick() {
	ed, ok := g.sim.(Editor)
	if !ok {
		return
	}
	x, y := ebiten.CursorPosition()
	size := g.sim.Size()
	row, col, ok := g.canvas.CellAt(x/g.scale, y/g.scale, size.W, size.H)
	if !ok {
		return
	}
	click := Click{
		Row:   row,
		Col:   col,
		Ctrl:  ebiten.IsKeyPressed(ebiten.KeyControl),
		Shift: ebiten.IsKeyPressed(ebiten.KeyShift),
	}
	if err := ApplyClick(ed, click); err != nil {
		log.Printf("click at (%d, %d): %v", row, col, err)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.sim.Size(), g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.canvas.Bounds(g.sim.Size().W, g.sim.Size().H)
	return w * g.scale, h * g.scale
}
