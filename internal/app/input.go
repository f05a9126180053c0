package app

import (
	"fmt"

	"game-of-life/internal/core"
)

// Editor is implemented by simulations whose cells can be edited by hand.
type Editor interface {
	ToggleCell(row, column uint32) error
	DrawGlider(row, column uint32) error
	DrawPulsar(row, column uint32) error
}

// Clearer is implemented by simulations that can kill every cell.
type Clearer interface {
	Clear()
}

// Restarter is implemented by simulations that can return to the grid they
// were seeded with.
type Restarter interface {
	Restart()
}

// Restart returns sim to its starting grid, or reseeds it from seed when it
// cannot restart.
func Restart(sim core.Sim, seed int64) {
	if r, ok := sim.(Restarter); ok {
		r.Restart()
		return
	}
	sim.Reset(seed)
}

// Click describes a mouse click already mapped to grid coordinates.
type Click struct {
	Row, Col int
	Ctrl     bool
	Shift    bool
}

// ApplyClick toggles the clicked cell, or stamps a glider with Ctrl held or a
// pulsar with Shift held.
func ApplyClick(ed Editor, c Click) error {
	if c.Row < 0 || c.Col < 0 {
		return fmt.Errorf("click outside grid at (%d, %d)", c.Row, c.Col)
	}
	row, col := uint32(c.Row), uint32(c.Col)
	switch {
	case c.Ctrl:
		return ed.DrawGlider(row, col)
	case c.Shift:
		return ed.DrawPulsar(row, col)
	default:
		return ed.ToggleCell(row, col)
	}
}
