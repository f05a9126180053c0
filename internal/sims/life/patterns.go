package life

import (
	"fmt"
	"sort"
)

// Shape is a fixed set of live cells relative to the top-left of its
// bounding box. Offset is the cell of the box placed on the stamp anchor.
type Shape struct {
	Name   string
	Offset Coord
	Cells  []Coord
}

// Glider is the five-cell spaceship, anchored on its centre.
var Glider = Shape{
	Name:   "glider",
	Offset: Coord{Row: 1, Col: 1},
	Cells: []Coord{
		{0, 1},
		{1, 2},
		{2, 0}, {2, 1}, {2, 2},
	},
}

// Pulsar is the 48-cell period-3 oscillator in a 13x13 box, anchored on its
// centre.
var Pulsar = Shape{
	Name:   "pulsar",
	Offset: Coord{Row: 6, Col: 6},
	Cells:  pulsarCells(),
}

func pulsarCells() []Coord {
	lines := [4]uint32{0, 5, 7, 12}
	arms := [6]uint32{2, 3, 4, 8, 9, 10}
	cells := make([]Coord, 0, 48)
	for _, r := range lines {
		for _, c := range arms {
			cells = append(cells, Coord{Row: r, Col: c})
		}
	}
	for _, c := range lines {
		for _, r := range arms {
			cells = append(cells, Coord{Row: r, Col: c})
		}
	}
	return cells
}

var shapes = map[string]Shape{
	Glider.Name: Glider,
	Pulsar.Name: Pulsar,
}

// ShapeByName returns the built-in shape called name.
func ShapeByName(name string) (Shape, bool) {
	s, ok := shapes[name]
	return s, ok
}

// ShapeNames lists the built-in shapes in sorted order.
func ShapeNames() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp marks the cells of shape alive with its offset cell on
// (row, column). The shape wraps around the edges and existing live cells
// are left alone.
func (u *Universe) Stamp(shape Shape, row, column uint32) error {
	if len(shape.Cells) == 0 {
		return fmt.Errorf("life: shape %q has no cells", shape.Name)
	}
	top := wrapSub(row, shape.Offset.Row, u.height)
	left := wrapSub(column, shape.Offset.Col, u.width)
	placed := make([]Coord, len(shape.Cells))
	for i, c := range shape.Cells {
		placed[i] = Coord{
			Row: wrapAdd(top, c.Row, u.height),
			Col: wrapAdd(left, c.Col, u.width),
		}
	}
	return u.SetCells(placed)
}

// DrawGlider stamps a glider centred on (row, column).
func (u *Universe) DrawGlider(row, column uint32) error {
	return u.Stamp(Glider, row, column)
}

// DrawPulsar stamps a pulsar centred on (row, column).
func (u *Universe) DrawPulsar(row, column uint32) error {
	return u.Stamp(Pulsar, row, column)
}

// wrapSub returns (a - b) mod n without leaving unsigned arithmetic.
func wrapSub(a, b, n uint32) uint32 {
	m := uint64(n)
	return uint32((uint64(a)%m + m - uint64(b)%m) % m)
}

func wrapAdd(a, b, n uint32) uint32 {
	m := uint64(n)
	return uint32((uint64(a) + uint64(b)) % m)
}
