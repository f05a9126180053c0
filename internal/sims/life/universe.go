package life

import (
	"errors"
	"fmt"
	"strconv"

	"game-of-life/internal/core"
	pcore "game-of-life/pkg/core"
)

const (
	// DefaultWidth is the column count used by New and Empty.
	DefaultWidth = 64
	// DefaultHeight is the row count used by New and Empty.
	DefaultHeight = 64
	// MaxCells bounds width*height so linear indexes fit an int on every platform.
	MaxCells = 1 << 30
)

var (
	// ErrOutOfRange reports a row or column outside the grid.
	ErrOutOfRange = errors.New("life: cell out of range")
	// ErrDegenerateSize reports a zero or oversized dimension.
	ErrDegenerateSize = errors.New("life: degenerate grid size")
)

// Coord addresses a cell by row and column.
type Coord struct {
	Row uint32
	Col uint32
}

// Universe is a toroidal Game of Life grid. The zero value is not usable;
// construct one with New, NewFixed, NewRandom, Empty or EmptySized.
type Universe struct {
	width, height uint32
	cur, nxt      *core.Bits
	// origin is the grid Restart returns to.
	origin     *core.Bits
	generation uint64
}

// New returns a 64x64 universe where cell i is alive iff i%2 == 0 or i%7 == 0.
func New() *Universe {
	u, _ := NewFixed(DefaultWidth, DefaultHeight)
	return u
}

// NewFixed returns a width x height universe seeded with the striped pattern
// used by New.
func NewFixed(width, height uint32) (*Universe, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	u := alloc(width, height)
	for i := 0; i < u.cur.Len(); i++ {
		if i%2 == 0 || i%7 == 0 {
			u.cur.Set(i, true)
		}
	}
	u.MarkOrigin()
	return u, nil
}

// NewRandom returns a universe whose cells are each alive with probability
// one half, drawn from src.
func NewRandom(width, height uint32, src core.RandomSource) (*Universe, error) {
	if src == nil {
		return nil, errors.New("life: nil random source")
	}
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	u := alloc(width, height)
	u.fill(src)
	u.MarkOrigin()
	return u, nil
}

// Empty returns a 64x64 universe with every cell dead.
func Empty() *Universe {
	return alloc(DefaultWidth, DefaultHeight)
}

// EmptySized returns a width x height universe with every cell dead.
func EmptySized(width, height uint32) (*Universe, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	return alloc(width, height), nil
}

func alloc(width, height uint32) *Universe {
	n := int(width) * int(height)
	return &Universe{
		width:  width,
		height: height,
		cur:    core.NewBits(n),
		nxt:    core.NewBits(n),
		origin: core.NewBits(n),
	}
}

func validateSize(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrDegenerateSize, width, height)
	}
	if uint64(width)*uint64(height) > MaxCells {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrDegenerateSize, width, height, MaxCells)
	}
	return nil
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "life" }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: int(u.width), H: int(u.height)} }

// Width returns the number of columns.
func (u *Universe) Width() uint32 { return u.width }

// Height returns the number of rows.
func (u *Universe) Height() uint32 { return u.height }

// Generation returns the number of ticks since the grid was last seeded,
// cleared or resized.
func (u *Universe) Generation() uint64 { return u.generation }

// Population returns the number of live cells.
func (u *Universe) Population() int { return u.cur.Count() }

// Cells exposes the current generation. The view is valid until the next
// mutating call.
func (u *Universe) Cells() core.BitView { return u.cur }

// Raw exposes the packed current generation without copying. Bit i of the
// buffer is cell i; callers must not write to it.
func (u *Universe) Raw() []byte { return u.cur.Bytes() }

// SetWidth changes the column count and kills every cell.
func (u *Universe) SetWidth(width uint32) error {
	return u.resize(width, u.height)
}

// SetHeight changes the row count and kills every cell.
func (u *Universe) SetHeight(height uint32) error {
	return u.resize(u.width, height)
}

func (u *Universe) resize(width, height uint32) error {
	if err := validateSize(width, height); err != nil {
		return err
	}
	*u = *alloc(width, height)
	return nil
}

// Reset reseeds the grid randomly from seed, keeping its dimensions. The new
// grid becomes the restart point.
func (u *Universe) Reset(seed int64) {
	u.fill(pcore.NewRNG(seed))
	u.MarkOrigin()
}

// MarkOrigin records the current grid as the state Restart returns to.
func (u *Universe) MarkOrigin() {
	u.origin.CopyFrom(u.cur)
}

// Restart returns the grid to the state it was seeded with and restarts the
// generation count. After a resize that state is all dead.
func (u *Universe) Restart() {
	u.cur.CopyFrom(u.origin)
	u.generation = 0
}

// Clear kills every cell.
func (u *Universe) Clear() {
	u.cur.Clear()
	u.generation = 0
}

func (u *Universe) fill(src core.RandomSource) {
	for i := 0; i < u.cur.Len(); i++ {
		u.cur.Set(i, src.Bool())
	}
	u.generation = 0
}

func (u *Universe) index(row, column uint32) int {
	return int(row)*int(u.width) + int(column)
}

func (u *Universe) inRange(row, column uint32) error {
	if row >= u.height || column >= u.width {
		return fmt.Errorf("%w: (%d, %d) on %dx%d grid", ErrOutOfRange, row, column, u.width, u.height)
	}
	return nil
}

// IsAlive reports the state of the cell at (row, column).
func (u *Universe) IsAlive(row, column uint32) (bool, error) {
	if err := u.inRange(row, column); err != nil {
		return false, err
	}
	return u.cur.Get(u.index(row, column)), nil
}

// ToggleCell flips the cell at (row, column).
func (u *Universe) ToggleCell(row, column uint32) error {
	if err := u.inRange(row, column); err != nil {
		return err
	}
	u.cur.Toggle(u.index(row, column))
	return nil
}

// SetCells marks every listed cell alive. Coordinates are not wrapped; if any
// is out of range nothing is changed.
func (u *Universe) SetCells(cells []Coord) error {
	for _, c := range cells {
		if err := u.inRange(c.Row, c.Col); err != nil {
			return err
		}
	}
	for _, c := range cells {
		u.cur.Set(u.index(c.Row, c.Col), true)
	}
	return nil
}

// LiveNeighborCount returns how many of the eight toroidal neighbours of
// (row, column) are alive.
func (u *Universe) LiveNeighborCount(row, column uint32) (uint8, error) {
	if err := u.inRange(row, column); err != nil {
		return 0, err
	}
	return u.liveNeighborCount(row, column), nil
}

// liveNeighborCount expresses -1 as height-1 (width-1) so the scan stays in
// unsigned arithmetic. On a dimension of size one a cell sees itself.
func (u *Universe) liveNeighborCount(row, column uint32) uint8 {
	var count uint8
	h, w := uint64(u.height), uint64(u.width)
	for _, dr := range [3]uint64{h - 1, 0, 1} {
		for _, dc := range [3]uint64{w - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (uint64(row) + dr) % h
			nc := (uint64(column) + dc) % w
			if u.cur.Get(u.index(uint32(nr), uint32(nc))) {
				count++
			}
		}
	}
	return count
}

// Tick advances the grid by one generation. Every count is taken from the
// current generation and written to the spare buffer, then the buffers swap.
func (u *Universe) Tick() {
	for row := uint32(0); row < u.height; row++ {
		for col := uint32(0); col < u.width; col++ {
			idx := u.index(row, col)
			u.nxt.Set(idx, nextState(u.cur.Get(idx), u.liveNeighborCount(row, col)))
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.generation++
}

// Step advances the simulation by one generation.
func (u *Universe) Step() { u.Tick() }

func nextState(alive bool, neighbors uint8) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive && neighbors > 3:
		return false
	case !alive && neighbors == 3:
		return true
	default:
		return alive
	}
}

// Parameters reports the grid dimensions and progress.
func (u *Universe) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.FormatUint(uint64(u.width), 10)},
				{Key: "h", Label: "Height", Type: core.ParamTypeInt, Value: strconv.FormatUint(uint64(u.height), 10)},
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(u.generation, 10)},
				{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(u.Population()), Description: "live cells"},
			},
		},
	}}
}
