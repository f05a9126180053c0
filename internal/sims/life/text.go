package life

import "strings"

const (
	// DeadGlyph renders a dead cell.
	DeadGlyph = '◻'
	// AliveGlyph renders a live cell.
	AliveGlyph = '◼'
)

// Render draws the grid one row per line, top to bottom.
func (u *Universe) Render() string {
	var b strings.Builder
	b.Grow(int(u.height) * (int(u.width)*3 + 1))
	for row := uint32(0); row < u.height; row++ {
		for col := uint32(0); col < u.width; col++ {
			if u.cur.Get(u.index(row, col)) {
				b.WriteRune(AliveGlyph)
			} else {
				b.WriteRune(DeadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String implements fmt.Stringer.
func (u *Universe) String() string { return u.Render() }
