package core

import (
	"fmt"
	"math/bits"
)

// BitView is a read-only view of a packed cell buffer in row-major order.
type BitView interface {
	Len() int
	Get(i int) bool
	Count() int
}

// Bits stores one boolean per cell, packed eight to a byte. Bit i lives in
// byte i/8 under mask 1<<(i%8).
type Bits struct {
	n    int
	data []byte
}

// NewBits allocates n cleared cells.
func NewBits(n int) *Bits {
	if n < 0 {
		n = 0
	}
	return &Bits{n: n, data: make([]byte, (n+7)/8)}
}

// Len returns the number of addressable cells.
func (b *Bits) Len() int { return b.n }

// Get reports whether cell i is set.
func (b *Bits) Get(i int) bool {
	b.check(i)
	return b.data[i>>3]&(1<<(uint(i)&7)) != 0
}

// Set stores v at cell i.
func (b *Bits) Set(i int, v bool) {
	b.check(i)
	mask := byte(1) << (uint(i) & 7)
	if v {
		b.data[i>>3] |= mask
		return
	}
	b.data[i>>3] &^= mask
}

// Toggle flips cell i.
func (b *Bits) Toggle(i int) {
	b.check(i)
	b.data[i>>3] ^= 1 << (uint(i) & 7)
}

// Clear marks every cell unset.
func (b *Bits) Clear() {
	clear(b.data)
}

// Count returns the number of set cells.
func (b *Bits) Count() int {
	total := 0
	for _, v := range b.data {
		total += bits.OnesCount8(v)
	}
	return total
}

// Bytes exposes the packed backing slice without copying. Callers must treat
// it as read-only.
func (b *Bits) Bytes() []byte { return b.data }

// CopyFrom overwrites b with the contents of src. Both must have equal length.
func (b *Bits) CopyFrom(src *Bits) {
	if src.n != b.n {
		panic(fmt.Sprintf("core: copy between bit sets of length %d and %d", src.n, b.n))
	}
	copy(b.data, src.data)
}

func (b *Bits) check(i int) {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("core: bit index %d out of range [0, %d)", i, b.n))
	}
}
