package core

import "testing"

func TestBitsSetGetToggle(t *testing.T) {
	b := NewBits(13)
	if b.Len() != 13 || len(b.Bytes()) != 2 {
		t.Fatalf("len=%d bytes=%d", b.Len(), len(b.Bytes()))
	}
	b.Set(0, true)
	b.Set(9, true)
	b.Toggle(12)
	for i := 0; i < b.Len(); i++ {
		want := i == 0 || i == 9 || i == 12
		if b.Get(i) != want {
			t.Fatalf("bit %d = %v, expected %v", i, b.Get(i), want)
		}
	}
	if b.Count() != 3 {
		t.Fatalf("count %d, expected 3", b.Count())
	}
	if b.Bytes()[0] != 0x01 || b.Bytes()[1] != 0x12 {
		t.Fatalf("bytes %08b %08b", b.Bytes()[0], b.Bytes()[1])
	}
	b.Set(9, false)
	b.Toggle(12)
	if b.Count() != 1 {
		t.Fatalf("count %d, expected 1", b.Count())
	}
	b.Clear()
	if b.Count() != 0 {
		t.Fatalf("count %d after clear", b.Count())
	}
}

func TestBitsCopyFrom(t *testing.T) {
	a, b := NewBits(20), NewBits(20)
	a.Set(17, true)
	b.Set(2, true)
	b.CopyFrom(a)
	if !b.Get(17) || b.Get(2) || b.Count() != 1 {
		t.Fatalf("copy produced %08b", b.Bytes())
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("copy between different lengths did not panic")
		}
	}()
	a.CopyFrom(NewBits(21))
}

func TestBitsOutOfRangePanics(t *testing.T) {
	for _, i := range []int{-1, 8} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Get(%d) did not panic", i)
				}
			}()
			NewBits(8).Get(i)
		}()
	}
}
