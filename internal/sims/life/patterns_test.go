package life

import "testing"

func TestGliderPlacement(t *testing.T) {
	u := mustEmpty(t, 10, 10)
	if err := u.DrawGlider(5, 5); err != nil {
		t.Fatalf("DrawGlider: %v", err)
	}
	expectLive(t, u, Coord{4, 5}, Coord{5, 6}, Coord{6, 4}, Coord{6, 5}, Coord{6, 6})
}

func TestGliderWrapsAroundCorner(t *testing.T) {
	u := mustEmpty(t, 10, 10)
	if err := u.DrawGlider(0, 0); err != nil {
		t.Fatalf("DrawGlider: %v", err)
	}
	expectLive(t, u, Coord{9, 0}, Coord{0, 1}, Coord{1, 9}, Coord{1, 0}, Coord{1, 1})
}

func TestAnchorIsNormalized(t *testing.T) {
	a := mustEmpty(t, 10, 10)
	b := mustEmpty(t, 10, 10)
	if err := a.DrawGlider(25, 35); err != nil {
		t.Fatalf("DrawGlider: %v", err)
	}
	if err := b.DrawGlider(5, 5); err != nil {
		t.Fatalf("DrawGlider: %v", err)
	}
	if a.Render() != b.Render() {
		t.Fatalf("anchor (25,35) placed differently from (5,5)")
	}
}

func TestStampIsIdempotent(t *testing.T) {
	once := mustEmpty(t, 20, 20)
	twice := mustEmpty(t, 20, 20)
	for _, s := range []Shape{Glider, Pulsar} {
		if err := once.Stamp(s, 9, 9); err != nil {
			t.Fatalf("Stamp %s: %v", s.Name, err)
		}
		for i := 0; i < 2; i++ {
			if err := twice.Stamp(s, 9, 9); err != nil {
				t.Fatalf("Stamp %s: %v", s.Name, err)
			}
		}
	}
	if once.Render() != twice.Render() {
		t.Fatalf("stamping twice differs from stamping once")
	}
}

func TestStampKeepsExistingCells(t *testing.T) {
	u := mustEmpty(t, 10, 10)
	if err := u.ToggleCell(0, 9); err != nil {
		t.Fatalf("ToggleCell: %v", err)
	}
	if err := u.DrawGlider(5, 5); err != nil {
		t.Fatalf("DrawGlider: %v", err)
	}
	if alive, _ := u.IsAlive(0, 9); !alive {
		t.Fatalf("stamp cleared an unrelated live cell")
	}
	if u.Population() != 6 {
		t.Fatalf("population %d, expected 6", u.Population())
	}
}

func TestPulsarShape(t *testing.T) {
	if len(Pulsar.Cells) != 48 {
		t.Fatalf("pulsar has %d cells, expected 48", len(Pulsar.Cells))
	}
	seen := map[Coord]bool{}
	for _, c := range Pulsar.Cells {
		if c.Row > 12 || c.Col > 12 {
			t.Fatalf("cell (%d,%d) outside 13x13 box", c.Row, c.Col)
		}
		if seen[c] {
			t.Fatalf("duplicate cell (%d,%d)", c.Row, c.Col)
		}
		seen[c] = true
	}
	for c := range seen {
		mirrors := []Coord{{c.Col, c.Row}, {12 - c.Row, c.Col}, {c.Row, 12 - c.Col}}
		for _, m := range mirrors {
			if !seen[m] {
				t.Fatalf("cell (%d,%d) lacks mirror (%d,%d)", c.Row, c.Col, m.Row, m.Col)
			}
		}
	}
}

func TestPulsarPeriodThree(t *testing.T) {
	u := mustEmpty(t, 21, 21)
	if err := u.DrawPulsar(10, 10); err != nil {
		t.Fatalf("DrawPulsar: %v", err)
	}
	if alive, _ := u.IsAlive(4, 6); !alive {
		t.Fatalf("pulsar not centred: (4,6) should be alive")
	}
	start := u.Render()
	u.Tick()
	if u.Render() == start {
		t.Fatalf("pulsar did not change after one tick")
	}
	u.Tick()
	u.Tick()
	if u.Render() != start {
		t.Fatalf("pulsar did not return after three ticks")
	}
}

func TestGliderTravels(t *testing.T) {
	u := mustEmpty(t, 10, 10)
	if err := u.DrawGlider(5, 5); err != nil {
		t.Fatalf("DrawGlider: %v", err)
	}
	for i := 0; i < 4; i++ {
		u.Tick()
	}
	moved := mustEmpty(t, 10, 10)
	if err := moved.DrawGlider(6, 6); err != nil {
		t.Fatalf("DrawGlider: %v", err)
	}
	if u.Render() != moved.Render() {
		t.Fatalf("glider did not move one cell diagonally in four ticks:\n%s", u.Render())
	}
}

func TestShapeRegistry(t *testing.T) {
	names := ShapeNames()
	if len(names) != 2 || names[0] != "glider" || names[1] != "pulsar" {
		t.Fatalf("shape names %v", names)
	}
	s, ok := ShapeByName("pulsar")
	if !ok || s.Offset != (Coord{6, 6}) {
		t.Fatalf("pulsar lookup = %+v, %v", s, ok)
	}
	if _, ok := ShapeByName("gun"); ok {
		t.Fatalf("unexpected shape gun")
	}
	u := mustEmpty(t, 4, 4)
	if err := u.Stamp(Shape{Name: "void"}, 0, 0); err == nil {
		t.Fatalf("expected error stamping an empty shape")
	}
}
