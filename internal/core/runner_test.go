package core

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

type countingSim struct {
	steps int
	cells *Bits
}

func (s *countingSim) Name() string   { return "counting" }
func (s *countingSim) Size() Size     { return Size{W: 2, H: 2} }
func (s *countingSim) Reset(int64)    { s.steps = 0 }
func (s *countingSim) Step()          { s.steps++ }
func (s *countingSim) Cells() BitView { return s.cells }

type recordingTimer struct {
	events []string
}

func (r *recordingTimer) Start(label string) Span {
	r.events = append(r.events, "start "+label)
	return spanFunc(func() { r.events = append(r.events, "end "+label) })
}

type spanFunc func()

func (f spanFunc) End() { f() }

type observerFunc func(Sim)

func (f observerFunc) Observe(s Sim) { f(s) }

func TestRunnerBracketsEachStep(t *testing.T) {
	sim := &countingSim{cells: NewBits(4)}
	timer := &recordingTimer{}
	observed := 0
	r := NewRunner(sim, timer, observerFunc(func(s Sim) {
		if s.(*countingSim).steps != observed+1 {
			t.Fatalf("observer ran before the step completed")
		}
		observed++
	}))
	r.Step()
	r.Step()
	if sim.steps != 2 || r.Steps() != 2 || observed != 2 {
		t.Fatalf("steps=%d runner=%d observed=%d", sim.steps, r.Steps(), observed)
	}
	want := []string{"start " + TickLabel, "end " + TickLabel, "start " + TickLabel, "end " + TickLabel}
	if strings.Join(timer.events, "|") != strings.Join(want, "|") {
		t.Fatalf("events %v, expected %v", timer.events, want)
	}
}

type panicSim struct{ countingSim }

func (p *panicSim) Step() { panic("boom") }

func TestRunnerEndsSpanOnPanic(t *testing.T) {
	timer := &recordingTimer{}
	r := NewRunner(&panicSim{}, timer)
	func() {
		defer func() { _ = recover() }()
		r.Step()
	}()
	if len(timer.events) != 2 || timer.events[1] != "end "+TickLabel {
		t.Fatalf("span not closed: %v", timer.events)
	}
}

func TestNilTimerDefaultsToNop(t *testing.T) {
	sim := &countingSim{cells: NewBits(4)}
	NewRunner(sim, nil).Step()
	if sim.steps != 1 {
		t.Fatalf("steps %d", sim.steps)
	}
}

func TestLogTimer(t *testing.T) {
	var buf bytes.Buffer
	lt := NewLogTimer(log.New(&buf, "", 0))
	base := time.Unix(0, 0)
	calls := 0
	lt.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * 3 * time.Millisecond)
	}
	lt.Start("universe.tick").End()
	if got := strings.TrimSpace(buf.String()); got != "universe.tick: 3ms" {
		t.Fatalf("log line %q", got)
	}
}

func TestFixedStep(t *testing.T) {
	fs := NewFixedStep(10)
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval %s", fs.Interval())
	}
	start := time.Unix(100, 0)
	if !fs.advance(start) {
		t.Fatalf("first call should step")
	}
	if fs.advance(start.Add(50 * time.Millisecond)) {
		t.Fatalf("stepped after half an interval")
	}
	if !fs.advance(start.Add(100 * time.Millisecond)) {
		t.Fatalf("did not step after a full interval")
	}
}
