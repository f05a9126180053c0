package ui

import (
	"strings"
	"testing"
	"time"
)

func TestFPSMeterStats(t *testing.T) {
	start := time.Unix(0, 0)
	m := NewFPSMeter(start)
	if s := m.Stats(); s != (FPSStats{}) {
		t.Fatalf("stats before frames %+v", s)
	}
	now := start
	for _, d := range []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 40 * time.Millisecond} {
		now = now.Add(d)
		m.Frame(now)
	}
	s := m.Stats()
	if s.Latest != 25 || s.Min != 25 || s.Max != 100 {
		t.Fatalf("stats %+v", s)
	}
	if want := (100.0 + 50 + 25) / 3; s.Mean != want {
		t.Fatalf("mean %v, expected %v", s.Mean, want)
	}
	if !strings.Contains(s.String(), "latest = 25") {
		t.Fatalf("summary %q", s.String())
	}
}

func TestFPSMeterWindow(t *testing.T) {
	now := time.Unix(0, 0)
	m := NewFPSMeter(now)
	now = now.Add(time.Millisecond)
	m.Frame(now)
	for i := 0; i < FPSWindow; i++ {
		now = now.Add(10 * time.Millisecond)
		m.Frame(now)
	}
	if len(m.frames) != FPSWindow {
		t.Fatalf("kept %d frames, expected %d", len(m.frames), FPSWindow)
	}
	if s := m.Stats(); s.Max != 100 {
		t.Fatalf("oldest frame not evicted: max %v", s.Max)
	}
	m.Frame(now)
	if len(m.frames) != FPSWindow {
		t.Fatalf("zero-length frame recorded")
	}
}
