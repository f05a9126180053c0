package ui

import (
	"fmt"
	"math"
	"time"
)

// FPSWindow is the number of frames the meter averages over.
const FPSWindow = 100

// FPSMeter tracks the frame rate over the most recent FPSWindow frames.
type FPSMeter struct {
	frames []float64
	last   time.Time
}

// FPSStats summarises the tracked frame rates.
type FPSStats struct {
	Latest float64
	Mean   float64
	Min    float64
	Max    float64
}

// NewFPSMeter starts measuring from now.
func NewFPSMeter(now time.Time) *FPSMeter {
	return &FPSMeter{last: now, frames: make([]float64, 0, FPSWindow)}
}

// Frame records a frame finishing at now.
func (m *FPSMeter) Frame(now time.Time) {
	delta := now.Sub(m.last)
	m.last = now
	if delta <= 0 {
		return
	}
	if len(m.frames) == FPSWindow {
		copy(m.frames, m.frames[1:])
		m.frames = m.frames[:FPSWindow-1]
	}
	m.frames = append(m.frames, float64(time.Second)/float64(delta))
}

// Stats returns the current summary. All fields are zero before the first
// recorded frame.
func (m *FPSMeter) Stats() FPSStats {
	if len(m.frames) == 0 {
		return FPSStats{}
	}
	s := FPSStats{Latest: m.frames[len(m.frames)-1], Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for _, f := range m.frames {
		sum += f
		s.Min = math.Min(s.Min, f)
		s.Max = math.Max(s.Max, f)
	}
	s.Mean = sum / float64(len(m.frames))
	return s
}

// String formats the summary the way the overlay prints it.
func (s FPSStats) String() string {
	return fmt.Sprintf("Frames per second:\n         latest = %d\navg of last %d = %d\nmin of last %d = %d\nmax of last %d = %d",
		int(math.Round(s.Latest)),
		FPSWindow, int(math.Round(s.Mean)),
		FPSWindow, int(math.Round(s.Min)),
		FPSWindow, int(math.Round(s.Max)))
}
