package core

import (
	"log"
	"time"
)

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of a single tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.advance(time.Now())
}

func (f *FixedStep) advance(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Span is an open timing interval. End must be called exactly once.
type Span interface {
	End()
}

// Timer opens labelled timing intervals around simulation work. Timers only
// observe; they never influence the work they bracket.
type Timer interface {
	Start(label string) Span
}

// NopTimer discards every interval.
type NopTimer struct{}

// Start returns a span whose End does nothing.
func (NopTimer) Start(string) Span { return nopSpan{} }

type nopSpan struct{}

func (nopSpan) End() {}

// LogTimer writes the elapsed time of each interval to a logger.
type LogTimer struct {
	Logger *log.Logger
	now    func() time.Time
}

// NewLogTimer returns a LogTimer writing to l, or to the standard logger when
// l is nil.
func NewLogTimer(l *log.Logger) *LogTimer {
	if l == nil {
		l = log.Default()
	}
	return &LogTimer{Logger: l, now: time.Now}
}

// Start records the current time under label.
func (t *LogTimer) Start(label string) Span {
	return &logSpan{t: t, label: label, start: t.now()}
}

type logSpan struct {
	t     *LogTimer
	label string
	start time.Time
}

func (s *logSpan) End() {
	s.t.Logger.Printf("%s: %s", s.label, s.t.now().Sub(s.start))
}
