package core

// TickLabel names the interval opened around every generation step.
const TickLabel = "universe.tick"

// Observer is notified after every completed step.
type Observer interface {
	Observe(sim Sim)
}

// Runner drives a single Sim one step at a time, bracketing each step with a
// timing span. A Runner is not safe for concurrent use.
type Runner struct {
	sim       Sim
	timer     Timer
	observers []Observer
	steps     uint64
}

// NewRunner wraps sim. A nil timer disables timing.
func NewRunner(sim Sim, timer Timer, observers ...Observer) *Runner {
	if timer == nil {
		timer = NopTimer{}
	}
	return &Runner{sim: sim, timer: timer, observers: observers}
}

// Sim returns the driven simulation.
func (r *Runner) Sim() Sim { return r.sim }

// Steps returns how many steps this runner has completed.
func (r *Runner) Steps() uint64 { return r.steps }

// Step advances the simulation by one generation.
func (r *Runner) Step() {
	r.timedStep()
	r.steps++
	for _, o := range r.observers {
		o.Observe(r.sim)
	}
}

func (r *Runner) timedStep() {
	span := r.timer.Start(TickLabel)
	defer span.End()
	r.sim.Step()
}
