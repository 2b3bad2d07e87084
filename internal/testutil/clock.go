package testutil

import "sync"

// StepClock is a logical clock for stamping harness trace events.
//
// Each scenario step takes exactly one tick, so two runs of the same scenario
// produce identical seq values and byte-identical golden traces.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type StepClock struct {
	mu  sync.Mutex
	seq int64
}

// NewStepClock creates a clock at 0. The first Tick returns 1.
func NewStepClock() *StepClock {
	return &StepClock{}
}

// Tick advances the clock and returns the new value.
func (c *StepClock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}
