package engine

import (
	"sync/atomic"
	"time"
)

// Pacer holds ticks to a fixed period on top of a coarse sleep
// The error of each wait is carried into the next one so the average period converges
// Wait and Reset belong to the ticker; SetFPS may be called from any goroutine
type Pacer struct {
	clock     Clock
	fps       atomic.Int64
	carryOver bool

	last  time.Time
	carry time.Duration
}

// NewPacer creates a pacer at fps ticks per second
func NewPacer(clock Clock, fps int, carryOver bool) *Pacer {
	p := &Pacer{
		clock:     clock,
		carryOver: carryOver,
	}
	p.SetFPS(fps)
	p.Reset()
	return p
}

// SetFPS changes the target rate from the next wait on, clamped to at least 1
func (p *Pacer) SetFPS(fps int) {
	if fps < 1 {
		fps = 1
	}
	p.fps.Store(int64(fps))
}

// FPS returns the target rate
func (p *Pacer) FPS() int {
	return int(p.fps.Load())
}

// Period returns the target tick period
func (p *Pacer) Period() time.Duration {
	return time.Second / time.Duration(p.fps.Load())
}

// Carry returns the error carried into the next wait
func (p *Pacer) Carry() time.Duration {
	return p.carry
}

// Reset starts a fresh tick at the current time and drops carried error
func (p *Pacer) Reset() {
	p.last = p.clock.Now()
	p.carry = 0
}

// Wait blocks until the next tick is due and returns the time since the previous tick began
// A single wait never sleeps longer than one period
func (p *Pacer) Wait() time.Duration {
	period := p.Period()

	remaining := period - p.clock.Now().Sub(p.last)
	if p.carryOver {
		remaining -= p.carry
	}
	if remaining > period {
		remaining = period
	}
	if remaining > 0 {
		p.clock.Sleep(remaining)
	}

	now := p.clock.Now()
	delta := now.Sub(p.last)
	p.last = now

	if p.carryOver {
		p.carry = (p.carry + delta - period) % period
	}
	return delta
}
