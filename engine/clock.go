package engine

import (
	"sync"
	"time"
)

// Clock is the time source used for frame pacing
// Sleep may overshoot; callers measure with Now afterwards
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the monotonic wall clock
type SystemClock struct{}

// NewSystemClock creates a wall clock
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with its monotonic reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for at least d
func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// MockClock is a manually driven clock for tests
// Sleep advances time instead of blocking, plus an optional overshoot
type MockClock struct {
	mu        sync.Mutex
	now       time.Time
	overshoot func() time.Duration
	slept     time.Duration
}

// NewMockClock creates a mock clock starting at start
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now returns the mocked time
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Sleep advances the clock by d plus the configured overshoot
func (m *MockClock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d < 0 {
		d = 0
	}
	if m.overshoot != nil {
		d += m.overshoot()
	}
	m.slept += d
	m.now = m.now.Add(d)
}

// Advance moves the clock forward, simulating work between sleeps
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// SetTime jumps the clock to t
func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// SetOvershoot installs a source of extra sleep time, emulating a coarse timer
func (m *MockClock) SetOvershoot(fn func() time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overshoot = fn
}

// Slept returns the total time spent in Sleep
func (m *MockClock) Slept() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slept
}
