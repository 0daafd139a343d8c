package clock

import (
	"sync"
	"time"
)

// Clock supplies monotonic time readings to the simulation.
type Clock interface {
	Now() time.Time
}

// System reads the real system clock, including its monotonic component.
type System struct{}

// Now returns the current time with monotonic clock reading
func (System) Now() time.Time {
	return time.Now()
}

// Manual is a clock that only moves when told to. Tests use it, and so do
// headless runs that step simulated time by a fixed amount per tick.
type Manual struct {
	mu      sync.RWMutex
	current time.Time
}

// NewManual creates a manual clock starting at the given time
func NewManual(start time.Time) *Manual {
	return &Manual{current: start}
}

// Now returns the current manual time
func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set moves the clock to t
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance adds d to the current reading
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
