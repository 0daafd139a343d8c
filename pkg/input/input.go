package input

import (
	"time"

	"github.com/golangdaddy/smartroad/pkg/clock"
	"github.com/golangdaddy/smartroad/pkg/road"
	"github.com/google/uuid"
)

// Command is a user action, independent of the front-end that produced it.
type Command int

const (
	None Command = iota
	SpawnUp
	SpawnDown
	SpawnLeft
	SpawnRight
	SpawnRandom
	ToggleHelp
	ToggleFullscreen
	Quit
)

// Direction returns the entry direction for the directional spawn commands.
func (c Command) Direction() (road.Direction, bool) {
	switch c {
	case SpawnUp:
		return road.Up, true
	case SpawnDown:
		return road.Down, true
	case SpawnLeft:
		return road.Left, true
	case SpawnRight:
		return road.Right, true
	}
	return road.Up, false
}

// Spawner is the simulation side of the spawn commands.
type Spawner interface {
	Push(entry road.Direction, dims road.Dimensions) uuid.UUID
	PushRandom(dims road.Dimensions) uuid.UUID
}

// Dispatch applies a spawn command. It reports false for commands the
// simulation does not handle, which are left to the front-end.
func Dispatch(c Command, s Spawner, dims road.Dimensions) bool {
	if dir, ok := c.Direction(); ok {
		s.Push(dir, dims)
		return true
	}
	if c == SpawnRandom {
		s.PushRandom(dims)
		return true
	}
	return false
}

// Debouncer drops key presses that arrive within the interval of the last
// accepted one. Holding a key down would otherwise flood the intersection.
type Debouncer struct {
	clock    clock.Clock
	interval time.Duration
	last     time.Time
}

// NewDebouncer creates a debouncer. Presses within the first interval after
// creation are dropped too.
func NewDebouncer(clk clock.Clock, interval time.Duration) *Debouncer {
	return &Debouncer{
		clock:    clk,
		interval: interval,
		last:     clk.Now(),
	}
}

// Accept reports whether a press arriving now should be handled, and if so
// starts a new interval.
func (d *Debouncer) Accept() bool {
	now := d.clock.Now()
	if now.Sub(d.last) <= d.interval {
		return false
	}
	d.last = now
	return true
}
