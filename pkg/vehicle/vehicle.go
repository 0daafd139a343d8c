package vehicle

import "github.com/golangdaddy/smartroad/pkg/road"

// Vehicle is the read-only view of a simulated car that front-ends draw.
// Callers must only read it between simulation ticks.
type Vehicle interface {
	Position() (x, y int)
	Angle() float64 // degrees in [0, 360), 0 facing up
	Slot() int      // colour slot 0-3
	Speed() int     // pixels per tick
	Heading() road.Direction
	State() State
}
