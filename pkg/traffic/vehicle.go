package traffic

import (
	"time"

	"github.com/golangdaddy/smartroad/pkg/road"
	"github.com/golangdaddy/smartroad/pkg/vehicle"
	"github.com/google/uuid"
)

// Vehicle is a single car owned by a Traffic aggregate. Its index always
// equals its position in the aggregate's collection between ticks.
type Vehicle struct {
	id    uuid.UUID
	index int

	// Top-left corner of a square footprint one lane wide
	x, y int

	slot  int
	lane  int
	entry road.Direction
	exit  road.Direction

	speed       int // pixels per tick
	targetSpeed int
	angle       float64 // degrees, [0, 360)
	targetAngle float64

	vertical bool // travelling along the Y axis
	turning  bool // turn transition has begun
	exited   bool

	spawned time.Time
}

var _ vehicle.Vehicle = (*Vehicle)(nil)

// ID is stable for the vehicle's lifetime, unlike Index.
func (v *Vehicle) ID() uuid.UUID { return v.id }

func (v *Vehicle) Index() int { return v.index }

func (v *Vehicle) Position() (x, y int) { return v.x, v.y }

func (v *Vehicle) Angle() float64 { return v.angle }

func (v *Vehicle) TargetAngle() float64 { return v.targetAngle }

func (v *Vehicle) Slot() int { return v.slot }

func (v *Vehicle) Lane() int { return v.lane }

func (v *Vehicle) Speed() int { return v.speed }

func (v *Vehicle) Entry() road.Direction { return v.entry }

func (v *Vehicle) Exit() road.Direction { return v.exit }

func (v *Vehicle) Vertical() bool { return v.vertical }

func (v *Vehicle) Turning() bool { return v.turning }

func (v *Vehicle) Exited() bool { return v.exited }

func (v *Vehicle) Spawned() time.Time { return v.spawned }

// Heading returns the direction the vehicle is currently travelling:
// the entry direction until its orientation flips, the exit direction after.
func (v *Vehicle) Heading() road.Direction {
	if v.vertical == v.entry.Vertical() {
		return v.entry
	}
	return v.exit
}

// State projects the vehicle's flags onto its lifecycle stage.
func (v *Vehicle) State() vehicle.State {
	switch {
	case v.exited:
		return vehicle.Exited
	case v.turning && v.angle != v.targetAngle:
		return vehicle.Transitioning
	case v.turning:
		return vehicle.Departing
	}
	return vehicle.Approaching
}
