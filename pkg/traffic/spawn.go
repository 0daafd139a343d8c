package traffic

import (
	"time"

	"github.com/golangdaddy/smartroad/pkg/road"
	"github.com/google/uuid"
)

// Rand is the source of randomness used for spawning. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Spawn creates a vehicle entering from the given edge on a uniformly random
// lane. The lane fixes the exit direction, colour slot and speed class.
func Spawn(entry road.Direction, index int, dims road.Dimensions, rng Rand, now time.Time) *Vehicle {
	lane := road.Route(entry, rng.Intn(road.LanesPerApproach))
	x, y := dims.Entrance(lane)
	speed := dims.Speed.Of(lane.Tier)
	heading := entry.Heading()

	return &Vehicle{
		id:          uuid.New(),
		index:       index,
		x:           x,
		y:           y,
		slot:        lane.Slot,
		lane:        lane.Index,
		entry:       entry,
		exit:        lane.Exit,
		speed:       speed,
		targetSpeed: speed,
		angle:       heading,
		targetAngle: heading,
		vertical:    entry.Vertical(),
		spawned:     now,
	}
}
