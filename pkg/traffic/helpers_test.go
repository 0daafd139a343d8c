package traffic

import (
	"time"

	"github.com/golangdaddy/smartroad/pkg/clock"
	"github.com/golangdaddy/smartroad/pkg/road"
)

var (
	testDims  = road.NewDimensions(800, 600, 16)
	testStart = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
)

// scriptedRand replays a fixed sequence of draws.
type scriptedRand struct {
	values []int
	next   int
}

func script(values ...int) *scriptedRand {
	return &scriptedRand{values: values}
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

// place builds a vehicle at an exact position, bypassing the lane table.
func place(entry, exit road.Direction, x, y, speed, index int) *Vehicle {
	return &Vehicle{
		index:       index,
		x:           x,
		y:           y,
		entry:       entry,
		exit:        exit,
		speed:       speed,
		targetSpeed: speed,
		angle:       entry.Heading(),
		targetAngle: entry.Heading(),
		vertical:    entry.Vertical(),
		spawned:     testStart,
	}
}

func newTestTraffic(rng Rand) (*Traffic, *clock.Manual) {
	clk := clock.NewManual(testStart)
	return New(clk, rng), clk
}
