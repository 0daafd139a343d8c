package traffic

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/golangdaddy/smartroad/pkg/clock"
	"github.com/golangdaddy/smartroad/pkg/road"
	"github.com/google/uuid"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// Traffic owns the live vehicles and the run statistics. It is not safe for
// concurrent use: one goroutine drives ticks, and readers look at it only
// between ticks.
type Traffic struct {
	vehicles []*Vehicle
	stats    Stats
	clock    clock.Clock
	rng      Rand
}

// New creates an empty simulation using the given clock and random source.
func New(clk clock.Clock, rng Rand) *Traffic {
	return &Traffic{
		vehicles: make([]*Vehicle, 0),
		stats:    newStats(),
		clock:    clk,
		rng:      rng,
	}
}

// NewDefault creates a simulation on the system clock with a time-seeded
// random source.
func NewDefault() *Traffic {
	return New(clock.System{}, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Push spawns a vehicle entering from the given direction. An unknown
// direction spawns nothing and returns uuid.Nil.
func (t *Traffic) Push(entry road.Direction, dims road.Dimensions) uuid.UUID {
	if !entry.Valid() {
		log.WithField("entry", entry).Warn("Ignoring spawn from unknown direction")
		return uuid.Nil
	}
	v := Spawn(entry, len(t.vehicles), dims, t.rng, t.clock.Now())
	t.vehicles = append(t.vehicles, v)

	log.WithFields(log.Fields{
		"vehicle_id": v.id,
		"entry":      v.entry,
		"exit":       v.exit,
		"lane":       v.lane,
	}).Debug("Vehicle spawned")

	return v.id
}

// PushRandom spawns a vehicle from a uniformly random direction.
func (t *Traffic) PushRandom(dims road.Dimensions) uuid.UUID {
	return t.Push(road.Directions[t.rng.Intn(len(road.Directions))], dims)
}

// Update runs one tick: close-call scan, then each vehicle in index order,
// then removal of exited vehicles and reindexing of the survivors.
// An error means the simulation state is corrupt; the tick is abandoned.
func (t *Traffic) Update(dims road.Dimensions) error {
	for i, v := range t.vehicles {
		if v.index != i {
			return &InvariantError{
				Err:    ErrIndexMismatch,
				Index:  v.index,
				Detail: fmt.Sprintf("found at position %d", i),
			}
		}
	}

	positions := snapshot(t.vehicles)

	t.stats.CloseCalls += closeCalls(t.vehicles, dims.LaneWidth)

	for _, v := range t.vehicles {
		t.stats.observeSpeed(v.speed)

		moved, err := v.update(positions, dims)
		if err != nil {
			return err
		}

		if v.exited {
			transit := t.clock.Now().Sub(v.spawned)
			t.stats.recordExit(transit)
			log.WithFields(log.Fields{
				"vehicle_id": v.id,
				"transit":    transit,
			}).Debug("Vehicle exited")
			continue
		}

		if !moved {
			t.stats.GiveWays++
		}
	}

	t.vehicles = lo.Reject(t.vehicles, func(v *Vehicle, _ int) bool {
		return v.exited
	})
	for i, v := range t.vehicles {
		v.index = i
	}

	return nil
}

// Vehicles returns the live vehicles in index order. The slice must not be
// modified and is only valid until the next tick.
func (t *Traffic) Vehicles() []*Vehicle {
	return t.vehicles
}

// Len returns the number of live vehicles.
func (t *Traffic) Len() int {
	return len(t.vehicles)
}

// Stats returns a copy of the run statistics.
func (t *Traffic) Stats() Stats {
	s := t.stats
	s.Active = len(t.vehicles)
	return s
}

// Report formats the run statistics for display.
func (t *Traffic) Report() string {
	return t.Stats().Report()
}
