package traffic

import (
	"fmt"
	"math"

	"github.com/golangdaddy/smartroad/pkg/road"
)

const (
	acceleration = 1   // pixels per tick, per tick
	rotationRate = 8.0 // degrees per tick
)

// update advances the vehicle by one tick. It reports false when the vehicle
// had to give way. A vehicle whose footprint has left the window is marked
// exited and reports true without moving.
func (v *Vehicle) update(positions []Position, dims road.Dimensions) (bool, error) {
	if !dims.Contains(v.x, v.y) {
		v.exited = true
		return true, nil
	}

	v.easeSpeed()
	v.easeAngle()

	x, y, err := v.nextPosition(dims)
	if err != nil {
		return false, err
	}

	if collides(x, y, v.index, positions, dims.LaneWidth) {
		return false, nil
	}

	positions[v.index] = Position{X: x, Y: y, Index: v.index}
	v.x, v.y = x, y
	return true, nil
}

func (v *Vehicle) easeSpeed() {
	if v.speed < v.targetSpeed {
		v.speed = min(v.speed+acceleration, v.targetSpeed)
	} else if v.speed > v.targetSpeed {
		v.speed = max(v.speed-acceleration, v.targetSpeed)
	}
}

// easeAngle rotates toward the target heading along the shortest arc.
func (v *Vehicle) easeAngle() {
	diff := shortestArc(v.targetAngle - v.angle)
	if math.Abs(diff) > rotationRate {
		v.angle += math.Copysign(rotationRate, diff)
	} else {
		v.angle = v.targetAngle
	}
	v.angle = normalizeAngle(v.angle)
}

// nextPosition computes the candidate position for this tick. Crossing the
// turn point flips the orientation and, the first time only, sets the new
// target heading. These changes stick even if the move is later blocked.
func (v *Vehicle) nextPosition(dims road.Dimensions) (int, int, error) {
	if v.entry == v.exit {
		dx, dy := v.entry.Delta()
		return v.x + dx*v.speed, v.y + dy*v.speed, nil
	}

	turn, ok := road.TurnFor(v.entry, v.exit)
	if !ok {
		return 0, 0, &InvariantError{
			Err:    ErrInvalidRoute,
			Index:  v.index,
			Detail: fmt.Sprintf("%s -> %s", v.entry, v.exit),
		}
	}

	point := dims.TurnPoint(turn)
	along := v.x
	if v.entry.Vertical() {
		along = v.y
	}

	if turn.Approaching(along, point) {
		dx, dy := v.entry.Delta()
		return v.x + dx*v.speed, v.y + dy*v.speed, nil
	}

	v.vertical = v.exit.Vertical()
	if !v.turning {
		v.turning = true
		v.targetAngle = v.exit.Heading()
	}

	dx, dy := v.exit.Delta()
	if v.entry.Vertical() {
		return v.x + dx*v.speed, point, nil
	}
	return point, v.y + dy*v.speed, nil
}

// shortestArc maps an angular difference into (-180, 180].
func shortestArc(diff float64) float64 {
	diff = math.Mod(diff, 360)
	if diff > 180 {
		diff -= 360
	} else if diff <= -180 {
		diff += 360
	}
	return diff
}

// normalizeAngle maps an angle into [0, 360).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
