package traffic

import "github.com/samber/lo"

// Position is one entry of the prospective positions table.
type Position struct {
	X, Y  int
	Index int
}

// snapshot captures every vehicle's position at the start of a tick. The
// table is then updated in place, in ascending index order, as vehicles
// commit their moves. Lower-index vehicles therefore have priority: when
// vehicle i is checked, entries below i already hold this tick's positions
// and entries from i upward still hold last tick's.
func snapshot(vehicles []*Vehicle) []Position {
	return lo.Map(vehicles, func(v *Vehicle, _ int) Position {
		return Position{X: v.x, Y: v.y, Index: v.index}
	})
}

// collides reports whether a lane-sized footprint at (x, y) overlaps any
// entry of the table other than the vehicle's own.
func collides(x, y, index int, positions []Position, laneWidth int) bool {
	for _, other := range positions {
		if other.Index == index {
			continue
		}
		if x < other.X+laneWidth &&
			x+laneWidth > other.X &&
			y < other.Y+laneWidth &&
			y+laneWidth > other.Y {
			return true
		}
	}
	return false
}
