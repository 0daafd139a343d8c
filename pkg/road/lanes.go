package road

// Lane is one row of the fixed route table. Each entry direction has three
// lanes; the lane fixes where the vehicle appears, where it leaves, its
// colour slot and its speed class. The speed classes are deliberately not
// assigned in the same order for every approach.
type Lane struct {
	Entry Direction
	Index int
	Exit  Direction
	Slot  int
	Tier  Tier

	// Offset places the lane across the entry edge, in lane widths from the
	// half point of the window on the cross axis.
	Offset int
}

// LanesPerApproach is the number of lanes on each entry edge.
const LanesPerApproach = 3

var lanes = [4][LanesPerApproach]Lane{
	Up: {
		{Entry: Up, Index: 0, Exit: Left, Slot: 0, Tier: Default, Offset: 0},
		{Entry: Up, Index: 1, Exit: Up, Slot: 0, Tier: Fast, Offset: 1},
		{Entry: Up, Index: 2, Exit: Right, Slot: 0, Tier: Slow, Offset: 2},
	},
	Down: {
		{Entry: Down, Index: 0, Exit: Left, Slot: 1, Tier: Slow, Offset: -3},
		{Entry: Down, Index: 1, Exit: Down, Slot: 1, Tier: Fast, Offset: -2},
		{Entry: Down, Index: 2, Exit: Right, Slot: 1, Tier: Default, Offset: -1},
	},
	Right: {
		{Entry: Right, Index: 0, Exit: Up, Slot: 2, Tier: Default, Offset: 0},
		{Entry: Right, Index: 1, Exit: Right, Slot: 2, Tier: Fast, Offset: 1},
		{Entry: Right, Index: 2, Exit: Down, Slot: 2, Tier: Slow, Offset: 2},
	},
	Left: {
		{Entry: Left, Index: 0, Exit: Up, Slot: 3, Tier: Slow, Offset: -3},
		{Entry: Left, Index: 1, Exit: Left, Slot: 3, Tier: Fast, Offset: -2},
		{Entry: Left, Index: 2, Exit: Down, Slot: 3, Tier: Default, Offset: -1},
	},
}

// Route returns the table entry for an entry direction and lane index.
// The lane index must be in [0, LanesPerApproach).
func Route(entry Direction, lane int) Lane {
	return lanes[entry][lane]
}

// Entrance returns the spawn position (top-left corner of the footprint)
// for the given lane.
func (d Dimensions) Entrance(l Lane) (x, y int) {
	across := l.Offset * d.LaneWidth
	switch l.Entry {
	case Up:
		return d.HalfWidth + across, d.WindowHeight - d.LaneWidth
	case Down:
		return d.HalfWidth + across, 0
	case Right:
		return 0, d.HalfHeight + across
	case Left:
		return d.WindowWidth - d.LaneWidth, d.HalfHeight + across
	}
	return 0, 0
}

// Turn is the geometry of a turning route. Vehicles travel straight along
// the entry axis until they reach the turn point, then continue along the
// exit axis.
type Turn struct {
	Entry Direction
	Exit  Direction

	// Offset is the turn point on the entry axis, in lane widths from the
	// half point of the window on that axis.
	Offset int
}

var turns = []Turn{
	{Entry: Up, Exit: Left, Offset: -1},
	{Entry: Up, Exit: Right, Offset: 2},
	{Entry: Down, Exit: Left, Offset: -3},
	{Entry: Down, Exit: Right, Offset: 0},
	{Entry: Left, Exit: Up, Offset: 2},
	{Entry: Left, Exit: Down, Offset: -1},
	{Entry: Right, Exit: Up, Offset: 0},
	{Entry: Right, Exit: Down, Offset: -3},
}

// TurnFor looks up the turn geometry for an entry/exit pair. It reports
// false for straight routes and for pairs the lane table never produces.
func TurnFor(entry, exit Direction) (Turn, bool) {
	for _, t := range turns {
		if t.Entry == entry && t.Exit == exit {
			return t, true
		}
	}
	return Turn{}, false
}

// TurnPoint returns the coordinate on the entry axis where the turn begins.
func (d Dimensions) TurnPoint(t Turn) int {
	if t.Entry.Vertical() {
		return d.HalfHeight + t.Offset*d.LaneWidth
	}
	return d.HalfWidth + t.Offset*d.LaneWidth
}

// Approaching reports whether pos, measured on the entry axis, is still
// short of the turn point for a vehicle travelling in the entry direction.
func (t Turn) Approaching(pos, point int) bool {
	switch t.Entry {
	case Up, Left:
		return pos > point
	}
	return pos < point
}
