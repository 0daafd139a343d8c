package road

// Tier selects one of the three speed classes a lane is bound to.
type Tier int

const (
	Slow Tier = iota
	Default
	Fast
)

func (t Tier) String() string {
	switch t {
	case Slow:
		return "slow"
	case Fast:
		return "fast"
	}
	return "default"
}

// Speeds is the speed table in pixels per tick.
type Speeds struct {
	Slow    int
	Default int
	Fast    int
}

// DefaultSpeeds derives the speed table from the lane width:
// fast is three quarters of a lane per tick, default half a lane, slow a quarter.
func DefaultSpeeds(laneWidth int) Speeds {
	return Speeds{
		Slow:    laneWidth / 4,
		Default: laneWidth / 2,
		Fast:    laneWidth * 3 / 4,
	}
}

// Of returns the speed for the given tier.
func (s Speeds) Of(t Tier) int {
	switch t {
	case Slow:
		return s.Slow
	case Fast:
		return s.Fast
	}
	return s.Default
}

// Dimensions describes the simulated area. It is computed once at startup
// and never mutated by the simulation.
type Dimensions struct {
	WindowWidth  int
	WindowHeight int
	HalfWidth    int
	HalfHeight   int
	LaneWidth    int
	Speed        Speeds
}

// NewDimensions builds Dimensions with speeds derived from the lane width.
func NewDimensions(width, height, laneWidth int) Dimensions {
	return NewDimensionsWithSpeeds(width, height, laneWidth, DefaultSpeeds(laneWidth))
}

// NewDimensionsWithSpeeds builds Dimensions with an explicit speed table.
func NewDimensionsWithSpeeds(width, height, laneWidth int, speeds Speeds) Dimensions {
	return Dimensions{
		WindowWidth:  width,
		WindowHeight: height,
		HalfWidth:    width / 2,
		HalfHeight:   height / 2,
		LaneWidth:    laneWidth,
		Speed:        speeds,
	}
}

// Contains reports whether a lane-sized square footprint with its top-left
// corner at (x, y) lies entirely inside the window.
func (d Dimensions) Contains(x, y int) bool {
	return x >= 0 &&
		x+d.LaneWidth <= d.WindowWidth &&
		y >= 0 &&
		y+d.LaneWidth <= d.WindowHeight
}
