package road

import "fmt"

// Direction is a direction of travel. A vehicle entering Up spawns on the
// bottom edge of the window and drives towards the top.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in spawn order.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Valid reports whether d is one of the four named directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Vertical reports whether travel in this direction is along the Y axis.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// Delta returns the unit step for one pixel of travel. Screen Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Heading returns the sprite rotation in degrees, normalized to [0, 360).
// Up is 0, Right 90, Down 180 and Left 270 (the same as -90).
func (d Direction) Heading() float64 {
	switch d {
	case Down:
		return 180
	case Left:
		return 270
	case Right:
		return 90
	}
	return 0
}

// ParseDirection accepts the lowercase names produced by String.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return Up, fmt.Errorf("unknown direction %q", s)
}
