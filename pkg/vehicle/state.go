package vehicle

// State is the lifecycle stage of a vehicle. Stages advance on position
// thresholds, never on time.
type State int

const (
	// Approaching vehicles travel along their entry axis. Straight-through
	// vehicles stay here until they exit.
	Approaching State = iota
	// Transitioning vehicles have passed the turn point and are still
	// rotating toward the exit heading.
	Transitioning
	// Departing vehicles travel along the exit axis with a settled heading.
	Departing
	// Exited vehicles have left the window and are about to be removed.
	Exited
)

func (s State) String() string {
	switch s {
	case Approaching:
		return "approaching"
	case Transitioning:
		return "transitioning"
	case Departing:
		return "departing"
	case Exited:
		return "exited"
	}
	return "unknown"
}
