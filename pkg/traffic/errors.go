package traffic

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexMismatch means a vehicle's index no longer matches its
	// position in the collection.
	ErrIndexMismatch = errors.New("vehicle index does not match its position")

	// ErrInvalidRoute means a vehicle carries an entry/exit pair with no
	// geometry in the route table.
	ErrInvalidRoute = errors.New("no geometry for route")
)

// InvariantError reports corrupt simulation state. It is never expected in
// correct operation and callers must stop driving the simulation when they
// receive one.
type InvariantError struct {
	Err    error
	Index  int
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("traffic invariant violated at vehicle %d: %v (%s)", e.Index, e.Err, e.Detail)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}
