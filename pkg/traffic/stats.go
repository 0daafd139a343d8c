package traffic

import (
	"fmt"
	"math"
	"time"
)

const (
	// NoSpeed is MinSpeed before any vehicle has been observed.
	NoSpeed = math.MaxInt
	// NoTransit is MinTransit before any vehicle has exited.
	NoTransit = time.Duration(math.MaxInt64)
)

// Stats holds the counters accumulated over a run. Speed and transit
// extremes cover every vehicle ever simulated, not just the live ones.
type Stats struct {
	Active     int
	Passed     int
	GiveWays   int
	CloseCalls int

	MaxSpeed int
	MinSpeed int

	MaxTransit time.Duration
	MinTransit time.Duration
}

func newStats() Stats {
	return Stats{
		MinSpeed:   NoSpeed,
		MinTransit: NoTransit,
	}
}

func (s *Stats) observeSpeed(speed int) {
	s.MaxSpeed = max(s.MaxSpeed, speed)
	s.MinSpeed = min(s.MinSpeed, speed)
}

func (s *Stats) recordExit(transit time.Duration) {
	s.Passed++
	s.MaxTransit = max(s.MaxTransit, transit)
	s.MinTransit = min(s.MinTransit, transit)
}

// HasSpeed reports whether any speed has been observed.
func (s Stats) HasSpeed() bool {
	return s.MinSpeed != NoSpeed
}

// HasTransit reports whether any vehicle has exited.
func (s Stats) HasTransit() bool {
	return s.MinTransit != NoTransit
}

// SafetyRating grades the run by its close-call count.
func (s Stats) SafetyRating() string {
	switch {
	case s.CloseCalls == 0:
		return "✓ EXCELLENT (No close calls)"
	case s.CloseCalls < 5:
		return "⚠ GOOD (Few close calls)"
	}
	return "✗ NEEDS IMPROVEMENT (Many close calls)"
}

const noDataReport = `=== SMART ROAD STATISTICS ===

Cars passed: 0
Give ways: 0
Close calls: 0

Velocity Stats:
• Max velocity: N/A
• Min velocity: N/A

Time Stats:
• Max time: N/A
• Min time: N/A

Status: No data collected yet`

// Report renders the statistics as a multi-line text block. Until a vehicle
// has passed, a fixed no-data variant is returned.
func (s Stats) Report() string {
	if s.Passed == 0 {
		return noDataReport
	}

	minVelocity := "N/A"
	if s.HasSpeed() {
		minVelocity = fmt.Sprintf("%dpx/s", s.MinSpeed)
	}

	return fmt.Sprintf(`=== SMART ROAD STATISTICS ===

Traffic Summary:
• Cars passed: %d
• Give ways: %d
• Close calls: %d

Velocity Stats:
• Max velocity: %dpx/s
• Min velocity: %s

Time Stats:
• Max time: %.2fs
• Min time: %.2fs

Safety Rating: %s`,
		s.Passed,
		s.GiveWays,
		s.CloseCalls,
		s.MaxSpeed,
		minVelocity,
		s.MaxTransit.Seconds(),
		s.MinTransit.Seconds(),
		s.SafetyRating(),
	)
}
