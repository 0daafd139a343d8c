package traffic

import "math"

// closeCalls counts vehicle pairs whose stored positions are closer than one
// and a half lane widths but farther apart than one lane width. It measures
// corner to corner, unlike the footprint test in collides, and never
// changes vehicle state.
func closeCalls(vehicles []*Vehicle, laneWidth int) int {
	safety := int(float64(laneWidth) * 1.5)

	count := 0
	for i := 0; i < len(vehicles); i++ {
		for j := i + 1; j < len(vehicles); j++ {
			dx := vehicles[i].x - vehicles[j].x
			dy := vehicles[i].y - vehicles[j].y
			distance := int(math.Sqrt(float64(dx*dx + dy*dy)))

			if distance < safety && distance > laneWidth {
				count++
			}
		}
	}
	return count
}
