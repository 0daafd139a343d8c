package background

import (
	"image"
	"testing"

	"github.com/golangdaddy/smartroad/pkg/road"
	"github.com/stretchr/testify/assert"
)

func TestCarriageways(t *testing.T) {
	d := road.NewDimensions(800, 600, 16)
	vertical, horizontal := Carriageways(d)

	assert.Equal(t, image.Rect(352, 0, 448, 600), vertical)
	assert.Equal(t, image.Rect(0, 252, 800, 348), horizontal)

	// every spawn footprint sits on a carriageway
	for _, entry := range road.Directions {
		for lane := 0; lane < road.LanesPerApproach; lane++ {
			x, y := d.Entrance(road.Route(entry, lane))
			footprint := image.Rect(x, y, x+d.LaneWidth, y+d.LaneWidth)
			onRoad := footprint.In(vertical) || footprint.In(horizontal)
			assert.True(t, onRoad, "%s lane %d at %v", entry, lane, footprint)
		}
	}
}

func TestGenerateIntersection(t *testing.T) {
	d := road.NewDimensions(400, 300, 16)
	g := NewGenerator(d.WindowWidth, d.WindowHeight)

	img := g.GenerateIntersection(d, 1)
	assert.Equal(t, image.Rect(0, 0, 400, 300), img.Bounds())

	assert.Equal(t, crossingColor, img.RGBAAt(d.HalfWidth, d.HalfHeight))
	assert.Equal(t, medianColor, img.RGBAAt(d.HalfWidth, 10))
	assert.Equal(t, asphaltColor, img.RGBAAt(d.HalfWidth-d.LaneWidth/2, 10))

	// Give-way lines: double dashed, 4px dash and gap, 8px apart
	edge := 3 * d.LaneWidth
	giveWay := []struct{ x, y int }{
		{d.HalfWidth, d.HalfHeight + edge},
		{d.HalfWidth, d.HalfHeight + edge + 8},
		{d.HalfWidth - 1, d.HalfHeight - edge},
		{d.HalfWidth + edge, d.HalfHeight - 1},
		{d.HalfWidth - edge - 8, d.HalfHeight + 1},
	}
	for _, p := range giveWay {
		assert.Equal(t, markingColor, img.RGBAAt(p.x, p.y), "give-way dash at %d,%d", p.x, p.y)
	}
	assert.Equal(t, asphaltColor, img.RGBAAt(d.HalfWidth+4, d.HalfHeight+edge), "give-way gap")
	// the outbound half has no give-way line
	assert.NotEqual(t, markingColor, img.RGBAAt(d.HalfWidth-4, d.HalfHeight+edge+8))

	again := g.GenerateIntersection(d, 1)
	assert.Equal(t, img.Pix, again.Pix, "same seed, same backdrop")
}
