package render

import (
	"image/color"
	"math"

	"github.com/golangdaddy/smartroad/pkg/road"
	"github.com/golangdaddy/smartroad/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SlotColors are the body colours for the four colour slots
var SlotColors = [4]color.RGBA{
	{220, 60, 60, 255},
	{60, 200, 60, 255},
	{70, 100, 230, 255},
	{230, 210, 50, 255},
}

// Sprites holds one top-down car image per colour slot, sized to the lane
type Sprites struct {
	size   int
	images [4]*ebiten.Image
}

// NewSprites renders the car images for the given lane width
func NewSprites(laneWidth int) *Sprites {
	s := &Sprites{size: laneWidth}
	for slot, c := range SlotColors {
		s.images[slot] = renderCar(laneWidth, c)
	}
	return s
}

// renderCar draws a car facing up into a square image
func renderCar(size int, body color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	f := float32(size)

	// Body, narrower than the footprint
	bodyW := f * 0.7
	bodyX := (f - bodyW) / 2
	vector.DrawFilledRect(img, bodyX, 0, bodyW, f, body, false)

	// Outline (darker color)
	vector.StrokeRect(img, bodyX+0.5, 0.5, bodyW-1, f-1, 1, color.RGBA{20, 20, 20, 255}, false)

	// Windshield marks the front
	vector.DrawFilledRect(img, bodyX+bodyW*0.2, f*0.15, bodyW*0.6, f*0.2, premultiply(color.RGBA{150, 200, 255, 220}), false)

	// Wheels
	wheel := color.RGBA{30, 30, 30, 255}
	wheelW, wheelH := f*0.12, f*0.2
	vector.DrawFilledRect(img, bodyX-wheelW, f*0.1, wheelW, wheelH, wheel, false)
	vector.DrawFilledRect(img, bodyX+bodyW, f*0.1, wheelW, wheelH, wheel, false)
	vector.DrawFilledRect(img, bodyX-wheelW, f*0.7, wheelW, wheelH, wheel, false)
	vector.DrawFilledRect(img, bodyX+bodyW, f*0.7, wheelW, wheelH, wheel, false)

	return img
}

// DrawVehicle draws a vehicle with its speed trail. Vehicles that are no
// longer fully inside the window are skipped.
func (s *Sprites) DrawVehicle(screen *ebiten.Image, v vehicle.Vehicle, dims road.Dimensions) {
	x, y := v.Position()
	if !dims.Contains(x, y) {
		return
	}

	size := float64(s.size)
	ratio := float64(v.Speed()) / float64(dims.Speed.Fast)
	body := SlotColors[v.Slot()%len(SlotColors)]

	// Speed trail behind the car
	if ratio > 0.3 {
		length := ratio * 12
		const segments = 3
		dx, dy := v.Heading().Delta()
		for i := 0; i < segments; i++ {
			fade := 1 - float64(i)/segments
			offset := length * float64(i+1) / segments
			trail := size * 0.7 * fade
			c := trailColor(body, fade*ratio)
			vector.DrawFilledRect(screen,
				float32(float64(x)-float64(dx)*offset+(size-trail)/2),
				float32(float64(y)-float64(dy)*offset+(size-trail)/2),
				float32(trail), float32(trail), premultiply(c), true)
		}
	}

	// Rotate around the footprint centre
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-size/2, -size/2)
	op.GeoM.Rotate(v.Angle() * math.Pi / 180)
	op.GeoM.Translate(float64(x)+size/2, float64(y)+size/2)
	screen.DrawImage(s.images[v.Slot()%len(s.images)], op)

	// Glow around the fastest cars
	if ratio > 0.8 {
		glow := premultiply(color.RGBA{255, 255, 100, 40})
		vector.StrokeRect(screen, float32(x-2), float32(y-2), float32(s.size+4), float32(s.size+4), 1, glow, true)
	}
}

// trailColor is a lightened body colour at the given strength in [0, 1]
func trailColor(body color.RGBA, strength float64) color.RGBA {
	return color.RGBA{
		R: body.R/2 + 50,
		G: body.G/2 + 50,
		B: body.B/2 + 50,
		A: uint8(100 * strength),
	}
}

// premultiply converts a straight-alpha colour to the premultiplied form
// that color.Color values are expected to carry.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
