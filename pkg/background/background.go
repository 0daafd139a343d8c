package background

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"

	"github.com/golangdaddy/smartroad/pkg/road"
)

var (
	grassColor    = color.RGBA{30, 100, 30, 255}
	asphaltColor  = color.RGBA{60, 60, 66, 255}
	markingColor  = color.RGBA{230, 230, 230, 255}
	medianColor   = color.RGBA{240, 200, 40, 255}
	crossingColor = color.RGBA{72, 72, 78, 255}
)

// Generator paints the static backdrop for an intersection
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// Carriageways returns the vertical and horizontal road surfaces. Each is
// six lanes wide, centred on the window's half point.
func Carriageways(d road.Dimensions) (vertical, horizontal image.Rectangle) {
	vertical = image.Rect(d.HalfWidth-3*d.LaneWidth, 0, d.HalfWidth+3*d.LaneWidth, d.WindowHeight)
	horizontal = image.Rect(0, d.HalfHeight-3*d.LaneWidth, d.WindowWidth, d.HalfHeight+3*d.LaneWidth)
	return vertical, horizontal
}

// GenerateIntersection creates grass with trees and bushes, the two
// carriageways, their lane markings and the give-way lines. The same seed always yields the same image.
func (g *Generator) GenerateIntersection(d road.Dimensions, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	// Base grass layer
	draw.Draw(img, img.Bounds(), &image.Uniform{grassColor}, image.Point{}, draw.Src)

	// Add noise/texture to grass
	for i := 0; i < g.Width*g.Height/10; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		shade := uint8(80 + rng.Intn(60))
		img.Set(x, y, color.RGBA{30, shade, 30, 255})
	}

	vertical, horizontal := Carriageways(d)
	for i := 0; i < g.Width*g.Height/4000; i++ {
		p := image.Pt(rng.Intn(g.Width), rng.Intn(g.Height))
		if p.In(vertical.Inset(-d.LaneWidth)) || p.In(horizontal.Inset(-d.LaneWidth)) {
			continue
		}
		if rng.Intn(4) == 0 {
			g.drawTree(img, p.X, p.Y, d.LaneWidth, rng)
		} else {
			g.drawBush(img, p.X, p.Y, rng)
		}
	}

	draw.Draw(img, vertical, &image.Uniform{asphaltColor}, image.Point{}, draw.Src)
	draw.Draw(img, horizontal, &image.Uniform{asphaltColor}, image.Point{}, draw.Src)

	g.drawMarkings(img, d, vertical, horizontal)

	draw.Draw(img, vertical.Intersect(horizontal), &image.Uniform{crossingColor}, image.Point{}, draw.Src)

	g.drawGiveWayLines(img, d)

	return img
}

// giveWayDash is the dash and gap length of a give-way line.
const giveWayDash = 4

// giveWayGap separates the two lines of a give-way marking.
const giveWayGap = 8

// drawGiveWayLines paints a double dashed line across the inbound half of
// each approach where it meets the crossing.
func (g *Generator) drawGiveWayLines(img *image.RGBA, d road.Dimensions) {
	edge := 3 * d.LaneWidth
	for _, off := range []int{0, giveWayGap} {
		// Traffic heading up enters through the bottom edge, right half
		g.dashedLine(img, d.HalfWidth, d.HalfHeight+edge+off, 1, 0, edge)
		// Heading down, top edge, left half
		g.dashedLine(img, d.HalfWidth, d.HalfHeight-edge-off, -1, 0, edge)
		// Heading left, right edge, upper half
		g.dashedLine(img, d.HalfWidth+edge+off, d.HalfHeight, 0, -1, edge)
		// Heading right, left edge, lower half
		g.dashedLine(img, d.HalfWidth-edge-off, d.HalfHeight, 0, 1, edge)
	}
}

// dashedLine walks length pixels from (x, y) along (dx, dy), alternating
// dashes and gaps.
func (g *Generator) dashedLine(img *image.RGBA, x, y, dx, dy, length int) {
	for i := 0; i < length; i++ {
		if (i/giveWayDash)%2 == 0 {
			img.Set(x+i*dx, y+i*dy, markingColor)
		}
	}
}

// drawMarkings paints dashed lane dividers and a solid median on each
// carriageway, stopping at the crossing.
func (g *Generator) drawMarkings(img *image.RGBA, d road.Dimensions, vertical, horizontal image.Rectangle) {
	dash := d.LaneWidth / 2
	for lane := -2; lane <= 2; lane++ {
		c := markingColor
		solid := lane == 0
		if solid {
			c = medianColor
		}

		x := d.HalfWidth + lane*d.LaneWidth
		for y := 0; y < d.WindowHeight; y++ {
			if y >= horizontal.Min.Y && y < horizontal.Max.Y {
				continue
			}
			if solid || (y/dash)%2 == 0 {
				img.Set(x, y, c)
			}
		}

		y := d.HalfHeight + lane*d.LaneWidth
		for x := 0; x < d.WindowWidth; x++ {
			if x >= vertical.Min.X && x < vertical.Max.X {
				continue
			}
			if solid || (x/dash)%2 == 0 {
				img.Set(x, y, c)
			}
		}
	}
}

// drawTree draws a small pine seen from the side, scaled to the lane width
func (g *Generator) drawTree(img *image.RGBA, x, y, laneWidth int, rng *rand.Rand) {
	height := 2*laneWidth + rng.Intn(laneWidth+1)
	width := laneWidth + rng.Intn(laneWidth/2+1)

	// Trunk
	trunkColor := color.RGBA{60, 40, 20, 255}
	trunkW := 2 + rng.Intn(2)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx <= trunkW/2; tx++ {
			g.setClipped(img, x+tx, y-ty, trunkColor)
		}
	}

	// Leaves in three stacked triangles
	leavesColor := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}
	layerH := max(height/3, 1)
	for l := 0; l < 3; l++ {
		layerY := y - height/3 - l*height/4
		layerW := max(width-l*laneWidth/4, 3)
		for ly := 0; ly < layerH; ly++ {
			rowW := layerW * (layerH - ly) / layerH
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				g.setClipped(img, x+lx, layerY-ly, leavesColor)
			}
		}
	}
}

func (g *Generator) setClipped(img *image.RGBA, x, y int, c color.RGBA) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		img.Set(x, y, c)
	}
}

// drawBush draws a round bush
func (g *Generator) drawBush(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 3 + rng.Intn(6)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				px, py := x+dx, y+dy
				if px >= 0 && px < g.Width && py >= 0 && py < g.Height {
					img.Set(px, py, c)
				}
			}
		}
	}
}
