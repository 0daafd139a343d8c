package render

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/smartroad/pkg/road"
	"github.com/golangdaddy/smartroad/pkg/traffic"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	panelColor  = color.RGBA{0, 0, 0, 160}
	labelColor  = color.RGBA{230, 230, 230, 255}
	accentColor = color.RGBA{255, 215, 0, 255}
	slowColor   = color.RGBA{90, 160, 255, 255}
	fastColor   = color.RGBA{255, 90, 90, 255}
)

const lineHeight = 18.0

// HUD draws the live statistics panel and the key help overlay
type HUD struct {
	face text.Face
}

func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(bitmapfont.Face)}
}

// Draw renders the statistics panel in the top-left corner
func (h *HUD) Draw(screen *ebiten.Image, s traffic.Stats, dims road.Dimensions, fps float64) {
	const (
		x     = 8.0
		y     = 8.0
		width = 200.0
	)
	vector.DrawFilledRect(screen, float32(x-4), float32(y-4), float32(width), float32(lineHeight*7+8), premultiply(panelColor), false)

	lines := []string{
		fmt.Sprintf("Active:      %d", s.Active),
		fmt.Sprintf("Passed:      %d", s.Passed),
		fmt.Sprintf("Gave way:    %d", s.GiveWays),
		fmt.Sprintf("Close calls: %d", s.CloseCalls),
	}
	cy := y
	for _, line := range lines {
		h.drawTextAt(screen, line, x, cy, labelColor)
		cy += lineHeight
	}

	maxSpeed, minSpeed := 0, 0
	if s.HasSpeed() {
		maxSpeed, minSpeed = s.MaxSpeed, s.MinSpeed
	}
	h.drawBar(screen, "Max", maxSpeed, dims.Speed.Fast, x, cy, fastColor)
	cy += lineHeight
	h.drawBar(screen, "Min", minSpeed, dims.Speed.Fast, x, cy, slowColor)
	cy += lineHeight

	h.drawTextAt(screen, fmt.Sprintf("FPS: %.0f   H: help", fps), x, cy, accentColor)
}

// drawBar draws a labelled velocity bar scaled against the fast tier
func (h *HUD) drawBar(screen *ebiten.Image, label string, value, limit int, x, y float64, clr color.RGBA) {
	const barWidth = 100.0
	h.drawTextAt(screen, fmt.Sprintf("%s %2d", label, value), x, y, labelColor)

	bx := x + 60
	vector.DrawFilledRect(screen, float32(bx), float32(y+3), barWidth, lineHeight-8, premultiply(color.RGBA{60, 60, 60, 200}), false)
	if limit > 0 && value > 0 {
		fill := barWidth * float64(min(value, limit)) / float64(limit)
		vector.DrawFilledRect(screen, float32(bx), float32(y+3), float32(fill), lineHeight-8, clr, false)
	}
}

var helpLines = []string{
	"Smart Road",
	"",
	"Up arrow     spawn from the south",
	"Down arrow   spawn from the north",
	"Left arrow   spawn from the east",
	"Right arrow  spawn from the west",
	"R            spawn from a random side",
	"F            toggle fullscreen",
	"H            toggle this help",
	"Esc          quit and print the report",
}

// DrawHelp renders the key binding overlay in the centre of the window
func (h *HUD) DrawHelp(screen *ebiten.Image, dims road.Dimensions) {
	width := 0.0
	for _, line := range helpLines {
		width = max(width, text.Advance(line, h.face))
	}
	height := lineHeight * float64(len(helpLines))

	x := float64(dims.HalfWidth) - width/2
	y := float64(dims.HalfHeight) - height/2
	vector.DrawFilledRect(screen, float32(x-12), float32(y-12), float32(width+24), float32(height+24), premultiply(color.RGBA{0, 0, 0, 200}), false)

	for i, line := range helpLines {
		clr := labelColor
		if i == 0 {
			clr = accentColor
		}
		h.drawTextAt(screen, line, x, y+float64(i)*lineHeight, clr)
	}
}

func (h *HUD) drawTextAt(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, h.face, op)
}
