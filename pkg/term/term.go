// Package term draws the intersection in a terminal with tcell. One cell is
// half a lane wide and a lane tall, so a vehicle covers two cells side by
// side and keeps its square footprint on screen.
package term

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/smartroad/pkg/background"
	"github.com/golangdaddy/smartroad/pkg/config"
	"github.com/golangdaddy/smartroad/pkg/input"
	"github.com/golangdaddy/smartroad/pkg/road"
	"github.com/golangdaddy/smartroad/pkg/traffic"
	"github.com/golangdaddy/smartroad/pkg/vehicle"
)

// hudRows is the number of terminal rows reserved below the road.
const hudRows = 1

var slotColors = [4]tcell.Color{
	tcell.ColorRed,
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorYellow,
}

var (
	grassStyle   = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	roadStyle    = tcell.StyleDefault.Background(tcell.ColorDimGray)
	hudStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	helpStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	vehicleGlyph = map[road.Direction]rune{
		road.Up:    '^',
		road.Down:  'v',
		road.Left:  '<',
		road.Right: '>',
	}
)

// CellSize returns the pixel size of one terminal cell.
func CellSize(laneWidth int) (width, height int) {
	return max(laneWidth/2, 1), laneWidth
}

// Dimensions sizes the simulation to a terminal of cols x rows cells.
// Window sizes set in the config are ignored.
func Dimensions(conf *config.Config, cols, rows int) (road.Dimensions, error) {
	cw, ch := CellSize(conf.LaneWidth)
	sized := *conf
	sized.WindowWidth = cols * cw
	sized.WindowHeight = (rows - hudRows) * ch
	return sized.Dimensions(0, 0)
}

// View renders the simulation onto a tcell screen.
type View struct {
	screen   tcell.Screen
	dims     road.Dimensions
	showHelp bool
}

func NewView(screen tcell.Screen, dims road.Dimensions) *View {
	return &View{screen: screen, dims: dims}
}

// ToggleHelp shows or hides the key help.
func (v *View) ToggleHelp() {
	v.showHelp = !v.showHelp
}

// Draw renders the road, the vehicles and the status line.
func (v *View) Draw(vehicles []*traffic.Vehicle, stats traffic.Stats) {
	v.screen.Clear()
	v.drawRoad()
	for _, veh := range vehicles {
		v.drawVehicle(veh)
	}
	v.drawHUD(stats)
	if v.showHelp {
		v.drawHelp()
	}
	v.screen.Show()
}

func (v *View) drawRoad() {
	cw, ch := CellSize(v.dims.LaneWidth)
	vertical, horizontal := background.Carriageways(v.dims)
	cols, rows := v.dims.WindowWidth/cw, v.dims.WindowHeight/ch
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			// Sample the cell centre
			px, py := cx*cw+cw/2, cy*ch+ch/2
			style := grassStyle
			if p := image.Pt(px, py); p.In(vertical) || p.In(horizontal) {
				style = roadStyle
			}
			v.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

func (v *View) drawVehicle(veh vehicle.Vehicle) {
	x, y := veh.Position()
	if !v.dims.Contains(x, y) {
		return
	}
	cw, ch := CellSize(v.dims.LaneWidth)
	cx, cy := x/cw, y/ch

	style := roadStyle.Foreground(slotColors[veh.Slot()%len(slotColors)]).Bold(true)
	glyph := vehicleGlyph[veh.Heading()]
	v.screen.SetContent(cx, cy, glyph, nil, style)
	v.screen.SetContent(cx+1, cy, glyph, nil, style)
}

func (v *View) drawHUD(s traffic.Stats) {
	_, ch := CellSize(v.dims.LaneWidth)
	row := v.dims.WindowHeight / ch
	line := fmt.Sprintf(" Active %d  Passed %d  Gave way %d  Close calls %d  | h: help  esc: quit",
		s.Active, s.Passed, s.GiveWays, s.CloseCalls)
	v.drawText(0, row, line, hudStyle)
}

var helpLines = []string{
	" Smart Road ",
	" arrows  spawn from the opposite edge ",
	" r       spawn from a random edge     ",
	" h       toggle this help             ",
	" esc, q  quit and print the report    ",
}

func (v *View) drawHelp() {
	cols, rows := v.screen.Size()
	width := 0
	for _, l := range helpLines {
		width = max(width, len(l))
	}
	x := max((cols-width)/2, 0)
	y := max((rows-len(helpLines))/2, 0)
	for i, l := range helpLines {
		v.drawText(x, y+i, l, helpStyle)
	}
}

func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// KeyCommand maps a terminal key event to a command.
func KeyCommand(ev *tcell.EventKey) input.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.SpawnUp
	case tcell.KeyDown:
		return input.SpawnDown
	case tcell.KeyLeft:
		return input.SpawnLeft
	case tcell.KeyRight:
		return input.SpawnRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'r', 'R':
			return input.SpawnRandom
		case 'h', 'H':
			return input.ToggleHelp
		case 'q', 'Q':
			return input.Quit
		}
	}
	return input.None
}
