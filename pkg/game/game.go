package game

import (
	"github.com/golangdaddy/smartroad/pkg/background"
	"github.com/golangdaddy/smartroad/pkg/clock"
	"github.com/golangdaddy/smartroad/pkg/config"
	"github.com/golangdaddy/smartroad/pkg/input"
	"github.com/golangdaddy/smartroad/pkg/render"
	"github.com/golangdaddy/smartroad/pkg/road"
	"github.com/golangdaddy/smartroad/pkg/traffic"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
)

// Game implements ebiten.Game for the intersection.
type Game struct {
	dims     road.Dimensions
	seed     int64
	traffic  *traffic.Traffic
	debounce *input.Debouncer

	sprites  *render.Sprites
	hud      *render.HUD
	backdrop *ebiten.Image

	showHelp bool
	keys     []ebiten.Key
}

// New wires a game to an existing traffic controller so the caller can
// read the final report after the window closes.
func New(conf *config.Config, dims road.Dimensions, t *traffic.Traffic) *Game {
	return &Game{
		dims:     dims,
		seed:     conf.Seed,
		traffic:  t,
		debounce: input.NewDebouncer(clock.System{}, conf.KeyInterval()),
		sprites:  render.NewSprites(dims.LaneWidth),
		hud:      render.NewHUD(),
	}
}

// KeyCommand maps a keyboard key to a command.
func KeyCommand(k ebiten.Key) input.Command {
	switch k {
	case ebiten.KeyArrowUp:
		return input.SpawnUp
	case ebiten.KeyArrowDown:
		return input.SpawnDown
	case ebiten.KeyArrowLeft:
		return input.SpawnLeft
	case ebiten.KeyArrowRight:
		return input.SpawnRight
	case ebiten.KeyR:
		return input.SpawnRandom
	case ebiten.KeyH:
		return input.ToggleHelp
	case ebiten.KeyF:
		return input.ToggleFullscreen
	case ebiten.KeyEscape:
		return input.Quit
	}
	return input.None
}

// Update proceeds the simulation by one tick.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		cmd := KeyCommand(k)
		switch cmd {
		case input.None:
			continue
		case input.Quit:
			return ebiten.Termination
		}
		if !g.debounce.Accept() {
			continue
		}
		if input.Dispatch(cmd, g.traffic, g.dims) {
			continue
		}
		switch cmd {
		case input.ToggleHelp:
			g.showHelp = !g.showHelp
		case input.ToggleFullscreen:
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		}
	}

	if err := g.traffic.Update(g.dims); err != nil {
		log.WithError(err).Error("traffic update failed")
		return err
	}
	return nil
}

// Draw draws the intersection, the vehicles and the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.backdrop == nil {
		gen := background.NewGenerator(g.dims.WindowWidth, g.dims.WindowHeight)
		g.backdrop = ebiten.NewImageFromImage(gen.GenerateIntersection(g.dims, g.seed))
	}
	screen.DrawImage(g.backdrop, nil)

	for _, v := range g.traffic.Vehicles() {
		g.sprites.DrawVehicle(screen, v, g.dims)
	}

	g.hud.Draw(screen, g.traffic.Stats(), g.dims, ebiten.ActualFPS())
	if g.showHelp {
		g.hud.DrawHelp(screen, g.dims)
	}
}

// Layout keeps the logical screen at the simulation size and lets ebiten
// scale it into the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.dims.WindowWidth, g.dims.WindowHeight
}
