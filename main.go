package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/golangdaddy/smartroad/pkg/clock"
	"github.com/golangdaddy/smartroad/pkg/config"
	"github.com/golangdaddy/smartroad/pkg/game"
	"github.com/golangdaddy/smartroad/pkg/traffic"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

// Fallback monitor size when no monitor can be queried.
const (
	fallbackWidth  = 1000
	fallbackHeight = 1000
)

func main() {
	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	conf, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := conf.ApplyLogging(); err != nil {
		log.Fatal(err)
	}

	monW, monH := fallbackWidth, fallbackHeight
	if m := ebiten.Monitor(); m != nil {
		monW, monH = m.Size()
	}
	dims, err := conf.Dimensions(monW, monH)
	if err != nil {
		log.Fatal(err)
	}

	t := traffic.New(clock.System{}, conf.Rand())
	g := game.New(conf, dims, t)

	ebiten.SetWindowSize(dims.WindowWidth, dims.WindowHeight)
	ebiten.SetWindowTitle("Smart Road")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(conf.TicksPerSecond)

	log.WithFields(log.Fields{
		"width":  dims.WindowWidth,
		"height": dims.WindowHeight,
		"lane":   dims.LaneWidth,
	}).Info("starting simulation")

	runErr := ebiten.RunGame(g)
	fmt.Println(t.Report())
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
