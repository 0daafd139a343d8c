// Command terminal runs the intersection inside a terminal window.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/smartroad/pkg/clock"
	"github.com/golangdaddy/smartroad/pkg/config"
	"github.com/golangdaddy/smartroad/pkg/input"
	"github.com/golangdaddy/smartroad/pkg/road"
	"github.com/golangdaddy/smartroad/pkg/term"
	"github.com/golangdaddy/smartroad/pkg/traffic"
	log "github.com/sirupsen/logrus"
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
	// The screen owns stdout while running.
	log.SetOutput(os.Stderr)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	cols, rows := screen.Size()
	dims, err := term.Dimensions(conf, cols, rows)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	t := traffic.New(clock.System{}, conf.Rand())
	runErr := run(screen, conf, dims, t)
	screen.Fini()

	fmt.Println(t.Report())
	if runErr != nil {
		log.Fatal(runErr)
	}
}

func run(screen tcell.Screen, conf *config.Config, dims road.Dimensions, t *traffic.Traffic) error {
	view := term.NewView(screen, dims)
	debounce := input.NewDebouncer(clock.System{}, conf.KeyInterval())

	ticker := time.NewTicker(conf.TickInterval())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen, events, done)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd := term.KeyCommand(ev)
				switch cmd {
				case input.None:
					continue
				case input.Quit:
					return nil
				}
				if !debounce.Accept() {
					continue
				}
				if !input.Dispatch(cmd, t, dims) && cmd == input.ToggleHelp {
					view.ToggleHelp()
				}
			case *tcell.EventResize:
				// The simulation keeps the size it started with.
				screen.Sync()
			}

		case <-ticker.C:
			if err := t.Update(dims); err != nil {
				return err
			}
			view.Draw(t.Vehicles(), t.Stats())
		}
	}
}

// pumpEvents forwards screen events until the screen is finalised or done
// is closed.
func pumpEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
