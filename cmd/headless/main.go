// Command headless runs the intersection without a display, spawning a
// vehicle from a random side at a fixed tick interval, and prints the
// statistics report when the run ends.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/golangdaddy/smartroad/pkg/clock"
	"github.com/golangdaddy/smartroad/pkg/config"
	"github.com/golangdaddy/smartroad/pkg/traffic"
	log "github.com/sirupsen/logrus"
)

// Virtual monitor used to size the window when the config leaves it unset.
const (
	virtualWidth  = 1000
	virtualHeight = 1000
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

	if err := run(conf, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run simulates conf.Headless.Ticks ticks on a manual clock that advances
// one tick interval per update, so transit times match a real-time run.
func run(conf *config.Config, out io.Writer) error {
	dims, err := conf.Dimensions(virtualWidth, virtualHeight)
	if err != nil {
		return err
	}

	clk := clock.NewManual(time.Now())
	t := traffic.New(clk, conf.Rand())
	interval := conf.TickInterval()

	for tick := 0; tick < conf.Headless.Ticks; tick++ {
		if tick%conf.Headless.SpawnEvery == 0 {
			t.PushRandom(dims)
		}
		if err := t.Update(dims); err != nil {
			return fmt.Errorf("tick %d: %w", tick, err)
		}
		clk.Advance(interval)
	}

	stats := t.Stats()
	log.WithFields(log.Fields{
		"ticks":       conf.Headless.Ticks,
		"passed":      stats.Passed,
		"active":      stats.Active,
		"close_calls": stats.CloseCalls,
	}).Info("headless run finished")

	_, err = fmt.Fprintln(out, t.Report())
	return err
}
