package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPumpEventsForwardsKeys(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	events := make(chan tcell.Event, 10)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen, events, done)

	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			if key, ok := ev.(*tcell.EventKey); ok {
				assert.Equal(t, 'r', key.Rune())
				return
			}
		case <-deadline:
			t.Fatal("key event was not forwarded")
		}
	}
}

func TestPumpEventsStopsWhenDone(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	// Nobody reads events, so the pump can only leave through done.
	events := make(chan tcell.Event)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		pumpEvents(screen, events, done)
		close(finished)
	}()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	close(done)

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("event pump did not stop after done was closed")
	}
}
