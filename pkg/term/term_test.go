package term

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/smartroad/pkg/clock"
	"github.com/golangdaddy/smartroad/pkg/config"
	"github.com/golangdaddy/smartroad/pkg/input"
	"github.com/golangdaddy/smartroad/pkg/road"
	"github.com/golangdaddy/smartroad/pkg/traffic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always picks the same lane.
type fixedRand int

func (r fixedRand) Intn(n int) int { return int(r) % n }

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func cell(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func row(screen tcell.Screen, y, cols int) string {
	var b strings.Builder
	for x := 0; x < cols; x++ {
		b.WriteRune(cell(screen, x, y))
	}
	return b.String()
}

func TestDimensions(t *testing.T) {
	conf := config.DefaultConfig()

	dims, err := Dimensions(conf, 50, 20)
	require.NoError(t, err)
	assert.Equal(t, 400, dims.WindowWidth)
	assert.Equal(t, 304, dims.WindowHeight)
	assert.Equal(t, 16, dims.LaneWidth)

	_, err = Dimensions(conf, 10, 5)
	assert.Error(t, err)
}

func TestCellSize(t *testing.T) {
	w, h := CellSize(16)
	assert.Equal(t, 8, w)
	assert.Equal(t, 16, h)

	w, _ = CellSize(1)
	assert.Equal(t, 1, w)
}

func TestDrawVehicle(t *testing.T) {
	screen := newScreen(t, 50, 20)
	dims, err := Dimensions(config.DefaultConfig(), 50, 20)
	require.NoError(t, err)

	// Lane 1 from the bottom edge goes straight up in the fast tier.
	tr := traffic.New(clock.NewManual(time.Now()), fixedRand(1))
	tr.Push(road.Up, dims)

	view := NewView(screen, dims)
	view.Draw(tr.Vehicles(), tr.Stats())

	// Spawned at (216, 288): column 216/8, row 288/16.
	assert.Equal(t, '^', cell(screen, 27, 18))
	assert.Equal(t, '^', cell(screen, 28, 18))

	require.NoError(t, tr.Update(dims))
	view.Draw(tr.Vehicles(), tr.Stats())

	// One fast tick later the vehicle is at y=276.
	assert.Equal(t, '^', cell(screen, 27, 17))
	assert.Equal(t, ' ', cell(screen, 27, 18))
}

func TestDrawHUD(t *testing.T) {
	screen := newScreen(t, 80, 20)
	dims, err := Dimensions(config.DefaultConfig(), 80, 20)
	require.NoError(t, err)

	tr := traffic.New(clock.NewManual(time.Now()), fixedRand(0))
	tr.Push(road.Left, dims)
	tr.Push(road.Right, dims)

	NewView(screen, dims).Draw(tr.Vehicles(), tr.Stats())

	hud := row(screen, 19, 80)
	assert.Contains(t, hud, "Active 2")
	assert.Contains(t, hud, "Passed 0")
}

func TestDrawHelp(t *testing.T) {
	screen := newScreen(t, 80, 20)
	dims, err := Dimensions(config.DefaultConfig(), 80, 20)
	require.NoError(t, err)

	view := NewView(screen, dims)
	view.ToggleHelp()
	view.Draw(nil, traffic.Stats{})

	found := false
	for y := 0; y < 20; y++ {
		if strings.Contains(row(screen, y, 80), "Smart Road") {
			found = true
		}
	}
	assert.True(t, found)

	view.ToggleHelp()
	view.Draw(nil, traffic.Stats{})
	for y := 0; y < 20; y++ {
		assert.NotContains(t, row(screen, y, 80), "Smart Road")
	}
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		ch   rune
		want input.Command
	}{
		{tcell.KeyUp, 0, input.SpawnUp},
		{tcell.KeyDown, 0, input.SpawnDown},
		{tcell.KeyLeft, 0, input.SpawnLeft},
		{tcell.KeyRight, 0, input.SpawnRight},
		{tcell.KeyEscape, 0, input.Quit},
		{tcell.KeyCtrlC, 0, input.Quit},
		{tcell.KeyRune, 'r', input.SpawnRandom},
		{tcell.KeyRune, 'H', input.ToggleHelp},
		{tcell.KeyRune, 'q', input.Quit},
		{tcell.KeyRune, 'x', input.None},
		{tcell.KeyEnter, 0, input.None},
	}
	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone)
		assert.Equal(t, tt.want, KeyCommand(ev), "key %v rune %q", tt.key, tt.ch)
	}
}
