package input

import (
	"testing"
	"time"

	"github.com/golangdaddy/smartroad/pkg/clock"
	"github.com/golangdaddy/smartroad/pkg/road"
	"github.com/golangdaddy/smartroad/pkg/traffic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	pushed []road.Direction
	random int
}

func (r *recorder) Push(entry road.Direction, _ road.Dimensions) uuid.UUID {
	r.pushed = append(r.pushed, entry)
	return uuid.New()
}

func (r *recorder) PushRandom(road.Dimensions) uuid.UUID {
	r.random++
	return uuid.New()
}

func TestDispatch(t *testing.T) {
	dims := road.NewDimensions(800, 600, 16)
	r := &recorder{}

	assert.True(t, Dispatch(SpawnUp, r, dims))
	assert.True(t, Dispatch(SpawnDown, r, dims))
	assert.True(t, Dispatch(SpawnLeft, r, dims))
	assert.True(t, Dispatch(SpawnRight, r, dims))
	assert.True(t, Dispatch(SpawnRandom, r, dims))
	assert.False(t, Dispatch(ToggleHelp, r, dims))
	assert.False(t, Dispatch(ToggleFullscreen, r, dims))
	assert.False(t, Dispatch(Quit, r, dims))
	assert.False(t, Dispatch(None, r, dims))

	assert.Equal(t, []road.Direction{road.Up, road.Down, road.Left, road.Right}, r.pushed)
	assert.Equal(t, 1, r.random)
}

func TestDispatchDrivesTraffic(t *testing.T) {
	dims := road.NewDimensions(800, 600, 16)
	tr := traffic.NewDefault()

	require.True(t, Dispatch(SpawnLeft, tr, dims))
	require.Equal(t, 1, tr.Len())
	assert.Equal(t, road.Left, tr.Vehicles()[0].Entry())
}

func TestDebouncer(t *testing.T) {
	clk := clock.NewManual(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	d := NewDebouncer(clk, 128*time.Millisecond)

	assert.False(t, d.Accept(), "presses right after start are dropped")

	clk.Advance(128 * time.Millisecond)
	assert.False(t, d.Accept(), "the interval itself is inclusive")

	clk.Advance(time.Millisecond)
	assert.True(t, d.Accept())

	clk.Advance(50 * time.Millisecond)
	assert.False(t, d.Accept())

	clk.Advance(100 * time.Millisecond)
	assert.True(t, d.Accept(), "dropped presses do not restart the interval")
}
