package config

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/golangdaddy/smartroad/pkg/road"
	log "github.com/sirupsen/logrus"
)

// Config holds the parameters for running a simulation. Zero values for the
// window size and speeds mean "derive them".
type Config struct {
	WindowWidth  int `toml:"window_width"`  // 0: derive from the monitor
	WindowHeight int `toml:"window_height"` // 0: derive from the monitor
	LaneWidth    int `toml:"lane_width"`

	// Speed tiers in pixels per tick. 0: derive from the lane width.
	SpeedSlow    int `toml:"speed_slow"`
	SpeedDefault int `toml:"speed_default"`
	SpeedFast    int `toml:"speed_fast"`

	TicksPerSecond int    `toml:"ticks_per_second"`
	KeyIntervalMS  int    `toml:"key_interval_ms"` // key presses closer than this are ignored
	Seed           int64  `toml:"seed"`            // 0: seed from the clock
	LogLevel       string `toml:"log_level"`

	Headless Headless `toml:"headless"`
}

// Headless holds parameters for runs without a display.
type Headless struct {
	Ticks      int `toml:"ticks"`
	SpawnEvery int `toml:"spawn_every"` // ticks between random spawns
}

// MinLanes is the smallest window side, in lane widths, that fits the
// six-lane crossing with a margin.
const MinLanes = 8

// DefaultConfig returns the default parameters.
func DefaultConfig() *Config {
	return &Config{
		LaneWidth:      16,
		TicksPerSecond: 60,
		KeyIntervalMS:  128,
		LogLevel:       "info",
		Headless: Headless{
			Ticks:      3600,
			SpawnEvery: 30,
		},
	}
}

// Load parses the TOML config file at path over the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	conf := DefaultConfig()
	if path == "" {
		return conf, nil
	}

	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return conf, nil
}

// Validate checks the parameters that do not depend on the display.
func (c *Config) Validate() error {
	if c.LaneWidth <= 0 {
		return fmt.Errorf("lane_width must be positive, got %d", c.LaneWidth)
	}
	if c.WindowWidth < 0 || c.WindowHeight < 0 {
		return errors.New("window size must not be negative")
	}

	s := c.Speeds()
	if s.Slow <= 0 || s.Slow > s.Default || s.Default > s.Fast {
		return fmt.Errorf("speed tiers must satisfy 0 < slow <= default <= fast, got %d/%d/%d",
			s.Slow, s.Default, s.Fast)
	}

	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("ticks_per_second must be positive, got %d", c.TicksPerSecond)
	}
	if c.KeyIntervalMS < 0 {
		return fmt.Errorf("key_interval_ms must not be negative, got %d", c.KeyIntervalMS)
	}
	if c.Headless.Ticks <= 0 || c.Headless.SpawnEvery <= 0 {
		return errors.New("headless ticks and spawn_every must be positive")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Speeds returns the speed table, deriving unset tiers from the lane width.
func (c *Config) Speeds() road.Speeds {
	s := road.DefaultSpeeds(c.LaneWidth)
	if c.SpeedSlow > 0 {
		s.Slow = c.SpeedSlow
	}
	if c.SpeedDefault > 0 {
		s.Default = c.SpeedDefault
	}
	if c.SpeedFast > 0 {
		s.Fast = c.SpeedFast
	}
	return s
}

// Dimensions builds the simulation dimensions. An unset window side is
// derived from the monitor: a square 80% of the monitor height.
func (c *Config) Dimensions(monitorWidth, monitorHeight int) (road.Dimensions, error) {
	width, height := c.WindowWidth, c.WindowHeight
	side := monitorHeight * 8 / 10
	if width == 0 {
		width = side
	}
	if height == 0 {
		height = side
	}

	minSide := MinLanes * c.LaneWidth
	if width < minSide || height < minSide {
		return road.Dimensions{}, fmt.Errorf("window %dx%d is smaller than %d lane widths (%dpx)",
			width, height, MinLanes, minSide)
	}

	return road.NewDimensionsWithSpeeds(width, height, c.LaneWidth, c.Speeds()), nil
}

// TickInterval is the wall-clock time between ticks.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TicksPerSecond)
}

// KeyInterval is the minimum time between accepted key presses.
func (c *Config) KeyInterval() time.Duration {
	return time.Duration(c.KeyIntervalMS) * time.Millisecond
}

// Rand returns the random source for spawning.
func (c *Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ApplyLogging configures the global logger.
func (c *Config) ApplyLogging() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}
