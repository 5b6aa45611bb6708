// Package config collects the launch settings for the visualizer and the
// headless runner. Values come from defaults, an optional HCL file, string
// overrides and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// ErrInvalid marks settings that cannot produce a usable canvas.
var ErrInvalid = errors.New("invalid config")

// Speed bounds for the tick-rate slider.
const (
	MinSpeed = 1.0
	MaxSpeed = 30.0
)

// Config holds canvas geometry, playback and logging settings.
type Config struct {
	Width  int
	Height int

	CellSize    int
	MinCellSize int
	MaxCellSize int

	// Speed is the initial simulation rate in ticks per second.
	Speed float64
	// FrameTPS is the rate at which input is sampled and frames are drawn.
	FrameTPS int

	Random bool
	Seed   int64

	LogLevel string
}

// Default returns the standard configuration: an 800×600 canvas of 10px
// cells at 10 ticks per second.
func Default() *Config {
	return &Config{
		Width:       800,
		Height:      600,
		CellSize:    10,
		MinCellSize: 4,
		MaxCellSize: 40,
		Speed:       10,
		FrameTPS:    60,
		Seed:        42,
		LogLevel:    "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell edge length in pixels")
	fs.IntVar(&c.MinCellSize, "cell-min", c.MinCellSize, "smallest selectable cell size")
	fs.IntVar(&c.MaxCellSize, "cell-max", c.MaxCellSize, "largest selectable cell size")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "initial generations per second (1-30)")
	fs.IntVar(&c.FrameTPS, "fps", c.FrameTPS, "frames per second")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random board")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random board")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// ApplyMap overrides fields from a string map (flag-style key/value pairs).
// Unparseable values are ignored.
func (c *Config) ApplyMap(m map[string]string) {
	if m == nil {
		return
	}
	if v, ok := m["width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := m["height"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := m["cell_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := m["cell_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MinCellSize = parsed
		}
	}
	if v, ok := m["cell_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxCellSize = parsed
		}
	}
	if v, ok := m["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Speed = parsed
		}
	}
	if v, ok := m["fps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.FrameTPS = parsed
		}
	}
	if v, ok := m["random"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Random = parsed
		}
	}
	if v, ok := m["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := m["log_level"]; ok && v != "" {
		c.LogLevel = v
	}
}

// FromMap returns the defaults with m applied on top.
func FromMap(m map[string]string) *Config {
	c := Default()
	c.ApplyMap(m)
	return c
}

// Normalize pulls the speed into the slider range and the cell size into its
// configured bounds.
func (c *Config) Normalize() {
	if c.Speed < MinSpeed {
		c.Speed = MinSpeed
	}
	if c.Speed > MaxSpeed {
		c.Speed = MaxSpeed
	}
	if c.MaxCellSize < c.MinCellSize {
		c.MaxCellSize = c.MinCellSize
	}
	if c.CellSize < c.MinCellSize {
		c.CellSize = c.MinCellSize
	}
	if c.CellSize > c.MaxCellSize {
		c.CellSize = c.MaxCellSize
	}
}

// Validate reports settings that Normalize cannot repair.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: canvas %dx%d", ErrInvalid, c.Width, c.Height))
	}
	if c.MinCellSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: cell-min %d must be positive", ErrInvalid, c.MinCellSize))
	}
	if c.MinCellSize > c.Width || c.MinCellSize > c.Height {
		errs = append(errs, fmt.Errorf("%w: cell-min %d does not fit a %dx%d canvas", ErrInvalid, c.MinCellSize, c.Width, c.Height))
	}
	if c.FrameTPS <= 0 {
		errs = append(errs, fmt.Errorf("%w: fps %d must be positive", ErrInvalid, c.FrameTPS))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Logger builds a text slog.Logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return level, fmt.Errorf("%w: log level %q", ErrInvalid, s)
	}
	return level, nil
}
