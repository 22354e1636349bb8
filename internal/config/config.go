// Package config loads the YAML file that tunes the solvers and the logger.
// Fields absent from the file keep their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/advent/internal/ctxlog"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/sandsim"
)

// ErrInvalidConfig is returned when a loaded value fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the configuration file.
type Config struct {
	Beacon Beacon `yaml:"beacon"`
	Sand   Sand   `yaml:"sand"`
	Log    Log    `yaml:"log"`
}

// Beacon tunes day 15.
type Beacon struct {
	Row   int `yaml:"row"`
	Bound int `yaml:"bound"`
}

// Sand tunes day 14.
type Sand struct {
	SourceX  int `yaml:"source_x"`
	SourceY  int `yaml:"source_y"`
	FloorGap int `yaml:"floor_gap"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	p := puzzle.DefaultParams()
	return Config{
		Beacon: Beacon{Row: p.BeaconRow, Bound: p.BeaconBound},
		Sand:   Sand{SourceX: p.SandSource.X, SourceY: p.SandSource.Y, FloorGap: p.FloorGap},
		Log:    Log{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults and validates the result.
// An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Beacon.Bound < 0 {
		return fmt.Errorf("%w: beacon.bound must be >= 0, got %d", ErrInvalidConfig, c.Beacon.Bound)
	}
	if c.Sand.FloorGap <= 0 {
		return fmt.Errorf("%w: sand.floor_gap must be > 0, got %d", ErrInvalidConfig, c.Sand.FloorGap)
	}
	if _, err := ctxlog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be 'text' or 'json', got %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// Params converts the solver sections into puzzle.Params.
func (c Config) Params() puzzle.Params {
	return puzzle.Params{
		BeaconRow:   c.Beacon.Row,
		BeaconBound: c.Beacon.Bound,
		SandSource:  sandsim.Point{X: c.Sand.SourceX, Y: c.Sand.SourceY},
		FloorGap:    c.Sand.FloorGap,
	}
}
