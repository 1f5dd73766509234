// Package config collects the process-wide tuning constants of the
// untangle core into one immutable settings struct.
//
// The generator and the move engine take a *Config instead of reading
// ambient globals, so embedders can tune density, degree bounds, and UI
// timing per instance. Settings can be overridden from a TOML file; absent
// keys keep their defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/buelent/untangle/pkg/errors"
)

// Config holds every tunable of the puzzle core and its UI-facing
// contract. Treat a Config as immutable once handed to the core.
type Config struct {
	// MaxDegree bounds the degree of every vertex during generation.
	MaxDegree int `toml:"max_degree"`

	// PointDensity controls grid headroom: n points are placed on a
	// square grid of side ceil(sqrt(n*point_density)).
	PointDensity int `toml:"point_density"`

	// TileSize is the preferred pixel size of one coordinate unit. It is
	// also the fixed denominator of the circular reference layout.
	TileSize int `toml:"tile_size"`

	// CircleRadius is the drawn radius of a vertex in pixels.
	CircleRadius int `toml:"circle_radius"`

	// DragThreshold is the maximum pixel distance at which a press
	// grabs the nearest vertex.
	DragThreshold int `toml:"drag_threshold"`

	// FlashSeconds, AnimSeconds, and SolveAnimSeconds are the completion
	// flash and move animation durations handed to the host UI.
	FlashSeconds     float64 `toml:"flash_seconds"`
	AnimSeconds      float64 `toml:"anim_seconds"`
	SolveAnimSeconds float64 `toml:"solve_anim_seconds"`

	// ShuffleMaxTries caps the forced-crossing rejection loop. When the
	// cap is hit the last drawn permutation is accepted as-is.
	ShuffleMaxTries int `toml:"shuffle_max_tries"`

	// Presets lists the vertex counts offered in a presets menu.
	Presets []int `toml:"presets"`
}

// Default returns the reference settings.
func Default() *Config {
	return &Config{
		MaxDegree:        4,
		PointDensity:     3,
		TileSize:         64,
		CircleRadius:     6,
		DragThreshold:    12,
		FlashSeconds:     0.13,
		AnimSeconds:      0.13,
		SolveAnimSeconds: 0.50,
		ShuffleMaxTries:  10000,
		Presets:          []int{6, 10, 15, 20, 25},
	}
}

// Load reads a TOML settings file over the defaults. Keys missing from
// the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read settings %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse settings %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the settings are usable by the core.
func (c *Config) Validate() error {
	switch {
	case c.MaxDegree < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "max_degree must be at least 1, got %d", c.MaxDegree)
	case c.PointDensity < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "point_density must be at least 1, got %d", c.PointDensity)
	case c.TileSize < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "tile_size must be at least 1, got %d", c.TileSize)
	case c.ShuffleMaxTries < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "shuffle_max_tries must be at least 1, got %d", c.ShuffleMaxTries)
	}
	for _, n := range c.Presets {
		if n < 4 {
			return errors.New(errors.ErrCodeInvalidConfig, "preset %d below the minimum of 4 points", n)
		}
	}
	return nil
}
