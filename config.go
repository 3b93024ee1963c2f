package shadow

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration of a renderer:
//
//	elevation:
//	  interpolation: linear   # or smoothstep
//	  opacity:
//	    start: 0
//	    frames:
//	      - {at: 0.2, value: 0.2}
//	      - {at: 0.4, value: 0.4}
//	  radius: {start: 0, frames: [{at: 0.2, value: 6}, {at: 0.4, value: 18}]}
//	  offset: {start: 0, frames: [{at: 0.2, value: 1}, {at: 0.4, value: 3}]}
//	blur:
//	  tile_threshold: 150
//	cache:
//	  size: 32
//
// Omitted sections keep their defaults.
type Config struct {
	Elevation ElevationConfig `yaml:"elevation"`
	Blur      BlurConfig      `yaml:"blur"`
	Cache     CacheConfig     `yaml:"cache"`
}

// ElevationConfig holds the elevation curves.
type ElevationConfig struct {
	Interpolation string `yaml:"interpolation,omitempty"`
	Opacity       Curve  `yaml:"opacity"`
	Radius        Curve  `yaml:"radius"`
	Offset        Curve  `yaml:"offset"`
}

// BlurConfig holds blur tuning.
type BlurConfig struct {
	TileThreshold int `yaml:"tile_threshold"`
}

// CacheConfig holds the caller-side cache size.
type CacheConfig struct {
	Size int `yaml:"size"`
}

// DefaultConfig returns the configuration matching NewRenderer's defaults.
func DefaultConfig() *Config {
	e := DefaultElevation()
	return &Config{
		Elevation: ElevationConfig{
			Interpolation: e.Interpolator.String(),
			Opacity:       e.Opacity,
			Radius:        e.Radius,
			Offset:        e.Offset,
		},
		Blur:  BlurConfig{TileThreshold: DefaultTileThreshold},
		Cache: CacheConfig{Size: DefaultCacheSize},
	}
}

// ParseConfig parses YAML over the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse shadow config: %v: %w", err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path. A missing file yields
// DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Curves converts the elevation section into an Elevation.
func (c *Config) Curves() (Elevation, error) {
	interp, err := ParseInterpolator(c.Elevation.Interpolation)
	if err != nil {
		return Elevation{}, err
	}
	e := Elevation{
		Opacity:      c.Elevation.Opacity,
		Radius:       c.Elevation.Radius,
		Offset:       c.Elevation.Offset,
		Interpolator: interp,
	}
	if err := e.Validate(); err != nil {
		return Elevation{}, err
	}
	return e, nil
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if _, err := c.Curves(); err != nil {
		return err
	}
	if c.Blur.TileThreshold < 0 {
		return fmt.Errorf("blur.tile_threshold %d is negative: %w", c.Blur.TileThreshold, ErrInvalidConfig)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size %d is negative: %w", c.Cache.Size, ErrInvalidConfig)
	}
	return nil
}

// Renderer builds a Renderer from the configuration.
func (c *Config) Renderer() (*Renderer, error) {
	e, err := c.Curves()
	if err != nil {
		return nil, err
	}
	if c.Blur.TileThreshold < 0 {
		return nil, fmt.Errorf("blur.tile_threshold %d is negative: %w", c.Blur.TileThreshold, ErrInvalidConfig)
	}
	return NewRenderer(WithElevation(e), WithTileThreshold(c.Blur.TileThreshold)), nil
}

// NewCache builds a renderer from the configuration and wraps it in a
// cache of the configured size.
func (c *Config) NewCache() (*Cache, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	r, err := c.Renderer()
	if err != nil {
		return nil, err
	}
	return NewCache(r, c.Cache.Size), nil
}
