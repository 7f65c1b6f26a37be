package lumen

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned when a Config has a non-positive field.
var ErrInvalidConfig = errors.New("lumen: invalid config")

// Config holds the render geometry shared by every buffer of a render.
type Config struct {
	// Width and Height are the buffer dimensions in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// RaysPerSample is the number of rays traced for one completed sample.
	RaysPerSample int `toml:"rays_per_sample"`
}

// DefaultConfig returns the default configuration: a 640x360 image with
// 1024 rays per sample.
func DefaultConfig() Config {
	return Config{
		Width:         640,
		Height:        360,
		RaysPerSample: 1024,
	}
}

// Validate reports whether every field of c is positive.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width %d must be positive", ErrInvalidConfig, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height %d must be positive", ErrInvalidConfig, c.Height)
	case c.RaysPerSample <= 0:
		return fmt.Errorf("%w: rays_per_sample %d must be positive", ErrInvalidConfig, c.RaysPerSample)
	}
	return nil
}

// Pixels returns Width*Height, the length of every buffer of the render.
func (c Config) Pixels() int {
	return c.Width * c.Height
}

// LoadConfig reads a TOML configuration file. Keys absent from the file
// keep their DefaultConfig values; unknown keys are an error.
//
// Example file:
//
//	width = 800
//	height = 600
//	rays_per_sample = 4096
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("lumen: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML data over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("lumen: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
