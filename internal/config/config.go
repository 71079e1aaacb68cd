// Package config loads leaf field settings from YAML and key=value overrides.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"leaffall/internal/core"
	"leaffall/internal/field"
	"leaffall/internal/particle"
)

// MaxCount bounds the number of leaves in one field.
const MaxCount = 10000

// SceneConfig is the scene box in pixels (or cells for the terminal).
type SceneConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config is the on-disk settings file.
//
// Example:
//
//	scene: {width: 360, height: 640}
//	count: 24
//	fallSpeed: medium
//	seed: 42
//	tps: 60
//	color: "#ffffff"
//	params:
//	  fallDelayMax: 10000
type Config struct {
	Scene     SceneConfig     `yaml:"scene"`
	Count     int             `yaml:"count"`
	FallSpeed string          `yaml:"fallSpeed"`
	Seed      int64           `yaml:"seed"`
	TPS       int             `yaml:"tps"`
	Color     string          `yaml:"color"`
	Params    particle.Params `yaml:"params"`
}

// Default returns the standard settings.
func Default() *Config {
	fc := field.DefaultConfig()
	return &Config{
		Scene:     SceneConfig{Width: fc.Scene.Width, Height: fc.Scene.Height},
		Count:     fc.Count,
		FallSpeed: string(fc.Speed),
		Seed:      fc.Seed,
		TPS:       60,
		Color:     "#ffffff",
		Params:    fc.Params,
	}
}

// Load reads a YAML settings file. Keys missing from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read leaf config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse leaf config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid leaf config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings a field cannot run with. Unknown fall speeds
// are not errors; they fall back to medium.
func (c *Config) Validate() error {
	var errs []error
	if c.Scene.Width <= 0 || c.Scene.Height <= 0 {
		errs = append(errs, fmt.Errorf("scene must be positive, got %dx%d", c.Scene.Width, c.Scene.Height))
	}
	if c.Count < 0 || c.Count > MaxCount {
		errs = append(errs, fmt.Errorf("count out of range 0-%d (got %d)", MaxCount, c.Count))
	}
	if c.TPS < 1 || c.TPS > 240 {
		errs = append(errs, fmt.Errorf("tps out of range 1-240 (got %d)", c.TPS))
	}
	if _, err := ParseColor(c.Color); err != nil {
		errs = append(errs, err)
	}
	if c.Params.SizeMin <= 0 {
		errs = append(errs, fmt.Errorf("sizeMin must be positive (got %d)", c.Params.SizeMin))
	}
	return errors.Join(errs...)
}

// Speed returns the configured fall speed, logging when it had to be
// replaced.
func (c *Config) Speed() particle.FallSpeed {
	s := particle.ParseFallSpeed(c.FallSpeed)
	if c.FallSpeed != "" && string(s) != strings.ToLower(strings.TrimSpace(c.FallSpeed)) {
		log.Printf("[config] unknown fall speed %q, using %s", c.FallSpeed, s)
	}
	return s
}

// FieldConfig converts the settings into a field configuration.
func (c *Config) FieldConfig() field.Config {
	return field.Config{
		Scene:  core.Scene{Width: c.Scene.Width, Height: c.Scene.Height},
		Count:  c.Count,
		Speed:  c.Speed(),
		Seed:   c.Seed,
		Params: c.Params.Repair(),
	}
}

// LeafColor returns the parsed glyph colour, white when it cannot be parsed.
func (c *Config) LeafColor() color.RGBA {
	col, err := ParseColor(c.Color)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return col
}

// ParseColor parses #rgb, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
