package app

import (
	"flag"
	"fmt"
	"strings"

	"leaffall/internal/config"
)

// Config represents the command-line parameters shared by the window and
// terminal shells. Flags left unset keep the values from the settings file.
type Config struct {
	Path      string
	Speed     string
	Count     int
	Seed      int64
	TPS       int
	Width     int
	Height    int
	Scale     float64
	Overrides config.KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := config.Default()
	return &Config{
		Speed:  def.FallSpeed,
		Count:  def.Count,
		Seed:   def.Seed,
		TPS:    def.TPS,
		Width:  def.Scene.Width,
		Height: def.Scene.Height,
		Scale:  1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Path, "config", c.Path, "YAML settings file")
	fs.StringVar(&c.Speed, "speed", c.Speed, "fall speed: slow, medium or fast")
	fs.IntVar(&c.Count, "count", c.Count, "number of leaves")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for leaf generation")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "scene width")
	fs.IntVar(&c.Height, "height", c.Height, "scene height")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.Var(&c.Overrides, "set", "parameter override in key=value form (repeatable); keys: "+strings.Join(config.OverrideKeys(), ", "))
}

// Resolve loads the settings file, if any, and applies the flags that were
// set explicitly on fs followed by the -set overrides.
func (c *Config) Resolve(fs *flag.FlagSet) (*config.Config, error) {
	settings := config.Default()
	if c.Path != "" {
		loaded, err := config.Load(c.Path)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	kv := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "speed", "count", "seed", "tps", "width", "height":
			kv[f.Name] = f.Value.String()
		}
	})
	extra, err := c.Overrides.Map()
	if err != nil {
		return nil, err
	}
	for k, v := range extra {
		kv[k] = v
	}
	if err := settings.ApplyOverrides(kv); err != nil {
		return nil, fmt.Errorf("apply flags: %w", err)
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	return settings, nil
}
