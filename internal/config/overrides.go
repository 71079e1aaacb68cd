package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"leaffall/internal/particle"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set implements flag.Value.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the list into a map. Later keys win.
func (l KVList) Map() (map[string]string, error) {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("override %q is not key=value", kv)
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out, nil
}

type intField struct {
	ptr      func(c *Config) *int
	positive bool
}

var intFields = map[string]intField{
	"width":                  {ptr: func(c *Config) *int { return &c.Scene.Width }, positive: true},
	"height":                 {ptr: func(c *Config) *int { return &c.Scene.Height }, positive: true},
	"count":                  {ptr: func(c *Config) *int { return &c.Count }},
	"tps":                    {ptr: func(c *Config) *int { return &c.TPS }, positive: true},
	"size_min":               {ptr: func(c *Config) *int { return &c.Params.SizeMin }, positive: true},
	"size_max":               {ptr: func(c *Config) *int { return &c.Params.SizeMax }, positive: true},
	"opacity_min":            {ptr: func(c *Config) *int { return &c.Params.OpacityTenthsMin }},
	"opacity_max":            {ptr: func(c *Config) *int { return &c.Params.OpacityTenthsMax }},
	"fall_delay_min":         {ptr: func(c *Config) *int { return &c.Params.FallDelayMin }},
	"fall_delay_max":         {ptr: func(c *Config) *int { return &c.Params.FallDelayMax }},
	"initial_fall_delay_max": {ptr: func(c *Config) *int { return &c.Params.InitialFallDelayMax }},
	"rotation_min":           {ptr: func(c *Config) *int { return &c.Params.RotationDuration.Min }},
	"rotation_max":           {ptr: func(c *Config) *int { return &c.Params.RotationDuration.Max }},
	"sway_min":               {ptr: func(c *Config) *int { return &c.Params.SwayDuration.Min }},
	"sway_max":               {ptr: func(c *Config) *int { return &c.Params.SwayDuration.Max }},
	"amplitude_min":          {ptr: func(c *Config) *int { return &c.Params.SwayAmplitude.Min }},
	"amplitude_max":          {ptr: func(c *Config) *int { return &c.Params.SwayAmplitude.Max }},
}

// OverrideKeys lists every key ApplyOverrides accepts.
func OverrideKeys() []string {
	keys := []string{"seed", "speed", "color"}
	for k := range intFields {
		keys = append(keys, k)
	}
	for _, s := range particle.FallSpeeds {
		keys = append(keys, string(s)+"_min", string(s)+"_max")
	}
	sort.Strings(keys)
	return keys
}

// ApplyOverrides updates c from flag-style key/value pairs and revalidates.
func (c *Config) ApplyOverrides(kv map[string]string) error {
	for key, v := range kv {
		if err := c.apply(key, v); err != nil {
			return err
		}
	}
	return c.Validate()
}

func (c *Config) apply(key, v string) error {
	switch key {
	case "seed":
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		c.Seed = parsed
		return nil
	case "speed":
		c.FallSpeed = v
		return nil
	case "color":
		if _, err := ParseColor(v); err != nil {
			return err
		}
		c.Color = v
		return nil
	}

	if f, ok := intFields[key]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if f.positive && parsed <= 0 {
			return fmt.Errorf("%s must be positive (got %d)", key, parsed)
		}
		*f.ptr(c) = parsed
		return nil
	}

	for _, s := range particle.FallSpeeds {
		bound, ok := strings.CutPrefix(key, string(s)+"_")
		if !ok || (bound != "min" && bound != "max") {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return fmt.Errorf("%s: want a non-negative millisecond count, got %q", key, v)
		}
		r := c.Params.FallDurations[s]
		if bound == "min" {
			r.Min = parsed
		} else {
			r.Max = parsed
		}
		if c.Params.FallDurations == nil {
			c.Params.FallDurations = map[particle.FallSpeed]particle.Range{}
		}
		c.Params.FallDurations[s] = r
		return nil
	}
	return fmt.Errorf("unknown override %q", key)
}
