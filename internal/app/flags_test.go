package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"leaffall/internal/particle"
)

func parse(t *testing.T, args ...string) (*Config, *flag.FlagSet) {
	t.Helper()
	fs := flag.NewFlagSet("leaves", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return cfg, fs
}

func TestResolveDefaults(t *testing.T) {
	cfg, fs := parse(t)
	settings, err := cfg.Resolve(fs)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if settings.Count != 24 || settings.Speed() != particle.Medium {
		t.Fatalf("got count=%d speed=%q", settings.Count, settings.Speed())
	}
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaves.yaml")
	yaml := "count: 3\nfallSpeed: slow\nseed: 5\nscene: {width: 100, height: 50}\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, fs := parse(t, "-config", path, "-count", "9", "-set", "fast_max=9000", "-set", "seed=11")
	settings, err := cfg.Resolve(fs)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if settings.Count != 9 {
		t.Errorf("count = %d, want flag value 9", settings.Count)
	}
	if settings.Speed() != particle.Slow {
		t.Errorf("speed = %q, want file value slow", settings.Speed())
	}
	if settings.Seed != 11 {
		t.Errorf("seed = %d, want -set value 11", settings.Seed)
	}
	if settings.Scene.Width != 100 {
		t.Errorf("width = %d, want file value 100", settings.Scene.Width)
	}
	if settings.Params.FallDurations[particle.Fast].Max != 9000 {
		t.Errorf("fast max = %d", settings.Params.FallDurations[particle.Fast].Max)
	}
}

func TestResolveErrors(t *testing.T) {
	cfg, fs := parse(t, "-config", filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := cfg.Resolve(fs); err == nil {
		t.Fatal("expected error for missing config file")
	}

	cfg, fs = parse(t, "-set", "gravity=1")
	if _, err := cfg.Resolve(fs); err == nil {
		t.Fatal("expected error for unknown override")
	}

	cfg, fs = parse(t, "-width", "0")
	if _, err := cfg.Resolve(fs); err == nil {
		t.Fatal("expected error for zero width")
	}
}
