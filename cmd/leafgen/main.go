package main

import (
	"flag"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"leaffall/internal/app"
	"leaffall/internal/core"
	"leaffall/internal/particle"
)

type dump struct {
	Seed    int64             `yaml:"seed"`
	Speed   string            `yaml:"speed"`
	Scene   core.Scene        `yaml:"scene"`
	Configs []particle.Config `yaml:"configs"`
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	n := flag.Int("n", 10, "number of configurations to generate")
	flag.Parse()

	settings, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	fc := settings.FieldConfig()

	gen := particle.NewGenerator(core.NewRNG(fc.Seed), fc.Params)
	out := dump{Seed: fc.Seed, Speed: string(fc.Speed), Scene: fc.Scene}
	for i := 0; i < *n; i++ {
		// Successive cycles of one leaf; only the first uses the initial delay range.
		out.Configs = append(out.Configs, gen.Generate(fc.Scene, fc.Speed, i == 0))
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		log.Fatal(err)
	}
}
