//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"leaffall/internal/app"
	"leaffall/internal/field"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}

	f := field.New(settings.FieldConfig())
	game := app.New(f, settings.LeafColor(), cfg.Scale, settings.TPS)
	scene := f.Scene()

	ebiten.SetWindowTitle("leaffall - " + string(f.Speed()))
	ebiten.SetTPS(settings.TPS)
	ebiten.SetWindowSize(int(float64(scene.Width)*cfg.Scale), int(float64(scene.Height)*cfg.Scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
