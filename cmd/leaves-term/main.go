package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"leaffall/internal/app"
	"leaffall/internal/field"
	"leaffall/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write log output to this file instead of discarding it")
	flag.Parse()

	settings, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}

	// The terminal is owned by tcell while running.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		lf, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("open log: %v", err)
		}
		defer lf.Close()
		log.SetOutput(lf)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := field.New(settings.FieldConfig())
	runner := term.NewRunner(screen, f, settings.LeafColor(), settings.TPS)
	log.Printf("[term] %d leaves, speed %s, seed %d", settings.Count, f.Speed(), f.Seed())
	if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("[term] %v", err)
	}
}
