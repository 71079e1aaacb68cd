package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"leaffall/internal/app"
	"leaffall/internal/field"
	"leaffall/internal/particle"
)

type job struct {
	speed particle.FallSpeed
	seed  int64
}

type result struct {
	speed particle.FallSpeed
	stats field.Stats
}

type summary struct {
	speed       particle.FallSpeed
	runs        int
	cycles      int
	minCycles   int
	maxCycles   int
	meanFalling float64
	meanVisible float64
}

func main() {
	cfg := app.NewConfig()
	fs := flag.NewFlagSet("leaf-sweep", flag.ExitOnError)
	cfg.Bind(fs)
	seeds := fs.Int("seeds", 32, "seeds to simulate per fall speed")
	duration := fs.Duration("duration", 5*time.Minute, "simulated time per run")
	workers := fs.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	settings, err := cfg.Resolve(fs)
	if err != nil {
		log.Fatal(err)
	}
	base := settings.FieldConfig()
	tick := time.Second / time.Duration(settings.TPS)

	fmt.Printf("Sweeping %d speeds x %d seeds (%d leaves, %s each, %d workers)\n",
		len(particle.FallSpeeds), *seeds, base.Count, *duration, *workers)

	jobs := make(chan job)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				run := base
				run.Speed = j.speed
				run.Seed = j.seed
				results <- result{speed: j.speed, stats: field.Measure(run, *duration, tick)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, speed := range particle.FallSpeeds {
			for i := 0; i < *seeds; i++ {
				jobs <- job{speed: speed, seed: base.Seed + int64(i)}
			}
		}
		close(jobs)
	}()

	start := time.Now()
	bySpeed := map[particle.FallSpeed]*summary{}
	for res := range results {
		s := bySpeed[res.speed]
		if s == nil {
			s = &summary{speed: res.speed, minCycles: res.stats.Cycles, maxCycles: res.stats.Cycles}
			bySpeed[res.speed] = s
		}
		s.runs++
		s.cycles += res.stats.Cycles
		s.minCycles = min(s.minCycles, res.stats.Cycles)
		s.maxCycles = max(s.maxCycles, res.stats.Cycles)
		s.meanFalling += res.stats.MeanFalling
		s.meanVisible += res.stats.MeanVisible
	}

	all := make([]*summary, 0, len(bySpeed))
	for _, s := range bySpeed {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].cycles > all[j].cycles })

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, s := range all {
		n := float64(s.runs)
		fmt.Printf("%-6s runs=%d cycles avg=%.1f min=%d max=%d falling=%.2f visible=%.2f (of %d)\n",
			s.speed, s.runs, float64(s.cycles)/n, s.minCycles, s.maxCycles, s.meanFalling/n, s.meanVisible/n, base.Count)
	}
}
