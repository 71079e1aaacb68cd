// Package term runs a leaf field inside a terminal.
package term

import (
	"context"
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"leaffall/internal/core"
	"leaffall/internal/field"
	"leaffall/internal/particle"
	"leaffall/internal/render"
)

// Runner drives a field on a tcell screen. Scene units are derived from the
// terminal size so leaves always fall the full height of the window.
type Runner struct {
	screen  tcell.Screen
	field   *field.Field
	painter *render.TermPainter
	step    *core.FixedStep
	leaves  []particle.Transform

	paused bool
	seed   int64
}

// SceneFor returns the scene covering a cols x rows terminal.
func SceneFor(cols, rows int) core.Scene {
	return core.Scene{Width: cols * render.CellWidth, Height: rows * render.CellHeight}
}

// NewRunner resizes f to the screen and prepares a runner ticking at tps.
func NewRunner(screen tcell.Screen, f *field.Field, leaf color.RGBA, tps int) *Runner {
	cols, rows := screen.Size()
	f.Resize(SceneFor(cols, rows))
	f.Reset(f.Seed())
	return &Runner{
		screen:  screen,
		field:   f,
		painter: render.NewTermPainter(leaf),
		step:    core.NewFixedStep(tps),
		seed:    f.Seed(),
	}
}

// Run polls events and advances the field until ctx is cancelled or the user
// quits. The screen is not finalized here.
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(r.step.Step())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !r.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			for r.step.ShouldStep() {
				r.Tick()
			}
			r.Draw()
		}
	}
}

// Tick advances the field by one fixed step unless paused.
func (r *Runner) Tick() {
	if r.paused {
		return
	}
	r.field.Step(r.step.Step())
}

// Draw paints the current frame and flushes it to the terminal.
func (r *Runner) Draw() {
	r.leaves = r.field.Transforms(r.leaves)
	r.painter.Draw(r.screen, r.leaves)
	r.screen.Show()
}

// HandleEvent reacts to a terminal event and reports whether to keep running.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return r.HandleRune(ev.Rune())
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		r.field.Resize(SceneFor(cols, rows))
		r.screen.Sync()
	}
	return true
}

// HandleRune applies a single-key command and reports whether to keep
// running.
func (r *Runner) HandleRune(ch rune) bool {
	switch ch {
	case 'q':
		return false
	case ' ':
		r.paused = !r.paused
	case 'n':
		if r.paused {
			r.field.Step(r.step.Step())
		}
	case 'r':
		r.field.Reset(r.seed)
	case 's':
		r.seed = time.Now().UnixNano()
		r.field.Reset(r.seed)
		log.Printf("[term] reseeded with %d", r.seed)
	case '1':
		r.field.SetSpeed(particle.Slow)
	case '2':
		r.field.SetSpeed(particle.Medium)
	case '3':
		r.field.SetSpeed(particle.Fast)
	}
	return true
}

// Paused reports whether stepping is suspended.
func (r *Runner) Paused() bool { return r.paused }
