// Package pipeline generates a maze, solves it and renders it, from a config.Config.
//
// It is the only entry point the binaries need: everything it prints goes through an
// Emitter, so the same pipeline writes to a terminal (see package ui/cli) or to a test.
package pipeline

import (
	"fmt"
	"github.com/janpfeifer/mazeGo/internal/art"
	"github.com/janpfeifer/mazeGo/internal/config"
	"github.com/janpfeifer/mazeGo/internal/grid"
	"github.com/janpfeifer/mazeGo/internal/maze"
	"github.com/janpfeifer/mazeGo/internal/randomness"
	"github.com/janpfeifer/mazeGo/internal/render"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"slices"
)

// Emitter receives the output, one line at a time.
type Emitter = art.Emitter

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc = art.EmitterFunc

// Result of a run.
type Result struct {
	Seed int64
	Maze *maze.Maze
	Path maze.Path

	// Solved is false if no path was found: it can't happen with a valid maze.
	Solved bool
}

// Build validates the configuration and generates and solves the maze, without rendering it.
// If cfg.RandomSeed is set a random seed is drawn, and reported in Result.Seed.
func Build(cfg config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.ResolveSeed()
	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, errors.WithMessage(config.ErrInvalidConfig, err.Error())
	}
	klog.V(1).Infof("pipeline: generating %dx%d maze with seed %d", cfg.Width, cfg.Height, seed)
	rng := randomness.New(seed)
	r := &Result{Seed: seed, Maze: maze.New(g, rng)}
	r.Path, r.Solved = maze.FindPath(r.Maze)
	klog.V(1).Infof("pipeline: %d passages, solution path of length %d", len(r.Maze.Edges), r.Path.Len())
	return r, nil
}

// Header returns the first line of the output.
func Header(cfg config.Config, seed int64) string {
	return fmt.Sprintf("Maze size: %dx%d (seed %d)", cfg.Width, cfg.Height, seed)
}

// GenerateAndRender builds the maze (see Build) and emits the selected styles in increasing
// order, separated by an empty line. If cfg.Titles is set, the header and the title of each
// style come first.
//
// An invalid configuration returns an error caused by config.ErrInvalidConfig, and nothing is
// emitted.
func GenerateAndRender(cfg config.Config, e Emitter) (*Result, error) {
	r, err := Build(cfg)
	if err != nil {
		return nil, err
	}
	Render(cfg, r, e)
	return r, nil
}

// Render emits the styles selected in cfg for an already built maze, in increasing order
// and each only once, regardless of the order of cfg.Styles.
func Render(cfg config.Config, r *Result, e Emitter) {
	opts := cfg.Render
	opts.Titles = cfg.Titles
	if cfg.Titles {
		art.EmitTitle(e, Header(cfg, r.Seed))
	}
	styles := slices.Clone(cfg.Styles)
	slices.Sort(styles)
	for i, style := range slices.Compact(styles) {
		if i > 0 {
			e.Emit("")
		}
		if klog.V(2).Enabled() {
			klog.Infof("pipeline: rendering style %s", style)
		}
		render.Emit(e, style, r.Maze, r.Path, opts)
	}
}
