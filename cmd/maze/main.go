// maze generates a random perfect maze, solves it and prints it.
//
// The configuration defaults can be set with the MAZE_* environment variables, or in a .env file
// in the current directory, see package config. Flags take precedence.
package main

import (
	"flag"
	"fmt"
	"github.com/janpfeifer/mazeGo/internal/config"
	"github.com/janpfeifer/mazeGo/internal/pipeline"
	"github.com/janpfeifer/mazeGo/internal/ui/cli"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
	"os"
)

var (
	flagColor  = flag.Bool("color", false, "Color walls and the solution path, if the terminal supports it.")
	flagCenter = flag.Bool("center", false, "Center the mazes on the terminal.")
	flagCheck  = flag.Bool("check", false, "Check the generated maze is a spanning tree with entrance and exit.")
)

func main() {
	klog.InitFlags(nil)
	must.M(config.LoadDotEnv())
	cfg, err := config.FromEnv()
	if err != nil {
		klog.Exitf("%v", err)
	}
	config.RegisterFlags(flag.CommandLine, &cfg)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		klog.Exitf("%v", err)
	}

	ui := cli.New(os.Stdout, *flagColor, *flagCenter)
	r, err := pipeline.GenerateAndRender(cfg, ui)
	if err != nil {
		klog.Exitf("Failed to generate maze: %+v", err)
	}
	must.M(ui.Flush())
	if !cfg.Titles && cfg.RandomSeed {
		// The seed is part of the header otherwise.
		fmt.Fprintf(os.Stderr, "seed: %d\n", r.Seed)
	}
	if *flagCheck {
		if err := r.Maze.Validate(); err != nil {
			klog.Exitf("Invalid maze (seed %d): %+v", r.Seed, err)
		}
		klog.Infof("Maze with seed %d is valid, solution path has %d steps", r.Seed, r.Path.Len())
	}
}
