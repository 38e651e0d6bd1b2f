// mazestats generates many mazes in parallel, one per seed, checks they are valid perfect
// mazes and reports statistics about them: solution path length and number of dead ends.
//
// Optionally, it prints the maze with the longest solution path.
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/janpfeifer/mazeGo/internal/config"
	"github.com/janpfeifer/mazeGo/internal/maze"
	"github.com/janpfeifer/mazeGo/internal/pipeline"
	"github.com/janpfeifer/mazeGo/internal/profilers"
	"github.com/janpfeifer/mazeGo/internal/render"
	"github.com/janpfeifer/mazeGo/internal/ui/cli"
	"github.com/janpfeifer/mazeGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	flagNumMazes    = flag.Int("num_mazes", 1000, "Number of mazes to generate. The first uses -seed, "+
		"the following ones the next seeds.")
	flagParallelism = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and generate "+
		"these many mazes simultaneously.")
	flagPrintLongest = flag.Bool("print_longest", false, "Print the maze with the longest solution path.")
	flagColor        = flag.Bool("color", false, "Color the printed maze, if the terminal supports it.")
	flagSpinner      = flag.Bool("spinner", true, "Display progress while generating.")
)

// Globals
var (
	// globalCtx used everywhere. It is cancelled when the program is about to exit either by
	// an interrupt (ctrl+C) or by reaching the end.
	globalCtx = context.Background()
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
	if *flagNumMazes <= 0 {
		klog.Exitf("Invalid -num_mazes=%d", *flagNumMazes)
	}

	// Capture Control+C
	var globalCancel func()
	globalCtx, globalCancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 5*time.Second)
	defer globalCancel()

	// Profilers: HTTP profiler server and CPU profile.
	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	s, err := generateAll(globalCtx, cfg)
	if err != nil {
		klog.Exitf("Failed: %+v", err)
	}
	fmt.Println(s.Report())
	if *flagPrintLongest && s.longest != nil {
		printLongest(cfg, s.longest)
	}
}

// Stats of the generated mazes. It is safe for concurrent use.
type Stats struct {
	mu                   sync.Mutex
	start                time.Time
	firstSeed            int64
	generated, total     int
	minPath, maxPath     int
	sumPath, sumDeadEnds int
	longest              *pipeline.Result
}

// Add the statistics of one maze.
func (s *Stats) Add(r *pipeline.Result, deadEnds int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	length := r.Path.Len()
	if s.generated == 0 || length < s.minPath {
		s.minPath = length
	}
	if s.generated == 0 || length > s.maxPath {
		s.maxPath = length
		s.longest = r
	}
	s.sumPath += length
	s.sumDeadEnds += deadEnds
	s.generated++
}

// String returns the progress line.
func (s *Stats) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("Generated %d of %d mazes - %s", s.generated, s.total, time.Since(s.start).Round(time.Millisecond))
}

// Report returns the final statistics.
func (s *Stats) Report() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generated == 0 {
		return "No maze generated."
	}
	n := float64(s.generated)
	var parts []string
	parts = append(parts, fmt.Sprintf("Mazes generated and validated: %d of %d (seeds from %d)",
		s.generated, s.total, s.firstSeed))
	parts = append(parts, fmt.Sprintf("Solution path length: min=%d, max=%d (seed %d), mean=%.2f",
		s.minPath, s.maxPath, s.longest.Seed, float64(s.sumPath)/n))
	parts = append(parts, fmt.Sprintf("Dead ends per maze: mean=%.2f", float64(s.sumDeadEnds)/n))
	parts = append(parts, fmt.Sprintf("Elapsed: %s", time.Since(s.start).Round(time.Millisecond)))
	return strings.Join(parts, "\n")
}

// DeadEnds counts the interior cells with only one passage.
func DeadEnds(m *maze.Maze) int {
	index := maze.AdjacencyIndex(m.InteriorEdges())
	count := 0
	for _, c := range m.Cells() {
		if len(index[c]) == 1 {
			count++
		}
	}
	return count
}

// checkMaze verifies the maze is a perfect maze, and that its solution path is the shortest
// one, that is, its length matches the BFS depth of the entrance.
func checkMaze(r *pipeline.Result) error {
	if err := r.Maze.Validate(); err != nil {
		return errors.WithMessagef(err, "maze with seed %d", r.Seed)
	}
	if !r.Solved {
		return errors.Errorf("maze with seed %d has no solution", r.Seed)
	}
	depths := maze.Depths(r.Maze)
	if depth := depths[r.Maze.Entrance()]; depth != r.Path.Len() {
		return errors.Errorf("maze with seed %d: solution path has %d steps, but entrance is at depth %d",
			r.Seed, r.Path.Len(), depth)
	}
	return nil
}

// generateAll builds and checks *flagNumMazes mazes, with consecutive seeds starting at the
// seed of cfg (drawn at random if cfg.RandomSeed is set).
func generateAll(ctx context.Context, cfg config.Config) (*Stats, error) {
	s := &Stats{
		start:     time.Now(),
		firstSeed: cfg.ResolveSeed(),
		total:     *flagNumMazes,
	}
	var spinner *spinning.Spinning
	if *flagSpinner && cli.TerminalWidth(os.Stdout) > 0 {
		spinner = spinning.New(ctx, os.Stdout, s.String)
	}

	var wg errgroup.Group
	wg.SetLimit(getParallelism())
	for mazeIdx := range s.total {
		wg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			mazeCfg := cfg
			mazeCfg.Seed = s.firstSeed + int64(mazeIdx)
			r, err := pipeline.Build(mazeCfg)
			if err != nil {
				return err
			}
			if err := checkMaze(r); err != nil {
				return err
			}
			s.Add(r, DeadEnds(r.Maze))
			if klog.V(2).Enabled() {
				klog.Infof("Seed %d: path length %d", r.Seed, r.Path.Len())
			}
			return nil
		})
	}
	err := wg.Wait()
	if spinner != nil {
		spinner.Done()
	}
	if ctx.Err() != nil {
		fmt.Printf("Interrupted: %s\n", ctx.Err())
		return s, nil
	}
	return s, err
}

// printLongest prints the maze with the longest solution in the Blocks style.
func printLongest(cfg config.Config, r *pipeline.Result) {
	cfg.Styles = []render.Style{render.Blocks}
	cfg.Render.Views = nil
	cfg.Titles = true
	ui := cli.New(os.Stdout, *flagColor, false)
	fmt.Println()
	pipeline.Render(cfg, r, ui)
	must.M(ui.Flush())
}

// getParallelism returns the parallelism.
func getParallelism() (parallelism int) {
	parallelism = runtime.GOMAXPROCS(0)
	if *flagParallelism > 0 {
		parallelism = *flagParallelism
	}
	return
}
