// Package maze builds random perfect mazes and finds their solution.
//
// A Maze is the set of open passages (edges) of a grid: a spanning tree of the
// grid graph, built with a randomized Kruskal's algorithm, plus two virtual
// edges for the entrance and the exit. Because the interior is a tree there is
// exactly one path between any two cells, and FindPath returns it.
package maze

import (
	"github.com/janpfeifer/mazeGo/internal/disjoint"
	"github.com/janpfeifer/mazeGo/internal/grid"
	"github.com/janpfeifer/mazeGo/internal/randomness"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	// ErrNotSpanning is returned by Validate when the interior passages don't form a spanning tree.
	ErrNotSpanning = errors.New("maze: interior passages are not a spanning tree")

	// ErrMissingVirtualEdge is returned by Validate when the entrance or exit edge is missing.
	ErrMissingVirtualEdge = errors.New("maze: missing entrance or exit edge")
)

// Maze is the set of open passages of a grid.
type Maze struct {
	*grid.Grid

	// Edges holds the passages: spanning tree edges plus the entrance and exit edges.
	Edges grid.EdgeSet
}

// New builds a random maze for the grid: the edges are listed in canonical order,
// shuffled with rng and fed to Generate, which uses rng again for the union tie-breaks.
func New(g *grid.Grid, rng randomness.Source) *Maze {
	shuffled := randomness.ShuffleEdges(rng, g.SortedEdges())
	return Generate(g, shuffled, rng)
}

// Generate runs Kruskal's algorithm over the edges in the given order, which should
// already be shuffled: Generate never reorders its input, so a fixed order yields a
// fixed maze.
//
// The entrance and exit edges are always included. Every other edge is kept only if
// its endpoints are not yet connected, so no cycle is ever created. If edges doesn't
// cover a connected grid the result is a forest, not a spanning tree.
//
// rng is only used to break ties when merging sets in the disjoint-set.
func Generate(g *grid.Grid, edges []grid.Edge, rng randomness.Source) *Maze {
	m := &Maze{
		Grid:  g,
		Edges: grid.MakeEdgeSet(g.NumCells() + 1),
	}
	m.Edges.Insert(g.EntranceEdge(), g.ExitEdge())

	sets := disjoint.New(rng)
	for _, e := range edges {
		if sets.Connected(e.A, e.B) {
			if klog.V(3).Enabled() {
				klog.Infof("maze: skipping %s, it would close a cycle", e)
			}
			continue
		}
		sets.Union(e.A, e.B)
		m.Edges.Insert(e)
	}
	klog.V(2).Infof("maze: %dx%d generated with %d passages out of %d candidate edges",
		g.Width, g.Height, len(m.Edges), len(edges))
	return m
}

// Has reports whether there is a passage between a and b.
func (m *Maze) Has(a, b grid.Cell) bool {
	return m.Edges.Has(grid.NewEdge(a, b))
}

// InteriorEdges returns the passages without the entrance and exit edges.
func (m *Maze) InteriorEdges() grid.EdgeSet {
	interior := grid.MakeEdgeSet(len(m.Edges))
	for e := range m.Edges {
		if !m.IsVirtual(e) {
			interior.Insert(e)
		}
	}
	return interior
}

// Validate checks that the maze is perfect: the entrance and exit edges are present,
// and the interior passages form a spanning tree of the grid (exactly one path between
// any two cells).
func (m *Maze) Validate() error {
	if !m.Edges.Has(m.EntranceEdge()) || !m.Edges.Has(m.ExitEdge()) {
		return ErrMissingVirtualEdge
	}
	interior := m.InteriorEdges()
	if want := m.NumCells() - 1; len(interior) != want {
		return errors.Wrapf(ErrNotSpanning, "%d interior passages, wanted %d", len(interior), want)
	}

	edges := grid.SortEdges(interior)
	for _, e := range edges {
		if !e.IsAdjacent() {
			return errors.Wrapf(ErrNotSpanning, "passage %s joins cells that are not adjacent", e)
		}
	}

	// With |V|-1 edges, the graph is a tree iff it is connected, iff no edge closes a cycle.
	sets := disjoint.New(randomness.Fixed{})
	for _, e := range edges {
		if sets.Connected(e.A, e.B) {
			return errors.Wrapf(ErrNotSpanning, "passage %s closes a cycle", e)
		}
		sets.Union(e.A, e.B)
	}
	return nil
}
