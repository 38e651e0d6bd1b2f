// Package disjoint implements the disjoint-set (union-find) used to build a maze.
//
// Unlike the usual union-by-rank, two sets are merged by choosing at random
// which representative goes under the other: combined with the shuffled edge
// order this is what keeps Kruskal's algorithm from producing biased,
// chain-like mazes.
//
// A Set is owned by a single maze generation and must not be shared across goroutines.
package disjoint

import (
	"github.com/janpfeifer/mazeGo/internal/grid"
	"github.com/janpfeifer/mazeGo/internal/randomness"
)

// Set partitions cells into disjoint sets. Cells never seen before are
// their own singleton set, so every operation is total.
type Set struct {
	parent map[grid.Cell]grid.Cell
	rng    randomness.Source
}

// New creates an empty Set that uses rng to break ties on Union.
func New(rng randomness.Source) *Set {
	return &Set{
		parent: make(map[grid.Cell]grid.Cell),
		rng:    rng,
	}
}

func (s *Set) parentOf(c grid.Cell) grid.Cell {
	if p, found := s.parent[c]; found {
		return p
	}
	return c
}

// Find returns the representative of the set holding c.
//
// Every cell visited on the way up is re-parented directly to the representative (path compression).
func (s *Set) Find(c grid.Cell) grid.Cell {
	root := c
	for p := s.parentOf(root); p != root; p = s.parentOf(root) {
		root = p
	}
	for c != root {
		next := s.parentOf(c)
		s.parent[c] = root
		c = next
	}
	return root
}

// Union merges the sets holding a and b. If they are already the same set it is a no-op,
// and no randomness is consumed.
//
// Otherwise, the Source picks which of the two representatives becomes the child:
// choice 0 puts the representative of a under the representative of b.
func (s *Set) Union(a, b grid.Cell) {
	roots := [2]grid.Cell{s.Find(a), s.Find(b)}
	if roots[0] == roots[1] {
		return
	}
	child := randomness.ChooseOne(s.rng, 0, 1)
	s.parent[roots[child]] = roots[1-child]
}

// Connected reports whether a and b are in the same set.
func (s *Set) Connected(a, b grid.Cell) bool {
	return s.Find(a) == s.Find(b)
}

// Len returns the number of cells that have been linked under another cell.
func (s *Set) Len() int {
	return len(s.parent)
}

// Components groups the given cells by their representative.
func (s *Set) Components(cells []grid.Cell) map[grid.Cell][]grid.Cell {
	groups := make(map[grid.Cell][]grid.Cell)
	for _, c := range cells {
		root := s.Find(c)
		groups[root] = append(groups[root], c)
	}
	return groups
}
