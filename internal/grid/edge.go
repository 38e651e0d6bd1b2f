package grid

import (
	"fmt"
	"github.com/janpfeifer/mazeGo/internal/generics"
)

// Edge is an unordered pair of cells. The smaller endpoint (see CompareCells) is
// always stored in A, so NewEdge(a, b) == NewEdge(b, a) and edges can be used as
// map keys.
type Edge struct {
	A, B Cell
}

// NewEdge returns the canonical Edge between a and b.
func NewEdge(a, b Cell) Edge {
	if CompareCells(b, a) < 0 {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// String returns a text representation of Edge.
func (e Edge) String() string {
	return fmt.Sprintf("%s-%s", e.A, e.B)
}

// Other returns the endpoint of e that is not c. If c is not an endpoint, it returns e.A.
func (e Edge) Other(c Cell) Cell {
	if e.A == c {
		return e.B
	}
	return e.A
}

// Touches reports whether c is one of the endpoints of e.
func (e Edge) Touches(c Cell) bool {
	return e.A == c || e.B == c
}

// IsAdjacent reports whether the endpoints of e are neighbours: one step apart
// horizontally or vertically.
func (e Edge) IsAdjacent() bool {
	return abs(e.A.X-e.B.X)+abs(e.A.Y-e.B.Y) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// CompareEdges orders edges by their first and then second endpoint.
func CompareEdges(e1, e2 Edge) int {
	if c := CompareCells(e1.A, e2.A); c != 0 {
		return c
	}
	return CompareCells(e1.B, e2.B)
}

// EdgeSet is a set of edges.
type EdgeSet = generics.Set[Edge]

// MakeEdgeSet returns an empty EdgeSet, optionally reserving space for size edges.
func MakeEdgeSet(size ...int) EdgeSet {
	return generics.MakeSet[Edge](size...)
}

// SortEdges returns the edges of the set in canonical order.
func SortEdges(edges EdgeSet) []Edge {
	return edges.SortedFunc(CompareEdges)
}
