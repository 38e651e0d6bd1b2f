// Package grid holds the rectangular grid graph the mazes are carved from: cells,
// directions, the order-independent Edge and the set of all edges between
// neighbouring cells.
//
// Coordinates follow the maze convention: X is the row (growing south) and Y the
// column (growing east). Two virtual cells live outside the grid and only appear
// as edge endpoints: the entrance (0, -1), west of the first cell, and the exit
// (Width-1, Height), east of the last cell.
package grid

import (
	"cmp"
	"fmt"
	"github.com/pkg/errors"
)

// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
var ErrInvalidSize = errors.New("grid: width and height must be positive")

// Cell is a position in the grid: X is the row, Y the column.
type Cell struct {
	X, Y int
}

// String returns a text representation of Cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Add returns the neighbour of c in the given direction. It may be outside the grid.
func (c Cell) Add(d Direction) Cell {
	return Cell{c.X + d.DX, c.Y + d.DY}
}

// CompareCells orders cells by X and then by Y.
func CompareCells(a, b Cell) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// Direction is a unit step in the grid.
type Direction struct {
	DX, DY int
}

var (
	North = Direction{DX: -1}
	East  = Direction{DY: +1}
	South = Direction{DX: +1}
	West  = Direction{DY: -1}

	// Directions enumerates the 4 directions, clockwise starting from North.
	Directions = [4]Direction{North, East, South, West}
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d, %d)", d.DX, d.DY)
}

// Grid is a Width x Height rectangle of cells. It is immutable once built.
type Grid struct {
	Width, Height int
}

// New returns a Grid of the given dimensions, or ErrInvalidSize.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "got %dx%d", width, height)
	}
	return &Grid{Width: width, Height: height}, nil
}

// Contains reports whether c is an interior cell of the grid.
func (g *Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// NumCells in the grid.
func (g *Grid) NumCells() int {
	return g.Width * g.Height
}

// Cells returns all interior cells in row-major order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.NumCells())
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			cells = append(cells, Cell{x, y})
		}
	}
	return cells
}

// Neighbors returns the in-bounds neighbours of c, in the order of Directions.
func (g *Grid) Neighbors(c Cell) []Cell {
	neighbors := make([]Cell, 0, len(Directions))
	for _, d := range Directions {
		if n := c.Add(d); g.Contains(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Entrance is the virtual cell west of the top-left cell.
func (g *Grid) Entrance() Cell {
	return Cell{0, -1}
}

// Exit is the virtual cell east of the bottom-right cell.
func (g *Grid) Exit() Cell {
	return Cell{g.Width - 1, g.Height}
}

// EntranceEdge connects the entrance to the top-left cell.
func (g *Grid) EntranceEdge() Edge {
	return NewEdge(g.Entrance(), Cell{0, 0})
}

// ExitEdge connects the bottom-right cell to the exit.
func (g *Grid) ExitEdge() Edge {
	return NewEdge(Cell{g.Width - 1, g.Height - 1}, g.Exit())
}

// IsVirtual reports whether the edge touches the entrance or the exit.
func (g *Grid) IsVirtual(e Edge) bool {
	return !g.Contains(e.A) || !g.Contains(e.B)
}

// NumEdges returns the number of edges of the full grid graph.
func (g *Grid) NumEdges() int {
	return g.Width*(g.Height-1) + g.Height*(g.Width-1)
}

// AllEdges returns every edge between two neighbouring interior cells.
//
// Each edge is produced once from each of its endpoints, and the order-independent
// Edge collapses both into one entry.
func (g *Grid) AllEdges() EdgeSet {
	edges := MakeEdgeSet(g.NumEdges())
	for _, c := range g.Cells() {
		for _, n := range g.Neighbors(c) {
			edges.Insert(NewEdge(c, n))
		}
	}
	return edges
}

// SortedEdges returns AllEdges in canonical order. This is the list a caller
// shuffles before handing it to the maze generator.
func (g *Grid) SortedEdges() []Edge {
	return SortEdges(g.AllEdges())
}

// IsConnected reports whether edges holds the edge from c to its neighbour in direction d.
func IsConnected(c Cell, d Direction, edges EdgeSet) bool {
	return edges.Has(NewEdge(c, c.Add(d)))
}
