package maze

import (
	"github.com/janpfeifer/mazeGo/internal/generics"
	"github.com/janpfeifer/mazeGo/internal/grid"
	"k8s.io/klog/v2"
)

// Path is a sequence of cells from the entrance to the exit, each consecutive pair
// joined by a passage of the maze.
type Path struct {
	Cells []grid.Cell
	set   generics.Set[grid.Cell]
}

// NewPath creates a Path from the given ordered cells.
func NewPath(cells []grid.Cell) Path {
	return Path{Cells: cells, set: generics.SetWith(cells...)}
}

// Contains reports whether the cell is on the path. It is false for every cell of the zero Path.
func (p Path) Contains(c grid.Cell) bool {
	return p.set.Has(c)
}

// Len is the number of steps (edges) of the path.
func (p Path) Len() int {
	return max(len(p.Cells)-1, 0)
}

// AdjacencyIndex maps each cell to its neighbours through the given passages, in
// both directions. Edges are visited in canonical order, so neighbour lists are
// deterministic.
func AdjacencyIndex(edges grid.EdgeSet) map[grid.Cell][]grid.Cell {
	index := make(map[grid.Cell][]grid.Cell, len(edges)+1)
	for _, e := range grid.SortEdges(edges) {
		index[e.A] = append(index[e.A], e.B)
		index[e.B] = append(index[e.B], e.A)
	}
	return index
}

// bfs explores the maze breadth-first from the exit, and returns the cell each
// visited cell was discovered from, and its depth. The exit maps to itself.
func (m *Maze) bfs() (cameFrom map[grid.Cell]grid.Cell, depth map[grid.Cell]int) {
	index := AdjacencyIndex(m.Edges)
	root := m.Exit()
	cameFrom = map[grid.Cell]grid.Cell{root: root}
	depth = map[grid.Cell]int{root: 0}
	queue := []grid.Cell{root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range index[current] {
			if _, visited := cameFrom[neighbor]; visited {
				continue
			}
			cameFrom[neighbor] = current
			depth[neighbor] = depth[current] + 1
			queue = append(queue, neighbor)
		}
	}
	return
}

// FindPath returns the path from the entrance to the exit.
//
// The search runs from the exit and the path is read back following the "came
// from" links starting at the entrance, so it comes out in entrance to exit order
// with the exit last. It returns false if the entrance can't be reached, which
// can't happen for a maze built by Generate.
func FindPath(m *Maze) (Path, bool) {
	cameFrom, _ := m.bfs()
	current := m.Entrance()
	if _, found := cameFrom[current]; !found {
		klog.Warningf("maze: entrance %s not reachable from exit %s", m.Entrance(), m.Exit())
		return Path{}, false
	}
	var cells []grid.Cell
	for current != cameFrom[current] {
		cells = append(cells, current)
		current = cameFrom[current]
	}
	cells = append(cells, current)
	klog.V(2).Infof("maze: solution has %d steps", len(cells)-1)
	return NewPath(cells), true
}

// Depths returns the breadth-first distance from the exit of every reachable cell,
// including the virtual entrance and exit.
func Depths(m *Maze) map[grid.Cell]int {
	_, depth := m.bfs()
	return depth
}
