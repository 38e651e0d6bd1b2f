package render

import (
	"github.com/janpfeifer/mazeGo/internal/art"
	"github.com/janpfeifer/mazeGo/internal/grid"
	"github.com/janpfeifer/mazeGo/internal/maze"
)

// Runes used by the Lines and Blocks styles.
const (
	FloorRune = '_'
	WallRune  = '|'
	OpenRune  = ' '
	BlockRune = '#'
	PathRune  = '.'
)

// NewLines returns the Lines style art, of size Size(Lines, ...).
//
// Row 0 is the top border. Below it, text row r+1 draws maze row r: odd columns
// are the cells (floor '_' if closed to the south), even columns the walls
// between a cell and the next one ('|' if closed to the east, '_' if both cells
// are closed to the south). Unlike the other styles, open spaces are opaque.
func NewLines(m *maze.Maze) art.Art {
	return art.Func(func(row, col int) (rune, bool) {
		if row == 0 {
			return art.Opaque(FloorRune)
		}
		x := row - 1
		y := floorDiv(col, 2)
		if floorMod(col, 2) == 0 {
			return art.Opaque(linesWall(m, grid.Cell{X: x, Y: y - 1}))
		}
		return art.Opaque(linesFloor(m, grid.Cell{X: x, Y: y}))
	})
}

func linesWall(m *maze.Maze, left grid.Cell) rune {
	right := left.Add(grid.East)
	if !connected(m, left, grid.East) {
		return WallRune
	}
	if !connected(m, left, grid.South) && !connected(m, right, grid.South) {
		return FloorRune
	}
	return OpenRune
}

func linesFloor(m *maze.Maze, c grid.Cell) rune {
	if !connected(m, c, grid.South) {
		return FloorRune
	}
	return OpenRune
}

// blockSlot classifies a coordinate of the Blocks grid: cells sit on odd
// rows and odd columns, walls between two cells of the same column on even
// rows and odd columns (rowSlot), walls between two cells of the same row on odd
// rows and even columns (colSlot), and corners everywhere else.
type blockSlot int

const (
	cornerSlot blockSlot = iota
	cellSlot
	rowSlot
	colSlot
)

// classifyBlock returns the slot kind and the one or two cells it refers to.
// For cellSlot both cells are the same.
func classifyBlock(row, col int) (slot blockSlot, a, b grid.Cell) {
	oddRow, oddCol := floorMod(row, 2) == 1, floorMod(col, 2) == 1
	x, y := floorDiv(row, 2), floorDiv(col, 2)
	switch {
	case oddRow && oddCol:
		c := grid.Cell{X: x, Y: y}
		return cellSlot, c, c
	case !oddRow && oddCol:
		return rowSlot, grid.Cell{X: x - 1, Y: y}, grid.Cell{X: x, Y: y}
	case oddRow && !oddCol:
		return colSlot, grid.Cell{X: x, Y: y - 1}, grid.Cell{X: x, Y: y}
	}
	return cornerSlot, grid.Cell{}, grid.Cell{}
}

// NewBlocksWalls returns the walls of the Blocks style: '#' on corners and on every
// wall slot without a passage, transparent elsewhere.
func NewBlocksWalls(m *maze.Maze) art.Art {
	return art.Func(func(row, col int) (rune, bool) {
		slot, a, b := classifyBlock(row, col)
		switch slot {
		case cellSlot:
			return art.Transparent()
		case rowSlot, colSlot:
			if m.Has(a, b) {
				return art.Transparent()
			}
		}
		return art.Opaque(BlockRune)
	})
}

// NewBlocksPath returns the path overlay of the Blocks style: '.' on every cell of the
// path, and on every wall slot whose two cells are on the path. The zero Path is
// transparent everywhere.
func NewBlocksPath(path maze.Path) art.Art {
	return art.Func(func(row, col int) (rune, bool) {
		slot, a, b := classifyBlock(row, col)
		if slot == cornerSlot || !path.Contains(a) || !path.Contains(b) {
			return art.Transparent()
		}
		return art.Opaque(PathRune)
	})
}

// NewBlocks returns the Blocks style art: the path overlay over the walls, framed to
// Size(Blocks, ...).
func NewBlocks(m *maze.Maze, path maze.Path) art.Art {
	rows, cols := Size(Blocks, m.Width, m.Height)
	return art.Frame(art.Union(NewBlocksPath(path), NewBlocksWalls(m)), rows, cols)
}

// NewBox returns the Box style art, of size Size(Box, ...).
//
// Coordinate (row, col) is the intersection at the top-left corner of cell (row, col).
// Each of the four wall segments leaving the intersection exists if the two cells it
// separates have no passage between them; the 4 booleans select the glyph.
func NewBox(m *maze.Maze, glyphs GlyphSet) art.Art {
	return art.Func(func(row, col int) (rune, bool) {
		nw := grid.Cell{X: row - 1, Y: col - 1}
		ne := grid.Cell{X: row - 1, Y: col}
		sw := grid.Cell{X: row, Y: col - 1}
		se := grid.Cell{X: row, Y: col}
		walls := Walls{
			North: !m.Has(nw, ne),
			East:  !m.Has(ne, se),
			South: !m.Has(sw, se),
			West:  !m.Has(nw, sw),
		}
		return art.Opaque(glyphs.Glyph(walls))
	})
}
