// Package render draws mazes as string arts (see package art), in three styles:
//
//   - Lines: thin walls drawn with '_' and '|', one text row per maze row.
//   - Blocks: walls drawn with '#' on a grid twice as fine as the maze, with the
//     solution path overlaid with '.'.
//   - Box: one box-drawing glyph per wall intersection.
//
// Every style is a pure function of the maze passages (and the path, for Blocks):
// the arts are built only from coordinate arithmetic and passage membership tests.
package render

import (
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/mazeGo/internal/art"
	"github.com/janpfeifer/mazeGo/internal/grid"
	"github.com/janpfeifer/mazeGo/internal/maze"
	"github.com/pkg/errors"
	"strconv"
)

// Style of rendering.
type Style int

const (
	StyleInvalid Style = iota
	Lines
	Blocks
	Box
	numStyles
)

// Styles lists all valid styles in increasing order.
var Styles = []Style{Lines, Blocks, Box}

var styleTitles = [numStyles]string{
	"",
	"First style, without solution:",
	"Second style, with solution:",
	"Third style, experimental:",
}

// String returns the name of the style.
func (s Style) String() string {
	switch s {
	case Lines:
		return "lines"
	case Blocks:
		return "blocks"
	case Box:
		return "box"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Valid reports whether s is one of Styles.
func (s Style) Valid() bool {
	return s > StyleInvalid && s < numStyles
}

// Title printed before the style, if titles are enabled.
func (s Style) Title() string {
	if !s.Valid() {
		return ""
	}
	return styleTitles[s]
}

// ParseStyle accepts either the style number (1, 2 or 3) or its name.
func ParseStyle(txt string) (Style, error) {
	if n, err := strconv.Atoi(txt); err == nil {
		if s := Style(n); s.Valid() {
			return s, nil
		}
		return StyleInvalid, errors.Errorf("invalid style number %d, valid styles are 1, 2 and 3", n)
	}
	for _, s := range Styles {
		if s.String() == txt {
			return s, nil
		}
	}
	return StyleInvalid, errors.Errorf("unknown style %q, valid styles are 1 (lines), 2 (blocks) and 3 (box)", txt)
}

// Size returns the number of rows and columns of the rendered style, for a maze of the
// given dimensions.
func Size(style Style, width, height int) (rows, cols int) {
	switch style {
	case Lines:
		return width + 1, 2*height + 1
	case Blocks:
		return 2*width + 1, 2*height + 1
	case Box:
		return width + 1, height + 1
	}
	exceptions.Panicf("render.Size: invalid style %s", style)
	return
}

// New returns the art for the given style. The path is only used by Blocks, and the zero
// Path renders no overlay.
func New(style Style, m *maze.Maze, path maze.Path, opts Options) art.Art {
	switch style {
	case Lines:
		return NewLines(m)
	case Blocks:
		return NewBlocks(m, path)
	case Box:
		return NewBox(m, opts.Glyphs)
	}
	exceptions.Panicf("render.New: invalid style %s", style)
	return nil
}

// Emit renders the maze in the given style and sends it line by line to e, preceded by
// the style title if opts.Titles is set. For Blocks, the extra views selected in opts
// follow the maze.
func Emit(e art.Emitter, style Style, m *maze.Maze, path maze.Path, opts Options) {
	if opts.Titles {
		art.EmitTitle(e, style.Title())
	}
	rows, cols := Size(style, m.Width, m.Height)
	a := New(style, m, path, opts)
	art.Print(a, rows, cols, e)
	if style != Blocks {
		return
	}
	for _, view := range opts.Views {
		if opts.Titles {
			art.EmitTitle(e, view.Title())
		}
		va, vRows, vCols := view.Apply(a, rows, cols)
		art.Print(va, vRows, vCols, e)
	}
}

// floorDiv and floorMod round towards negative infinity, so the styles stay well-defined
// (and periodic) over negative coordinates too.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// connected reports whether the maze has a passage from c in direction d.
func connected(m *maze.Maze, c grid.Cell, d grid.Direction) bool {
	return grid.IsConnected(c, d, m.Edges)
}
