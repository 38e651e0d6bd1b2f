package render

import (
	"fmt"
	"github.com/janpfeifer/mazeGo/internal/art"
	"github.com/janpfeifer/mazeGo/internal/grid"
	"github.com/janpfeifer/mazeGo/internal/maze"
	"github.com/janpfeifer/mazeGo/internal/randomness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

// fixedMaze returns the 2x2 maze built from the canonical edge order without shuffling:
// the only wall inside is between (1,0) and (1,1).
func fixedMaze(t *testing.T) (*maze.Maze, maze.Path) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	m := maze.Generate(g, g.SortedEdges(), randomness.Fixed{})
	require.NoError(t, m.Validate())
	path, found := maze.FindPath(m)
	require.True(t, found)
	return m, path
}

func render(style Style, m *maze.Maze, path maze.Path, opts Options) []string {
	rows, cols := Size(style, m.Width, m.Height)
	return art.Render(New(style, m, path, opts), rows, cols)
}

func TestStyleLines(t *testing.T) {
	m, path := fixedMaze(t)
	want := []string{
		"_____",
		"    |",
		"|_|__",
	}
	assert.Equal(t, want, render(Lines, m, path, Options{}))
}

func TestStyleBlocks(t *testing.T) {
	m, path := fixedMaze(t)
	want := []string{
		"#####",
		"....#",
		"# #.#",
		"# #..",
		"#####",
	}
	assert.Equal(t, want, render(Blocks, m, path, Options{}))

	// Without a path only the walls are drawn.
	want = []string{
		"#####",
		"    #",
		"# # #",
		"# #  ",
		"#####",
	}
	assert.Equal(t, want, render(Blocks, m, maze.Path{}, Options{}))

	// Framed: nothing outside the rendered area.
	a := New(Blocks, m, path, Options{})
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {-7, -7}} {
		_, ok := a.At(rc[0], rc[1])
		assert.False(t, ok, "Blocks at %v should be transparent", rc)
	}
}

func TestStyleBox(t *testing.T) {
	m, path := fixedMaze(t)
	want := []string{
		"┴┴┼",
		"┐┬└",
		"┼┼┬",
	}
	assert.Equal(t, want, render(Box, m, path, Options{}))

	legacy := render(Box, m, path, Options{Glyphs: LegacyGlyphs})
	require.Len(t, legacy, 3)
	assert.Equal(t, []rune{21, 21, 16}, []rune(legacy[0]))
	assert.Equal(t, []rune{2, 22, 3}, []rune(legacy[1]))
}

func TestGlyphTable(t *testing.T) {
	for idx := range 16 {
		w := WallsFromIndex(idx)
		assert.Equal(t, idx, w.Index())
		for _, glyphs := range []GlyphSet{BoxGlyphs, LegacyGlyphs} {
			r := glyphs.Glyph(w)
			assert.NotZero(t, r, "%s glyph for %+v", glyphs, w)
		}
	}

	// Combinations without a dedicated glyph share the glyph of another one.
	box := func(n, e, s, w bool) rune { return BoxGlyphs.Glyph(Walls{n, e, s, w}) }
	assert.Equal(t, box(true, true, false, true), box(true, false, false, false))
	assert.Equal(t, '┴', box(true, false, false, false))
	assert.Equal(t, box(true, true, true, false), box(false, true, false, false))
	assert.Equal(t, box(false, true, true, true), box(false, false, true, false))
	assert.Equal(t, box(true, false, true, true), box(false, false, false, true))
	assert.Equal(t, ' ', box(false, true, true, false))
	assert.Equal(t, ' ', box(false, false, false, false))
	assert.Equal(t, '┼', box(true, true, true, true))
	assert.Equal(t, '│', box(true, false, true, false))
	assert.Equal(t, '─', box(false, true, false, true))

	g, err := ParseGlyphSet("legacy")
	require.NoError(t, err)
	assert.Equal(t, LegacyGlyphs, g)
	_, err = ParseGlyphSet("ascii")
	assert.Error(t, err)
}

func TestParseStyle(t *testing.T) {
	for _, s := range Styles {
		got, err := ParseStyle(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
		got, err = ParseStyle(fmt.Sprint(int(s)))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	for _, txt := range []string{"0", "4", "", "fancy"} {
		_, err := ParseStyle(txt)
		assert.Error(t, err, "ParseStyle(%q)", txt)
	}
	assert.Panics(t, func() { Size(StyleInvalid, 2, 2) })
}

func TestSizes(t *testing.T) {
	g, err := grid.New(20, 15)
	require.NoError(t, err)
	m := maze.New(g, randomness.New(42))
	path, _ := maze.FindPath(m)
	for _, s := range Styles {
		rows, cols := Size(s, 20, 15)
		lines := render(s, m, path, Options{})
		require.Len(t, lines, rows, "style %s", s)
		for _, line := range lines {
			assert.Equal(t, cols, len([]rune(line)), "style %s", s)
		}
	}
	rows, cols := Size(Lines, 20, 15)
	assert.Equal(t, [2]int{21, 31}, [2]int{rows, cols})
	rows, cols = Size(Blocks, 20, 15)
	assert.Equal(t, [2]int{41, 31}, [2]int{rows, cols})
	rows, cols = Size(Box, 20, 15)
	assert.Equal(t, [2]int{21, 16}, [2]int{rows, cols})
}

// TestBlocksPathConnected checks the path overlay of a random maze is drawn as a connected
// trail of '.' from the entrance to the exit.
func TestBlocksPathConnected(t *testing.T) {
	g, err := grid.New(9, 7)
	require.NoError(t, err)
	m := maze.New(g, randomness.New(7))
	path, found := maze.FindPath(m)
	require.True(t, found)
	lines := render(Blocks, m, path, Options{})
	at := func(row, col int) byte { return lines[row][col] }
	for i, c := range path.Cells {
		if g.Contains(c) {
			assert.Equal(t, byte('.'), at(2*c.X+1, 2*c.Y+1), "cell %s", c)
		}
		if i > 0 {
			prev := path.Cells[i-1]
			assert.Equal(t, byte('.'), at(prev.X+c.X+1, prev.Y+c.Y+1), "slot %s-%s", prev, c)
		}
	}
	dots := 0
	for _, line := range lines {
		dots += strings.Count(line, ".")
	}
	assert.GreaterOrEqual(t, dots, 2*path.Len()-1)
}

func TestEmit(t *testing.T) {
	m, path := fixedMaze(t)
	var lines []string
	e := art.EmitterFunc(func(line string) { lines = append(lines, line) })

	Emit(e, Lines, m, path, Options{Titles: true})
	require.Len(t, lines, 4)
	assert.Equal(t, "First style, without solution:", lines[0])

	lines = nil
	Emit(e, Blocks, m, path, Options{Titles: true, Views: []View{Transposed}})
	require.Len(t, lines, 1+5+1+5)
	assert.Equal(t, "Second style, with solution:", lines[0])
	assert.Equal(t, "Same maze, transposed:", lines[6])
	assert.Equal(t, []string{"#.###", "#.  #", "#.###", "#...#", "###.#"}, lines[7:])

	// No titles, views ignored for other styles.
	lines = nil
	Emit(e, Box, m, path, Options{Views: []View{Transposed, Mirrored}})
	assert.Len(t, lines, 3)
}

func TestViews(t *testing.T) {
	m, path := fixedMaze(t)
	a := New(Blocks, m, path, Options{})
	rows, cols := Size(Blocks, m.Width, m.Height)
	want := map[View][]string{
		Inverted: {
			"#####",
			"..# #",
			"#.# #",
			"#....",
			"#####",
		},
		Reflected: {
			"#####",
			"# #..",
			"# #.#",
			"....#",
			"#####",
		},
		Mirrored: {
			"#########",
			"....#....",
			"# #.#.# #",
			"# #...# #",
			"#########",
		},
		Windowed: {
			"+-----+",
			"|#####|",
			"|....#|",
			"|# #.#|",
			"|# #..|",
			"|#####|",
			"+-----+",
		},
	}
	for view, lines := range want {
		va, vRows, vCols := view.Apply(a, rows, cols)
		assert.Equal(t, lines, art.Render(va, vRows, vCols), "view %s", view)
	}
	assert.Equal(t, "Same maze, inverted:", Inverted.Title())
	assert.Equal(t, "invalid", View(-1).String())
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions("mirrored, transposed,glyphs=legacy")
	require.NoError(t, err)
	assert.Equal(t, LegacyGlyphs, opts.Glyphs)
	// Views are always listed in their canonical order.
	assert.Equal(t, []View{Transposed, Mirrored}, opts.Views)

	opts, err = ParseOptions("")
	require.NoError(t, err)
	assert.Equal(t, Options{}, opts)

	_, err = ParseOptions("transposed,sideways")
	assert.ErrorContains(t, err, "sideways")
	_, err = ParseOptions("transposed=maybe")
	assert.Error(t, err)
	_, err = ParseOptions("glyphs=ascii")
	assert.Error(t, err)
}

func BenchmarkRenderBlocks(b *testing.B) {
	g, err := grid.New(100, 100)
	require.NoError(b, err)
	m := maze.New(g, randomness.New(1))
	path, _ := maze.FindPath(m)
	rows, cols := Size(Blocks, 100, 100)
	a := New(Blocks, m, path, Options{})
	for b.Loop() {
		_ = art.Render(a, rows, cols)
	}
}
