package pipeline

import (
	"github.com/janpfeifer/mazeGo/internal/config"
	"github.com/janpfeifer/mazeGo/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

type recorder struct {
	lines []string
}

func (r *recorder) Emit(line string) { r.lines = append(r.lines, line) }

func run(t *testing.T, cfg config.Config) ([]string, *Result) {
	t.Helper()
	rec := &recorder{}
	r, err := GenerateAndRender(cfg, rec)
	require.NoError(t, err)
	return rec.lines, r
}

func TestGenerateAndRender(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.Seed, cfg.RandomSeed = 2, 3, 11, false
	cfg.Styles = render.Styles
	lines, r := run(t, cfg)
	require.True(t, r.Solved)
	require.NoError(t, r.Maze.Validate())
	assert.Equal(t, int64(11), r.Seed)

	want := []string{"Maze size: 2x3 (seed 11)", "First style, without solution:"}
	assert.Equal(t, want, lines[:2])
	// Header + (title + 3 lines) + blank + (title + 5 lines) + (title + 7 lines transposed)
	// + blank + (title + 3 lines).
	require.Len(t, lines, 1+4+1+6+8+1+4)
	assert.Equal(t, "", lines[5])
	assert.Equal(t, "Second style, with solution:", lines[6])
	assert.Equal(t, "Same maze, transposed:", lines[12])
	assert.Equal(t, "", lines[20])
	assert.Equal(t, "Third style, experimental:", lines[21])
	assert.Equal(t, "_______", lines[1+1], "top border of the lines style")
}

func TestDeterminism(t *testing.T) {
	cfg := config.Default()
	cfg.Seed, cfg.RandomSeed = 515, false
	first, _ := run(t, cfg)
	second, _ := run(t, cfg)
	assert.Equal(t, first, second)

	cfg.Seed = 516
	third, _ := run(t, cfg)
	assert.NotEqual(t, first, third)
}

func TestNegativeSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Seed, cfg.RandomSeed = -5, false
	first, r := run(t, cfg)
	assert.Equal(t, int64(-5), r.Seed)
	assert.Equal(t, "Maze size: 20x15 (seed -5)", first[0])
	second, _ := run(t, cfg)
	assert.Equal(t, first, second)

	cfg.Seed = 5
	third, _ := run(t, cfg)
	assert.NotEqual(t, first[1:], third[1:])
}

func TestRandomSeed(t *testing.T) {
	cfg := config.Default()
	require.True(t, cfg.RandomSeed)
	lines, r := run(t, cfg)
	assert.GreaterOrEqual(t, r.Seed, int64(0))
	assert.Equal(t, Header(cfg, r.Seed), lines[0])
}

func TestStylesOrder(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.Seed, cfg.RandomSeed = 3, 3, 8, false
	cfg.Render.Views = nil
	cfg.Styles = []render.Style{render.Box, render.Lines, render.Box}
	lines, _ := run(t, cfg)
	var titles []string
	for _, line := range lines {
		if strings.HasSuffix(line, ":") {
			titles = append(titles, line)
		}
	}
	assert.Equal(t, []string{"First style, without solution:", "Third style, experimental:"}, titles)
	assert.Equal(t, []render.Style{render.Box, render.Lines, render.Box}, cfg.Styles, "config not modified")

	cfg.Styles = []render.Style{render.Lines, render.Box}
	sorted, _ := run(t, cfg)
	assert.Equal(t, sorted, lines)
}

func TestNoTitles(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.Seed, cfg.RandomSeed = 4, 4, 1, false
	cfg.Titles = false
	cfg.Styles = []render.Style{render.Blocks}
	cfg.Render.Views = nil
	lines, r := run(t, cfg)
	require.Len(t, lines, 9)
	for _, line := range lines {
		assert.Len(t, line, 9)
		assert.NotContains(t, line, ":")
	}
	dots := 0
	for _, line := range lines {
		dots += strings.Count(line, ".")
	}
	assert.GreaterOrEqual(t, dots, 2*r.Path.Len()-1)
}

func TestInvalidConfig(t *testing.T) {
	for _, mutate := range []func(*config.Config){
		func(c *config.Config) { c.Width = 0 },
		func(c *config.Config) { c.Height = -1 },
		func(c *config.Config) { c.Styles = nil },
	} {
		cfg := config.Default()
		mutate(&cfg)
		rec := &recorder{}
		r, err := GenerateAndRender(cfg, rec)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.Nil(t, r)
		assert.Empty(t, rec.lines, "nothing is emitted on error")
	}
}

func BenchmarkGenerateAndRender(b *testing.B) {
	cfg := config.Default()
	cfg.Seed, cfg.RandomSeed = 1, false
	cfg.Styles = render.Styles
	e := EmitterFunc(func(string) {})
	for b.Loop() {
		_, err := GenerateAndRender(cfg, e)
		require.NoError(b, err)
	}
}
