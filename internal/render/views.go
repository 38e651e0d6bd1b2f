package render

import (
	"github.com/janpfeifer/mazeGo/internal/art"
	"github.com/janpfeifer/mazeGo/internal/parameters"
	"github.com/pkg/errors"
)

// View is an extra rendering of the Blocks style art, built with the art transforms.
type View int

const (
	// Transposed swaps rows and columns.
	Transposed View = iota

	// Inverted rotates the maze by 180 degrees.
	Inverted

	// Reflected flips the maze upside down.
	Reflected

	// Mirrored draws the maze side by side with its left-right mirror image.
	Mirrored

	// Windowed draws the maze inside a window border.
	Windowed

	numViews
)

var viewNames = [numViews]string{"transposed", "inverted", "reflected", "mirrored", "windowed"}

// String implements fmt.Stringer.
func (v View) String() string {
	if v < 0 || v >= numViews {
		return "invalid"
	}
	return viewNames[v]
}

// Title printed before the view, if titles are enabled.
func (v View) Title() string {
	if v == Mirrored {
		return "Same maze, with its reflection:"
	}
	return "Same maze, " + v.String() + ":"
}

// Apply returns the view of an art of the given size, and the size of the view.
func (v View) Apply(a art.Art, rows, cols int) (view art.Art, viewRows, viewCols int) {
	switch v {
	case Transposed:
		return art.Transpose(a), cols, rows
	case Inverted:
		return art.Translate(art.InvertCentral(a), rows-1, cols-1), rows, cols
	case Reflected:
		return art.Translate(art.ReflectVertical(a), rows-1, 0), rows, cols
	case Mirrored:
		// The mirror image shares the last column of the original.
		shift := 2 * (cols - 1)
		return art.Union(a, art.Translate(art.ReflectHorizontal(a), 0, shift)), rows, shift + 1
	case Windowed:
		return art.Window(a, rows+2, cols+2), rows + 2, cols + 2
	}
	return a, rows, cols
}

// Options for rendering.
type Options struct {
	// Titles enables a title line before each style and view.
	Titles bool

	// Glyphs used by the Box style.
	Glyphs GlyphSet

	// Views of the Blocks style to render after it, in order.
	Views []View
}

// ParseOptions parses an option string like "transposed,mirrored,glyphs=legacy".
// Titles is not set by it.
func ParseOptions(config string) (opts Options, err error) {
	params := parameters.NewFromConfigString(config)
	glyphs, err := parameters.PopParamOr(params, "glyphs", "box")
	if err != nil {
		return
	}
	if opts.Glyphs, err = ParseGlyphSet(glyphs); err != nil {
		return
	}
	for v := View(0); v < numViews; v++ {
		var enabled bool
		enabled, err = parameters.PopParamOr(params, v.String(), false)
		if err != nil {
			return
		}
		if enabled {
			opts.Views = append(opts.Views, v)
		}
	}
	if err = parameters.CheckAllConsumed(params); err != nil {
		err = errors.WithMessage(err, "render options")
	}
	return
}
