// Package art implements "string arts": images made of characters, described as
// functions from an integer coordinate (row, col) to a character.
//
// An Art either paints a rune at a coordinate or is transparent there, leaving
// the decision to whatever is layered beneath it (see Union). Arts are immutable
// values defined over every integer coordinate, including negative ones, so
// they can be freely moved (Translate), flipped (Transpose, InvertCentral,
// ReflectHorizontal, ReflectVertical), layered (Union), cropped (Frame, Window)
// and post-processed (Compose) before being flattened to text with Render.
//
// Transparency is only a compositing concept: Render resolves it to a space.
package art

import (
	"strings"
)

// Art is a character image defined over all integer coordinates.
type Art interface {
	// At returns the rune painted at (row, col), or false if the Art is transparent there.
	At(row, col int) (r rune, ok bool)
}

// Func adapts a function to the Art interface.
type Func func(row, col int) (rune, bool)

// At implements Art.
func (f Func) At(row, col int) (rune, bool) {
	return f(row, col)
}

// Transparent is the value returned by an Art that doesn't paint a coordinate.
func Transparent() (rune, bool) {
	return 0, false
}

// Opaque is the value returned by an Art painting r at a coordinate.
func Opaque(r rune) (rune, bool) {
	return r, true
}

// emptyArt is transparent everywhere.
type emptyArt struct{}

// Empty returns an Art that is transparent everywhere.
func Empty() Art {
	return emptyArt{}
}

func (emptyArt) At(int, int) (rune, bool) { return Transparent() }

// textArt indexes a block of text by (line, character).
type textArt struct {
	lines [][]rune
}

// FromText creates an Art from lines of text: (row, col) is the col-th character of the
// row-th line. Spaces and coordinates outside the text are transparent.
//
// A single string with embedded new lines is split into lines.
func FromText(lines ...string) Art {
	if len(lines) == 1 {
		lines = strings.Split(lines[0], "\n")
	}
	t := &textArt{lines: make([][]rune, len(lines))}
	for ii, line := range lines {
		t.lines[ii] = []rune(line)
	}
	return t
}

func (t *textArt) At(row, col int) (rune, bool) {
	if row < 0 || row >= len(t.lines) {
		return Transparent()
	}
	line := t.lines[row]
	if col < 0 || col >= len(line) || line[col] == ' ' {
		return Transparent()
	}
	return Opaque(line[col])
}

// Render flattens the Art to rows lines of cols characters each, starting at (0, 0).
// Transparent coordinates are rendered as spaces.
func Render(a Art, rows, cols int) []string {
	lines := make([]string, 0, max(rows, 0))
	var sb strings.Builder
	for row := 0; row < rows; row++ {
		sb.Reset()
		for col := 0; col < cols; col++ {
			r, ok := a.At(row, col)
			if !ok {
				r = ' '
			}
			sb.WriteRune(r)
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// Emitter receives rendered lines, one at a time, top to bottom.
type Emitter interface {
	Emit(line string)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(line string)

// Emit implements Emitter.
func (f EmitterFunc) Emit(line string) {
	f(line)
}

// TitleEmitter is implemented by emitters that display titles differently from art lines.
type TitleEmitter interface {
	Emitter
	EmitTitle(title string)
}

// EmitTitle sends title to e, through EmitTitle if e is a TitleEmitter.
func EmitTitle(e Emitter, title string) {
	if te, ok := e.(TitleEmitter); ok {
		te.EmitTitle(title)
		return
	}
	e.Emit(title)
}

// Print renders the Art (see Render) and sends each line to e.
func Print(a Art, rows, cols int, e Emitter) {
	for _, line := range Render(a, rows, cols) {
		e.Emit(line)
	}
}
