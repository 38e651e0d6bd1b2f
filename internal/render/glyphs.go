package render

import (
	"github.com/pkg/errors"
)

// Walls around an intersection of the Box style: true means the wall segment
// leaving the intersection in that direction is present.
type Walls struct {
	North, East, South, West bool
}

// Index of the walls in a 16-entry glyph table: North is the most significant bit,
// West the least.
func (w Walls) Index() int {
	idx := 0
	for _, bit := range [4]bool{w.North, w.East, w.South, w.West} {
		idx <<= 1
		if bit {
			idx |= 1
		}
	}
	return idx
}

// WallsFromIndex is the inverse of Walls.Index.
func WallsFromIndex(idx int) Walls {
	return Walls{
		North: idx&8 != 0,
		East:  idx&4 != 0,
		South: idx&2 != 0,
		West:  idx&1 != 0,
	}
}

// GlyphSet selects the runes used by the Box style.
type GlyphSet int

const (
	// BoxGlyphs uses Unicode box-drawing characters.
	BoxGlyphs GlyphSet = iota

	// LegacyGlyphs uses the control codes that some old console fonts draw as
	// line segments. Most terminals today don't.
	LegacyGlyphs
)

// String implements fmt.Stringer.
func (g GlyphSet) String() string {
	if g == LegacyGlyphs {
		return "legacy"
	}
	return "box"
}

// ParseGlyphSet accepts "box" or "legacy".
func ParseGlyphSet(txt string) (GlyphSet, error) {
	switch txt {
	case "", "box":
		return BoxGlyphs, nil
	case "legacy":
		return LegacyGlyphs, nil
	}
	return BoxGlyphs, errors.Errorf("unknown glyph set %q, valid values are \"box\" and \"legacy\"", txt)
}

// legacyGlyphTable holds the Box style glyphs as console control codes, indexed by
// Walls.Index.
//
// Five entries have no dedicated glyph: each of the four single-segment
// intersections reuses a three-segment glyph, and the south+east corner is
// drawn blank. They are kept as they are: changing them changes the output.
var legacyGlyphTable = [16]rune{
	0b0000: ' ',
	0b0001: 23,  // W only: same as N+S+W.
	0b0010: 22,  // S only: same as E+S+W.
	0b0011: 2,   // S+W
	0b0100: 25,  // E only: same as N+E+S.
	0b0101: 6,   // E+W
	0b0110: ' ', // E+S: blank.
	0b0111: 22,  // E+S+W
	0b1000: 21,  // N only: same as N+E+W.
	0b1001: 4,   // N+W
	0b1010: 5,   // N+S
	0b1011: 23,  // N+S+W
	0b1100: 3,   // N+E
	0b1101: 21,  // N+E+W
	0b1110: 25,  // N+E+S
	0b1111: 16,  // N+E+S+W
}

// legacyToBox translates the control codes of legacyGlyphTable to box-drawing characters.
var legacyToBox = map[rune]rune{
	' ': ' ',
	2:   '┐',
	3:   '└',
	4:   '┘',
	5:   '│',
	6:   '─',
	16:  '┼',
	21:  '┴',
	22:  '┬',
	23:  '┤',
	25:  '├',
}

// Glyph returns the rune drawn at an intersection with the given walls. It is defined
// for all 16 combinations.
func (g GlyphSet) Glyph(w Walls) rune {
	code := legacyGlyphTable[w.Index()]
	if g == LegacyGlyphs {
		return code
	}
	return legacyToBox[code]
}
