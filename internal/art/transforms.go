package art

// translated moves an Art by (dRow, dCol).
type translated struct {
	Art
	dRow, dCol int
}

// Translate moves the Art by (dRow, dCol): the result at (row, col) is the source at
// (row-dRow, col-dCol).
func Translate(a Art, dRow, dCol int) Art {
	return translated{Art: a, dRow: dRow, dCol: dCol}
}

func (t translated) At(row, col int) (rune, bool) {
	return t.Art.At(row-t.dRow, col-t.dCol)
}

// transposed swaps rows and columns.
type transposed struct {
	Art
}

// Transpose swaps the two axes: the result at (row, col) is the source at (col, row).
func Transpose(a Art) Art {
	return transposed{a}
}

func (t transposed) At(row, col int) (rune, bool) {
	return t.Art.At(col, row)
}

// inverted is the point reflection through the origin.
type inverted struct {
	Art
}

// InvertCentral reflects the Art through the origin: the result at (row, col) is the
// source at (-row, -col). Translate it back by the size of the Art to see it.
func InvertCentral(a Art) Art {
	return inverted{a}
}

func (i inverted) At(row, col int) (rune, bool) {
	return i.Art.At(-row, -col)
}

// mirrored flips one of the axes.
type mirrored struct {
	Art
	flipRows bool
}

// ReflectHorizontal mirrors the columns, keeping the rows: the result at (row, col)
// is the source at (row, -col).
func ReflectHorizontal(a Art) Art {
	return mirrored{Art: a}
}

// ReflectVertical mirrors the rows, keeping the columns: the result at (row, col)
// is the source at (-row, col).
func ReflectVertical(a Art) Art {
	return mirrored{Art: a, flipRows: true}
}

func (m mirrored) At(row, col int) (rune, bool) {
	if m.flipRows {
		return m.Art.At(-row, col)
	}
	return m.Art.At(row, -col)
}

// composed post-processes the runes of an Art.
type composed struct {
	Art
	fn func(rune) rune
}

// Compose applies fn to every rune painted by the Art. Transparent coordinates stay transparent.
func Compose(a Art, fn func(rune) rune) Art {
	return composed{Art: a, fn: fn}
}

func (c composed) At(row, col int) (rune, bool) {
	r, ok := c.Art.At(row, col)
	if !ok {
		return Transparent()
	}
	return Opaque(c.fn(r))
}
