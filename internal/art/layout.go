package art

// unionArt layers arts front to back.
type unionArt struct {
	arts []Art
}

// Union layers the arts: at each coordinate the first Art that is not transparent wins,
// so earlier arts are painted over later ones. With no opaque Art the result is transparent.
func Union(arts ...Art) Art {
	u := unionArt{arts: make([]Art, len(arts))}
	copy(u.arts, arts)
	return u
}

func (u unionArt) At(row, col int) (rune, bool) {
	for _, a := range u.arts {
		if r, ok := a.At(row, col); ok {
			return r, ok
		}
	}
	return Transparent()
}

// framed crops an Art to a rectangle starting at (0, 0).
type framed struct {
	Art
	rows, cols int
}

// Frame restricts the Art to [0, rows) x [0, cols). Everything outside is transparent.
func Frame(a Art, rows, cols int) Art {
	return framed{Art: a, rows: rows, cols: cols}
}

func inside(v, size int) bool {
	return v >= 0 && v < size
}

func (f framed) At(row, col int) (rune, bool) {
	if !inside(row, f.rows) || !inside(col, f.cols) {
		return Transparent()
	}
	return f.Art.At(row, col)
}

// Border runes drawn by Window.
const (
	CornerRune     = '+'
	HorizontalRune = '-'
	VerticalRune   = '|'
)

// window draws a border around a cropped Art.
type window struct {
	Art
	rows, cols int
}

// Window works like Frame, but the outer ring of [0, rows) x [0, cols) is a border:
// '+' on the corners, '-' on the first and last rows and '|' on the first and last
// columns. The inside shows the Art moved by (1, 1), so its top-left corner is
// right inside the border.
//
// Example: for the Art
//
//	abcd111
//	efgh222
//	ijkl333
//
// Window(art, 4, 4) is
//
//	+--+
//	|ab|
//	|ef|
//	+--+
func Window(a Art, rows, cols int) Art {
	return window{Art: Translate(a, 1, 1), rows: rows, cols: cols}
}

func (w window) At(row, col int) (rune, bool) {
	if !inside(row, w.rows) || !inside(col, w.cols) {
		return Transparent()
	}
	borderRow := !inside(row-1, w.rows-2)
	borderCol := !inside(col-1, w.cols-2)
	switch {
	case borderRow && borderCol:
		return Opaque(CornerRune)
	case borderRow:
		return Opaque(HorizontalRune)
	case borderCol:
		return Opaque(VerticalRune)
	}
	return w.Art.At(row, col)
}
