package render

// Transparent is the glyph code of a cell with no content
const Transparent byte = 0

// Cell is one display cell: a glyph code and a color pair
// The zero value is a transparent cell
type Cell struct {
	Glyph byte
	Fg    Color
	Bg    Color
}

// IsTransparent reports whether the cell carries no content
func (c Cell) IsTransparent() bool {
	return c.Glyph == Transparent
}
