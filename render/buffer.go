package render

// Canvas is a fixed-size grid of cells stored row-major
// A canvas has a single writer; it is not synchronized
type Canvas struct {
	cells  []Cell
	width  int
	height int
}

// NewCanvas creates a transparent canvas with the specified dimensions
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the canvas width
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height
func (c *Canvas) Height() int {
	return c.height
}

// InBounds returns true if (x, y) lies on the canvas
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the cell at (x, y), or a transparent cell when out of bounds
func (c *Canvas) At(x, y int) Cell {
	if !c.InBounds(x, y) {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

// Set writes a cell, returning false when (x, y) is out of bounds
func (c *Canvas) Set(x, y int, cell Cell) bool {
	if !c.InBounds(x, y) {
		return false
	}
	c.cells[y*c.width+x] = cell
	return true
}

// Cells exposes the backing slice for row-major reads
func (c *Canvas) Cells() []Cell {
	return c.cells
}

// Clear resets all cells to transparent using exponential copy
func (c *Canvas) Clear() {
	if len(c.cells) == 0 {
		return
	}
	c.cells[0] = Cell{}
	for filled := 1; filled < len(c.cells); filled *= 2 {
		copy(c.cells[filled:], c.cells[:filled])
	}
}

// Equal reports whether both canvases have the same size and cells
func (c *Canvas) Equal(other *Canvas) bool {
	if c.width != other.width || c.height != other.height {
		return false
	}
	for i := range c.cells {
		if c.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy
func (c *Canvas) Clone() *Canvas {
	cells := make([]Cell, len(c.cells))
	copy(cells, c.cells)
	return &Canvas{cells: cells, width: c.width, height: c.height}
}
