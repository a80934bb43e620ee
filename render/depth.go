package render

// DepthRule decides whether an incoming draw may overwrite a cell that
// already holds a depth this frame. Smaller depth is nearer
type DepthRule uint8

const (
	// DepthLessEqual accepts draws at equal or nearer depth; ties go to the last draw
	DepthLessEqual DepthRule = iota
	// DepthLess accepts strictly nearer draws only; ties go to the first draw
	DepthLess
)

func (r DepthRule) String() string {
	switch r {
	case DepthLess:
		return "less"
	default:
		return "less-equal"
	}
}

// DepthBuffer records the depth of the last accepted draw per cell
// A cell with no recorded depth accepts any draw
type DepthBuffer struct {
	depth  []int
	set    []bool
	width  int
	height int
	rule   DepthRule
}

// NewDepthBuffer creates an empty depth buffer
func NewDepthBuffer(width, height int, rule DepthRule) *DepthBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &DepthBuffer{
		depth:  make([]int, width*height),
		set:    make([]bool, width*height),
		width:  width,
		height: height,
		rule:   rule,
	}
}

// Width returns the buffer width
func (d *DepthBuffer) Width() int {
	return d.width
}

// Height returns the buffer height
func (d *DepthBuffer) Height() int {
	return d.height
}

// Rule returns the tie-break rule in effect
func (d *DepthBuffer) Rule() DepthRule {
	return d.rule
}

// Get returns the recorded depth at (x, y) and whether one exists
func (d *DepthBuffer) Get(x, y int) (int, bool) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return 0, false
	}
	idx := y*d.width + x
	return d.depth[idx], d.set[idx]
}

// accepts applies the depth test to a flat index
func (d *DepthBuffer) accepts(idx, z int) bool {
	if !d.set[idx] {
		return true
	}
	if d.rule == DepthLess {
		return z < d.depth[idx]
	}
	return z <= d.depth[idx]
}

// Test reports whether a draw at depth z would be accepted at (x, y)
// Out of bounds positions never accept
func (d *DepthBuffer) Test(x, y, z int) bool {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return false
	}
	return d.accepts(y*d.width+x, z)
}

// Mark records depth z at (x, y) unconditionally
func (d *DepthBuffer) Mark(x, y, z int) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	idx := y*d.width + x
	d.depth[idx] = z
	d.set[idx] = true
}

// Clear forgets all recorded depths
func (d *DepthBuffer) Clear() {
	clear(d.set)
}
