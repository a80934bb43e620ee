package render

// DrawMode selects the sprite draw algorithm used against a frame
type DrawMode uint8

const (
	// DrawBuffer copies pre-flattened sprite cells; cheap when attribute switches are cheap
	DrawBuffer DrawMode = iota
	// DrawSteps walks color runs; fewer attribute switches per draw
	DrawSteps
)

func (m DrawMode) String() string {
	if m == DrawSteps {
		return "steps"
	}
	return "buffer"
}

// Frame pairs a canvas with its depth buffer and is the target of every draw
type Frame struct {
	Canvas *Canvas
	Depth  *DepthBuffer
	Mode   DrawMode
}

// NewFrame allocates an empty frame using the default depth rule
func NewFrame(width, height int) *Frame {
	return NewFrameWithRule(width, height, DepthLessEqual)
}

// NewFrameWithRule allocates an empty frame with an explicit tie-break rule
func NewFrameWithRule(width, height int, rule DepthRule) *Frame {
	return &Frame{
		Canvas: NewCanvas(width, height),
		Depth:  NewDepthBuffer(width, height, rule),
	}
}

// Width returns the frame width
func (f *Frame) Width() int {
	return f.Canvas.width
}

// Height returns the frame height
func (f *Frame) Height() int {
	return f.Canvas.height
}

// Plot writes a cell at depth z if (x, y) is on the frame and passes the depth test
func (f *Frame) Plot(x, y, z int, cell Cell) bool {
	c := f.Canvas
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return false
	}
	idx := y*c.width + x
	if !f.Depth.accepts(idx, z) {
		return false
	}
	c.cells[idx] = cell
	f.Depth.depth[idx] = z
	f.Depth.set[idx] = true
	return true
}

// Reset clears canvas and depth buffer for the next frame
func (f *Frame) Reset() {
	f.Canvas.Clear()
	f.Depth.Clear()
}
