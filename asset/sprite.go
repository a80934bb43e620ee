package asset

import (
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/asscii/charset"
	"github.com/lixenwraith/asscii/render"
)

// stepRun is a draw step pre-split into rows of glyph codes
type stepRun struct {
	fg   render.Color
	bg   render.Color
	rows [][]byte
}

// Sprite is immutable parsed art with two equivalent draw paths
// Concurrent draws from many goroutines are safe as long as targets differ
type Sprite struct {
	steps  []DrawStep
	runs   []stepRun
	canvas *render.Canvas
	width  int
	height int
	pivotX int
	pivotY int
}

// Parse builds a sprite from ANSI art text
func Parse(text string) *Sprite {
	return NewSprite(ParseSteps(text))
}

// NewSprite builds a sprite from draw steps and flattens it once
func NewSprite(steps []DrawStep) *Sprite {
	table := charset.Default()

	s := &Sprite{
		steps: make([]DrawStep, len(steps)),
		runs:  make([]stepRun, len(steps)),
	}
	copy(s.steps, steps)

	var joined strings.Builder
	for i, step := range s.steps {
		joined.WriteString(step.Text)

		lines := strings.Split(step.Text, string(RowBreak))
		rows := make([][]byte, len(lines))
		for j, line := range lines {
			row := make([]byte, 0, len(line))
			for _, r := range line {
				row = append(row, table.Glyph(r))
			}
			rows[j] = row
		}
		s.runs[i] = stepRun{fg: step.Fg, bg: step.Bg, rows: rows}
	}

	lines := strings.Split(joined.String(), string(RowBreak))
	s.height = len(lines)
	for _, line := range lines {
		s.width = max(s.width, utf8.RuneCountInString(line))
	}

	flat := render.NewFrame(s.width, s.height)
	s.drawStepsAt(flat, 0, 0, 0)
	s.canvas = flat.Canvas

	s.pivotX = s.width / 2
	s.pivotY = s.height / 2
	return s
}

// WithPivot returns a sprite sharing this sprite's art with a different pivot
func (s *Sprite) WithPivot(pivotX, pivotY int) *Sprite {
	c := *s
	c.pivotX = pivotX
	c.pivotY = pivotY
	return &c
}

// Width returns the widest row in cells
func (s *Sprite) Width() int {
	return s.width
}

// Height returns the number of rows
func (s *Sprite) Height() int {
	return s.height
}

// Pivot returns the offset subtracted from draw positions
func (s *Sprite) Pivot() (int, int) {
	return s.pivotX, s.pivotY
}

// Steps returns a copy of the parsed draw steps
func (s *Sprite) Steps() []DrawStep {
	steps := make([]DrawStep, len(s.steps))
	copy(steps, s.steps)
	return steps
}

// Canvas returns a copy of the flattened art
func (s *Sprite) Canvas() *render.Canvas {
	return s.canvas.Clone()
}

// Draw composites the sprite anchored at its pivot using the frame's draw mode
func (s *Sprite) Draw(f *render.Frame, x, y, depth int) {
	s.drawAt(f, x-s.pivotX, y-s.pivotY, depth)
}

// DrawBuffered composites from the flattened canvas
func (s *Sprite) DrawBuffered(f *render.Frame, x, y, depth int) {
	s.drawBufferAt(f, x-s.pivotX, y-s.pivotY, depth)
}

// DrawSteps composites by walking the color runs
func (s *Sprite) DrawSteps(f *render.Frame, x, y, depth int) {
	s.drawStepsAt(f, x-s.pivotX, y-s.pivotY, depth)
}

// drawAt draws with the top-left corner at (left, top)
func (s *Sprite) drawAt(f *render.Frame, left, top, depth int) {
	if f.Mode == render.DrawSteps {
		s.drawStepsAt(f, left, top, depth)
		return
	}
	s.drawBufferAt(f, left, top, depth)
}

// offscreen reports whether the bounding box misses the frame entirely
func (s *Sprite) offscreen(f *render.Frame, left, top int) bool {
	return left <= -s.width || left >= f.Width() || top <= -s.height || top >= f.Height()
}

func (s *Sprite) drawBufferAt(f *render.Frame, left, top, depth int) {
	if s.offscreen(f, left, top) {
		return
	}

	// Intersection of sprite and frame in frame coordinates
	x0, x1 := max(left, 0), min(left+s.width, f.Width())
	y0, y1 := max(top, 0), min(top+s.height, f.Height())

	src := s.canvas.Cells()
	for ty := y0; ty < y1; ty++ {
		row := (ty - top) * s.width
		for tx := x0; tx < x1; tx++ {
			cell := src[row+tx-left]
			if cell.IsTransparent() {
				continue
			}
			f.Plot(tx, ty, depth, cell)
		}
	}
}

func (s *Sprite) drawStepsAt(f *render.Frame, left, top, depth int) {
	if s.offscreen(f, left, top) {
		return
	}

	width, height := f.Width(), f.Height()
	px, py := left, top
	for _, run := range s.runs {
		for i, row := range run.rows {
			if i > 0 {
				py++
				px = left
				if py >= height {
					return
				}
			}

			if py < 0 {
				px += len(row)
				continue
			}

			for _, g := range row {
				if g != render.Transparent && px >= 0 && px < width {
					f.Plot(px, py, depth, render.Cell{Glyph: g, Fg: run.fg, Bg: run.bg})
				}
				px++
			}
		}
	}
}
