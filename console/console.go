// Package console owns the visible frame and flushes it to a tcell screen.
package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/asscii/charset"
	"github.com/lixenwraith/asscii/render"
)

// Options configures a console
type Options struct {
	// X, Y offset the frame on the screen at flush time
	X, Y      int
	Rule      render.DepthRule
	Mode      render.DrawMode
	ColorMode render.ColorMode
}

// Console is the display sink: a live frame plus the screen it is flushed to
// Only the ticker goroutine writes to it
type Console struct {
	screen  tcell.Screen
	frame   *render.Frame
	palette *render.Palette
	glyphs  *charset.Table
	blank   tcell.Style
	x, y    int
}

// New creates a console of the given size drawing onto screen
func New(screen tcell.Screen, width, height int, opts Options) *Console {
	frame := render.NewFrameWithRule(width, height, opts.Rule)
	frame.Mode = opts.Mode
	palette := render.NewPalette(opts.ColorMode)

	return &Console{
		screen:  screen,
		frame:   frame,
		palette: palette,
		glyphs:  charset.Default(),
		blank:   palette.Style(render.Gray, render.Black),
		x:       opts.X,
		y:       opts.Y,
	}
}

// Width returns the frame width
func (c *Console) Width() int {
	return c.frame.Width()
}

// Height returns the frame height
func (c *Console) Height() int {
	return c.frame.Height()
}

// Frame returns the live draw target
func (c *Console) Frame() *render.Frame {
	return c.frame
}

// Screen returns the underlying screen
func (c *Console) Screen() tcell.Screen {
	return c.screen
}

// Offset returns the screen position of the frame's top-left cell
func (c *Console) Offset() (int, int) {
	return c.x, c.y
}

// SetOffset moves the frame on the screen from the next flush on
func (c *Console) SetOffset(x, y int) {
	c.x, c.y = x, y
}

// Write inserts white-on-black text on one row, depth tested per cell
func (c *Console) Write(x, y, depth int, text string) {
	c.WriteColored(x, y, depth, text, render.White, render.Black)
}

// WriteColored inserts text with explicit colors
// Cells left of the frame are skipped, writing stops at the right edge
func (c *Console) WriteColored(x, y, depth int, text string, fg, bg render.Color) {
	width, height := c.frame.Width(), c.frame.Height()
	if x >= width || y < 0 || y >= height {
		return
	}

	px := x
	for _, r := range text {
		if px >= width {
			break
		}
		if px >= 0 {
			c.frame.Plot(px, y, depth, render.Cell{Glyph: c.glyphs.Glyph(r), Fg: fg, Bg: bg})
		}
		px++
	}
}

// Render flushes the frame to the screen in one Show and resets it
func (c *Console) Render() {
	canvas := c.frame.Canvas
	width := canvas.Width()

	for i, cell := range canvas.Cells() {
		r, style := ' ', c.blank
		if !cell.IsTransparent() {
			r = c.glyphs.Rune(cell.Glyph)
			style = c.palette.Style(cell.Fg, cell.Bg)
		}
		c.screen.SetContent(c.x+i%width, c.y+i/width, r, nil, style)
	}
	c.screen.Show()

	c.frame.Reset()
}
