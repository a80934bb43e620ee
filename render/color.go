package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color indexes the fixed 16-entry console palette
// Bit 3 is the intensity bit, bits 0-2 are blue, green and red
type Color uint8

const (
	Black Color = iota
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Gray
	DarkGray
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

// PaletteSize is the number of addressable colors
const PaletteSize = 16

var colorNames = [PaletteSize]string{
	"Black", "DarkBlue", "DarkGreen", "DarkCyan",
	"DarkRed", "DarkMagenta", "DarkYellow", "Gray",
	"DarkGray", "Blue", "Green", "Cyan",
	"Red", "Magenta", "Yellow", "White",
}

func (c Color) String() string {
	if int(c) < PaletteSize {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Bright reports whether the intensity bit is set
func (c Color) Bright() bool {
	return c&0x08 != 0
}

// ColorMode selects how palette entries are sent to the terminal
type ColorMode uint8

const (
	// ColorMode16 uses the terminal's own 16 ANSI colors
	ColorMode16 ColorMode = iota
	// ColorModeTrueColor sends the fixed RGB values of the console palette
	ColorModeTrueColor
)

// ansi16 maps palette entries to tcell's named ANSI colors
var ansi16 = [PaletteSize]tcell.Color{
	tcell.ColorBlack, tcell.ColorNavy, tcell.ColorGreen, tcell.ColorTeal,
	tcell.ColorMaroon, tcell.ColorPurple, tcell.ColorOlive, tcell.ColorSilver,
	tcell.ColorGray, tcell.ColorBlue, tcell.ColorLime, tcell.ColorAqua,
	tcell.ColorRed, tcell.ColorFuchsia, tcell.ColorYellow, tcell.ColorWhite,
}

// consoleHex is the classic console RGB palette
var consoleHex = [PaletteSize]string{
	"#000000", "#000080", "#008000", "#008080",
	"#800000", "#800080", "#808000", "#c0c0c0",
	"#808080", "#0000ff", "#00ff00", "#00ffff",
	"#ff0000", "#ff00ff", "#ffff00", "#ffffff",
}

// Palette resolves palette entries to tcell styles
type Palette struct {
	colors [PaletteSize]tcell.Color
	styles [PaletteSize][PaletteSize]tcell.Style
	mode   ColorMode
}

// NewPalette builds the palette for the given mode
func NewPalette(mode ColorMode) *Palette {
	p := &Palette{mode: mode}
	switch mode {
	case ColorModeTrueColor:
		for i, hex := range consoleHex {
			c, err := colorful.Hex(hex)
			if err != nil {
				// Table is static; fall back to the named color
				p.colors[i] = ansi16[i]
				continue
			}
			r, g, b := c.RGB255()
			p.colors[i] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
	default:
		p.colors = ansi16
	}

	for fg := range p.colors {
		for bg := range p.colors {
			p.styles[fg][bg] = tcell.StyleDefault.Foreground(p.colors[fg]).Background(p.colors[bg])
		}
	}
	return p
}

// Mode returns the palette's color mode
func (p *Palette) Mode() ColorMode {
	return p.mode
}

// Color returns the terminal color of a palette entry
func (p *Palette) Color(c Color) tcell.Color {
	return p.colors[c&0x0F]
}

// Style returns the tcell style for a foreground/background pair
func (p *Palette) Style(fg, bg Color) tcell.Style {
	return p.styles[fg&0x0F][bg&0x0F]
}
