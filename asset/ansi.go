package asset

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/asscii/render"
)

// Escape is the control sequence introducer preceding every SGR code list
const Escape = "\x1b["

// Default colors of text outside any SGR sequence and after a reset
const (
	DefaultFg = render.Gray
	DefaultBg = render.Black
)

// Row and transparency markers inside step text
const (
	RowBreak        = '\n'
	TransparentMark = '\x00'
)

// DrawStep is a maximal run of art text sharing one color pair
// Text contains row breaks and transparency markers
type DrawStep struct {
	Fg   render.Color
	Bg   render.Color
	Text string
}

// hues maps SGR hue offsets 0-7 to the dim and bright palette entries
var hues = [8][2]render.Color{
	{render.Black, render.DarkGray},
	{render.DarkRed, render.Red},
	{render.DarkGreen, render.Green},
	{render.DarkYellow, render.Yellow},
	{render.DarkBlue, render.Blue},
	{render.DarkMagenta, render.Magenta},
	{render.DarkCyan, render.Cyan},
	{render.Gray, render.White},
}

func hue(offset int, bright bool) render.Color {
	if bright {
		return hues[offset][1]
	}
	return hues[offset][0]
}

// ParseSteps splits ANSI art into draw steps
// Malformed codes act as a reset; parsing never fails
func ParseSteps(text string) []DrawStep {
	text = strings.ReplaceAll(text, "\r", "")

	segments := splitSequences(text)
	steps := make([]DrawStep, 0, len(segments))

	i := 0
	if len(segments) > 0 && !strings.HasPrefix(text, Escape) {
		steps = append(steps, DrawStep{Fg: DefaultFg, Bg: DefaultBg, Text: segments[0]})
		i = 1
	}

	for ; i < len(segments); i++ {
		params, body, ok := strings.Cut(segments[i], "m")
		fg, bg := DefaultFg, DefaultBg
		if ok {
			fg, bg = resolveColors(params)
		} else {
			// Unterminated sequence: reset, nothing to draw
			body = ""
		}
		if body == "" {
			continue
		}

		if n := len(steps); n > 0 {
			last := &steps[n-1]
			if (last.Fg == fg && last.Bg == bg) || isBlank(body) {
				last.Text += body
				continue
			}
		}
		steps = append(steps, DrawStep{Fg: fg, Bg: bg, Text: body})
	}

	return steps
}

// splitSequences splits on the escape prefix dropping empty segments
func splitSequences(text string) []string {
	parts := strings.Split(text, Escape)
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// isBlank reports whether text holds only row breaks and transparency markers
func isBlank(text string) bool {
	return strings.Trim(text, "\n\x00") == ""
}

// resolveColors scans an SGR parameter list in order
func resolveColors(params string) (fg, bg render.Color) {
	fg, bg = DefaultFg, DefaultBg
	fgBright, bgBright := false, false

	for _, token := range strings.Split(params, ";") {
		code, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			code = 0
		}

		switch {
		case code == 1:
			fgBright = true
		case code == 5:
			bgBright = true
		case code >= 30 && code <= 37:
			fg = hue(code-30, fgBright)
		case code >= 40 && code <= 47:
			bg = hue(code-40, bgBright)
		case code == 29 || code == 39:
			// Art tool marker for an empty cell
		default:
			fgBright, bgBright = false, false
			fg, bg = DefaultFg, DefaultBg
		}
	}
	return fg, bg
}
