// Package charset maps between Unicode characters and the single-byte glyph
// codes stored in render cells. The mapping is code page 437, the code page
// used by ANSI art editors.
package charset

import (
	"sync"

	"golang.org/x/text/encoding/charmap"
)

// Replacement is the glyph code used for characters outside the code page
const Replacement byte = '?'

// graphics holds the CP437 pictographs for the control range 0x01-0x1F and
// 0x7F, which charmap decodes as control characters
var graphics = map[byte]rune{
	0x01: '☺', 0x02: '☻', 0x03: '♥', 0x04: '♦', 0x05: '♣', 0x06: '♠', 0x07: '•',
	0x08: '◘', 0x09: '○', 0x0A: '◙', 0x0B: '♂', 0x0C: '♀', 0x0D: '♪', 0x0E: '♫',
	0x0F: '☼', 0x10: '►', 0x11: '◄', 0x12: '↕', 0x13: '‼', 0x14: '¶', 0x15: '§',
	0x16: '▬', 0x17: '↨', 0x18: '↑', 0x19: '↓', 0x1A: '→', 0x1B: '←', 0x1C: '∟',
	0x1D: '↔', 0x1E: '▲', 0x1F: '▼', 0x7F: '⌂',
}

// Table is an immutable two-way glyph lookup, safe for concurrent use
type Table struct {
	encode  map[rune]byte
	display [256]rune
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table, building it on first use
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = build(charmap.CodePage437)
	})
	return defaultTable
}

func build(cm *charmap.Charmap) *Table {
	t := &Table{encode: make(map[rune]byte, 256+len(graphics))}

	for b := 0; b < 256; b++ {
		r := cm.DecodeByte(byte(b))
		t.encode[r] = byte(b)
		t.display[b] = r
	}

	for code, r := range graphics {
		t.encode[r] = code
		t.display[code] = r
	}
	// NUL is the transparency marker and has nothing to show
	t.display[0] = ' '

	return t
}

// Encode returns the glyph code for r and whether r is in the code page
func (t *Table) Encode(r rune) (byte, bool) {
	b, ok := t.encode[r]
	return b, ok
}

// Glyph returns the glyph code for r, or Replacement when r is not representable
func (t *Table) Glyph(r rune) byte {
	if b, ok := t.encode[r]; ok {
		return b
	}
	return Replacement
}

// Rune returns the character a glyph code is displayed as
func (t *Table) Rune(b byte) rune {
	return t.display[b]
}
