// Package input turns terminal key events into held-key state the scene can poll
package input

import "github.com/gdamore/tcell/v2"

// Key is a logical key the runtime can query
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyZ
	KeyX
	KeyEscape

	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:   "none",
	KeyLeft:   "left",
	KeyUp:     "up",
	KeyRight:  "right",
	KeyDown:   "down",
	KeyZ:      "z",
	KeyX:      "x",
	KeyEscape: "escape",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// KeyTable maps terminal keys to logical keys
type KeyTable struct {
	// Special keys (arrows, escape)
	Special map[tcell.Key]Key
	// Printable runes, case sensitive
	Runes map[rune]Key
	// Keys that end the loop
	Quit map[tcell.Key]bool
}

// DefaultKeyTable binds arrows and hjkl to directions, z/x to rate control
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Special: map[tcell.Key]Key{
			tcell.KeyLeft:   KeyLeft,
			tcell.KeyUp:     KeyUp,
			tcell.KeyRight:  KeyRight,
			tcell.KeyDown:   KeyDown,
			tcell.KeyEscape: KeyEscape,
		},
		Runes: map[rune]Key{
			'h': KeyLeft,
			'k': KeyUp,
			'l': KeyRight,
			'j': KeyDown,
			'z': KeyZ,
			'Z': KeyZ,
			'x': KeyX,
			'X': KeyX,
		},
		Quit: map[tcell.Key]bool{
			tcell.KeyEscape: true,
			tcell.KeyCtrlC:  true,
		},
	}
}

// Lookup resolves a key event to a logical key
func (t *KeyTable) Lookup(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.Special[ev.Key()]
}

// IsQuit reports whether the event should end the loop
func (t *KeyTable) IsQuit(ev *tcell.EventKey) bool {
	return t.Quit[ev.Key()]
}
