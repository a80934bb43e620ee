package input

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHold is how long a key counts as pressed after its last press event
// Terminals send repeats while a key is held but never a release
const DefaultHold = 200 * time.Millisecond

// Keyboard records the last press time of each key
// The poller writes, the ticker reads; all state is atomic
type Keyboard struct {
	table   *KeyTable
	hold    atomic.Int64
	now     func() time.Time
	pressed [keyCount]atomic.Int64
}

// NewKeyboard creates a keyboard with the default bindings
func NewKeyboard() *Keyboard {
	return NewKeyboardWith(DefaultKeyTable(), DefaultHold, time.Now)
}

// NewKeyboardWith creates a keyboard with explicit bindings, hold window and time source
// A nil table or time source selects the default
func NewKeyboardWith(table *KeyTable, hold time.Duration, now func() time.Time) *Keyboard {
	if table == nil {
		table = DefaultKeyTable()
	}
	if now == nil {
		now = time.Now
	}
	k := &Keyboard{table: table, now: now}
	k.hold.Store(int64(hold))
	return k
}

// SetHold changes the hold window
func (k *Keyboard) SetHold(hold time.Duration) {
	k.hold.Store(int64(hold))
}

// Press marks key as pressed now
func (k *Keyboard) Press(key Key) {
	if key == KeyNone || key >= keyCount {
		return
	}
	k.pressed[key].Store(k.now().UnixNano())
}

// Release clears key immediately
func (k *Keyboard) Release(key Key) {
	if key < keyCount {
		k.pressed[key].Store(0)
	}
}

// IsPressed reports whether key was pressed within the hold window
func (k *Keyboard) IsPressed(key Key) bool {
	if key == KeyNone || key >= keyCount {
		return false
	}
	at := k.pressed[key].Load()
	if at == 0 {
		return false
	}
	return k.now().UnixNano()-at < k.hold.Load()
}

// HandleEvent records key events and reports whether the event asks to quit
func (k *Keyboard) HandleEvent(ev tcell.Event) bool {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	k.Press(k.table.Lookup(kev))
	return k.table.IsQuit(kev)
}

// Poll feeds screen events into kb until the screen is finalized
// onQuit runs for every quit key; after ctx ends the next event returns
func Poll(ctx context.Context, screen tcell.Screen, kb *Keyboard, onQuit func()) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if kb.HandleEvent(ev) && onQuit != nil {
			onQuit()
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
