package console

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	displayMu sync.Mutex
	display   tcell.Screen
)

// OpenScreen acquires and initializes the terminal screen
// Later calls return the same screen until CloseScreen
func OpenScreen() (tcell.Screen, error) {
	return openScreen(tcell.NewScreen)
}

func openScreen(factory func() (tcell.Screen, error)) (tcell.Screen, error) {
	displayMu.Lock()
	defer displayMu.Unlock()

	if display != nil {
		return display, nil
	}

	screen, err := factory()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()

	display = screen
	return display, nil
}

// CloseScreen restores the terminal; safe to call more than once
func CloseScreen() {
	displayMu.Lock()
	defer displayMu.Unlock()

	if display != nil {
		display.Fini()
		display = nil
	}
}

// ScreenSize reports the dimensions of the acquired screen, or zero when none is open
func ScreenSize() (int, int) {
	displayMu.Lock()
	defer displayMu.Unlock()

	if display == nil {
		return 0, 0
	}
	return display.Size()
}
