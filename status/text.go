package status

import (
	"sync/atomic"

	"github.com/mattn/go-runewidth"
)

// MaxTextWidth bounds stored labels in terminal cells
const MaxTextWidth = 24

// AtomicText holds a short label for display; the zero value reads ""
type AtomicText struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, truncated to MaxTextWidth cells
func (s *AtomicText) Store(val string) {
	val = runewidth.Truncate(val, MaxTextWidth, "")
	s.ptr.Store(&val)
}

// Load returns the label
func (s *AtomicText) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
