package charset

import (
	"sync"
	"testing"
)

func TestASCIIIsIdentity(t *testing.T) {
	table := Default()
	for r := rune(0x20); r < 0x7F; r++ {
		b, ok := table.Encode(r)
		if !ok {
			t.Fatalf("Expected %q to be encodable", r)
		}
		if b != byte(r) {
			t.Errorf("Expected %q to encode to 0x%02X, got 0x%02X", r, r, b)
		}
		if table.Rune(b) != r {
			t.Errorf("Expected 0x%02X to display as %q, got %q", b, r, table.Rune(b))
		}
	}
}

func TestBlockAndBoxGlyphs(t *testing.T) {
	table := Default()
	cases := map[rune]byte{
		'░': 0xB0,
		'▒': 0xB1,
		'▓': 0xB2,
		'█': 0xDB,
		'─': 0xC4,
		'═': 0xCD,
		'☺': 0x01,
		'⌂': 0x7F,
	}
	for r, want := range cases {
		if got := table.Glyph(r); got != want {
			t.Errorf("Glyph(%q): expected 0x%02X, got 0x%02X", r, want, got)
		}
		if got := table.Rune(want); got != r {
			t.Errorf("Rune(0x%02X): expected %q, got %q", want, r, got)
		}
	}
}

func TestUnknownRuneUsesReplacement(t *testing.T) {
	table := Default()
	if _, ok := table.Encode('世'); ok {
		t.Error("Expected CJK rune to be outside the code page")
	}
	if got := table.Glyph('世'); got != Replacement {
		t.Errorf("Expected replacement glyph, got 0x%02X", got)
	}
}

func TestTransparentGlyph(t *testing.T) {
	table := Default()
	if got := table.Glyph(0); got != 0 {
		t.Errorf("Expected NUL to map to glyph 0, got 0x%02X", got)
	}
	if got := table.Rune(0); got != ' ' {
		t.Errorf("Expected glyph 0 to display as space, got %q", got)
	}
}

func TestDefaultBuiltOnce(t *testing.T) {
	var wg sync.WaitGroup
	tables := make([]*Table, 16)
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i] = Default()
		}(i)
	}
	wg.Wait()

	for i, table := range tables {
		if table != tables[0] {
			t.Fatalf("Expected a single shared table, goroutine %d got a different one", i)
		}
	}
}
