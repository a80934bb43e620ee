package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/asscii/render"
)

func TestParsePlainTextUsesDefaults(t *testing.T) {
	steps := ParseSteps("hello\nworld")
	require.Len(t, steps, 1)
	assert.Equal(t, DrawStep{Fg: render.Gray, Bg: render.Black, Text: "hello\nworld"}, steps[0])
}

func TestParseEmpty(t *testing.T) {
	assert.Empty(t, ParseSteps(""))
	assert.Empty(t, ParseSteps("\x1b[31m"))
}

func TestParseStripsCarriageReturns(t *testing.T) {
	steps := ParseSteps("ab\r\ncd\r\n")
	require.Len(t, steps, 1)
	assert.Equal(t, "ab\ncd\n", steps[0].Text)
}

func TestParseColorCodes(t *testing.T) {
	tests := []struct {
		name   string
		params string
		fg, bg render.Color
	}{
		{"dim red", "31", render.DarkRed, render.Black},
		{"bright red", "1;31", render.Red, render.Black},
		{"modifier is order sensitive", "31;1", render.DarkRed, render.Black},
		{"dim black", "30", render.Black, render.Black},
		{"bright black", "1;30", render.DarkGray, render.Black},
		{"dim white", "37", render.Gray, render.Black},
		{"bright white", "1;37", render.White, render.Black},
		{"background", "44", render.Gray, render.DarkBlue},
		{"bright background", "5;44", render.Gray, render.Blue},
		{"bright fg does not brighten bg", "1;33;43", render.Yellow, render.DarkYellow},
		{"both bright", "1;5;36;46", render.Cyan, render.Cyan},
		{"reset clears everything", "1;5;31;41;0", render.Gray, render.Black},
		{"reset clears modifiers", "1;0;32", render.DarkGreen, render.Black},
		{"art tool markers are ignored", "29;39;35", render.DarkMagenta, render.Black},
		{"unknown code resets", "1;31;7", render.Gray, render.Black},
		{"malformed token resets", "1;31;x2", render.Gray, render.Black},
		{"empty parameter list resets", "", render.Gray, render.Black},
		{"padded token parses", " 32 ", render.DarkGreen, render.Black},
		{"last hue wins", "31;34", render.DarkBlue, render.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := ParseSteps("\x1b[" + tt.params + "mX")
			require.Len(t, steps, 1)
			assert.Equal(t, tt.fg, steps[0].Fg, "foreground")
			assert.Equal(t, tt.bg, steps[0].Bg, "background")
			assert.Equal(t, "X", steps[0].Text)
		})
	}
}

func TestParseColorsDoNotCarryAcrossSequences(t *testing.T) {
	steps := ParseSteps("\x1b[1;31;44mA\x1b[32mB")
	require.Len(t, steps, 2)
	assert.Equal(t, render.Red, steps[0].Fg)
	assert.Equal(t, render.DarkBlue, steps[0].Bg)
	assert.Equal(t, render.DarkGreen, steps[1].Fg)
	assert.Equal(t, render.Black, steps[1].Bg)
}

func TestParseLeadingText(t *testing.T) {
	steps := ParseSteps("hi\x1b[31mX")
	require.Len(t, steps, 2)
	assert.Equal(t, DrawStep{Fg: DefaultFg, Bg: DefaultBg, Text: "hi"}, steps[0])
	assert.Equal(t, DrawStep{Fg: render.DarkRed, Bg: render.Black, Text: "X"}, steps[1])
}

func TestParseMergesEqualColors(t *testing.T) {
	steps := ParseSteps("\x1b[31mA\x1b[0;31mB\x1b[31mC")
	require.Len(t, steps, 1)
	assert.Equal(t, "ABC", steps[0].Text)
}

func TestParseMergesBlankRuns(t *testing.T) {
	steps := ParseSteps("\x1b[31mA\x1b[32m\n\x00\x00\n\x1b[31mB")
	require.Len(t, steps, 1)
	assert.Equal(t, render.DarkRed, steps[0].Fg)
	assert.Equal(t, "A\n\x00\x00\nB", steps[0].Text)
}

func TestParseLeadingTextMergesWithDefaultSequence(t *testing.T) {
	steps := ParseSteps("a\x1b[0mb\x1b[36mc")
	require.Len(t, steps, 2)
	assert.Equal(t, "ab", steps[0].Text)
	assert.Equal(t, "c", steps[1].Text)
}

func TestParseUnterminatedSequence(t *testing.T) {
	steps := ParseSteps("\x1b[31X\x1b[32mY")
	require.Len(t, steps, 1)
	assert.Equal(t, DrawStep{Fg: render.DarkGreen, Bg: render.Black, Text: "Y"}, steps[0])
}

func TestParseNoZeroLengthSteps(t *testing.T) {
	steps := ParseSteps("\x1b[31m\x1b[32m\x1b[33mZ\x1b[34m\x1b[35m")
	for _, s := range steps {
		assert.NotEmpty(t, s.Text)
	}
	require.Len(t, steps, 1)
	assert.Equal(t, render.DarkYellow, steps[0].Fg)
}
