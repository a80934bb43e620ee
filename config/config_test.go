package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/asscii/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asscii.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	mode, rule, colors := cfg.RenderOptions()
	assert.Equal(t, render.DrawBuffer, mode)
	assert.Equal(t, render.DepthLessEqual, rule)
	assert.Equal(t, render.ColorMode16, colors)
	assert.True(t, cfg.CarryOver)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
width = 80
fps = 30
draw_mode = "steps"
depth_rule = "less"
carry_over = false
color_mode = "truecolor"
offset_x = 2

[keys]
w = "up"
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Width)
	assert.Equal(t, 45, cfg.Height)
	assert.Equal(t, 30, cfg.FPS)
	assert.False(t, cfg.CarryOver)
	assert.Equal(t, 2, cfg.OffsetX)
	assert.Equal(t, map[string]string{"w": "up"}, cfg.Keys)

	mode, rule, colors := cfg.RenderOptions()
	assert.Equal(t, render.DrawSteps, mode)
	assert.Equal(t, render.DepthLess, rule)
	assert.Equal(t, render.ColorModeTrueColor, colors)
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "fps = 30\nframerate = 60\n")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "framerate")
}

func TestLoadFileRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero fps", "fps = 0", "fps must be positive"},
		{"negative width", "width = -1", "size must be positive"},
		{"draw mode", `draw_mode = "fast"`, "unknown draw_mode"},
		{"depth rule", `depth_rule = "greater"`, "unknown depth_rule"},
		{"color mode", `color_mode = "256"`, "unknown color_mode"},
		{"hold", "key_hold_ms = 0", "key_hold_ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadWithoutPathFallsBackToDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(DefaultConfigPath, []byte("fps = 24\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.FPS)
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode("fps = ")
	assert.Error(t, err)
}
