// Package config loads runtime settings from TOML over built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/asscii/render"
)

// DefaultConfigPath is read when no explicit path is given and the file exists
const DefaultConfigPath = "asscii.toml"

// Config holds every runtime setting
type Config struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	FPS       int    `toml:"fps"`
	Assets    string `toml:"assets"`
	DrawMode  string `toml:"draw_mode"`
	DepthRule string `toml:"depth_rule"`
	CarryOver bool   `toml:"carry_over"`
	ColorMode string `toml:"color_mode"`
	Audio     bool   `toml:"audio"`
	Debug     bool   `toml:"debug"`
	OffsetX   int    `toml:"offset_x"`
	OffsetY   int    `toml:"offset_y"`
	KeyHoldMs int    `toml:"key_hold_ms"`

	// Keys rebinds runes to logical keys, e.g. w = "up"
	Keys map[string]string `toml:"keys"`
}

// Default returns the built-in settings: a 120x45 field at 60 fps
func Default() *Config {
	return &Config{
		Width:     120,
		Height:    45,
		FPS:       60,
		Assets:    "assets",
		DrawMode:  "buffer",
		DepthRule: "less-equal",
		CarryOver: true,
		ColorMode: "16",
		Audio:     true,
		KeyHoldMs: 200,
	}
}

// Load resolves settings with priority: path > DefaultConfigPath > defaults
// An explicit path that does not exist is an error
func Load(path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultConfigPath); err != nil {
			return Default(), nil
		}
		path = DefaultConfigPath
	}
	return LoadFile(path)
}

// LoadFile decodes path over the defaults and validates the result
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML text over the defaults; used for embedded settings and tests
func Decode(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects sizes, rates and enum values the runtime cannot use
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.KeyHoldMs <= 0 {
		errs = append(errs, fmt.Errorf("key_hold_ms must be positive, got %d", c.KeyHoldMs))
	}
	if _, err := ParseDrawMode(c.DrawMode); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseDepthRule(c.DepthRule); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseColorMode(c.ColorMode); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// RenderOptions converts the validated enum strings
func (c *Config) RenderOptions() (render.DrawMode, render.DepthRule, render.ColorMode) {
	mode, _ := ParseDrawMode(c.DrawMode)
	rule, _ := ParseDepthRule(c.DepthRule)
	colors, _ := ParseColorMode(c.ColorMode)
	return mode, rule, colors
}

// KeyHold returns the key hold window
func (c *Config) KeyHold() time.Duration {
	return time.Duration(c.KeyHoldMs) * time.Millisecond
}

// ParseDrawMode maps "buffer" or "steps"
func ParseDrawMode(s string) (render.DrawMode, error) {
	switch s {
	case "buffer", "":
		return render.DrawBuffer, nil
	case "steps":
		return render.DrawSteps, nil
	}
	return render.DrawBuffer, fmt.Errorf("unknown draw_mode %q (want buffer or steps)", s)
}

// ParseDepthRule maps "less-equal" or "less"
func ParseDepthRule(s string) (render.DepthRule, error) {
	switch s {
	case "less-equal", "":
		return render.DepthLessEqual, nil
	case "less":
		return render.DepthLess, nil
	}
	return render.DepthLessEqual, fmt.Errorf("unknown depth_rule %q (want less-equal or less)", s)
}

// ParseColorMode maps "16" or "truecolor"
func ParseColorMode(s string) (render.ColorMode, error) {
	switch s {
	case "16", "":
		return render.ColorMode16, nil
	case "truecolor", "24bit":
		return render.ColorModeTrueColor, nil
	}
	return render.ColorMode16, fmt.Errorf("unknown color_mode %q (want 16 or truecolor)", s)
}
