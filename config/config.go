// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads the gridview configuration from YAML and watches it
// for changes.
//
// Example file:
//
//	font: Go_Mono:h15
//	theme: monokai
//	colors:
//	  foreground: "#f8f8f2"
//	  background: "#272822"
//	window:
//	  columns: 100
//	  rows: 30
//	  scale: 2
//	cursor:
//	  shape: vertical
//	  blink_wait: 700ms
//	  blink_on: 400ms
//	  blink_off: 250ms
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gg"

	"github.com/gogpu/gridview"
	"github.com/gogpu/gridview/shaping"
)

// ErrInvalid is matched by every validation error.
var ErrInvalid = errors.New("config: invalid value")

// Config is the gridview configuration.
type Config struct {
	// Font is a font setting such as "Go_Mono,Go:h14".
	Font string `yaml:"font"`

	// Theme names the syntax highlighting style.
	Theme string `yaml:"theme"`

	// Colors override the theme's default colors.
	Colors Colors `yaml:"colors"`

	Window Window `yaml:"window"`
	Cursor Cursor `yaml:"cursor"`

	// Backend names the surface backend. Empty selects the best available.
	Backend string `yaml:"backend"`

	// ShapingCache is the number of shaped strings kept. Zero means the
	// shaper's default.
	ShapingCache int `yaml:"shaping_cache"`
}

// Colors are hex colors such as "#1e1e2e". Empty means unset.
type Colors struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Special    string `yaml:"special"`
}

// Window is the size of the root grid.
type Window struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	Scale   float64 `yaml:"scale"`
}

// Cursor configures the cursor.
type Cursor struct {
	Shape          string        `yaml:"shape"`
	CellPercentage float64       `yaml:"cell_percentage"`
	BlinkWait      time.Duration `yaml:"blink_wait"`
	BlinkOn        time.Duration `yaml:"blink_on"`
	BlinkOff       time.Duration `yaml:"blink_off"`
	Animation      time.Duration `yaml:"animation"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Font:  shaping.DefaultFontOptions().String(),
		Theme: "catppuccin-mocha",
		Window: Window{
			Columns: 100,
			Rows:    30,
			Scale:   1,
		},
		Cursor: Cursor{
			Shape:     gridview.CursorBlock.String(),
			Animation: 80 * time.Millisecond,
		},
	}
}

// Load reads a configuration file. Missing keys keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML configuration over the defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Columns < 1 || c.Window.Rows < 1 {
		errs = append(errs, fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Columns, c.Window.Rows))
	}
	if c.Window.Scale < 0 {
		errs = append(errs, fmt.Errorf("%w: window scale %v", ErrInvalid, c.Window.Scale))
	}
	if c.ShapingCache < 0 {
		errs = append(errs, fmt.Errorf("%w: shaping_cache %d", ErrInvalid, c.ShapingCache))
	}
	if _, err := c.Cursor.shape(); err != nil {
		errs = append(errs, err)
	}
	if p := c.Cursor.CellPercentage; p < 0 || p > 1 {
		errs = append(errs, fmt.Errorf("%w: cursor cell_percentage %v", ErrInvalid, p))
	}
	if _, err := c.Colors.Style(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Style returns the colors as a default style. Unset colors stay nil.
func (c Colors) Style() (*gridview.Style, error) {
	var s gridview.Style
	for _, ch := range []struct {
		name  string
		value string
		dst   **gridview.Color
	}{
		{"foreground", c.Foreground, &s.Colors.Foreground},
		{"background", c.Background, &s.Colors.Background},
		{"special", c.Special, &s.Colors.Special},
	} {
		if ch.value == "" {
			continue
		}
		col, err := ParseColor(ch.value)
		if err != nil {
			return nil, fmt.Errorf("colors.%s: %w", ch.name, err)
		}
		*ch.dst = gridview.ColorPtr(col)
	}
	return &s, nil
}

// ParseColor parses a "#rgb" or "#rrggbb" color.
func ParseColor(s string) (gridview.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return gridview.Color{}, fmt.Errorf("%w: color %q", ErrInvalid, s)
	}
	c = c.Clamped()
	return gg.RGB(c.R, c.G, c.B), nil
}

// Settings returns the cursor state fields set by the configuration.
func (c Cursor) Settings() gridview.Cursor {
	shape, _ := c.shape()
	return gridview.Cursor{
		Shape:          shape,
		CellPercentage: c.CellPercentage,
		Enabled:        true,
		BlinkWait:      c.BlinkWait,
		BlinkOn:        c.BlinkOn,
		BlinkOff:       c.BlinkOff,
	}
}

func (c Cursor) shape() (gridview.CursorShape, error) {
	for _, s := range []gridview.CursorShape{gridview.CursorBlock, gridview.CursorVertical, gridview.CursorHorizontal} {
		if strings.EqualFold(c.Shape, s.String()) {
			return s, nil
		}
	}
	if c.Shape == "" {
		return gridview.CursorBlock, nil
	}
	return gridview.CursorBlock, fmt.Errorf("%w: cursor shape %q", ErrInvalid, c.Shape)
}
