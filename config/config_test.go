// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/gridview"
)

func sameColor(a, b gridview.Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
font: Go:h18
theme: monokai
colors:
  foreground: "#ffffff"
  background: "#000"
window:
  columns: 80
  rows: 24
  scale: 2
cursor:
  shape: Vertical
  cell_percentage: 0.5
  blink_wait: 700ms
  blink_on: 400ms
  blink_off: 250ms
backend: image
shaping_cache: 100
`)
	c, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	if c.Font != "Go:h18" || c.Theme != "monokai" || c.Backend != "image" || c.ShapingCache != 100 {
		t.Errorf("Parse() = %+v", c)
	}
	if c.Window != (Window{Columns: 80, Rows: 24, Scale: 2}) {
		t.Errorf("Window = %+v", c.Window)
	}
	if c.Cursor.Animation != 80*time.Millisecond {
		t.Errorf("unset animation = %v, want default", c.Cursor.Animation)
	}

	cur := c.Cursor.Settings()
	want := gridview.Cursor{
		Shape:          gridview.CursorVertical,
		CellPercentage: 0.5,
		Enabled:        true,
		BlinkWait:      700 * time.Millisecond,
		BlinkOn:        400 * time.Millisecond,
		BlinkOff:       250 * time.Millisecond,
	}
	if cur != want {
		t.Errorf("Settings() = %+v, want %+v", cur, want)
	}

	style, err := c.Colors.Style()
	if err != nil {
		t.Fatal(err)
	}
	if !sameColor(*style.Colors.Foreground, gg.RGB(1, 1, 1)) || !sameColor(*style.Colors.Background, gg.RGB(0, 0, 0)) || style.Colors.Special != nil {
		t.Errorf("Style() = %+v", style)
	}
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if c != Default() {
		t.Errorf("Parse(nil) = %+v, want defaults", c)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"unknown key", "fonts: Go\n", false},
		{"bad yaml", "window: [\n", false},
		{"zero columns", "window: {columns: 0}\n", true},
		{"negative scale", "window: {scale: -1}\n", true},
		{"bad color", "colors: {foreground: purple}\n", true},
		{"bad shape", "cursor: {shape: triangle}\n", true},
		{"bad percentage", "cursor: {cell_percentage: 2}\n", true},
		{"negative cache", "shaping_cache: -5\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(ErrInvalid) = %v, want %v (err %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gridview.Color
		ok   bool
	}{
		{"#ff0000", gg.RGB(1, 0, 0), true},
		{" #00f ", gg.RGB(0, 0, 1), true},
		{"red", gridview.Color{}, false},
		{"#xyzxyz", gridview.Color{}, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColor(%q) error = %v", tt.in, err)
			continue
		}
		if tt.ok && !sameColor(got, tt.want) {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gridview.yaml")
	if err := os.WriteFile(path, []byte("font: Go_Mono:h20\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Font != "Go_Mono:h20" {
		t.Errorf("Font = %q", c.Font)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gridview.yaml")
	if err := os.WriteFile(path, []byte("font: Go_Mono:h12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reloaded := make(chan Config, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c Config) { reloaded <- c })
	}()

	// Keep writing until the watcher is up and reports the change.
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case c := <-reloaded:
			if c.Font == "Go_Mono:h16" {
				cancel()
				if err := <-done; !errors.Is(err, context.Canceled) {
					t.Errorf("Watch() error = %v, want Canceled", err)
				}
				return
			}
		case <-tick.C:
			if err := os.WriteFile(path, []byte("font: Go_Mono:h16\n"), 0o600); err != nil {
				t.Fatal(err)
			}
		case <-ctx.Done():
			t.Fatal("no reload observed")
		}
	}
}
