// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package highlight

import (
	"strings"
	"testing"
)

const goSource = `package main

func main() {
	println("hi")
}

func other() {}
`

func TestLanguage(t *testing.T) {
	h := New("")
	tests := []struct {
		filename string
		source   string
		want     string
	}{
		{"main.go", goSource, "Go"},
		{"script.py", "print('hi')\n", "Python"},
		{"/tmp/dir/README.md", "# Title\n", "Markdown"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := h.Language(tt.filename, []byte(tt.source)); got != tt.want {
				t.Errorf("Language(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestFilePreservesText(t *testing.T) {
	h := New("monokai")
	lines, err := h.File("main.go", goSource)
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Split(strings.TrimSuffix(goSource, "\n"), "\n")
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, line := range lines {
		if got := line.Text(); got != want[i] {
			t.Errorf("line %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestKeywordsShareStyle(t *testing.T) {
	h := New("monokai")
	lines, err := h.File("main.go", goSource)
	if err != nil {
		t.Fatal(err)
	}

	var keywords []Span
	for _, line := range lines {
		for _, span := range line {
			if span.Text == "func" {
				keywords = append(keywords, span)
			}
		}
	}
	if len(keywords) != 2 {
		t.Fatalf("found %d func keywords, want 2", len(keywords))
	}
	if keywords[0].Style == nil || keywords[0].Style.Colors.Foreground == nil {
		t.Fatalf("keyword style = %+v, want a foreground color", keywords[0].Style)
	}
	if keywords[0].Style != keywords[1].Style {
		t.Error("keywords do not share a style")
	}
}

func TestPlainTextHasNoStyle(t *testing.T) {
	h := New("monokai")
	lines, err := h.Lines("plaintext", "just words\nmore words")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, line := range lines {
		for _, span := range line {
			if span.Style != nil {
				t.Errorf("span %q has style %+v", span.Text, span.Style)
			}
		}
	}
}

func TestDefaultStyle(t *testing.T) {
	h := New("monokai")
	if h.Theme() != "monokai" {
		t.Errorf("Theme() = %q", h.Theme())
	}
	s := h.DefaultStyle()
	if s.Colors.Foreground == nil || s.Colors.Background == nil {
		t.Fatalf("DefaultStyle() = %+v, want both colors", s)
	}
	if *s.Colors.Background == *s.Colors.Foreground {
		t.Error("default foreground equals background")
	}
}

func TestUnknownThemeFallsBack(t *testing.T) {
	h := New("no-such-theme")
	if h.Theme() == "" {
		t.Error("fallback theme has no name")
	}
}
