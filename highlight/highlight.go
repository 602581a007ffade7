// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package highlight turns source files into lines of styled spans for the
// editor.
//
// Tokens come from Chroma. The language is detected from the file name and
// content with go-enry, falling back to Chroma's own matching. Spans of the
// same token type share one *gridview.Style, so the editor coalesces them
// into long runs.
package highlight

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"

	"github.com/gogpu/gg"

	"github.com/gogpu/gridview"
)

// DefaultTheme is the Chroma style used when none is named.
const DefaultTheme = "catppuccin-mocha"

// Span is a piece of a line drawn in one style. A nil Style means the
// default style.
type Span struct {
	Text  string
	Style *gridview.Style
}

// Line is one source line without its line break.
type Line []Span

// Text returns the line's text.
func (l Line) Text() string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Highlighter maps Chroma tokens to gridview styles. It is safe for
// concurrent use.
type Highlighter struct {
	theme *chroma.Style
	base  chroma.StyleEntry

	mu     sync.Mutex
	styles map[chroma.TokenType]*gridview.Style
}

// New creates a highlighter for a Chroma style name. Unknown names use
// Chroma's fallback style.
func New(theme string) *Highlighter {
	if theme == "" {
		theme = DefaultTheme
	}
	s := styles.Get(theme)
	return &Highlighter{
		theme:  s,
		base:   s.Get(chroma.Text),
		styles: make(map[chroma.TokenType]*gridview.Style),
	}
}

// Theme returns the name of the Chroma style in use.
func (h *Highlighter) Theme() string {
	return h.theme.Name
}

// DefaultStyle returns the theme's text and background colors, for use as
// the editor's default style.
func (h *Highlighter) DefaultStyle() *gridview.Style {
	var c gridview.Colors
	if h.base.Colour.IsSet() {
		c.Foreground = gridview.ColorPtr(color(h.base.Colour))
	}
	if h.base.Background.IsSet() {
		c.Background = gridview.ColorPtr(color(h.base.Background))
	}
	return &gridview.Style{Colors: c}
}

// Language returns the detected language of a file, or "" if unknown.
func (h *Highlighter) Language(filename string, source []byte) string {
	if lang := enry.GetLanguage(filepath.Base(filename), source); lang != "" {
		return lang
	}
	if l := lexers.Match(filename); l != nil {
		return l.Config().Name
	}
	return ""
}

// File highlights source as the language detected for filename.
func (h *Highlighter) File(filename, source string) ([]Line, error) {
	return h.Lines(h.Language(filename, []byte(source)), source)
}

// Lines highlights source as the named language. Unknown languages are
// analysed from the content, and as a last resort returned as plain text.
func (h *Highlighter) Lines(language, source string) ([]Line, error) {
	lexer := lexerFor(language, source)
	gridview.Logger().Debug("highlight: lexing", "language", language, "lexer", lexer.Config().Name)

	tokens, err := chroma.Tokenise(chroma.Coalesce(lexer), nil, source)
	if err != nil {
		return nil, err
	}

	var lines []Line
	for _, toks := range chroma.SplitTokensIntoLines(tokens) {
		line := make(Line, 0, len(toks))
		for _, tok := range toks {
			text := strings.TrimRight(tok.Value, "\r\n")
			if text == "" {
				continue
			}
			line = append(line, Span{Text: text, Style: h.style(tok.Type)})
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func lexerFor(language, source string) chroma.Lexer {
	if language != "" {
		if l := lexers.Get(language); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(source); l != nil {
		return l
	}
	return lexers.Fallback
}

// style returns the shared style of a token type, or nil when the token
// looks like plain text.
func (h *Highlighter) style(t chroma.TokenType) *gridview.Style {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.styles[t]; ok {
		return s
	}

	entry := h.theme.Get(t)
	s := &gridview.Style{
		Bold:      entry.Bold == chroma.Yes,
		Italic:    entry.Italic == chroma.Yes,
		Underline: entry.Underline == chroma.Yes,
	}
	if entry.Colour.IsSet() && entry.Colour != h.base.Colour {
		s.Colors.Foreground = gridview.ColorPtr(color(entry.Colour))
	}
	if entry.Background.IsSet() && entry.Background != h.base.Background {
		s.Colors.Background = gridview.ColorPtr(color(entry.Background))
	}
	if *s == (gridview.Style{}) {
		s = nil
	}
	h.styles[t] = s
	return s
}

func color(c chroma.Colour) gridview.Color {
	return gg.RGB(float64(c.Red())/255, float64(c.Green())/255, float64(c.Blue())/255)
}
