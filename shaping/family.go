// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shaping

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Names of the built-in families.
const (
	FamilyGoMono = "Go Mono"
	FamilyGo     = "Go"
)

// ErrUnknownFamily is returned when a family name is neither registered nor
// a readable font file.
var ErrUnknownFamily = errors.New("shaping: unknown font family")

// FontSet holds the four style variants of one family.
// Only Regular is required.
type FontSet struct {
	Regular    *Font
	Bold       *Font
	Italic     *Font
	BoldItalic *Font
}

// Variant returns the font for the requested style, falling back to the
// closest variant that exists.
func (s *FontSet) Variant(bold, italic bool) *Font {
	switch {
	case bold && italic && s.BoldItalic != nil:
		return s.BoldItalic
	case bold && s.Bold != nil:
		return s.Bold
	case italic && s.Italic != nil:
		return s.Italic
	default:
		return s.Regular
	}
}

// FamilyLoader produces a family's font set on first use.
type FamilyLoader func() (*FontSet, error)

type familyEntry struct {
	load FamilyLoader
	once sync.Once
	set  *FontSet
	err  error
}

var (
	familiesMu sync.RWMutex
	families   = map[string]*familyEntry{}
)

// RegisterFamily makes a family available to font settings under name.
// Names are matched case-insensitively. Registering an existing name
// replaces it.
func RegisterFamily(name string, load FamilyLoader) {
	familiesMu.Lock()
	defer familiesMu.Unlock()
	families[strings.ToLower(name)] = &familyEntry{load: load}
}

// Families returns the registered family names in sorted order.
func Families() []string {
	familiesMu.RLock()
	defer familiesMu.RUnlock()

	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupFamily resolves a family name. Registered names are tried first,
// then names ending in .ttf or .otf are loaded from disk as a single
// regular face.
func LookupFamily(name string) (*FontSet, error) {
	familiesMu.RLock()
	entry, ok := families[strings.ToLower(name)]
	familiesMu.RUnlock()

	if ok {
		entry.once.Do(func() {
			entry.set, entry.err = entry.load()
		})
		return entry.set, entry.err
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf":
		f, err := LoadFont(name)
		if err != nil {
			return nil, err
		}
		return &FontSet{Regular: f}, nil
	}
	return nil, ErrUnknownFamily
}

func embeddedFamily(name string, regular, bold, italic, boldItalic []byte) FamilyLoader {
	return func() (*FontSet, error) {
		var set FontSet
		for _, v := range []struct {
			dst  **Font
			data []byte
		}{
			{&set.Regular, regular},
			{&set.Bold, bold},
			{&set.Italic, italic},
			{&set.BoldItalic, boldItalic},
		} {
			f, err := NewFont(name, v.data)
			if err != nil {
				return nil, err
			}
			*v.dst = f
		}
		return &set, nil
	}
}

func init() {
	RegisterFamily(FamilyGoMono, embeddedFamily(FamilyGoMono,
		gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF))
	RegisterFamily(FamilyGo, embeddedFamily(FamilyGo,
		goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF))
}
