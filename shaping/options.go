// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shaping

import (
	"slices"
	"strconv"
	"strings"
)

// DefaultFontSize is the pixel size used when a font setting omits one.
const DefaultFontSize = 14.0

// FontOptions is a parsed font setting.
type FontOptions struct {
	// Families lists family names in fallback order.
	Families []string

	// Size is the font size in pixels.
	Size float64
}

// DefaultFontOptions returns Go Mono at DefaultFontSize.
func DefaultFontOptions() FontOptions {
	return FontOptions{Families: []string{FamilyGoMono}, Size: DefaultFontSize}
}

// ParseFontOptions parses a font setting of the form
//
//	Family[,Fallback...][:hSIZE][:other...]
//
// Underscores in family names stand for spaces. Unrecognized options are
// ignored. Missing parts keep their defaults.
func ParseFontOptions(setting string) FontOptions {
	opts := DefaultFontOptions()

	parts := strings.Split(setting, ":")
	if names := parseFamilies(parts[0]); len(names) > 0 {
		opts.Families = names
	}

	for _, part := range parts[1:] {
		if !strings.HasPrefix(part, "h") {
			continue
		}
		size, err := strconv.ParseFloat(part[1:], 64)
		if err != nil || size <= 0 {
			continue
		}
		opts.Size = size
	}
	return opts
}

func parseFamilies(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(strings.ReplaceAll(name, "_", " "))
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Equal reports whether o and other describe the same font configuration.
func (o FontOptions) Equal(other FontOptions) bool {
	return o.Size == other.Size && slices.Equal(o.Families, other.Families)
}

// String formats o back into setting syntax.
func (o FontOptions) String() string {
	names := make([]string, len(o.Families))
	for i, name := range o.Families {
		names[i] = strings.ReplaceAll(name, " ", "_")
	}
	return strings.Join(names, ",") + ":h" + strconv.FormatFloat(o.Size, 'g', -1, 64)
}
