// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridview

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSource is returned by NewRenderer without a snapshot source.
	ErrNilSource = errors.New("gridview: nil snapshot source")

	// ErrSurfaceAllocation is matched by every surface allocation failure.
	// The frame that hit it is incomplete.
	ErrSurfaceAllocation = errors.New("gridview: surface allocation failed")
)

// SurfaceError reports a window surface that could not be allocated.
// It matches both ErrSurfaceAllocation and the backend's error.
type SurfaceError struct {
	GridID        uint64
	Width, Height int
	Err           error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("gridview: allocate %dx%d surface for window %d: %v", e.Width, e.Height, e.GridID, e.Err)
}

func (e *SurfaceError) Unwrap() []error {
	return []error{ErrSurfaceAllocation, e.Err}
}
