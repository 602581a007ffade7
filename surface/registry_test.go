// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"slices"
	"testing"
)

func recorderFactory(opts Options) (Surface, error) {
	return NewRecorder(opts.Width, opts.Height), nil
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, recorderFactory, nil)

	entry, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}
	if entry.Name != "test" || entry.Priority != 50 {
		t.Errorf("entry = %+v", entry)
	}
	if !entry.Available() {
		t.Error("nil Available func should mean always available")
	}

	r.Unregister("test")
	if _, ok := r.Get("test"); ok {
		t.Error("backend should not exist after Unregister")
	}
}

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, recorderFactory, nil)
	r.Register("high", 100, recorderFactory, nil)
	r.Register("mid-b", 50, recorderFactory, nil)
	r.Register("mid-a", 50, recorderFactory, nil)
	r.Register("off", 200, recorderFactory, func() bool { return false })

	if got, want := r.List(), []string{"off", "high", "mid-a", "mid-b", "low"}; !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
	if got, want := r.Available(), []string{"high", "mid-a", "mid-b", "low"}; !slices.Equal(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}
}

func TestRegistryNewSurface(t *testing.T) {
	r := NewRegistry()
	if _, err := r.NewSurface(Options{Width: 1, Height: 1}); !errors.Is(err, ErrNoBackendAvailable) {
		t.Fatalf("empty registry err = %v, want ErrNoBackendAvailable", err)
	}

	failing := errors.New("no device")
	r.Register("broken", 100, func(Options) (Surface, error) { return nil, failing }, nil)
	r.Register("fallback", 10, recorderFactory, nil)

	s, err := r.NewSurface(Options{Width: 30, Height: 20})
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if _, ok := s.(*Recorder); !ok {
		t.Errorf("NewSurface should fall back to the next backend, got %T", s)
	}
	if s.Width() != 30 || s.Height() != 20 {
		t.Errorf("size = %dx%d, want 30x20", s.Width(), s.Height())
	}

	r.Unregister("fallback")
	if _, err := r.NewSurface(Options{}); !errors.Is(err, failing) {
		t.Errorf("err = %v, want wrapped backend error", err)
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.Register("rec", 10, recorderFactory, nil)
	r.Register("gone", 50, recorderFactory, func() bool { return false })

	alloc, err := r.Lookup("rec")
	if err != nil {
		t.Fatalf("Lookup(rec): %v", err)
	}
	s, err := alloc(4, 5)
	if err != nil || s.Width() != 4 || s.Height() != 5 {
		t.Errorf("alloc(4, 5) = %v, %v", s, err)
	}

	var notFound *BackendNotFoundError
	if _, err := r.Lookup("missing"); !errors.As(err, &notFound) {
		t.Errorf("Lookup(missing) err = %v, want BackendNotFoundError", err)
	} else if !slices.Equal(notFound.Known, []string{"gone", "rec"}) {
		t.Errorf("Known = %v", notFound.Known)
	}

	var unavailable *BackendUnavailableError
	if _, err := r.Lookup("gone"); !errors.As(err, &unavailable) {
		t.Errorf("Lookup(gone) err = %v, want BackendUnavailableError", err)
	}

	auto, err := r.Lookup("")
	if err != nil {
		t.Fatalf("Lookup(\"\"): %v", err)
	}
	if _, err := auto(1, 1); err != nil {
		t.Errorf("auto allocator: %v", err)
	}
}

func TestBuiltinBackends(t *testing.T) {
	for _, name := range []string{BackendImage, BackendRecorder} {
		if _, ok := Get(name); !ok {
			t.Errorf("built-in backend %q not registered", name)
		}
	}

	s, err := NewSurfaceByName(BackendImage, 8, 8)
	if err != nil {
		t.Fatalf("NewSurfaceByName(image): %v", err)
	}
	defer s.Close()
	if _, ok := s.(*ImageSurface); !ok {
		t.Errorf("image backend returned %T", s)
	}

	if _, err := NewSurfaceByName(BackendRecorder, -1, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("negative size err = %v, want ErrInvalidDimensions", err)
	}
}
