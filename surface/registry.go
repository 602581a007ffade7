// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Built-in backend names.
const (
	BackendImage    = "image"
	BackendRecorder = "recorder"
)

// SurfaceFactory creates a new Surface with the given options.
type SurfaceFactory func(opts Options) (Surface, error)

// Allocator creates surfaces of a given size. The frame renderer allocates
// every window surface through one.
type Allocator func(width, height int) (Surface, error)

// RegistryEntry describes a registered surface backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// GPU-backed targets use 100, the built-in image backend 10.
	Priority int

	// Factory creates surface instances.
	Factory SurfaceFactory

	// Available reports if the backend can be used on this system.
	Available func() bool
}

// Registry maps backend names to surface factories.
//
// A host program that owns a window can register its own render target:
//
//	func init() {
//	    surface.Register("swapchain", 100, newSwapchainSurface, haveDisplay)
//	}
//
// and the renderer picks it up through Lookup or NewSurface.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

var globalRegistry = NewRegistry()

// NewRegistry creates an empty registry.
// Most code uses the global registry through the package functions.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*RegistryEntry)}
}

// Register adds a backend to the global registry.
// A nil available function means the backend is always available.
// Registering an existing name replaces it.
func Register(name string, priority int, factory SurfaceFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names by priority, highest first.
func List() []string {
	return globalRegistry.List()
}

// Available returns the names of available backends by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns a copy of a backend's entry.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// NewSurface creates a surface with the best available backend.
func NewSurface(width, height int) (Surface, error) {
	return globalRegistry.NewSurface(Options{Width: width, Height: height})
}

// NewSurfaceByName creates a surface with the named backend.
func NewSurfaceByName(name string, width, height int) (Surface, error) {
	return globalRegistry.NewSurfaceByName(name, Options{Width: width, Height: height})
}

// Lookup returns an Allocator for the named backend from the global
// registry. An empty name selects the best available backend.
func Lookup(name string) (Allocator, error) {
	return globalRegistry.Lookup(name)
}

// Register adds a backend to r.
func (r *Registry) Register(name string, priority int, factory SurfaceFactory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from r.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// List returns all backend names in r by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames(false)
}

// Available returns the names of available backends in r by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames(true)
}

// Get returns a copy of a backend's entry.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	e := *entry
	return &e, true
}

// NewSurface tries each available backend in priority order and returns
// the first surface created.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	r.mu.RLock()
	names := r.sortedNames(true)
	r.mu.RUnlock()

	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var errs []error
	for _, name := range names {
		s, err := r.NewSurfaceByName(name, opts)
		if err == nil {
			return s, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", name, err))
	}
	return nil, errors.Join(errs...)
}

// NewSurfaceByName creates a surface with the named backend.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name, Known: r.List()}
	}
	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return entry.Factory(opts)
}

// Lookup returns an Allocator bound to the named backend. The backend is
// checked once here; an empty name defers to NewSurface on every call.
func (r *Registry) Lookup(name string) (Allocator, error) {
	if name == "" {
		return func(w, h int) (Surface, error) {
			return r.NewSurface(Options{Width: w, Height: h})
		}, nil
	}

	entry, ok := r.Get(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name, Known: r.List()}
	}
	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return func(w, h int) (Surface, error) {
		return entry.Factory(Options{Width: w, Height: h})
	}, nil
}

// sortedNames returns backend names by priority, highest first, with ties
// broken by name. Must be called with the lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b *RegistryEntry) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// ErrNoBackendAvailable is returned when no surface backend is registered
// or available.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name  string
	Known []string
}

func (e *BackendNotFoundError) Error() string {
	return fmt.Sprintf("surface: backend not found: %s (registered: %s)", e.Name, strings.Join(e.Known, ", "))
}

// BackendUnavailableError indicates a backend exists but cannot be used.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

// init registers the built-in backends. The recorder has the lowest
// priority, so NewSurface only reaches it when every other backend fails.
func init() {
	Register(BackendImage, 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height)
	}, nil)
	Register(BackendRecorder, 0, func(opts Options) (Surface, error) {
		if opts.Width < 0 || opts.Height < 0 {
			return nil, ErrInvalidDimensions
		}
		return NewRecorder(opts.Width, opts.Height), nil
	}, nil)
}
