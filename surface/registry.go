// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"slices"
	"sync"
)

// Backend priorities used by the built-in backends.
const (
	PriorityWindow = 100
	PriorityImage  = 10
)

// CanvasFactory creates a new Canvas with the given options.
type CanvasFactory func(opts Options) (Canvas, error)

type backend struct {
	name      string
	priority  int
	factory   CanvasFactory
	available func() bool
}

// Registry is an ordered set of canvas backends.
//
// Backends register themselves from an init function:
//
//	func init() {
//	    surface.Register("ebiten", surface.PriorityWindow, newCanvas, available)
//	}
//
// The zero value is an empty registry ready to use.
type Registry struct {
	mu       sync.RWMutex
	backends []backend // highest priority first, then by name
}

var globalRegistry Registry

// Register adds a backend to the global registry.
// A nil available means the backend is always available.
// Registering an existing name replaces it.
func Register(name string, priority int, factory CanvasFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// List returns every backend in the global registry, best first.
func List() []string { return globalRegistry.List() }

// Available returns the backends in the global registry that can be used
// on this system, best first.
func Available() []string { return globalRegistry.Available() }

// NewCanvas creates a width x height canvas on the best available backend
// of the global registry.
func NewCanvas(width, height int) (Canvas, error) {
	return globalRegistry.NewCanvas(Options{Width: width, Height: height})
}

// NewCanvasByName creates a width x height canvas on the named backend of
// the global registry.
func NewCanvasByName(name string, width, height int) (Canvas, error) {
	return globalRegistry.NewCanvasByName(name, Options{Width: width, Height: height})
}

// Register adds a backend to r.
func (r *Registry) Register(name string, priority int, factory CanvasFactory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}
	b := backend{name: name, priority: priority, factory: factory, available: available}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.backends = slices.DeleteFunc(r.backends, func(o backend) bool { return o.name == name })
	i, _ := slices.BinarySearchFunc(r.backends, b, compareBackends)
	r.backends = slices.Insert(r.backends, i, b)
}

func compareBackends(a, b backend) int {
	if a.priority != b.priority {
		return b.priority - a.priority
	}
	switch {
	case a.name < b.name:
		return -1
	case a.name > b.name:
		return 1
	}
	return 0
}

// List returns every backend name in r, best first.
func (r *Registry) List() []string {
	return r.names(false)
}

// Available returns the names of backends in r that report themselves
// available, best first.
func (r *Registry) Available() []string {
	return r.names(true)
}

func (r *Registry) names(onlyAvailable bool) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for _, b := range r.backends {
		if onlyAvailable && !b.available() {
			continue
		}
		names = append(names, b.name)
	}
	return names
}

func (r *Registry) lookup(name string) (backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := slices.IndexFunc(r.backends, func(b backend) bool { return b.name == name })
	if i < 0 {
		return backend{}, false
	}
	return r.backends[i], true
}

// NewCanvas tries the available backends of r in order and returns the
// first canvas created. If every backend fails, the last error is returned.
func (r *Registry) NewCanvas(opts Options) (Canvas, error) {
	err := ErrNoBackendAvailable
	for _, name := range r.Available() {
		c, cerr := r.NewCanvasByName(name, opts)
		if cerr == nil {
			return c, nil
		}
		slogger().Warn("surface: backend failed, trying next", "backend", name, "err", cerr)
		err = cerr
	}
	return nil, err
}

// NewCanvasByName creates a canvas on the named backend of r.
func (r *Registry) NewCanvasByName(name string, opts Options) (Canvas, error) {
	b, ok := r.lookup(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !b.available() {
		return nil, &BackendUnavailableError{Name: name}
	}

	c, err := b.factory(opts)
	if err != nil {
		return nil, err
	}
	slogger().Info("surface: canvas created", "backend", name, "width", opts.Width, "height", opts.Height)
	return c, nil
}

func init() {
	Register("image", PriorityImage, func(opts Options) (Canvas, error) {
		if opts.Width <= 0 || opts.Height <= 0 {
			return nil, &SizeError{Width: opts.Width, Height: opts.Height}
		}
		c := NewImageCanvas(opts.Width, opts.Height)
		if opts.BackgroundColor != nil {
			c.Fill(opts.BackgroundColor)
		}
		return c, nil
	}, nil)
}

var _ Canvas = (*ImageCanvas)(nil)
