// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
)

// Errors.
var (
	// ErrNoBackendAvailable is returned when no canvas backends are registered
	// or available on the current system.
	ErrNoBackendAvailable = errors.New("surface: no backend available")

	// ErrInvalidSize is matched by SizeError.
	ErrInvalidSize = errors.New("surface: invalid size")

	// ErrPixelLength is matched by PixelLengthError.
	ErrPixelLength = errors.New("surface: pixel buffer length mismatch")

	// ErrRectMismatch is matched by RectMismatchError.
	ErrRectMismatch = errors.New("surface: destination size differs from scratch")

	// ErrReleased is returned when using a released scratch.
	ErrReleased = errors.New("surface: scratch released")

	// ErrForeignScratch is returned when copying a scratch created by a
	// different canvas.
	ErrForeignScratch = errors.New("surface: scratch belongs to another canvas")

	// ErrClosed is returned when using a closed canvas.
	ErrClosed = errors.New("surface: canvas closed")
)

// SizeError reports scratch or canvas dimensions out of range.
type SizeError struct {
	Width, Height int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("surface: invalid size %dx%d (max %d)", e.Width, e.Height, MaxScratchSize)
}

// Is reports ErrInvalidSize as a match.
func (e *SizeError) Is(target error) bool { return target == ErrInvalidSize }

// PixelLengthError reports a WritePixels buffer of the wrong length.
type PixelLengthError struct {
	Got, Want int
}

func (e *PixelLengthError) Error() string {
	return fmt.Sprintf("surface: pixel buffer has %d bytes, want %d", e.Got, e.Want)
}

// Is reports ErrPixelLength as a match.
func (e *PixelLengthError) Is(target error) bool { return target == ErrPixelLength }

// RectMismatchError reports a Copy destination whose size differs from the
// scratch being copied.
type RectMismatchError struct {
	Scratch image.Point
	Dst     image.Rectangle
}

func (e *RectMismatchError) Error() string {
	return fmt.Sprintf("surface: destination %v does not match scratch size %v", e.Dst, e.Scratch)
}

// Is reports ErrRectMismatch as a match.
func (e *RectMismatchError) Is(target error) bool { return target == ErrRectMismatch }

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}
