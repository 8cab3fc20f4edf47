// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// MaxScratchSize is the largest width or height a scratch resource may have.
const MaxScratchSize = 4096

// Scratch is a small RGBA resource owned by the Target that created it.
//
// Pixels are written as interleaved R, G, B, A bytes in premultiplied form,
// four bytes per pixel, rows packed without padding.
type Scratch interface {
	// Size returns the scratch dimensions in pixels.
	Size() image.Point

	// WritePixels replaces the scratch contents.
	// len(pix) must be 4 * width * height.
	WritePixels(pix []byte) error

	// Release frees the scratch. Released scratches cannot be written or copied.
	// Release is idempotent.
	Release() error
}

// Target is the capability text rendering needs from a drawing surface:
// create a scratch image and composite it into a rectangle.
//
// Targets are NOT thread-safe.
type Target interface {
	// NewScratch allocates a width x height scratch resource.
	NewScratch(width, height int) (Scratch, error)

	// Copy composites src onto the target at dst using source-over.
	// dst must have the same size as src; parts of dst outside the target
	// are clipped.
	Copy(src Scratch, dst image.Rectangle) error
}

// Canvas is a complete drawing surface: a Target with bounds, a way to
// clear it, and a lifetime.
//
// Example usage:
//
//	c := surface.NewImageCanvas(800, 600)
//	defer c.Close()
//
//	c.Fill(color.Black)
//	err := text.Render(c, source, "Hello", 32, 100, 100, color.RGBA{255, 255, 255, 255})
type Canvas interface {
	Target

	// Bounds returns the canvas rectangle, with Min at the origin.
	Bounds() image.Rectangle

	// Fill sets every pixel of the canvas to c.
	Fill(c color.Color)

	// Close releases all resources associated with the canvas.
	// After Close, the canvas must not be used.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Options configures canvas creation through the registry.
type Options struct {
	// Width is the canvas width in pixels.
	Width int

	// Height is the canvas height in pixels.
	Height int

	// BackgroundColor is the initial fill color.
	// Default: transparent
	BackgroundColor color.Color
}

// CheckScratchSize validates scratch dimensions for NewScratch
// implementations.
func CheckScratchSize(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxScratchSize || height > MaxScratchSize {
		return &SizeError{Width: width, Height: height}
	}
	return nil
}

// CheckPixels validates a WritePixels buffer against a scratch size.
func CheckPixels(size image.Point, pix []byte) error {
	if want := 4 * size.X * size.Y; len(pix) != want {
		return &PixelLengthError{Got: len(pix), Want: want}
	}
	return nil
}

// CheckCopy validates a Copy destination against a scratch size.
func CheckCopy(size image.Point, dst image.Rectangle) error {
	if dst.Size() != size {
		return &RectMismatchError{Scratch: size, Dst: dst}
	}
	return nil
}
