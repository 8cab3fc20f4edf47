// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
)

// ImageCanvas is a CPU canvas that renders to an *image.RGBA.
//
// This is the default canvas implementation and the one used for
// headless rendering.
//
// Example:
//
//	c := surface.NewImageCanvas(800, 600)
//	defer c.Close()
//
//	c.Fill(color.Black)
//	// draw text...
//	_ = c.SavePNG("out.png")
type ImageCanvas struct {
	img *image.RGBA

	// closed tracks if Close has been called
	closed bool
}

// NewImageCanvas creates a new CPU canvas with the given dimensions.
// Non-positive dimensions are raised to 1.
func NewImageCanvas(width, height int) *ImageCanvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	slogger().Debug("surface: image canvas created", "width", width, "height", height)
	return &ImageCanvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewImageCanvasFromImage creates a canvas backed by an existing image.
// The canvas renders into the provided image directly; canvas coordinates
// are the image's coordinates.
func NewImageCanvasFromImage(img *image.RGBA) *ImageCanvas {
	return &ImageCanvas{img: img}
}

// Bounds returns the canvas rectangle.
func (c *ImageCanvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Fill sets every pixel to col.
func (c *ImageCanvas) Fill(col color.Color) {
	if c.closed {
		return
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// NewScratch implements Target.
func (c *ImageCanvas) NewScratch(width, height int) (Scratch, error) {
	if c.closed {
		return nil, ErrClosed
	}
	if err := CheckScratchSize(width, height); err != nil {
		return nil, err
	}
	return &imageScratch{
		owner: c,
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

// Copy implements Target.
func (c *ImageCanvas) Copy(src Scratch, dst image.Rectangle) error {
	if c.closed {
		return ErrClosed
	}
	s, ok := src.(*imageScratch)
	if !ok || s.owner != c {
		return ErrForeignScratch
	}
	if s.img == nil {
		return ErrReleased
	}
	if err := CheckCopy(s.Size(), dst); err != nil {
		return err
	}

	// draw.Draw clips dst to the canvas and shifts the source to match.
	draw.Draw(c.img, dst, s.img, image.Point{}, draw.Over)
	return nil
}

// Image returns the backing image. Drawing to the canvas modifies it.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// Snapshot returns a copy of the current canvas contents.
func (c *ImageCanvas) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}

// EncodePNG writes the canvas contents to w as PNG.
func (c *ImageCanvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the canvas contents to a PNG file.
func (c *ImageCanvas) SavePNG(path string) error {
	f, err := os.Create(path) // #nosec G304 -- output path is provided by the user
	if err != nil {
		return fmt.Errorf("surface: create %s: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	if err := c.EncodePNG(bw); err != nil {
		_ = f.Close()
		return fmt.Errorf("surface: encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("surface: write %s: %w", path, err)
	}
	return f.Close()
}

// Close releases the canvas. The backing image stays valid.
func (c *ImageCanvas) Close() error {
	c.closed = true
	return nil
}

// imageScratch is the Scratch created by ImageCanvas.
type imageScratch struct {
	owner *ImageCanvas
	img   *image.RGBA // nil after Release
	size  image.Point
}

// Size implements Scratch.
func (s *imageScratch) Size() image.Point {
	if s.img == nil {
		return s.size
	}
	return s.img.Bounds().Size()
}

// WritePixels implements Scratch.
func (s *imageScratch) WritePixels(pix []byte) error {
	if s.img == nil {
		return ErrReleased
	}
	if err := CheckPixels(s.Size(), pix); err != nil {
		return err
	}
	copy(s.img.Pix, pix)
	return nil
}

// Release implements Scratch.
func (s *imageScratch) Release() error {
	if s.img != nil {
		s.size = s.img.Bounds().Size()
		s.img = nil
	}
	return nil
}
