// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the drawing surfaces text is rendered onto.
//
// Rendering code depends only on Target, a two-method capability: create a
// small RGBA scratch resource, and composite it into a rectangle. Canvas
// extends Target with bounds, clearing and a lifetime, and is what programs
// create and own.
//
// # Canvas Types
//
//   - ImageCanvas: CPU rendering to *image.RGBA, also used headless
//   - backend/ebiten: GPU-backed *ebiten.Image shown in a window
//
// # Registry
//
// Backends register a factory under a name and priority:
//
//	surface.Register("ebiten", 100, newCanvas, nil)
//
//	// Later:
//	c, err := surface.NewCanvasByName("ebiten", 800, 600)
//
// The "image" backend is always registered.
//
// # Usage
//
//	c := surface.NewImageCanvas(800, 600)
//	defer c.Close()
//
//	c.Fill(color.Black)
//	s, _ := c.NewScratch(2, 1)
//	_ = s.WritePixels([]byte{255, 0, 0, 255, 0, 255, 0, 255})
//	_ = c.Copy(s, image.Rect(10, 10, 12, 11))
//	_ = s.Release()
//
// # References
//
//   - Cairo: https://cairographics.org/manual/cairo-Image-Surfaces.html
//   - Skia: https://skia.org/docs/user/api/skcanvas_overview/
package surface
