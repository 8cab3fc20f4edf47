// Package texter draws a single line of text into a window or an image.
//
// # Overview
//
// texter loads a TrueType or OpenType font, lays out a string along one
// baseline and composites each glyph onto a drawing surface. The program in
// cmd/texter opens an 800x600 window titled "Texter" and draws
// "Hello, alkis!" in white on black at a pixel height of 32.
//
// # Quick Start
//
//	import "github.com/gogpu/texter"
//
//	app, err := texter.NewApp(texter.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer app.Close()
//
//	// Headless: draw onto a CPU canvas and save it.
//	err = app.SavePNG("hello.png")
//
// # Architecture
//
// The module is organized into:
//   - texter: configuration, startup and the App that ties the pieces together
//   - text: fonts, glyph layout, rasterization and the glyph renderer
//   - surface: the Target and Canvas abstractions, the CPU ImageCanvas and
//     the backend registry
//   - backend/ebiten: a windowed Canvas and event loop
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel, X increases right and Y increases
// down. Text drawn at (x, y) has its baseline at y plus the font's ascent.
package texter
