// Package text draws single lines of text onto a surface.Target.
//
// The pipeline has three pieces:
//
//   - FontSource: a parsed font file, shared across the application
//   - Face: a FontSource at one pixel scale, which positions and rasterizes glyphs
//   - Renderer: shades glyph coverage with a color and composites each glyph
//     onto a target
//
// # Example usage
//
//	source, err := text.NewFontSource(gomonobold.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	canvas := surface.NewImageCanvas(800, 600)
//	canvas.Fill(color.Black)
//
//	white := color.RGBA{255, 255, 255, 255}
//	if err := text.Render(canvas, source, "Hello!", 32, 100, 100, white); err != nil {
//	    log.Fatal(err)
//	}
//
// # Scale and placement
//
// The scale passed to Render and FontSource.Face is a pixel height: the
// font's ascent-to-descent span is mapped onto that many pixels. Text drawn
// at origin (x, y) has its baseline at y plus the truncated ascent. Every
// character advances the pen by its truncated advance width; there is no
// kerning, shaping or line breaking.
//
// # Pluggable parser backend
//
// Font parsing is abstracted through the FontParser interface.
// Two parsers are registered:
//
//   - "ximage": golang.org/x/image/font/opentype (default)
//   - "gotext": github.com/go-text/typesetting
//
// Select one with WithParser:
//
//	source, err := text.NewFontSource(data, text.WithParser(text.ParserGoText))
//
// Both produce outlines that are rasterized by golang.org/x/image/vector,
// so the same font renders the same coverage whichever parser loaded it.
//
// # Alpha
//
// By default glyph pixels are written fully opaque with the color scaled by
// coverage, so antialiased edges fade to black. WithAlphaMode(AlphaCoverage)
// writes premultiplied alpha instead and edges blend with the target.
package text
