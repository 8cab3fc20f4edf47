package text

import "image"

// Glyph is one character positioned on a line of text.
type Glyph struct {
	// Rune is the character this glyph represents.
	Rune rune

	// Index is the byte position in the original string of Rune.
	Index int

	// GID is the glyph index in the font (0 for characters the font lacks).
	GID GlyphID

	// Dot is the pen position: cursor x and baseline y.
	Dot image.Point

	// Bounds is the pixel bounding box of the glyph outline positioned at
	// Dot. It is the zero rectangle when the glyph has no visible pixels.
	Bounds image.Rectangle

	// Advance is how far the cursor moves after this glyph, in whole pixels.
	// It is independent of Bounds.
	Advance int

	outline *GlyphOutline
}

// Visible reports whether the glyph has a bounding box with positive
// width and height. Invisible glyphs are never drawn.
func (g Glyph) Visible() bool {
	return !g.Bounds.Empty()
}

// Target returns the rectangle the glyph image is composited into:
// Bounds' size placed at the cursor x with its bottom edge on the baseline.
func (g Glyph) Target() image.Rectangle {
	if !g.Visible() {
		return image.Rectangle{}
	}
	w, h := g.Bounds.Dx(), g.Bounds.Dy()
	return image.Rect(g.Dot.X, g.Dot.Y-h, g.Dot.X+w, g.Dot.Y)
}
