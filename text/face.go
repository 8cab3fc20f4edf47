package text

import (
	"image"
	"iter"
	"math"
)

// Face is a FontSource at one pixel scale.
// It positions and rasterizes glyphs; it holds no per-text state and is
// cheap to create for every render call.
//
// Face is safe for concurrent use if its ParsedFont is.
type Face struct {
	source *FontSource
	parsed ParsedFont
	scale  float64
	ppem   float64
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Scale returns the pixel height the face was created with.
func (f *Face) Scale() float64 {
	return f.scale
}

// PPEM returns the pixels per em that correspond to Scale.
func (f *Face) PPEM() float64 {
	return f.ppem
}

// Metrics returns the font metrics at this face's scale.
func (f *Face) Metrics() FontMetrics {
	return f.parsed.Metrics(f.ppem)
}

// Ascent returns the ascent in whole pixels, truncated toward zero.
// The baseline of text drawn at origin y is y + Ascent().
func (f *Face) Ascent() int {
	return int(f.Metrics().Ascent)
}

// Advance returns the horizontal advance of r in whole pixels,
// truncated toward zero.
func (f *Face) Advance(r rune) int {
	return int(f.parsed.GlyphAdvance(f.parsed.GlyphIndex(r), f.ppem))
}

// AdvanceString returns the sum of Advance over every character of s.
func (f *Face) AdvanceString(s string) int {
	total := 0
	for _, r := range s {
		total += f.Advance(r)
	}
	return total
}

// HasGlyph reports whether the font maps r to a glyph other than .notdef.
func (f *Face) HasGlyph(r rune) bool {
	return f.parsed.GlyphIndex(r) != 0
}

// Glyph positions r with its pen at dot (cursor x, baseline y).
// index is recorded in the result as the character's byte offset.
func (f *Face) Glyph(index int, r rune, dot image.Point) Glyph {
	gid := f.parsed.GlyphIndex(r)
	g := Glyph{
		Rune:    r,
		Index:   index,
		GID:     gid,
		Dot:     dot,
		Advance: int(f.parsed.GlyphAdvance(gid, f.ppem)),
	}

	outline, err := f.parsed.GlyphOutline(gid, f.ppem)
	if err != nil {
		slogger().Debug("text: glyph outline unavailable",
			"rune", string(r), "gid", gid, "err", err)
		return g
	}
	if outline.IsEmpty() {
		return g
	}

	b := outline.Bounds
	g.Bounds = image.Rect(
		dot.X+int(math.Floor(b.MinX)),
		dot.Y+int(math.Floor(b.MinY)),
		dot.X+int(math.Ceil(b.MaxX)),
		dot.Y+int(math.Ceil(b.MaxY)),
	)
	if g.Bounds.Empty() {
		g.Bounds = image.Rectangle{}
		return g
	}
	g.outline = outline
	return g
}

// Glyphs returns an iterator over the characters of s laid out on one line
// starting at origin. The pen starts at (origin.X, origin.Y + Ascent()) and
// moves right by each glyph's Advance; no kerning is applied.
//
// The iterator is lazy: nothing is computed for characters the caller
// does not reach.
func (f *Face) Glyphs(s string, origin image.Point) iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		dot := image.Pt(origin.X, origin.Y+f.Ascent())
		for i, r := range s {
			g := f.Glyph(i, r, dot)
			if !yield(g) {
				return
			}
			dot.X += g.Advance
		}
	}
}

// Rasterize renders the outline of g into a coverage mask the size of
// g.Bounds. It returns nil for glyphs that are not Visible.
func (f *Face) Rasterize(g Glyph) *CoverageMask {
	if !g.Visible() {
		return nil
	}
	return rasterizeOutline(g.outline, g.Bounds.Sub(g.Dot))
}
