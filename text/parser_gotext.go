package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
// It is selected with WithParser(ParserGoText).
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	ld, err := ot.NewLoader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	f, err := font.NewFont(ld)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	numGlyphs := 0
	if raw, err := ld.RawTable(ot.MustNewTag("maxp")); err == nil {
		if maxp, _, err := tables.ParseMaxp(raw); err == nil {
			numGlyphs = int(maxp.NumGlyphs)
		}
	}

	return &gotextParsedFont{
		face:      font.NewFace(f),
		numGlyphs: numGlyphs,
	}, nil
}

// gotextParsedFont implements ParsedFont using a go-text font.Face.
// font.Face caches lookups and is not safe for concurrent use, so every
// access goes through mu.
type gotextParsedFont struct {
	mu        sync.Mutex
	face      *font.Face
	numGlyphs int
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	return f.face.Describe().Family
}

// FullName implements ParsedFont.FullName.
// go-text exposes only the family name, so FullName is always empty.
func (f *gotextParsedFont) FullName() string {
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *gotextParsedFont) NumGlyphs() int {
	return f.numGlyphs
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) GlyphID {
	f.mu.Lock()
	defer f.mu.Unlock()

	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return GlyphID(gid) //nolint:gosec // glyph ids in sfnt fonts fit in uint16
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *gotextParsedFont) GlyphAdvance(gid GlyphID, ppem float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return float64(f.face.HorizontalAdvance(font.GID(gid))) * f.unitScale(ppem)
}

// GlyphOutline implements ParsedFont.GlyphOutline.
// Bitmap and SVG glyphs fall back to their outline when the font has one;
// otherwise they produce an empty outline.
func (f *gotextParsedFont) GlyphOutline(gid GlyphID, ppem float64) (*GlyphOutline, error) {
	f.mu.Lock()
	data := f.face.GlyphData(font.GID(gid))
	f.mu.Unlock()

	var src []font.Segment
	switch g := data.(type) {
	case font.GlyphOutline:
		src = g.Segments
	case font.GlyphSVG:
		src = g.Outline.Segments
	case font.GlyphBitmap:
		if g.Outline != nil {
			src = g.Outline.Segments
		}
	}

	scale := float32(f.unitScale(ppem))
	outline := &GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(src)),
		GID:      gid,
	}

	// go-text segments are in font units with Y pointing up.
	for _, seg := range src {
		var out OutlineSegment
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
		case ot.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
		case ot.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
		case ot.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
		default:
			continue
		}
		for i, p := range seg.ArgsSlice() {
			out.Points[i] = OutlinePoint{X: p.X * scale, Y: -p.Y * scale}
		}
		outline.Segments = append(outline.Segments, out)
	}

	outline.Bounds = outline.computeBounds()
	return outline, nil
}

// Metrics implements ParsedFont.Metrics.
func (f *gotextParsedFont) Metrics(ppem float64) FontMetrics {
	f.mu.Lock()
	defer f.mu.Unlock()

	ext, ok := f.face.FontHExtents()
	if !ok {
		return FontMetrics{}
	}

	s := f.unitScale(ppem)
	return FontMetrics{
		Ascent:  float64(ext.Ascender) * s,
		Descent: -float64(ext.Descender) * s,
		LineGap: float64(ext.LineGap) * s,
	}
}

// unitScale converts font units to pixels at ppem.
func (f *gotextParsedFont) unitScale(ppem float64) float64 {
	upem := f.face.Upem()
	if upem == 0 {
		return 0
	}
	return ppem / float64(upem)
}
