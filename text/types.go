package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16

// AlphaMode selects how glyph coverage is turned into output pixels.
type AlphaMode int

const (
	// AlphaOpaque scales the color channels by coverage and writes a fully
	// opaque alpha. Glyph edges fade toward black instead of blending with
	// the background.
	AlphaOpaque AlphaMode = iota

	// AlphaCoverage writes premultiplied pixels whose alpha equals coverage,
	// so edges blend with whatever is already on the target.
	AlphaCoverage
)

// String returns the string representation of the alpha mode.
func (m AlphaMode) String() string {
	switch m {
	case AlphaOpaque:
		return "opaque"
	case AlphaCoverage:
		return "coverage"
	default:
		return unknownStr
	}
}

// ParseAlphaMode returns the AlphaMode named by s ("opaque" or "coverage").
func ParseAlphaMode(s string) (AlphaMode, bool) {
	switch s {
	case "opaque", "":
		return AlphaOpaque, true
	case "coverage":
		return AlphaCoverage, true
	default:
		return AlphaOpaque, false
	}
}

// Rect represents a rectangle for glyph bounds.
type Rect struct {
	// Min is the top-left corner
	MinX, MinY float64
	// Max is the bottom-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}
