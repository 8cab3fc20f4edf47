package text

import (
	"fmt"
	"sort"
	"sync"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/sfnt vs github.com/go-text/typesetting).
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// This interface abstracts the underlying font representation.
//
// All sizes are in pixels per em (ppem). Outline and metric coordinates
// are in pixels with the Y axis pointing down, origin on the baseline.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// FullName returns the full font name.
	// Returns empty string if not available.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 (.notdef) if the glyph is not found.
	GlyphIndex(r rune) GlyphID

	// GlyphAdvance returns the horizontal advance width of a glyph.
	GlyphAdvance(gid GlyphID, ppem float64) float64

	// GlyphOutline returns the vector outline of a glyph.
	// Glyphs without contours (spaces) return an empty outline, not an error.
	GlyphOutline(gid GlyphID, ppem float64) (*GlyphOutline, error)

	// Metrics returns the font metrics at the given size.
	Metrics(ppem float64) FontMetrics
}

// FontMetrics holds font-level metrics at a specific size.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (positive).
	Descent float64

	// LineGap is the recommended line gap between lines.
	LineGap float64
}

// Height returns the total line height (ascent + descent + line gap).
func (m FontMetrics) Height() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Parser names registered by this package.
const (
	ParserXImage = "ximage"
	ParserGoText = "gotext"
)

// defaultParserName is the name of the default parser.
const defaultParserName = ParserXImage

// parserRegistry holds registered font parsers.
var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		ParserXImage: &ximageParser{},
		ParserGoText: &gotextParser{},
	}
)

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// Parsers returns the names of all registered parsers, sorted.
func Parsers() []string {
	parserMu.RLock()
	defer parserMu.RUnlock()

	names := make([]string, 0, len(parserRegistry))
	for name := range parserRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// getParser returns the parser by name. An empty name selects the default.
func getParser(name string) (FontParser, error) {
	if name == "" {
		name = defaultParserName
	}

	parserMu.RLock()
	defer parserMu.RUnlock()

	p, ok := parserRegistry[name]
	if !ok {
		return nil, fmt.Errorf("text: unknown font parser %q", name)
	}
	return p, nil
}
