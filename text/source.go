package text

import (
	"fmt"
	"math"
	"os"
	"sync"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different scales.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	data   []byte
	parsed ParsedFont // Abstracted font interface (pluggable backend)

	// emHeight is the ascent-to-descent span of one pixel per em.
	// Pixel-height scales divide by it to get ppem.
	emHeight float64

	// Metadata
	name string

	// mu guards data and parsed against Close.
	mu sync.RWMutex

	// Configuration
	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Options can be used to select the parser backend.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	// Apply options first to get parser name
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.parserName == "" {
		config.parserName = defaultParserName
	}

	// Get parser and parse the font
	parser, err := getParser(config.parserName)
	if err != nil {
		return nil, err
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	upem := parsed.UnitsPerEm()
	if upem <= 0 {
		return nil, ErrDegenerateFont
	}
	m := parsed.Metrics(float64(upem))
	emHeight := (m.Ascent + m.Descent) / float64(upem)
	if emHeight <= 0 || math.IsNaN(emHeight) {
		return nil, ErrDegenerateFont
	}

	// Copy the data
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:     dataCopy,
		parsed:   parsed,
		emHeight: emHeight,
		config:   config,
	}
	s.addr = s // Self-reference for copy detection

	s.name = extractFontName(parsed)

	slogger().Info("text: font loaded",
		"name", s.name,
		"parser", config.parserName,
		"glyphs", parsed.NumGlyphs(),
		"upem", upem)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Face creates a Face at the given pixel scale.
//
// The scale is a pixel height: the font's ascent-to-descent span is
// mapped onto scale pixels. It must be positive and finite.
func (s *FontSource) Face(scale float64) (*Face, error) {
	if s == nil {
		return nil, ErrNilSource
	}
	s.copyCheck()

	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}

	parsed := s.Parsed()
	if parsed == nil {
		return nil, ErrNilSource
	}

	return &Face{
		source: s,
		parsed: parsed,
		scale:  scale,
		ppem:   scale / s.emHeight,
	}, nil
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parser returns the name of the parser backend that loaded the font.
func (s *FontSource) Parser() string {
	s.copyCheck()
	return s.config.parserName
}

// Parsed returns the parsed font for advanced operations.
// Returns nil after Close.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// Close releases resources associated with the FontSource.
// Faces created from this source keep working until they are dropped;
// new faces cannot be created.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.parsed = nil

	return nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	// Try to get the family name
	if name := parsed.Name(); name != "" {
		return name
	}

	// Try full name as fallback
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}

	// Fallback
	return "Unknown Font"
}
