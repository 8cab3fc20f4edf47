package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidScale is returned when a render scale is not a positive number.
	ErrInvalidScale = errors.New("text: scale must be positive")

	// ErrNilSource is returned when rendering with a nil or closed FontSource.
	ErrNilSource = errors.New("text: font source is nil or closed")

	// ErrNilTarget is returned when rendering onto a nil target.
	ErrNilTarget = errors.New("text: target is nil")

	// ErrDegenerateFont is returned when a font's ascent and descent span
	// no vertical distance, so no pixel scale can be derived from it.
	ErrDegenerateFont = errors.New("text: font has zero line height")
)

// Render operations reported by RenderError.
const (
	OpScratch = "scratch"
	OpWrite   = "write"
	OpCopy    = "copy"
)

// RenderError is returned when compositing a glyph onto a target fails.
// Glyphs before Index have already been drawn; nothing after it was.
type RenderError struct {
	// Index is the byte offset of the failing character in the text.
	Index int

	// Rune is the failing character.
	Rune rune

	// Op is the failing step: OpScratch, OpWrite or OpCopy.
	Op string

	// Err is the error reported by the target.
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("text: render %q at byte %d: %s: %v", e.Rune, e.Index, e.Op, e.Err)
}

// Unwrap returns the underlying target error.
func (e *RenderError) Unwrap() error {
	return e.Err
}
