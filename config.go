package texter

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/texter/text"
)

// Config describes one run of the program: the window, the text and how to
// draw it. The zero value is not usable; start from DefaultConfig.
type Config struct {
	// Title is the window title.
	Title string `toml:"title"`

	// Width and Height are the window or image size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Text is the line of text to draw.
	Text string `toml:"text"`

	// Scale is the text pixel height.
	Scale float64 `toml:"scale"`

	// X and Y are the top-left origin of the text.
	X int `toml:"x"`
	Y int `toml:"y"`

	Color      Color `toml:"color"`
	Background Color `toml:"background"`

	// FontPath is a TTF or OTF file. Empty selects the embedded Go Mono Bold.
	FontPath string `toml:"font"`

	// Parser is the font parser name, see text.Parsers.
	Parser string `toml:"parser"`

	// Alpha is "opaque" or "coverage", see text.AlphaMode.
	Alpha string `toml:"alpha"`

	// Normalize is "", "nfc" or "nfd".
	Normalize string `toml:"normalize"`
}

// DefaultConfig returns the built-in configuration: white "Hello, alkis!"
// at 32 pixels, origin (100, 100), on a black 800x600 window titled "Texter".
func DefaultConfig() Config {
	return Config{
		Title:      "Texter",
		Width:      800,
		Height:     600,
		Text:       "Hello, alkis!",
		Scale:      32,
		X:          100,
		Y:          100,
		Color:      Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Background: Color{A: 0xff},
		Parser:     text.ParserXImage,
		Alpha:      text.AlphaOpaque.String(),
	}
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	case !(c.Scale > 0) || math.IsInf(c.Scale, 0):
		return fmt.Errorf("%w: %v", text.ErrInvalidScale, c.Scale)
	}
	if c.Parser != "" && !slices.Contains(text.Parsers(), c.Parser) {
		return fmt.Errorf("unknown font parser %q", c.Parser)
	}
	if _, ok := text.ParseAlphaMode(c.Alpha); !ok {
		return fmt.Errorf("unknown alpha mode %q", c.Alpha)
	}
	if _, err := c.normalization(); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads a TOML configuration file. Keys missing from the file
// keep their DefaultConfig values; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is provided by the user
	if err != nil {
		return Config{}, initError(StageConfig, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a TOML configuration on top of DefaultConfig and
// validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var missing *toml.StrictMissingError
		if errors.As(err, &missing) {
			return Config{}, initError(StageConfig, fmt.Errorf("unknown keys:\n%s", missing.String()))
		}
		return Config{}, initError(StageConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, initError(StageConfig, err)
	}
	return cfg, nil
}

// Color is an opaque RGB color written as "#rrggbb" in configuration files.
type Color color.RGBA

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

// String formats c as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Set implements flag.Value.
func (c *Color) Set(s string) error {
	return c.UnmarshalText([]byte(s))
}

// ParseColor parses "#rrggbb". The leading '#' is optional.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func (c Config) normalization() (text.RenderOption, error) {
	switch strings.ToLower(c.Normalize) {
	case "":
		return nil, nil
	case "nfc":
		return text.WithNormalization(norm.NFC), nil
	case "nfd":
		return text.WithNormalization(norm.NFD), nil
	default:
		return nil, fmt.Errorf("unknown normalization %q", c.Normalize)
	}
}
