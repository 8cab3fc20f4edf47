package texter

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/texter/text"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}

	want := Config{
		Title:      "Texter",
		Width:      800,
		Height:     600,
		Text:       "Hello, alkis!",
		Scale:      32,
		X:          100,
		Y:          100,
		Color:      Color{255, 255, 255, 255},
		Background: Color{0, 0, 0, 255},
		Parser:     "ximage",
		Alpha:      "opaque",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("DefaultConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "invalid size"},
		{"negative height", func(c *Config) { c.Height = -1 }, "invalid size"},
		{"zero scale", func(c *Config) { c.Scale = 0 }, "scale must be positive"},
		{"unknown parser", func(c *Config) { c.Parser = "freetype" }, "unknown font parser"},
		{"unknown alpha", func(c *Config) { c.Alpha = "additive" }, "unknown alpha mode"},
		{"unknown normalization", func(c *Config) { c.Normalize = "nfkc" }, "unknown normalization"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Scale = -2
	if err := cfg.Validate(); !errors.Is(err, text.ErrInvalidScale) {
		t.Errorf("negative scale: got %v, want text.ErrInvalidScale", err)
	}

	cfg = DefaultConfig()
	cfg.Parser, cfg.Alpha, cfg.Normalize = "", "", "NFC"
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty parser and alpha should be accepted: %v", err)
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
text = "Bonjour"
scale = 48.5
x = 10
color = "#ff8000"
background = "202020"
alpha = "coverage"
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	want := DefaultConfig()
	want.Text = "Bonjour"
	want.Scale = 48.5
	want.X = 10
	want.Color = Color{R: 0xff, G: 0x80, B: 0x00, A: 0xff}
	want.Background = Color{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	want.Alpha = "coverage"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("ParseConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"unknown key", `colour = "#ffffff"`, "colour"},
		{"bad color", `color = "white"`, "invalid color"},
		{"wrong type", `scale = "big"`, "float64"},
		{"invalid value", `width = 0`, "invalid size"},
		{"syntax", `text = `, "config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			var ie *InitError
			if !errors.As(err, &ie) || ie.Stage != StageConfig {
				t.Fatalf("got %v, want *InitError at stage config", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texter.toml")
	if err := os.WriteFile(path, []byte("title = \"Demo\"\nwidth = 320\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Title != "Demo" || cfg.Width != 320 || cfg.Height != 600 {
		t.Errorf("LoadConfig = %+v", cfg)
	}

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) || !IsInitError(err) {
		t.Errorf("missing file: got %v", err)
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#000000", Color{0, 0, 0, 255}, false},
		{"#FFfF00", Color{255, 255, 0, 255}, false},
		{"1a2b3c", Color{0x1a, 0x2b, 0x3c, 255}, false},
		{"#fff", Color{}, true},
		{"#gg0000", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	c := Color{R: 0x12, G: 0xab, B: 0x00, A: 0xff}
	if c.String() != "#12ab00" {
		t.Errorf("String() = %q", c.String())
	}
	var back Color
	if err := back.Set(c.String()); err != nil || back != c {
		t.Errorf("Set(%q) = %v, %v", c.String(), back, err)
	}
	if got := color.RGBAModel.Convert(c); got != color.RGBA(c) {
		t.Errorf("Color does not convert as color.RGBA: %v", got)
	}
}
