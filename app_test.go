package texter

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/texter/surface"
	"github.com/gogpu/texter/text"
)

func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()

	app, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestAppRenderImage(t *testing.T) {
	app := newTestApp(t, DefaultConfig())

	if app.Source().Name() != "Go Mono" {
		t.Errorf("default font = %q, want Go Mono", app.Source().Name())
	}

	img, err := app.RenderImage()
	if err != nil {
		t.Fatalf("RenderImage: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 800, 600) {
		t.Fatalf("bounds = %v, want 800x600", img.Bounds())
	}

	black := color.RGBA{A: 255}
	if got := img.RGBAAt(0, 0); got != black {
		t.Errorf("background pixel = %v, want black", got)
	}

	// All text lies right of and below the origin, inside one line height.
	var lit image.Rectangle
	for y := 0; y < 600; y++ {
		for x := 0; x < 800; x++ {
			p := img.RGBAAt(x, y)
			if p.A != 255 || p.R != p.G || p.G != p.B {
				t.Fatalf("pixel (%d,%d) = %v, want opaque gray", x, y, p)
			}
			if p.R > 0 {
				lit = lit.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	if lit.Empty() {
		t.Fatal("nothing was drawn")
	}
	if lit.Min.X < 100 || lit.Min.Y < 100 || lit.Max.Y > 100+32 {
		t.Errorf("lit area %v, want within x>=100 and 100<=y<=132", lit)
	}
}

func TestAppSavePNG(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 200, 60
	cfg.X, cfg.Y = 4, 4
	app := newTestApp(t, cfg)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := app.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 60 {
		t.Errorf("PNG size = %v", img.Bounds())
	}

	want, err := app.RenderImage()
	if err != nil {
		t.Fatal(err)
	}
	got := image.NewRGBA(img.Bounds())
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x++ {
			got.Set(x, y, img.At(x, y))
		}
	}
	if !bytes.Equal(got.Pix, want.Pix) {
		t.Error("PNG contents differ from RenderImage")
	}
}

func TestAppGoTextParser(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Parser = text.ParserGoText
	cfg.Normalize = "nfc"
	app := newTestApp(t, cfg)

	if app.Source().Parser() != text.ParserGoText {
		t.Errorf("Parser() = %q", app.Source().Parser())
	}
	if _, err := app.RenderImage(); err != nil {
		t.Fatalf("RenderImage: %v", err)
	}
}

func TestAppFontFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.FontPath = path
	app := newTestApp(t, cfg)
	if app.Source().Name() != "Go" {
		t.Errorf("font = %q, want Go", app.Source().Name())
	}
	if app.Config().FontPath != path {
		t.Errorf("Config().FontPath = %q", app.Config().FontPath)
	}
}

func TestNewAppErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		stage  string
	}{
		{"invalid config", func(c *Config) { c.Scale = 0 }, StageConfig},
		{"missing font", func(c *Config) { c.FontPath = "/nonexistent/font.ttf" }, StageFont},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			_, err := NewApp(cfg)
			var ie *InitError
			if !errors.As(err, &ie) {
				t.Fatalf("got %v, want *InitError", err)
			}
			if ie.Stage != tt.stage {
				t.Errorf("Stage = %q, want %q", ie.Stage, tt.stage)
			}
		})
	}
}

// failingCanvas rejects every scratch allocation.
type failingCanvas struct {
	*surface.ImageCanvas
}

func (failingCanvas) NewScratch(int, int) (surface.Scratch, error) {
	return nil, errors.New("out of memory")
}

func TestAppDrawFailureIsRenderError(t *testing.T) {
	app := newTestApp(t, DefaultConfig())

	err := app.Draw(failingCanvas{surface.NewImageCanvas(800, 600)})
	var rerr *text.RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("got %v, want *text.RenderError", err)
	}
	if rerr.Index != 0 || rerr.Rune != 'H' || rerr.Op != text.OpScratch {
		t.Errorf("RenderError = %+v", rerr)
	}
	if IsInitError(err) {
		t.Error("render failure reported as init error")
	}
}

func TestInitError(t *testing.T) {
	cause := errors.New("no display")
	err := initError(StageWindow, cause)

	if got, want := err.Error(), "texter: init window: no display"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) || !IsInitError(err) {
		t.Error("InitError should unwrap to its cause")
	}
}
