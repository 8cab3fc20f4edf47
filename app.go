package texter

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font/gofont/gomonobold"

	"github.com/gogpu/texter/surface"
	"github.com/gogpu/texter/text"
)

// App draws the configured line of text. It owns the loaded font.
//
// Typical use:
//
//	app, err := texter.NewApp(texter.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer app.Close()
//
//	err = app.Draw(canvas)
type App struct {
	cfg      Config
	source   *text.FontSource
	renderer *text.Renderer
}

// NewApp validates cfg and loads its font.
// Failures are returned as *InitError.
func NewApp(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, initError(StageConfig, err)
	}

	source, err := loadFont(cfg)
	if err != nil {
		return nil, initError(StageFont, err)
	}

	mode, _ := text.ParseAlphaMode(cfg.Alpha)
	opts := []text.RenderOption{text.WithAlphaMode(mode)}
	if norm, _ := cfg.normalization(); norm != nil {
		opts = append(opts, norm)
	}

	Logger().Info("texter: app ready",
		"font", source.Name(), "parser", source.Parser(), "scale", cfg.Scale, "alpha", mode)

	return &App{
		cfg:      cfg,
		source:   source,
		renderer: text.NewRenderer(opts...),
	}, nil
}

func loadFont(cfg Config) (*text.FontSource, error) {
	opts := []text.SourceOption{text.WithParser(cfg.Parser)}
	if cfg.FontPath == "" {
		return text.NewFontSource(gomonobold.TTF, opts...)
	}
	return text.NewFontSourceFromFile(cfg.FontPath, opts...)
}

// Config returns the configuration the app was created with.
func (a *App) Config() Config {
	return a.cfg
}

// Source returns the loaded font.
func (a *App) Source() *text.FontSource {
	return a.source
}

// Draw clears c to the background color and renders the text onto it.
// A failure while drawing is returned as *text.RenderError.
func (a *App) Draw(c surface.Canvas) error {
	c.Fill(a.cfg.Background)
	return a.renderer.Render(c, a.source, a.cfg.Text, a.cfg.Scale, a.cfg.X, a.cfg.Y, color.RGBA(a.cfg.Color))
}

// RenderImage draws onto a new CPU canvas of the configured size and
// returns the result.
func (a *App) RenderImage() (*image.RGBA, error) {
	c, err := a.newImageCanvas()
	if err != nil {
		return nil, err
	}
	defer c.Close()

	if err := a.Draw(c); err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// SavePNG draws onto a new CPU canvas and writes it to path as PNG.
func (a *App) SavePNG(path string) error {
	c, err := a.newImageCanvas()
	if err != nil {
		return err
	}
	defer c.Close()

	if err := a.Draw(c); err != nil {
		return err
	}
	if err := c.SavePNG(path); err != nil {
		return err
	}
	Logger().Info("texter: image written", "path", path, "width", a.cfg.Width, "height", a.cfg.Height)
	return nil
}

func (a *App) newImageCanvas() (*surface.ImageCanvas, error) {
	c, err := surface.NewCanvasByName("image", a.cfg.Width, a.cfg.Height)
	if err != nil {
		return nil, initError(StageCanvas, err)
	}
	ic, ok := c.(*surface.ImageCanvas)
	if !ok {
		_ = c.Close()
		return nil, initError(StageCanvas, fmt.Errorf("image backend returned %T", c))
	}
	return ic, nil
}

// Close releases the font.
func (a *App) Close() error {
	return a.source.Close()
}

// IsInitError reports whether err happened while starting up, as opposed to
// while drawing.
func IsInitError(err error) bool {
	var ie *InitError
	return errors.As(err, &ie)
}
