// Command texter draws a line of text in a window or into a PNG file.
//
// Usage:
//
//	texter [flags]
//
// With no flags it opens an 800x600 window titled "Texter" showing
// "Hello, alkis!" in white on black. Press Escape or close the window to
// quit. With -output the picture is written to a PNG file instead and no
// window is opened.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/texter"
	"github.com/gogpu/texter/backend/ebiten"
	"github.com/gogpu/texter/surface"
	"github.com/gogpu/texter/text"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("texter", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := texter.DefaultConfig()
	var (
		configPath = fs.String("config", "", "TOML configuration file")
		output     = fs.String("output", "", "write a PNG to this file instead of opening a window")
		backend    = fs.String("backend", "", "surface backend: ebiten or image (default: best available)")
		verbose    = fs.Bool("v", false, "log debug output")
	)
	// Defaults shown in -help; values are applied after the config file.
	var flagCfg = cfg
	fs.StringVar(&flagCfg.Text, "text", cfg.Text, "text to draw")
	fs.Float64Var(&flagCfg.Scale, "scale", cfg.Scale, "text pixel height")
	fs.IntVar(&flagCfg.X, "x", cfg.X, "text origin x")
	fs.IntVar(&flagCfg.Y, "y", cfg.Y, "text origin y")
	fs.IntVar(&flagCfg.Width, "width", cfg.Width, "window or image width")
	fs.IntVar(&flagCfg.Height, "height", cfg.Height, "window or image height")
	fs.Var(&flagCfg.Color, "color", "text color as #rrggbb (default "+cfg.Color.String()+")")
	fs.Var(&flagCfg.Background, "bg", "background color as #rrggbb (default "+cfg.Background.String()+")")
	fs.StringVar(&flagCfg.FontPath, "font", "", "TTF or OTF font file (default: embedded Go Mono Bold)")
	fs.StringVar(&flagCfg.Parser, "parser", cfg.Parser, fmt.Sprintf("font parser %v", text.Parsers()))
	fs.StringVar(&flagCfg.Alpha, "alpha", cfg.Alpha, "glyph alpha: opaque or coverage")
	fs.StringVar(&flagCfg.Normalize, "normalize", "", "Unicode normalization of the text: nfc or nfd")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	texter.SetLogger(logger)

	if *configPath != "" {
		loaded, err := texter.LoadConfig(*configPath)
		if err != nil {
			logger.Error("texter: failed to start", "err", err)
			return 1
		}
		cfg = loaded
	}
	applyFlags(fs, &cfg, flagCfg)

	if err := draw(cfg, *backend, *output); err != nil {
		if texter.IsInitError(err) {
			logger.Error("texter: failed to start", "err", err)
		} else {
			logger.Error("texter: failed to draw", "err", err)
		}
		return 1
	}
	return 0
}

// applyFlags copies the fields of set flags from flagCfg into cfg, so that
// flags override the config file and unset flags leave it alone.
func applyFlags(fs *flag.FlagSet, cfg *texter.Config, flagCfg texter.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "text":
			cfg.Text = flagCfg.Text
		case "scale":
			cfg.Scale = flagCfg.Scale
		case "x":
			cfg.X = flagCfg.X
		case "y":
			cfg.Y = flagCfg.Y
		case "width":
			cfg.Width = flagCfg.Width
		case "height":
			cfg.Height = flagCfg.Height
		case "color":
			cfg.Color = flagCfg.Color
		case "bg":
			cfg.Background = flagCfg.Background
		case "font":
			cfg.FontPath = flagCfg.FontPath
		case "parser":
			cfg.Parser = flagCfg.Parser
		case "alpha":
			cfg.Alpha = flagCfg.Alpha
		case "normalize":
			cfg.Normalize = flagCfg.Normalize
		}
	})
}

func draw(cfg texter.Config, backend, output string) error {
	app, err := texter.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if backend == "" {
		backend = "image"
		if output == "" {
			if avail := surface.Available(); len(avail) > 0 {
				backend = avail[0]
			}
		}
	}

	switch backend {
	case "image":
		if output == "" {
			return &texter.InitError{Stage: texter.StageWindow, Err: errors.New("no display available; use -output to write a PNG")}
		}
		return app.SavePNG(output)
	case ebiten.BackendEbiten:
		if output != "" {
			return &texter.InitError{Stage: texter.StageConfig, Err: errors.New("-output cannot be combined with the ebiten backend")}
		}
		return runWindow(app)
	default:
		return &texter.InitError{Stage: texter.StageCanvas, Err: &surface.BackendNotFoundError{Name: backend}}
	}
}

func runWindow(app *texter.App) error {
	cfg := app.Config()
	w := ebiten.NewWindow(ebiten.WindowOptions{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, app.Draw)

	err := w.Run()
	var rerr *text.RenderError
	if err == nil || errors.As(err, &rerr) {
		return err
	}
	return &texter.InitError{Stage: texter.StageWindow, Err: err}
}
