package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/texter/surface"
)

// DrawFunc draws the window contents onto c.
type DrawFunc func(c surface.Canvas) error

// WindowOptions configures a Window.
type WindowOptions struct {
	Title  string
	Width  int
	Height int

	// TPS is the number of updates per second. Default: 30.
	TPS int
}

// Window runs the ebiten event loop for one static picture.
type Window struct {
	opts WindowOptions
	draw DrawFunc

	canvas surface.Canvas
	drawn  bool
	err    error

	// Replaced in tests.
	newCanvas func(w, h int) (surface.Canvas, error)
	quit      func() bool
}

// NewWindow creates a window that shows what draw paints.
// draw is called once, from inside the event loop, before the first frame.
func NewWindow(opts WindowOptions, draw DrawFunc) *Window {
	if opts.TPS <= 0 {
		opts.TPS = 30
	}
	return &Window{
		opts: opts,
		draw: draw,
		newCanvas: func(w, h int) (surface.Canvas, error) {
			return NewCanvas(w, h)
		},
		quit: func() bool {
			return ebiten.IsKeyPressed(ebiten.KeyEscape)
		},
	}
}

// Run opens the window and blocks until it is closed, Escape is pressed,
// or drawing fails. A drawing failure is returned unchanged; any other
// error comes from ebiten.
func (w *Window) Run() error {
	if w.opts.Width <= 0 || w.opts.Height <= 0 {
		return &surface.SizeError{Width: w.opts.Width, Height: w.opts.Height}
	}

	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	ebiten.SetTPS(w.opts.TPS)

	slogger().Info("ebiten: window opening",
		"title", w.opts.Title, "width", w.opts.Width, "height", w.opts.Height)

	err := ebiten.RunGame(w)
	w.release()
	if w.err != nil {
		return w.err
	}
	return err
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if w.quit() {
		slogger().Info("ebiten: escape pressed, closing")
		return ebiten.Termination
	}
	if w.drawn {
		return nil
	}

	if w.canvas == nil {
		c, err := w.newCanvas(w.opts.Width, w.opts.Height)
		if err != nil {
			w.err = err
			return err
		}
		w.canvas = c
	}
	if err := w.draw(w.canvas); err != nil {
		w.err = err
		return err
	}
	w.drawn = true
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if c, ok := w.canvas.(*Canvas); ok && w.drawn {
		screen.DrawImage(c.Image(), nil)
	}
}

// Layout implements ebiten.Game. The picture keeps its size; ebiten scales
// it to the window.
func (w *Window) Layout(int, int) (int, int) {
	return w.opts.Width, w.opts.Height
}

func (w *Window) release() {
	if w.canvas == nil {
		return
	}
	if err := w.canvas.Close(); err != nil {
		slogger().Warn("ebiten: canvas close failed", "err", err)
	}
	w.canvas = nil
}
