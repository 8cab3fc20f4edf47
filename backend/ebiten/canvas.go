package ebiten

import (
	"image"
	"image/color"
	"log/slog"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/texter/surface"
)

// BackendEbiten is the registry name of the ebiten backend.
const BackendEbiten = "ebiten"

func init() {
	surface.Register(BackendEbiten, surface.PriorityWindow, func(opts surface.Options) (surface.Canvas, error) {
		c, err := NewCanvas(opts.Width, opts.Height)
		if err != nil {
			return nil, err
		}
		if opts.BackgroundColor != nil {
			c.Fill(opts.BackgroundColor)
		}
		return c, nil
	}, Available)
}

func slogger() *slog.Logger { return surface.Logger() }

// Available reports whether a window can be opened.
// On X11 systems this requires DISPLAY to be set.
func Available() bool {
	return displayAvailable(runtime.GOOS, os.Getenv("DISPLAY"))
}

func displayAvailable(goos, display string) bool {
	switch goos {
	case "windows", "darwin", "ios", "android", "js":
		return true
	default:
		return display != ""
	}
}

// Canvas is a surface.Canvas backed by an *ebiten.Image.
type Canvas struct {
	img    *ebiten.Image
	closed bool
}

// NewCanvas creates an offscreen canvas of the given size.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, &surface.SizeError{Width: width, Height: height}
	}
	slogger().Debug("ebiten: canvas created", "width", width, "height", height)
	return &Canvas{img: ebiten.NewImage(width, height)}, nil
}

// Image returns the backing ebiten image.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// Bounds implements surface.Canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Fill implements surface.Canvas.
func (c *Canvas) Fill(col color.Color) {
	if c.closed {
		return
	}
	c.img.Fill(col)
}

// NewScratch implements surface.Target.
func (c *Canvas) NewScratch(width, height int) (surface.Scratch, error) {
	if c.closed {
		return nil, surface.ErrClosed
	}
	if err := surface.CheckScratchSize(width, height); err != nil {
		return nil, err
	}
	return &scratch{
		owner: c,
		img:   ebiten.NewImage(width, height),
		size:  image.Pt(width, height),
	}, nil
}

// Copy implements surface.Target. The scratch is drawn with ebiten's
// default source-over blending; ebiten clips to the canvas.
func (c *Canvas) Copy(src surface.Scratch, dst image.Rectangle) error {
	if c.closed {
		return surface.ErrClosed
	}
	s, ok := src.(*scratch)
	if !ok || s.owner != c {
		return surface.ErrForeignScratch
	}
	if s.img == nil {
		return surface.ErrReleased
	}
	if err := surface.CheckCopy(s.size, dst); err != nil {
		return err
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	c.img.DrawImage(s.img, op)
	return nil
}

// Close implements surface.Canvas.
func (c *Canvas) Close() error {
	if !c.closed {
		c.closed = true
		c.img.Deallocate()
	}
	return nil
}

// scratch is the surface.Scratch created by Canvas.
type scratch struct {
	owner *Canvas
	img   *ebiten.Image // nil after Release
	size  image.Point
}

func (s *scratch) Size() image.Point {
	return s.size
}

func (s *scratch) WritePixels(pix []byte) error {
	if s.img == nil {
		return surface.ErrReleased
	}
	if err := surface.CheckPixels(s.size, pix); err != nil {
		return err
	}
	s.img.WritePixels(pix)
	return nil
}

func (s *scratch) Release() error {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	return nil
}

var _ surface.Canvas = (*Canvas)(nil)
