package text

import (
	"image"
	"image/color"

	"github.com/gogpu/texter/surface"
)

// Renderer draws single lines of text onto a surface.Target.
//
// A Renderer holds only configuration and may be shared between
// goroutines; the targets it draws onto generally may not.
type Renderer struct {
	config renderConfig
}

// NewRenderer creates a Renderer with the given options.
func NewRenderer(opts ...RenderOption) *Renderer {
	config := defaultRenderConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Renderer{config: config}
}

// AlphaMode returns the alpha mode the renderer shades glyphs with.
func (r *Renderer) AlphaMode() AlphaMode {
	return r.config.alphaMode
}

// Render draws s onto dst with src at the given pixel scale.
//
// (x, y) is the top-left origin of the line: the baseline sits at
// y + the face's truncated ascent. Each visible character is rasterized,
// shaded with col, written to a scratch of its bounding box size and
// copied so the scratch's bottom-left corner lands on the pen position.
// The pen then advances by the character's truncated advance.
//
// Characters with an empty bounding box, such as spaces, draw nothing but
// still advance the pen. An empty s draws nothing and returns nil.
//
// If the target fails, Render stops at that character and returns a
// *RenderError. Characters before it stay drawn.
func (r *Renderer) Render(dst surface.Target, src *FontSource, s string, scale float64, x, y int, col color.RGBA) error {
	if dst == nil {
		return ErrNilTarget
	}
	face, err := src.Face(scale)
	if err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	if r.config.normalize {
		s = r.config.form.String(s)
	}

	drawn := 0
	for g := range face.Glyphs(s, image.Pt(x, y)) {
		if !g.Visible() {
			slogger().Debug("text: skipping empty glyph", "rune", string(g.Rune), "index", g.Index)
			continue
		}
		if err := r.drawGlyph(dst, face, g, col); err != nil {
			return err
		}
		drawn++
	}

	slogger().Debug("text: rendered",
		"font", src.Name(), "scale", scale, "chars", len(s), "drawn", drawn)
	return nil
}

func (r *Renderer) drawGlyph(dst surface.Target, face *Face, g Glyph, col color.RGBA) error {
	fail := func(op string, err error) error {
		return &RenderError{Index: g.Index, Rune: g.Rune, Op: op, Err: err}
	}

	// The target vets the glyph size before any pixels are produced.
	scratch, err := dst.NewScratch(g.Bounds.Dx(), g.Bounds.Dy())
	if err != nil {
		return fail(OpScratch, err)
	}
	defer func() {
		if rerr := scratch.Release(); rerr != nil {
			slogger().Warn("text: scratch release failed", "rune", string(g.Rune), "err", rerr)
		}
	}()

	pix := Shade(face.Rasterize(g), col, r.config.alphaMode)
	if err := scratch.WritePixels(pix); err != nil {
		return fail(OpWrite, err)
	}
	if err := dst.Copy(scratch, g.Target()); err != nil {
		return fail(OpCopy, err)
	}
	return nil
}

// Render draws s onto dst with a default Renderer configured by opts.
// See Renderer.Render.
func Render(dst surface.Target, src *FontSource, s string, scale float64, x, y int, col color.RGBA, opts ...RenderOption) error {
	return NewRenderer(opts...).Render(dst, src, s, scale, x, y, col)
}
