package text

import (
	"image"

	"golang.org/x/image/vector"
)

// CoverageMask is a grid of antialiased pixel coverage values.
// Values are in [0, 1], stored row by row.
type CoverageMask struct {
	Width  int
	Height int
	Values []float32
}

// NewCoverageMask allocates a zero-coverage mask of the given size.
func NewCoverageMask(width, height int) *CoverageMask {
	return &CoverageMask{
		Width:  width,
		Height: height,
		Values: make([]float32, width*height),
	}
}

// At returns the coverage of pixel (x, y), or 0 outside the mask.
func (m *CoverageMask) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Values[y*m.Width+x]
}

// Set stores the coverage of pixel (x, y), clamped to [0, 1].
func (m *CoverageMask) Set(x, y int, v float32) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.Values[y*m.Width+x] = min(max(v, 0), 1)
}

// rasterizeOutline renders outline into a mask covering box.
// box is in the outline's coordinate space (origin on the baseline).
func rasterizeOutline(outline *GlyphOutline, box image.Rectangle) *CoverageMask {
	w, h := box.Dx(), box.Dy()
	z := vector.NewRasterizer(w, h)

	dx, dy := float32(-box.Min.X), float32(-box.Min.Y)
	started := false
	for _, seg := range outline.Segments {
		p := seg.Points
		switch seg.Op {
		case OutlineOpMoveTo:
			if started {
				z.ClosePath()
			}
			z.MoveTo(p[0].X+dx, p[0].Y+dy)
			started = true
		case OutlineOpLineTo:
			z.LineTo(p[0].X+dx, p[0].Y+dy)
		case OutlineOpQuadTo:
			z.QuadTo(p[0].X+dx, p[0].Y+dy, p[1].X+dx, p[1].Y+dy)
		case OutlineOpCubicTo:
			z.CubeTo(p[0].X+dx, p[0].Y+dy, p[1].X+dx, p[1].Y+dy, p[2].X+dx, p[2].Y+dy)
		}
	}
	if started {
		z.ClosePath()
	}

	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})

	mask := NewCoverageMask(w, h)
	for y := 0; y < h; y++ {
		row := alpha.Pix[y*alpha.Stride : y*alpha.Stride+w]
		for x, a := range row {
			mask.Values[y*w+x] = float32(a) / 0xff
		}
	}
	return mask
}
