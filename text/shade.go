package text

import "image/color"

// BytesPerPixel is the size of one pixel in shaded glyph buffers.
const BytesPerPixel = 4

// ShadeChannel scales a color channel by coverage, truncating toward zero.
// Coverage outside [0, 1] is clamped.
func ShadeChannel(c uint8, coverage float32) uint8 {
	coverage = min(max(coverage, 0), 1)
	return uint8(float32(c) * coverage)
}

// Shade converts a coverage mask into interleaved R, G, B, A bytes,
// BytesPerPixel per pixel, rows packed without padding.
//
// The alpha of col is ignored. With AlphaOpaque every pixel has alpha 255
// and RGB equal to col scaled by coverage. With AlphaCoverage the RGB values
// are the same and alpha is 255 scaled by coverage, which is col in
// premultiplied form at that coverage.
func Shade(m *CoverageMask, col color.RGBA, mode AlphaMode) []byte {
	pix := make([]byte, m.Width*m.Height*BytesPerPixel)
	for i, v := range m.Values {
		o := i * BytesPerPixel
		pix[o+0] = ShadeChannel(col.R, v)
		pix[o+1] = ShadeChannel(col.G, v)
		pix[o+2] = ShadeChannel(col.B, v)
		if mode == AlphaCoverage {
			pix[o+3] = ShadeChannel(0xff, v)
		} else {
			pix[o+3] = 0xff
		}
	}
	return pix
}
