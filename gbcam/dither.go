package gbcam

import "image"

// bayer4 is the classic 4x4 Bayer threshold matrix: sixteen distinct
// values covering a full cycle of {0..15}/16.
var bayer4 = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// ditherSpread is how far the threshold perturbs the normalized
// luminance before quantization.
const ditherSpread = 0.33

// DitherColorize quantizes every pixel to one of four levels with an
// ordered dither and writes the matching palette color, in a single
// in-place pass. The threshold is centered on zero, so the perturbed
// value ranges roughly 0.33 either side of the luminance; it is not
// clamped before the level comparisons, an extreme value simply
// saturates at level 0 or 3. Alpha is forced to fully opaque.
func DitherColorize(m *image.RGBA, pal Palette) {
	w, h := m.Rect.Dx(), m.Rect.Dy()
	for y := 0; y < h; y++ {
		row := y * m.Stride
		for x := 0; x < w; x++ {
			i := row + x*4

			g := float64(m.Pix[i]) / 255
			d := g + (bayer4[y%4][x%4]/16-0.5)*ditherSpread

			var level int
			switch {
			case d < 0.25:
				level = 0
			case d < 0.5:
				level = 1
			case d < 0.75:
				level = 2
			default:
				level = 3
			}

			c := pal.Colors[level]
			m.Pix[i], m.Pix[i+1], m.Pix[i+2], m.Pix[i+3] = c.R, c.G, c.B, 0xff
		}
	}
}
