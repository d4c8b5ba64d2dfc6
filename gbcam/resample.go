package gbcam

import (
	"image"
	"image/draw"
)

// Downscale resamples src to exactly w by h pixels using an
// area-weighted box filter: each destination pixel is the average of
// the source pixels its box covers, with fractional coverage at the
// box edges. Minification is the expected use; a box smaller than a
// source pixel degenerates to point sampling of that pixel. The source
// is never mutated.
func Downscale(src image.Image, w, h int) *image.RGBA {
	b := src.Bounds()
	m, ok := src.(*image.RGBA)
	if !ok || b.Min != (image.Point{}) {
		m = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(m, m.Bounds(), src, b.Min, draw.Src)
	}

	sw, sh := m.Rect.Dx(), m.Rect.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	xRatio := float64(sw) / float64(w)
	yRatio := float64(sh) / float64(h)

	for y := 0; y < h; y++ {
		y0, y1 := float64(y)*yRatio, float64(y+1)*yRatio
		for x := 0; x < w; x++ {
			x0, x1 := float64(x)*xRatio, float64(x+1)*xRatio

			var rSum, gSum, bSum, aSum, area float64
			for sy := int(y0); sy < sh && float64(sy) < y1; sy++ {
				wy := overlap(float64(sy), float64(sy+1), y0, y1)
				if wy <= 0 {
					continue
				}
				for sx := int(x0); sx < sw && float64(sx) < x1; sx++ {
					wx := overlap(float64(sx), float64(sx+1), x0, x1)
					if wx <= 0 {
						continue
					}
					weight := wx * wy
					i := sy*m.Stride + sx*4
					rSum += float64(m.Pix[i]) * weight
					gSum += float64(m.Pix[i+1]) * weight
					bSum += float64(m.Pix[i+2]) * weight
					aSum += float64(m.Pix[i+3]) * weight
					area += weight
				}
			}

			i := y*dst.Stride + x*4
			if area > 0 {
				dst.Pix[i] = clamp255(rSum / area)
				dst.Pix[i+1] = clamp255(gSum / area)
				dst.Pix[i+2] = clamp255(bSum / area)
				dst.Pix[i+3] = clamp255(aSum / area)
			}
		}
	}

	return dst
}

// overlap returns the length of the intersection of [a0,a1) and
// [b0,b1).
func overlap(a0, a1, b0, b1 float64) float64 {
	if a0 < b0 {
		a0 = b0
	}
	if a1 > b1 {
		a1 = b1
	}
	return a1 - a0
}

// UpscaleNearest block-replicates m by an integer factor: output pixel
// (x, y) is source pixel (x/scale, y/scale), with no interpolation.
// A scale below 1 is treated as 1, which returns an equivalent copy.
func UpscaleNearest(m *image.RGBA, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}

	// Adjust image so that top-left corner is at (0, 0)
	if m.Rect.Min != (image.Point{}) {
		dup := *m
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		m = &dup
	}

	w, h := m.Rect.Dx(), m.Rect.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))

	for y := 0; y < h*scale; y++ {
		si := (y / scale) * m.Stride
		di := y * dst.Stride
		for x := 0; x < w*scale; x++ {
			copy(dst.Pix[di+x*4:di+x*4+4], m.Pix[si+(x/scale)*4:si+(x/scale)*4+4])
		}
	}

	return dst
}
