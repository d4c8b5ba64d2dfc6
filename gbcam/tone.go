package gbcam

import "image"

// Grayscale converts every pixel to its BT.601 luminance in place,
// setting R, G and B to the rounded weighted sum. Alpha is untouched.
func Grayscale(m *image.RGBA) {
	p := m.Pix
	for i := 0; i < len(p); i += 4 {
		l := (299*int(p[i]) + 587*int(p[i+1]) + 114*int(p[i+2]) + 500) / 1000
		p[i], p[i+1], p[i+2] = uint8(l), uint8(l), uint8(l)
	}
}

// AdjustContrast scales every luminance value around the 0.5 midpoint
// in place, clamping to [0, 255]. A factor of 1.0 is the identity;
// values above it push toward black and white, values below compress
// toward mid-gray. The image must already be grayscale (R=G=B).
func AdjustContrast(m *image.RGBA, factor float64) {
	p := m.Pix
	for i := 0; i < len(p); i += 4 {
		v := clamp255(((float64(p[i])/255-0.5)*factor + 0.5) * 255)
		p[i], p[i+1], p[i+2] = v, v, v
	}
}

func clamp255(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
