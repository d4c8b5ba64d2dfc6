package gbcam

import "image"

// The sharpen kernel is a discrete Laplacian: center 5, orthogonal
// neighbors -1, corners 0.
const (
	kernelCenter   = 5
	kernelNeighbor = -1
)

// EnhanceEdges applies the 3x3 Laplacian sharpen to every interior
// pixel in place, blending the kernel output with the original value
// by strength. Border pixels are left unmodified. The convolution
// reads a snapshot taken before any pixel was written, so enhanced
// values never feed back into their neighbors. A strength of zero or
// below skips the stage entirely; the image must already be grayscale.
func EnhanceEdges(m *image.RGBA, strength float64) {
	if strength <= 0 {
		return
	}

	w, h := m.Rect.Dx(), m.Rect.Dy()
	if w < 3 || h < 3 {
		return
	}

	snap := make([]uint8, len(m.Pix))
	copy(snap, m.Pix)

	stride := m.Stride
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*stride + x*4
			c := int(snap[i])
			s := kernelCenter*c + kernelNeighbor*(int(snap[i-4])+int(snap[i+4])+int(snap[i-stride])+int(snap[i+stride]))
			v := clamp255(float64(c)*(1-strength) + float64(s)*strength)
			m.Pix[i], m.Pix[i+1], m.Pix[i+2] = v, v, v
		}
	}
}
