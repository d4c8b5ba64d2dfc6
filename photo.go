package camera

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/marktremmel/ca-mera/gbcam"
	"github.com/nfnt/resize"
)

// maxImportDim caps the long edge of imported photos. Anything bigger
// is shrunk with Lanczos3 before it reaches the pipeline, which keeps
// the area-average downscale interactive for arbitrary camera files.
const maxImportDim = 1024

func loadPhoto(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	if b := img.Bounds(); b.Dx() > maxImportDim || b.Dy() > maxImportDim {
		if b.Dx() >= b.Dy() {
			img = resize.Resize(maxImportDim, 0, img, resize.Lanczos3)
		} else {
			img = resize.Resize(0, maxImportDim, img, resize.Lanczos3)
		}
	}

	return img, nil
}

func encodePNG(m *image.RGBA) ([]byte, error) {
	b := new(bytes.Buffer)
	if err := png.Encode(b, m); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func decodePNG(b []byte) (*image.RGBA, error) {
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	if m, ok := img.(*image.RGBA); ok {
		return m, nil
	}

	m := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(m, m.Bounds(), img, img.Bounds().Min, draw.Src)
	return m, nil
}

func writePNG(file string, m *image.RGBA, scale int) error {
	if scale > 1 {
		m = gbcam.UpscaleNearest(m, scale)
	}

	b, err := encodePNG(m)
	if err != nil {
		return err
	}

	return os.WriteFile(file, b, 0o644)
}
