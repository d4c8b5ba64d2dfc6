package gbcam

import "image"

// Defaults used by DefaultParams.
const (
	DefaultContrast     = 1.2
	DefaultEdgeStrength = 0.3
)

// Params are the tunable knobs of the pipeline. Contrast is useful
// roughly within [0.5, 2.5] and EdgeStrength within [0, 1]; values
// outside those ranges are not rejected, they just produce extreme
// output through the per-pixel clamping. An EdgeStrength of zero or
// below disables the sharpen stage.
type Params struct {
	Contrast     float64
	EdgeStrength float64
}

// DefaultParams returns the parameter set the product ships with.
func DefaultParams() Params {
	return Params{Contrast: DefaultContrast, EdgeStrength: DefaultEdgeStrength}
}

// ProcessFrame runs the full pipeline: resolve the palette, downscale
// to 128x112, grayscale, contrast, edge enhancement, ordered dither
// and palette mapping. It is a pure function of its arguments and
// returns a freshly allocated frame; on an unknown palette key it
// returns an UnknownPaletteError and no image.
func ProcessFrame(src image.Image, key string, params Params) (*image.RGBA, error) {
	pal, err := LookupPalette(key)
	if err != nil {
		return nil, err
	}

	m := Downscale(src, Width, Height)
	Grayscale(m)
	AdjustContrast(m, params.Contrast)
	EnhanceEdges(m, params.EdgeStrength)
	DitherColorize(m, pal)

	return m, nil
}
