/*
Package gbcam implements the frame processing pipeline that turns an
arbitrary photo into a 128 by 112 pixel, four color image in the style
of a 1998-era handheld camera sensor.

The pipeline is a fixed chain of per-pixel stages: area-average
downscale, BT.601 grayscale, midpoint contrast, a 3x3 Laplacian
sharpen, and a 4x4 Bayer ordered dither fused with the palette lookup.
Every stage is deterministic, so a given source image and parameter
set always produces byte-identical output.

Stages other than Downscale and UpscaleNearest mutate the *image.RGBA
they are handed. A caller must not read or write that buffer from
another goroutine for the duration of the call; ProcessFrame allocates
a fresh buffer per invocation and holds no state between calls.
*/
package gbcam

// Frame geometry and quantization depth. Collaborators size their
// buffers and crop rectangles against these.
const (
	Width  = 128
	Height = 112
	Levels = 4
)
