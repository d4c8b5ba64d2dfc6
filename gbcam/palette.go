package gbcam

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/ericpauley/go-quantize/quantize"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is an ordered run of four colors, darkest to lightest. Each
// quantization level maps to the color of the same index.
type Palette struct {
	Key    string
	Name   string
	Colors [Levels]color.RGBA
}

// UnknownPaletteError is returned when a palette key is not present in
// the built-in registry.
type UnknownPaletteError string

func (e UnknownPaletteError) Error() string {
	return fmt.Sprintf("gbcam: unknown palette %q", string(e))
}

var builtins = []Palette{
	{Key: "classic", Name: "Classic GB", Colors: hexColors("#0f380f", "#306230", "#8bac0f", "#9bbc0f")},
	{Key: "sunset", Name: "Sunset", Colors: hexColors("#2b0f54", "#ab1f65", "#ff4f69", "#ffd93b")},
	{Key: "amber", Name: "Amber", Colors: hexColors("#1a0d00", "#663300", "#cc6600", "#ffb000")},
	{Key: "teal", Name: "Teal", Colors: hexColors("#042f2f", "#0a6265", "#35a7a7", "#b2f2e8")},
	{Key: "noir", Name: "Noir", Colors: hexColors("#000000", "#555555", "#aaaaaa", "#ffffff")},
	{Key: "vaporwave", Name: "Vaporwave", Colors: hexColors("#2d1b69", "#d53c6a", "#ff71ce", "#94fdff")},
}

var registry = make(map[string]Palette, len(builtins))

func init() {
	for _, p := range builtins {
		registry[p.Key] = p
	}
}

// LookupPalette resolves a palette key against the built-in registry.
func LookupPalette(key string) (Palette, error) {
	p, ok := registry[key]
	if !ok {
		return Palette{}, UnknownPaletteError(key)
	}
	return p, nil
}

// Palettes returns the built-in palettes in stable registry order, for
// collaborators that render a palette picker.
func Palettes() []Palette {
	return append([]Palette(nil), builtins...)
}

func hexColors(c0, c1, c2, c3 string) [Levels]color.RGBA {
	return [Levels]color.RGBA{mustHex(c0), mustHex(c1), mustHex(c2), mustHex(c3)}
}

// mustHex parses a #rrggbb string. The built-in palettes are the only
// callers, so a malformed string is a programming error.
func mustHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// PaletteFromImage derives a four color palette from a reference image
// using median-cut quantization, ordered darkest to lightest. Images
// with fewer than four distinct colors repeat the lightest entry. The
// result is not added to the registry; hand it to DitherColorize
// directly.
func PaletteFromImage(key, name string, img image.Image) (Palette, error) {
	q := quantize.MedianCutQuantizer{}
	qp := q.Quantize(make(color.Palette, 0, Levels), img)
	if len(qp) == 0 {
		return Palette{}, errors.New("gbcam: reference image has no colors")
	}

	sort.Slice(qp, func(i, j int) bool { return luminance16(qp[i]) < luminance16(qp[j]) })

	var colors [Levels]color.RGBA
	for i := range colors {
		c := qp[min(i, len(qp)-1)]
		r, g, b, _ := c.RGBA()
		colors[i] = color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0xff}
	}

	return Palette{Key: key, Name: name, Colors: colors}, nil
}

func luminance16(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return (299*r + 587*g + 114*b) / 1000
}
