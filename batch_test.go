package camera

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/marktremmel/ca-mera/gbcam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidSource(w, h int, seed uint8) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetRGBA(x, y, color.RGBA{uint8(x) + seed, uint8(y), seed, 255})
		}
	}
	return m
}

func writeTestPhoto(t *testing.T, file string, seed uint8) {
	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, solidSource(160, 140, seed)))
}

func newTestCamera(t *testing.T, dir string) *Camera {
	c, err := New(filepath.Join(dir, "gallery.db"), log.New(io.Discard, "", 0))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestSnap(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "holiday.png")
	dst := filepath.Join(dir, "holiday"+developedSuffix)
	writeTestPhoto(t, src, 5)

	c := newTestCamera(t, dir)

	opts := DevelopOptions{Palette: "classic", Params: gbcam.DefaultParams(), Scale: 2, Keep: true}
	require.NoError(t, c.Snap(src, dst, opts))

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()

	out, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, gbcam.Width*2, out.Bounds().Dx())
	assert.Equal(t, gbcam.Height*2, out.Bounds().Dy())

	shots, err := c.Shots()
	require.NoError(t, err)
	require.Len(t, shots, 1)

	// The gallery keeps the unscaled frame.
	shot, err := c.gallery.Shot(shots[0].ID)
	require.NoError(t, err)
	m, err := decodePNG(shot.PNG)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, gbcam.Width, gbcam.Height), m.Bounds())

	exported := filepath.Join(dir, "export.png")
	require.NoError(t, c.ExportShot(shots[0].ID, exported, 3))

	ef, err := os.Open(exported)
	require.NoError(t, err)
	defer ef.Close()
	big, err := png.Decode(ef)
	require.NoError(t, err)
	assert.Equal(t, gbcam.Width*3, big.Bounds().Dx())
	assert.Equal(t, gbcam.Height*3, big.Bounds().Dy())

	assert.Equal(t, ErrShotNotFound, c.ExportShot(9999, exported, 1))
}

func TestSnapUnknownPalette(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "photo.png")
	writeTestPhoto(t, src, 1)

	c := newTestCamera(t, dir)

	err := c.Snap(src, "", DevelopOptions{Palette: "nonexistent"})
	var upe gbcam.UnknownPaletteError
	require.True(t, errors.As(err, &upe))
}

func TestDevelop(t *testing.T) {
	dir := t.TempDir()
	writeTestPhoto(t, filepath.Join(dir, "one.png"), 10)
	writeTestPhoto(t, filepath.Join(dir, "two.jpg.png"), 99)

	// Neither hidden files nor previous output may be re-developed.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.png"), []byte("junk"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old"+developedSuffix), []byte("junk"), 0o644))

	c := newTestCamera(t, dir)

	opts := DevelopOptions{Palette: "teal", Params: gbcam.DefaultParams(), Scale: 1, Keep: true}
	require.NoError(t, c.Develop(dir, opts))

	for _, name := range []string{"one" + developedSuffix, "two.jpg" + developedSuffix} {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err, name)
		out, err := png.Decode(f)
		f.Close()
		require.NoError(t, err, name)
		assert.Equal(t, gbcam.Width, out.Bounds().Dx())
		assert.Equal(t, gbcam.Height, out.Bounds().Dy())
	}

	_, err := os.Stat(filepath.Join(dir, ".hidden"+developedSuffix))
	assert.True(t, os.IsNotExist(err))

	shots, err := c.Shots()
	require.NoError(t, err)
	assert.Len(t, shots, 2)
}

func TestIsPhoto(t *testing.T) {
	assert.True(t, isPhoto("a.png"))
	assert.True(t, isPhoto("b.JPG"))
	assert.True(t, isPhoto("c.jpeg"))
	assert.True(t, isPhoto("d.gif"))
	assert.False(t, isPhoto("e.bmp"))
	assert.False(t, isPhoto("f.gbc.png"))
	assert.False(t, isPhoto("gallery.db"))
}
