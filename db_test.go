package camera

import (
	"path/filepath"
	"testing"

	"github.com/marktremmel/ca-mera/gbcam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShotPNG(t *testing.T, seed uint8) []byte {
	m, err := gbcam.ProcessFrame(solidSource(200, 160, seed), "classic", gbcam.DefaultParams())
	require.NoError(t, err)

	b, err := encodePNG(m)
	require.NoError(t, err)
	return b
}

func TestGallery(t *testing.T) {
	g, err := OpenGallery(filepath.Join(t.TempDir(), "gallery.db"))
	require.NoError(t, err)
	defer g.Close()

	params := gbcam.DefaultParams()

	png := testShotPNG(t, 90)
	id, err := g.Save(png, "classic", params)
	require.NoError(t, err)

	// Identical content comes back with the same id.
	dup, err := g.Save(png, "classic", params)
	require.NoError(t, err)
	assert.Equal(t, id, dup)

	other, err := g.Save(testShotPNG(t, 200), "noir", gbcam.Params{Contrast: 2, EdgeStrength: 0})
	require.NoError(t, err)
	assert.NotEqual(t, id, other)

	shots, err := g.Shots()
	require.NoError(t, err)
	require.Len(t, shots, 2)
	assert.Equal(t, "classic", shots[0].Palette)
	assert.Equal(t, params.Contrast, shots[0].Contrast)
	assert.Nil(t, shots[0].PNG)
	assert.False(t, shots[0].CreatedAt.IsZero())

	shot, err := g.Shot(id)
	require.NoError(t, err)
	assert.Equal(t, png, shot.PNG)
	assert.Equal(t, params.EdgeStrength, shot.Edge)

	require.NoError(t, g.Delete(id))

	_, err = g.Shot(id)
	assert.Equal(t, ErrShotNotFound, err)
	assert.Equal(t, ErrShotNotFound, g.Delete(id))
}
