/*
Package camera glues the gbcam processing pipeline to the filesystem.
It decodes photos, develops single files or whole directory trees into
128x112 four color shots, and keeps a gallery of results in a small
sqlite database.
*/
package camera

import (
	"log"

	"github.com/marktremmel/ca-mera/gbcam"
)

type Camera struct {
	gallery *Gallery
	logger  *log.Logger
}

func New(file string, logger *log.Logger) (*Camera, error) {
	gallery, err := OpenGallery(file)
	if err != nil {
		return nil, err
	}
	return &Camera{
		gallery: gallery,
		logger:  logger,
	}, nil
}

func (c *Camera) Close() error {
	return c.gallery.Close()
}

// DevelopOptions control how a photo is developed.
type DevelopOptions struct {
	// Palette is the registry key passed to the pipeline.
	Palette string
	// Params are the pipeline knobs, usually gbcam.DefaultParams
	// with individual fields overridden.
	Params gbcam.Params
	// Scale is the integer display scale applied to written output.
	Scale int
	// Keep also stores the unscaled shot in the gallery.
	Keep bool
}

// Snap develops a single photo. The processed frame is written to dst
// as a PNG, nearest-upscaled by opts.Scale; an empty dst skips the
// write. With opts.Keep the unscaled frame is stored in the gallery,
// deduplicated by content.
func (c *Camera) Snap(src, dst string, opts DevelopOptions) error {
	img, err := loadPhoto(src)
	if err != nil {
		return err
	}

	frame, err := gbcam.ProcessFrame(img, opts.Palette, opts.Params)
	if err != nil {
		return err
	}

	if dst != "" {
		if err := writePNG(dst, frame, opts.Scale); err != nil {
			return err
		}
	}

	if opts.Keep {
		b, err := encodePNG(frame)
		if err != nil {
			return err
		}
		id, err := c.gallery.Save(b, opts.Palette, opts.Params)
		if err != nil {
			return err
		}
		c.logger.Printf("kept \"%s\" as shot %d\n", src, id)
	}

	return nil
}

// Shots lists the gallery without the image payloads.
func (c *Camera) Shots() ([]Shot, error) {
	return c.gallery.Shots()
}

// DeleteShot removes a shot from the gallery.
func (c *Camera) DeleteShot(id int64) error {
	return c.gallery.Delete(id)
}

// ExportShot writes a stored shot to file as a PNG, nearest-upscaled
// by scale.
func (c *Camera) ExportShot(id int64, file string, scale int) error {
	shot, err := c.gallery.Shot(id)
	if err != nil {
		return err
	}

	m, err := decodePNG(shot.PNG)
	if err != nil {
		return err
	}

	return writePNG(file, m, scale)
}
