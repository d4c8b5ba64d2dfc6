package camera

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	// developedSuffix marks files this package wrote, so repeated
	// runs do not re-develop their own output.
	developedSuffix = ".gbc.png"

	// Photos larger than this are skipped outright.
	maxPhotoBytes = 64 << 20

	developWorkers = 10
)

func isPhoto(file string) bool {
	if strings.HasSuffix(file, developedSuffix) {
		return false
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	}
	return false
}

func (c *Camera) findPhotos(ctx context.Context, base string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() {
				return nil
			}

			if info.Size() > maxPhotoBytes {
				return nil
			}

			if !isPhoto(file) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc
}

func (c *Camera) photoWorker(ctx context.Context, in <-chan string, opts DevelopOptions) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			dst := strings.TrimSuffix(file, filepath.Ext(file)) + developedSuffix

			if err := c.Snap(file, dst, opts); err != nil {
				errc <- err
				return
			}
			c.logger.Printf("developed \"%s\"\n", file)

			select {
			case <-ctx.Done():
				return
			default:
			}
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Develop walks a directory tree and develops every photo in it,
// writing each result next to its source with the .gbc.png suffix.
// Decoding and processing fan out over a pool of workers; the first
// error cancels the walk.
func (c *Camera) Develop(path string, opts DevelopOptions) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	photos, errc := c.findPhotos(ctx, dir)
	errcList = append(errcList, errc)

	for i := 0; i < developWorkers; i++ {
		errcList = append(errcList, c.photoWorker(ctx, photos, opts))
	}

	return waitForPipeline(errcList...)
}
