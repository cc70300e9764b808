// Package imagesize reads image dimensions to seed a control's initial size.
package imagesize

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"os"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/frudas24/rectform/internal/geom"
)

// Read decodes only the image header at path and returns its pixel size.
func Read(path string) (geom.Size, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return geom.Size{}, "", err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return geom.Size{}, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return geom.Size{W: float64(cfg.Width), H: float64(cfg.Height)}, format, nil
}

// Seed fills in a missing control size from the image at path, scaled down
// to fit inside limit while keeping the image aspect. A rect that already has
// a size is returned unchanged.
func Seed(r geom.Rect, path string, limit geom.Size) (geom.Rect, error) {
	if r.W > 0 && r.H > 0 {
		return r, nil
	}
	size, _, err := Read(path)
	if err != nil {
		return r, err
	}
	if size.W <= 0 || size.H <= 0 {
		return r, fmt.Errorf("image %s has no size", path)
	}
	scale := 1.0
	if limit.W > 0 && size.W*scale > limit.W {
		scale = limit.W / size.W
	}
	if limit.H > 0 && size.H*scale > limit.H {
		scale = limit.H / size.H
	}
	r.W = size.W * scale
	r.H = size.H * scale
	return r, nil
}
