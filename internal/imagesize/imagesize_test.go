package imagesize

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/frudas24/rectform/internal/geom"
)

// writeImage encodes a blank w x h image at path using enc.
func writeImage(t *testing.T, path string, w, h int, enc func(*os.File, image.Image) error) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer f.Close()
	if err := enc(f, image.NewGray(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
}

func encodePNG(f *os.File, img image.Image) error { return png.Encode(f, img) }

func encodeBMP(f *os.File, img image.Image) error { return bmp.Encode(f, img) }

// TestRead_PNGAndBMP verifies both stdlib and x/image decoders are registered.
func TestRead_PNGAndBMP(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "a.png")
	bmpPath := filepath.Join(dir, "b.bmp")
	writeImage(t, pngPath, 40, 20, encodePNG)
	writeImage(t, bmpPath, 12, 34, encodeBMP)

	size, format, err := Read(pngPath)
	if err != nil || format != "png" || size != (geom.Size{W: 40, H: 20}) {
		t.Fatalf("png: got %+v %q %v", size, format, err)
	}
	size, format, err = Read(bmpPath)
	if err != nil || format != "bmp" || size != (geom.Size{W: 12, H: 34}) {
		t.Fatalf("bmp: got %+v %q %v", size, format, err)
	}
}

// TestRead_NotAnImage verifies undecodable files are errors.
func TestRead_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, _, err := Read(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

// TestSeed_FitsInsideLimit verifies large images are scaled down keeping aspect.
func TestSeed_FitsInsideLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.png")
	writeImage(t, path, 800, 400, encodePNG)

	got, err := Seed(geom.Rect{X: 5, Y: 6}, path, geom.Size{W: 400, H: 300})
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if got != (geom.Rect{X: 5, Y: 6, W: 400, H: 200}) {
		t.Fatalf("unexpected seeded rect %+v", got)
	}
}

// TestSeed_KeepsExistingSize verifies sized rects are not touched.
func TestSeed_KeepsExistingSize(t *testing.T) {
	r := geom.Rect{W: 10, H: 10}
	got, err := Seed(r, "does-not-exist.png", geom.Size{})
	if err != nil || got != r {
		t.Fatalf("expected unchanged rect, got %+v (%v)", got, err)
	}
}
