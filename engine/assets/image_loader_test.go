package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadImageFlipsRows(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	red := color.NRGBA{255, 0, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}
	img.Set(0, 0, red)
	img.Set(1, 0, red)
	img.Set(0, 1, blue)
	img.Set(1, 1, blue)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "quad.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	w, h, pix, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if w != 2 || h != 2 || len(pix) != 16 {
		t.Fatalf("got %dx%d with %d bytes", w, h, len(pix))
	}
	// bottom row (blue) comes first
	if !bytes.Equal(pix[0:4], []byte{0, 0, 255, 255}) {
		t.Errorf("first pixel = %v, want blue", pix[0:4])
	}
	if !bytes.Equal(pix[8:12], []byte{255, 0, 0, 255}) {
		t.Errorf("third pixel = %v, want red", pix[8:12])
	}
}

func TestFlipRGBASubImage(t *testing.T) {
	full := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range full.Pix {
		full.Pix[i] = byte(i)
	}
	sub := full.SubImage(image.Rect(1, 1, 3, 3)).(*image.RGBA)
	w, h, out := FlipRGBA(imageToRGBA(sub))
	if w != 2 || h != 2 {
		t.Fatalf("got %dx%d", w, h)
	}
	// source row y=2, x=1 starts at 2*16 + 1*4
	if out[0] != 36 {
		t.Errorf("out[0] = %d, want 36", out[0])
	}
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()
	if _, _, _, err := LoadImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := LoadImage(junk); err == nil {
		t.Error("expected decode error")
	}
}
