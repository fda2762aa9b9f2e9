package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes a PNG, BMP or WebP file and returns width, height and
// tightly packed RGBA8 pixels. Rows are flipped so the first row is the
// bottom of the image, matching OpenGL's texture origin.
func LoadImage(path string) (w, h int, rgba []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	if format == "" {
		return 0, 0, nil, fmt.Errorf("decode image %q: unknown format", path)
	}

	w, h, rgba = FlipRGBA(imageToRGBA(img))
	return w, h, rgba, nil
}

// FlipRGBA repacks img bottom row first with stride 4*w.
func FlipRGBA(img *image.RGBA) (w, h int, out []byte) {
	w, h = img.Bounds().Dx(), img.Bounds().Dy()
	out = make([]byte, w*h*4)
	row := w * 4
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+row]
		copy(out[(h-1-y)*row:(h-y)*row], src)
	}
	return w, h, out
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
