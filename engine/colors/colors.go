package colors

import "github.com/go-gl/mathgl/mgl32"

// Color is linear RGBA.
type Color [4]float32

var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
	// Teal is the tutorial's clear colour.
	Teal = Color{0.1, 0.2, 0.2, 1}
	// Periwinkle is the quad's base tint before the red channel pulses.
	Periwinkle = Color{0.2, 0.3, 0.8, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Vec4 converts c for uniform upload.
func (c Color) Vec4() mgl32.Vec4 { return mgl32.Vec4(c) }
