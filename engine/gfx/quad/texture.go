package quad

import (
	"fmt"

	"github.com/hubastard/hellogl/engine/gfx"
	"github.com/hubastard/hellogl/engine/gfx/glcheck"
)

// Texture is a 2D RGBA8 texture.
type Texture struct {
	d             gfx.Driver
	id            uint32
	Width, Height int
}

// NewTexture uploads tightly packed RGBA8 pixels (bottom row first).
func NewTexture(check *glcheck.Checker, d gfx.Driver, w, h int, rgba []byte) (*Texture, error) {
	if w <= 0 || h <= 0 || len(rgba) != w*h*4 {
		return nil, fmt.Errorf("quad: texture %dx%d needs %d bytes, got %d", w, h, w*h*4, len(rgba))
	}
	t := &Texture{d: d, Width: w, Height: h}

	s := check.Seq()
	s.Call("glGenTextures", func() { t.id = d.GenTexture() })
	s.Call("glBindTexture", func() { d.BindTexture(gfx.Texture2D, t.id) })
	s.Call("glTexParameteri(MIN_FILTER)", func() { d.TexParameteri(gfx.Texture2D, gfx.TextureMinFilter, gfx.Linear) })
	s.Call("glTexParameteri(MAG_FILTER)", func() { d.TexParameteri(gfx.Texture2D, gfx.TextureMagFilter, gfx.Linear) })
	s.Call("glTexParameteri(WRAP_S)", func() { d.TexParameteri(gfx.Texture2D, gfx.TextureWrapS, gfx.ClampToEdge) })
	s.Call("glTexParameteri(WRAP_T)", func() { d.TexParameteri(gfx.Texture2D, gfx.TextureWrapT, gfx.ClampToEdge) })
	s.Call("glTexImage2D", func() { d.TexImage2D(gfx.Texture2D, int32(w), int32(h), rgba) })
	s.Call("glBindTexture(0)", func() { d.BindTexture(gfx.Texture2D, 0) })
	if err := s.Err(); err != nil {
		t.Release()
		return nil, err
	}
	return t, nil
}

// WhiteTexture is the 1x1 texture used when no image is configured, so
// the tint colour comes through unchanged.
func WhiteTexture(check *glcheck.Checker, d gfx.Driver) (*Texture, error) {
	return NewTexture(check, d, 1, 1, []byte{255, 255, 255, 255})
}

// Bind binds the texture to the given unit.
func (t *Texture) Bind(s *glcheck.Seq, unit uint32) {
	s.Call("glActiveTexture", func() { t.d.ActiveTexture(gfx.Texture0 + unit) })
	s.Call("glBindTexture", func() { t.d.BindTexture(gfx.Texture2D, t.id) })
}

func (t *Texture) Release() {
	if t.id != 0 {
		t.d.DeleteTexture(t.id)
		t.id = 0
	}
}
