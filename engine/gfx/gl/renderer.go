package glbackend

import (
	"log"

	"github.com/hubastard/hellogl/engine/colors"
	"github.com/hubastard/hellogl/engine/core"
	"github.com/hubastard/hellogl/engine/gfx"
	"github.com/hubastard/hellogl/engine/gfx/glcheck"
)

// RendererGL implements core.Renderer on the real driver. GL errors are
// named from the header at cfg.GLHeaderPath.
type RendererGL struct {
	win   core.Window
	d     gfx.Driver
	check *glcheck.Checker

	vendor, renderer, version string
}

func NewRendererGL(win core.Window, cfg core.Config) (*RendererGL, error) {
	d := Driver{}
	r := &RendererGL{
		win:   win,
		d:     d,
		check: glcheck.New(d, glcheck.NewHeaderTable(cfg.GLHeaderPath)),
	}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

// Init reads the GPU identification strings.
func (r *RendererGL) Init() error {
	s := r.check.Seq()
	s.Call("glGetString(GL_VENDOR)", func() { r.vendor = r.d.GetString(gfx.Vendor) })
	s.Call("glGetString(GL_RENDERER)", func() { r.renderer = r.d.GetString(gfx.Renderer) })
	s.Call("glGetString(GL_VERSION)", func() { r.version = r.d.GetString(gfx.Version) })
	if err := s.Err(); err != nil {
		return err
	}
	log.Printf("GPU: %s / %s", r.vendor, r.renderer)
	return nil
}

func (r *RendererGL) Driver() gfx.Driver        { return r.d }
func (r *RendererGL) Checker() *glcheck.Checker { return r.check }
func (r *RendererGL) GPUVendor() string         { return r.vendor }
func (r *RendererGL) GPURenderer() string       { return r.renderer }
func (r *RendererGL) GPUVersion() string        { return r.version }

func (r *RendererGL) Resize(w, h int) error {
	return r.check.Call("glViewport", func() { r.d.Viewport(0, 0, int32(w), int32(h)) })
}

func (r *RendererGL) Clear(c colors.Color) error {
	s := r.check.Seq()
	s.Call("glClearColor", func() { r.d.ClearColor(c[0], c[1], c[2], c[3]) })
	s.Call("glClear(GL_COLOR_BUFFER_BIT)", func() { r.d.Clear(gfx.ColorBufferBit) })
	return s.Err()
}

// Shutdown unbinds everything; objects belong to the layers that made them.
func (r *RendererGL) Shutdown() {
	r.d.UseProgram(0)
	r.d.BindVertexArray(0)
	if n := r.check.Drain(); n > 0 {
		log.Printf("renderer: %d GL errors pending at shutdown", n)
	}
}
