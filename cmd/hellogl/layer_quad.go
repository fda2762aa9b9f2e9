package main

import (
	"github.com/hubastard/hellogl/engine/assets"
	"github.com/hubastard/hellogl/engine/colors"
	"github.com/hubastard/hellogl/engine/core"
	"github.com/hubastard/hellogl/engine/gfx/quad"
	"github.com/hubastard/hellogl/engine/gfx/shader"
	"github.com/hubastard/hellogl/engine/profiler"
	"github.com/hubastard/hellogl/engine/scene"
)

// ------- The tutorial quad -------
type QuadLayer struct {
	base     colors.Color
	pulse    *scene.Pulse
	compiler *shader.Compiler
	program  uint32
	tex      *quad.Texture
	quad     *quad.Renderer
}

func NewQuadLayer() *QuadLayer {
	return &QuadLayer{
		base:  colors.Periwinkle,
		pulse: scene.NewPulse(0, 1, scene.DefaultStep),
	}
}

func (l *QuadLayer) OnAttach(e *core.Engine) error {
	src, err := assets.LoadShader(e.Config.ShaderPath)
	if err != nil {
		return err
	}

	d, check := e.Renderer.Driver(), e.Renderer.Checker()
	l.compiler = shader.NewCompiler(d, check)
	if l.program, err = l.compiler.Build(src); err != nil {
		return err
	}

	if e.Config.TexturePath != "" {
		w, h, pix, err := assets.LoadImage(e.Config.TexturePath)
		if err != nil {
			l.release()
			return err
		}
		l.tex, err = quad.NewTexture(check, d, w, h, pix)
		if err != nil {
			l.release()
			return err
		}
	} else if l.tex, err = quad.WhiteTexture(check, d); err != nil {
		l.release()
		return err
	}

	if l.quad, err = quad.New(check, d, l.compiler, l.program, l.tex); err != nil {
		l.release()
		return err
	}
	return nil
}

func (l *QuadLayer) OnDetach(e *core.Engine) { l.release() }

func (l *QuadLayer) release() {
	if l.quad != nil {
		l.quad.Release()
		l.quad = nil
	}
	if l.tex != nil {
		l.tex.Release()
		l.tex = nil
	}
	if l.program != 0 {
		_ = l.compiler.DeleteProgram(l.program)
		l.program = 0
	}
}

func (l *QuadLayer) OnUpdate(e *core.Engine, dt float64) {
	l.pulse.Advance()
}

func (l *QuadLayer) OnRender(e *core.Engine, alpha float64) error {
	defer profiler.Start("QuadLayer.OnRender")()

	l.quad.BeginFrame()
	return l.quad.Draw(l.pulse.Tint(l.base.Vec4()))
}

func (l *QuadLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
		e.Window.RequestClose()
		return true
	}
	return false
}

// Stats reports what the last frame drew.
func (l *QuadLayer) Stats() quad.Statistics {
	if l.quad == nil {
		return quad.Statistics{}
	}
	return l.quad.Stats()
}
