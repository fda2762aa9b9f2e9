package quad_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/hubastard/hellogl/engine/assets"
	"github.com/hubastard/hellogl/engine/gfx"
	"github.com/hubastard/hellogl/engine/gfx/gfxtest"
	"github.com/hubastard/hellogl/engine/gfx/glcheck"
	"github.com/hubastard/hellogl/engine/gfx/quad"
	"github.com/hubastard/hellogl/engine/gfx/shader"
)

const texturedShader = `#shader vertex
#version 330 core
layout(location = 0) in vec4 position;
layout(location = 1) in vec2 texCoord;
out vec2 v_TexCoord;
void main() { gl_Position = position; v_TexCoord = texCoord; }
#shader fragment
#version 330 core
layout(location = 0) out vec4 color;
in vec2 v_TexCoord;
uniform vec4 u_Color;
uniform sampler2D u_Texture;
void main() { color = texture(u_Texture, v_TexCoord) * u_Color; }
`

type fixture struct {
	d     *gfxtest.Driver
	check *glcheck.Checker
	c     *shader.Compiler
	prog  uint32
	tex   *quad.Texture
}

func setup(t *testing.T, src string) *fixture {
	t.Helper()
	d := gfxtest.New()
	check := glcheck.New(d, nil)
	c := shader.NewCompiler(d, check)
	ss, err := assets.ParseShader(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	prog, err := c.Build(ss)
	if err != nil {
		t.Fatal(err)
	}
	tex, err := quad.WhiteTexture(check, d)
	if err != nil {
		t.Fatal(err)
	}
	return &fixture{d: d, check: check, c: c, prog: prog, tex: tex}
}

func TestDrawIssuesOneIndexedDraw(t *testing.T) {
	f := setup(t, texturedShader)
	r, err := quad.New(f.check, f.d, f.c, f.prog, f.tex)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Release()

	for frame := 0; frame < 3; frame++ {
		r.BeginFrame()
		f.d.Draws = nil
		if err := r.Draw(mgl32.Vec4{0.5, 0.3, 0.8, 1}); err != nil {
			t.Fatal(err)
		}
		if len(f.d.Draws) != 1 {
			t.Fatalf("frame %d: %d draw calls, want 1", frame, len(f.d.Draws))
		}
		dr := f.d.Draws[0]
		if dr.Mode != gfx.Triangles || dr.Count != 6 || dr.Type != gfx.UnsignedInt || dr.Offset != 0 {
			t.Errorf("draw = %+v", dr)
		}
		if dr.Program != f.prog || dr.VAO == 0 || dr.IBO == 0 {
			t.Errorf("draw state = %+v", dr)
		}
		if st := r.Stats(); st.DrawCalls != 1 || st.IndexCount != 6 {
			t.Errorf("stats = %+v", st)
		}
	}

	var set bool
	for _, v := range f.d.Uniforms {
		if v == [4]float32{0.5, 0.3, 0.8, 1} {
			set = true
		}
	}
	if !set {
		t.Error("u_Color was not uploaded")
	}
}

func TestIndexPattern(t *testing.T) {
	want := []uint32{0, 1, 2, 2, 3, 0}
	if len(quad.Indices) != len(want) {
		t.Fatalf("indices = %v", quad.Indices)
	}
	for i := range want {
		if quad.Indices[i] != want[i] {
			t.Fatalf("indices = %v, want %v", quad.Indices, want)
		}
	}
}

func TestVertices(t *testing.T) {
	v := quad.Vertices(0.5)
	want := []float32{
		-0.5, -0.5, 0, 0,
		0.5, -0.5, 1, 0,
		0.5, 0.5, 1, 1,
		-0.5, 0.5, 0, 1,
	}
	if len(v) != len(want) {
		t.Fatalf("got %d floats", len(v))
	}
	for i := range want {
		if v[i] != want[i] {
			t.Fatalf("vertices = %v, want %v", v, want)
		}
	}
}

func TestMissingUniform(t *testing.T) {
	src := strings.Replace(texturedShader, "uniform vec4 u_Color;\n", "", 1)
	src = strings.Replace(src, "* u_Color", "", 1)
	f := setup(t, src)

	_, err := quad.New(f.check, f.d, f.c, f.prog, f.tex)
	var ue *shader.UniformNotFoundError
	if !errors.As(err, &ue) || ue.Name != quad.ColorUniform {
		t.Fatalf("got %v", err)
	}
}

func TestDrawReportsGLError(t *testing.T) {
	f := setup(t, texturedShader)
	r, err := quad.New(f.check, f.d, f.c, f.prog, f.tex)
	if err != nil {
		t.Fatal(err)
	}
	f.d.ErrorOn["DrawElements"] = gfx.InvalidOperation

	err = r.Draw(mgl32.Vec4{1, 1, 1, 1})
	var glErr *glcheck.Error
	if !errors.As(err, &glErr) || glErr.Call != "glDrawElements" {
		t.Fatalf("got %v", err)
	}
	if r.Stats().DrawCalls != 0 {
		t.Error("failed draw counted")
	}
}

func TestReleaseFreesObjects(t *testing.T) {
	f := setup(t, texturedShader)
	r, err := quad.New(f.check, f.d, f.c, f.prog, f.tex)
	if err != nil {
		t.Fatal(err)
	}
	r.Release()
	r.Release()
	f.tex.Release()

	if n := len(f.d.Deleted["buffer"]); n != 2 {
		t.Errorf("deleted %d buffers, want 2", n)
	}
	if n := len(f.d.Deleted["vao"]); n != 1 {
		t.Errorf("deleted %d vertex arrays, want 1", n)
	}
	if n := len(f.d.Deleted["texture"]); n != 1 {
		t.Errorf("deleted %d textures, want 1", n)
	}
}

func TestNewTextureValidatesSize(t *testing.T) {
	d := gfxtest.New()
	if _, err := quad.NewTexture(glcheck.New(d, nil), d, 2, 2, make([]byte, 4)); err == nil {
		t.Fatal("expected size error")
	}
	if d.Called("GenTexture") {
		t.Error("driver touched for invalid texture")
	}
}
