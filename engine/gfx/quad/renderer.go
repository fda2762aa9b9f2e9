// Package quad draws a single textured, tinted quad.
package quad

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hubastard/hellogl/engine/gfx"
	"github.com/hubastard/hellogl/engine/gfx/glcheck"
	"github.com/hubastard/hellogl/engine/gfx/shader"
)

// Uniform names the quad shader must declare.
const (
	ColorUniform   = "u_Color"
	TextureUniform = "u_Texture"
)

// Vertex: pos2 + uv2 => 4 floats
const vStride = 4

var vertexLayout = gfx.VertexLayout{
	Stride: vStride * 4,
	Attributes: []gfx.VertexAttrib{
		{Location: 0, Size: 2, Type: gfx.Float, Offset: 0},     // position
		{Location: 1, Size: 2, Type: gfx.Float, Offset: 2 * 4}, // uv
	},
}

// Indices are the two triangles over the corners BL, BR, TR, TL.
var Indices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// Vertices returns the interleaved corners of an axis-aligned quad of
// half-size half centred on the origin, counter-clockwise from bottom-left.
func Vertices(half float32) []float32 {
	corners := [4]mgl32.Vec2{
		{-half, -half},
		{half, -half},
		{half, half},
		{-half, half},
	}
	uvs := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	out := make([]float32, 0, len(corners)*vStride)
	for i, p := range corners {
		out = append(out, p.X(), p.Y(), uvs[i].X(), uvs[i].Y())
	}
	return out
}

// Statistics captures what a frame submitted.
type Statistics struct {
	DrawCalls  int
	IndexCount int
}

// Renderer owns the quad mesh and draws it with a program and texture it
// borrows from the caller.
type Renderer struct {
	d       gfx.Driver
	check   *glcheck.Checker
	program uint32
	tex     *Texture
	mesh    *Mesh

	uColor int32
	uTex   int32
	stats  Statistics
}

// New builds the quad mesh for program. The program must declare
// u_Color and u_Texture.
func New(check *glcheck.Checker, d gfx.Driver, c *shader.Compiler, program uint32, tex *Texture) (*Renderer, error) {
	uColor, err := c.UniformLocation(program, ColorUniform)
	if err != nil {
		return nil, err
	}
	uTex, err := c.UniformLocation(program, TextureUniform)
	if err != nil {
		return nil, err
	}

	mesh, err := NewMesh(check, d, Vertices(0.5), Indices, vertexLayout)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		d: d, check: check, program: program, tex: tex, mesh: mesh,
		uColor: uColor, uTex: uTex,
	}

	// Sampler unit never changes; set it once.
	s := check.Seq()
	s.Call("glUseProgram", func() { d.UseProgram(program) })
	s.Call("glUniform1i(u_Texture)", func() { d.Uniform1i(uTex, 0) })
	s.Call("glUseProgram(0)", func() { d.UseProgram(0) })
	if err := s.Err(); err != nil {
		mesh.Release()
		return nil, err
	}
	return r, nil
}

// BeginFrame resets the frame statistics.
func (r *Renderer) BeginFrame() { r.stats = Statistics{} }

// Stats returns the statistics since the last BeginFrame.
func (r *Renderer) Stats() Statistics { return r.stats }

// Draw issues one indexed draw of the quad tinted with color.
func (r *Renderer) Draw(color mgl32.Vec4) error {
	s := r.check.Seq()
	s.Call("glUseProgram", func() { r.d.UseProgram(r.program) })
	s.Call("glUniform4f(u_Color)", func() { r.d.Uniform4f(r.uColor, color[0], color[1], color[2], color[3]) })
	r.tex.Bind(s, 0)
	r.mesh.Bind(s)
	s.Call("glDrawElements", func() {
		r.d.DrawElements(gfx.Triangles, r.mesh.IndexCount(), gfx.UnsignedInt, 0)
	})
	if err := s.Err(); err != nil {
		return err
	}
	r.stats.DrawCalls++
	r.stats.IndexCount += int(r.mesh.IndexCount())
	return nil
}

// Release frees the mesh. The program and texture belong to the caller.
func (r *Renderer) Release() {
	r.mesh.Release()
}
