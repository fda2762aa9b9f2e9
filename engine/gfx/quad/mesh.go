package quad

import (
	"fmt"

	"github.com/hubastard/hellogl/engine/gfx"
	"github.com/hubastard/hellogl/engine/gfx/glcheck"
)

// Mesh is an indexed vertex array: VAO + VBO + IBO.
type Mesh struct {
	d          gfx.Driver
	vao        uint32
	vbo        uint32
	ibo        uint32
	indexCount int32
}

// NewMesh uploads vertices and indices and records the attribute layout in
// a new vertex array. Nothing stays bound on return.
func NewMesh(check *glcheck.Checker, d gfx.Driver, vertices []float32, indices []uint32, layout gfx.VertexLayout) (*Mesh, error) {
	if n := layout.Floats(); n == 0 || len(vertices)%n != 0 {
		return nil, fmt.Errorf("quad: %d floats do not fit a stride of %d bytes", len(vertices), layout.Stride)
	}
	m := &Mesh{d: d, indexCount: int32(len(indices))}

	s := check.Seq()
	s.Call("glGenVertexArrays", func() { m.vao = d.GenVertexArray() })
	s.Call("glBindVertexArray", func() { d.BindVertexArray(m.vao) })

	s.Call("glGenBuffers(vbo)", func() { m.vbo = d.GenBuffer() })
	s.Call("glBindBuffer(GL_ARRAY_BUFFER)", func() { d.BindBuffer(gfx.ArrayBuffer, m.vbo) })
	s.Call("glBufferData(GL_ARRAY_BUFFER)", func() { d.BufferFloat32(gfx.ArrayBuffer, vertices, gfx.StaticDraw) })

	for _, a := range layout.Attributes {
		a := a
		s.Call(fmt.Sprintf("glEnableVertexAttribArray(%d)", a.Location), func() { d.EnableVertexAttribArray(a.Location) })
		s.Call(fmt.Sprintf("glVertexAttribPointer(%d)", a.Location), func() {
			d.VertexAttribPointer(a.Location, a.Size, a.Type, false, layout.Stride, a.Offset)
		})
	}

	s.Call("glGenBuffers(ibo)", func() { m.ibo = d.GenBuffer() })
	s.Call("glBindBuffer(GL_ELEMENT_ARRAY_BUFFER)", func() { d.BindBuffer(gfx.ElementArrayBuffer, m.ibo) })
	s.Call("glBufferData(GL_ELEMENT_ARRAY_BUFFER)", func() { d.BufferUint32(gfx.ElementArrayBuffer, indices, gfx.StaticDraw) })

	s.Call("glBindVertexArray(0)", func() { d.BindVertexArray(0) })
	s.Call("glBindBuffer(GL_ARRAY_BUFFER, 0)", func() { d.BindBuffer(gfx.ArrayBuffer, 0) })
	s.Call("glBindBuffer(GL_ELEMENT_ARRAY_BUFFER, 0)", func() { d.BindBuffer(gfx.ElementArrayBuffer, 0) })

	if err := s.Err(); err != nil {
		m.Release()
		return nil, err
	}
	return m, nil
}

// IndexCount is the number of indices drawn per call.
func (m *Mesh) IndexCount() int32 { return m.indexCount }

// Bind makes the mesh current for an indexed draw.
func (m *Mesh) Bind(s *glcheck.Seq) {
	s.Call("glBindVertexArray", func() { m.d.BindVertexArray(m.vao) })
	s.Call("glBindBuffer(GL_ELEMENT_ARRAY_BUFFER)", func() { m.d.BindBuffer(gfx.ElementArrayBuffer, m.ibo) })
}

// Release frees the GL objects. It is safe to call more than once.
func (m *Mesh) Release() {
	if m.ibo != 0 {
		m.d.DeleteBuffer(m.ibo)
		m.ibo = 0
	}
	if m.vbo != 0 {
		m.d.DeleteBuffer(m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		m.d.DeleteVertexArray(m.vao)
		m.vao = 0
	}
}
