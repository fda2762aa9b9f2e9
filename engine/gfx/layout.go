package gfx

// VertexAttrib describes one attribute inside an interleaved vertex.
type VertexAttrib struct {
	Location uint32
	Size     int32 // component count
	Type     uint32
	Offset   uintptr // bytes from the start of the vertex
}

// VertexLayout is the stride plus attribute list of an interleaved buffer.
type VertexLayout struct {
	Stride     int32 // bytes
	Attributes []VertexAttrib
}

// Floats reports the number of float32 values per vertex.
func (l VertexLayout) Floats() int { return int(l.Stride) / 4 }
