package glbackend

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/hellogl/engine/gfx"
)

// Driver implements gfx.Driver on the current OpenGL 3.3 core context.
// gl.Init must have succeeded on this thread first.
type Driver struct{}

var _ gfx.Driver = Driver{}

func (Driver) GetError() uint32 { return gl.GetError() }

func (Driver) GetString(name uint32) string {
	p := gl.GetString(name)
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}

func (Driver) CreateShader(stage uint32) uint32 { return gl.CreateShader(stage) }

func (Driver) ShaderSource(shader uint32, source string) {
	csrc, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csrc, nil)
}

func (Driver) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Driver) GetShaderiv(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (d Driver) GetShaderInfoLog(shader uint32) string {
	n := d.GetShaderiv(shader, gl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(shader, n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Driver) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Driver) CreateProgram() uint32               { return gl.CreateProgram() }
func (Driver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (Driver) LinkProgram(program uint32)          { gl.LinkProgram(program) }
func (Driver) ValidateProgram(program uint32)      { gl.ValidateProgram(program) }

func (Driver) GetProgramiv(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (d Driver) GetProgramInfoLog(program uint32) string {
	n := d.GetProgramiv(program, gl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Driver) UseProgram(program uint32)    { gl.UseProgram(program) }
func (Driver) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Driver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Driver) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

func (Driver) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (Driver) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Driver) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (Driver) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (Driver) GenBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (Driver) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (Driver) BufferFloat32(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (Driver) BufferUint32(target uint32, data []uint32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (Driver) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (Driver) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Driver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (Driver) GenTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}

func (Driver) ActiveTexture(unit uint32)          { gl.ActiveTexture(unit) }
func (Driver) BindTexture(target, texture uint32) { gl.BindTexture(target, texture) }

func (Driver) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (Driver) TexImage2D(target uint32, width, height int32, rgba []byte) {
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(target, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))
}

func (Driver) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

func (Driver) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (Driver) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }
func (Driver) Clear(mask uint32)                  { gl.Clear(mask) }

func (Driver) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElementsWithOffset(mode, count, xtype, offset)
}
