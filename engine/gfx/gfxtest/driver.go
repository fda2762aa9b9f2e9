// Package gfxtest provides a recording gfx.Driver for tests that must run
// without a GL context.
package gfxtest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hubastard/hellogl/engine/gfx"
)

var uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)

// Draw is one recorded DrawElements call.
type Draw struct {
	Mode    uint32
	Count   int32
	Type    uint32
	Offset  uintptr
	Program uint32
	VAO     uint32
	IBO     uint32
}

type shaderObj struct {
	stage    uint32
	source   string
	compiled bool
	log      string
}

type programObj struct {
	shaders  []uint32
	linked   bool
	log      string
	uniforms map[string]int32
}

// Driver fakes the GL state machine closely enough for shader, buffer and
// draw code. The zero value is not usable; call New.
type Driver struct {
	// Sources containing CompileFailMarker fail to compile with CompileLog.
	CompileFailMarker string
	CompileLog        string
	// FailLink makes every LinkProgram fail with LinkLog.
	FailLink bool
	LinkLog  string
	// FailValidate makes ValidateProgram report failure.
	FailValidate bool

	// ErrorOn queues the given code whenever the named method runs.
	ErrorOn map[string]uint32

	Calls    []string
	Draws    []Draw
	Uniforms map[int32][4]float32
	Samplers map[int32]int32
	Buffers  map[uint32][]byte
	Textures map[uint32][2]int32

	Deleted map[string][]uint32

	errors   []uint32
	next     uint32
	shaders  map[uint32]*shaderObj
	programs map[uint32]*programObj

	program     uint32
	vao         uint32
	boundBuffer map[uint32]uint32
	boundTex    uint32
}

// New returns an empty fake driver.
func New() *Driver {
	return &Driver{
		CompileFailMarker: "#error",
		CompileLog:        "0:1(1): error: syntax error, unexpected IDENTIFIER",
		LinkLog:           "error: vertex shader output not consumed by fragment shader",
		ErrorOn:           map[string]uint32{},
		Uniforms:          map[int32][4]float32{},
		Samplers:          map[int32]int32{},
		Buffers:           map[uint32][]byte{},
		Textures:          map[uint32][2]int32{},
		Deleted:           map[string][]uint32{},
		shaders:           map[uint32]*shaderObj{},
		programs:          map[uint32]*programObj{},
		boundBuffer:       map[uint32]uint32{},
	}
}

// QueueError pushes a code onto the GL error queue.
func (d *Driver) QueueError(code uint32) { d.errors = append(d.errors, code) }

// Pending reports how many error codes are still queued.
func (d *Driver) Pending() int { return len(d.errors) }

// Called reports whether the named method was invoked.
func (d *Driver) Called(name string) bool {
	for _, c := range d.Calls {
		if c == name {
			return true
		}
	}
	return false
}

// LiveShaders reports shader objects that were created and not deleted.
func (d *Driver) LiveShaders() int { return len(d.shaders) }

// LivePrograms reports program objects that were created and not deleted.
func (d *Driver) LivePrograms() int { return len(d.programs) }

func (d *Driver) record(name string) {
	d.Calls = append(d.Calls, name)
	if code, ok := d.ErrorOn[name]; ok {
		d.errors = append(d.errors, code)
	}
}

func (d *Driver) gen() uint32 {
	d.next++
	return d.next
}

func (d *Driver) GetError() uint32 {
	if len(d.errors) == 0 {
		return gfx.NoError
	}
	code := d.errors[0]
	d.errors = d.errors[1:]
	return code
}

func (d *Driver) GetString(name uint32) string {
	d.record("GetString")
	switch name {
	case gfx.Vendor:
		return "gfxtest"
	case gfx.Renderer:
		return "fake"
	case gfx.Version:
		return "3.3.0 gfxtest"
	}
	d.errors = append(d.errors, gfx.InvalidEnum)
	return ""
}

func (d *Driver) CreateShader(stage uint32) uint32 {
	d.record("CreateShader")
	if stage != gfx.VertexShader && stage != gfx.FragmentShader {
		d.errors = append(d.errors, gfx.InvalidEnum)
		return 0
	}
	id := d.gen()
	d.shaders[id] = &shaderObj{stage: stage}
	return id
}

func (d *Driver) ShaderSource(shader uint32, source string) {
	d.record("ShaderSource")
	s, ok := d.shaders[shader]
	if !ok {
		d.errors = append(d.errors, gfx.InvalidValue)
		return
	}
	s.source = source
}

func (d *Driver) CompileShader(shader uint32) {
	d.record("CompileShader")
	s, ok := d.shaders[shader]
	if !ok {
		d.errors = append(d.errors, gfx.InvalidValue)
		return
	}
	if d.CompileFailMarker != "" && strings.Contains(s.source, d.CompileFailMarker) {
		s.compiled = false
		s.log = d.CompileLog
		return
	}
	s.compiled = true
	s.log = ""
}

func (d *Driver) GetShaderiv(shader, pname uint32) int32 {
	d.record("GetShaderiv")
	s, ok := d.shaders[shader]
	if !ok {
		d.errors = append(d.errors, gfx.InvalidValue)
		return 0
	}
	switch pname {
	case gfx.CompileStatus:
		if s.compiled {
			return gfx.True
		}
		return gfx.False
	case gfx.InfoLogLength:
		if s.log == "" {
			return 0
		}
		return int32(len(s.log) + 1)
	}
	d.errors = append(d.errors, gfx.InvalidEnum)
	return 0
}

func (d *Driver) GetShaderInfoLog(shader uint32) string {
	d.record("GetShaderInfoLog")
	if s, ok := d.shaders[shader]; ok {
		return s.log
	}
	return ""
}

func (d *Driver) DeleteShader(shader uint32) {
	d.record("DeleteShader")
	if shader == 0 {
		return
	}
	delete(d.shaders, shader)
	d.Deleted["shader"] = append(d.Deleted["shader"], shader)
}

func (d *Driver) CreateProgram() uint32 {
	d.record("CreateProgram")
	id := d.gen()
	d.programs[id] = &programObj{}
	return id
}

func (d *Driver) AttachShader(program, shader uint32) {
	d.record("AttachShader")
	p, ok := d.programs[program]
	if !ok || d.shaders[shader] == nil {
		d.errors = append(d.errors, gfx.InvalidValue)
		return
	}
	p.shaders = append(p.shaders, shader)
}

func (d *Driver) LinkProgram(program uint32) {
	d.record("LinkProgram")
	p, ok := d.programs[program]
	if !ok {
		d.errors = append(d.errors, gfx.InvalidValue)
		return
	}
	p.uniforms = map[string]int32{}
	if d.FailLink {
		p.linked = false
		p.log = d.LinkLog
		return
	}
	for _, id := range p.shaders {
		s := d.shaders[id]
		if s == nil || !s.compiled {
			p.linked = false
			p.log = fmt.Sprintf("error: shader %d not compiled", id)
			return
		}
		for _, m := range uniformDecl.FindAllStringSubmatch(s.source, -1) {
			if _, dup := p.uniforms[m[1]]; !dup {
				p.uniforms[m[1]] = int32(len(p.uniforms))
			}
		}
	}
	p.linked = true
	p.log = ""
}

func (d *Driver) ValidateProgram(program uint32) {
	d.record("ValidateProgram")
	if _, ok := d.programs[program]; !ok {
		d.errors = append(d.errors, gfx.InvalidValue)
	}
}

func (d *Driver) GetProgramiv(program, pname uint32) int32 {
	d.record("GetProgramiv")
	p, ok := d.programs[program]
	if !ok {
		d.errors = append(d.errors, gfx.InvalidValue)
		return 0
	}
	switch pname {
	case gfx.LinkStatus:
		if p.linked {
			return gfx.True
		}
		return gfx.False
	case gfx.ValidateStatus:
		if p.linked && !d.FailValidate {
			return gfx.True
		}
		return gfx.False
	case gfx.InfoLogLength:
		if p.log == "" {
			return 0
		}
		return int32(len(p.log) + 1)
	}
	d.errors = append(d.errors, gfx.InvalidEnum)
	return 0
}

func (d *Driver) GetProgramInfoLog(program uint32) string {
	d.record("GetProgramInfoLog")
	if p, ok := d.programs[program]; ok {
		return p.log
	}
	return ""
}

func (d *Driver) UseProgram(program uint32) {
	d.record("UseProgram")
	if program != 0 {
		p, ok := d.programs[program]
		if !ok || !p.linked {
			d.errors = append(d.errors, gfx.InvalidOperation)
			return
		}
	}
	d.program = program
}

func (d *Driver) DeleteProgram(program uint32) {
	d.record("DeleteProgram")
	if program == 0 {
		return
	}
	delete(d.programs, program)
	d.Deleted["program"] = append(d.Deleted["program"], program)
}

func (d *Driver) GetUniformLocation(program uint32, name string) int32 {
	d.record("GetUniformLocation")
	p, ok := d.programs[program]
	if !ok || !p.linked {
		d.errors = append(d.errors, gfx.InvalidOperation)
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Driver) Uniform1i(location int32, v int32) {
	d.record("Uniform1i")
	if d.program == 0 {
		d.errors = append(d.errors, gfx.InvalidOperation)
		return
	}
	d.Samplers[location] = v
}

func (d *Driver) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	d.record("Uniform4f")
	if d.program == 0 {
		d.errors = append(d.errors, gfx.InvalidOperation)
		return
	}
	d.Uniforms[location] = [4]float32{v0, v1, v2, v3}
}

func (d *Driver) GenVertexArray() uint32 {
	d.record("GenVertexArray")
	return d.gen()
}

func (d *Driver) BindVertexArray(vao uint32) {
	d.record("BindVertexArray")
	d.vao = vao
}

func (d *Driver) DeleteVertexArray(vao uint32) {
	d.record("DeleteVertexArray")
	d.Deleted["vao"] = append(d.Deleted["vao"], vao)
}

func (d *Driver) GenBuffer() uint32 {
	d.record("GenBuffer")
	return d.gen()
}

func (d *Driver) BindBuffer(target, buffer uint32) {
	d.record("BindBuffer")
	if target != gfx.ArrayBuffer && target != gfx.ElementArrayBuffer {
		d.errors = append(d.errors, gfx.InvalidEnum)
		return
	}
	d.boundBuffer[target] = buffer
}

func (d *Driver) bufferData(target uint32, n int) {
	buf := d.boundBuffer[target]
	if buf == 0 {
		d.errors = append(d.errors, gfx.InvalidOperation)
		return
	}
	d.Buffers[buf] = make([]byte, n)
}

func (d *Driver) BufferFloat32(target uint32, data []float32, usage uint32) {
	d.record("BufferFloat32")
	d.bufferData(target, len(data)*4)
}

func (d *Driver) BufferUint32(target uint32, data []uint32, usage uint32) {
	d.record("BufferUint32")
	d.bufferData(target, len(data)*4)
}

func (d *Driver) DeleteBuffer(buffer uint32) {
	d.record("DeleteBuffer")
	d.Deleted["buffer"] = append(d.Deleted["buffer"], buffer)
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray")
	if d.vao == 0 {
		d.errors = append(d.errors, gfx.InvalidOperation)
	}
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	d.record("VertexAttribPointer")
	if d.vao == 0 || d.boundBuffer[gfx.ArrayBuffer] == 0 {
		d.errors = append(d.errors, gfx.InvalidOperation)
		return
	}
	if size < 1 || size > 4 {
		d.errors = append(d.errors, gfx.InvalidValue)
	}
}

func (d *Driver) GenTexture() uint32 {
	d.record("GenTexture")
	return d.gen()
}

func (d *Driver) ActiveTexture(unit uint32) {
	d.record("ActiveTexture")
	if unit < gfx.Texture0 || unit > gfx.Texture0+31 {
		d.errors = append(d.errors, gfx.InvalidEnum)
	}
}

func (d *Driver) BindTexture(target, texture uint32) {
	d.record("BindTexture")
	d.boundTex = texture
}

func (d *Driver) TexParameteri(target, pname uint32, param int32) {
	d.record("TexParameteri")
	if d.boundTex == 0 {
		d.errors = append(d.errors, gfx.InvalidOperation)
	}
}

func (d *Driver) TexImage2D(target uint32, width, height int32, rgba []byte) {
	d.record("TexImage2D")
	if d.boundTex == 0 {
		d.errors = append(d.errors, gfx.InvalidOperation)
		return
	}
	if width < 0 || height < 0 || len(rgba) < int(width*height*4) {
		d.errors = append(d.errors, gfx.InvalidValue)
		return
	}
	d.Textures[d.boundTex] = [2]int32{width, height}
}

func (d *Driver) DeleteTexture(texture uint32) {
	d.record("DeleteTexture")
	d.Deleted["texture"] = append(d.Deleted["texture"], texture)
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.record("Viewport")
	if width < 0 || height < 0 {
		d.errors = append(d.errors, gfx.InvalidValue)
	}
}

func (d *Driver) ClearColor(r, g, b, a float32) { d.record("ClearColor") }

func (d *Driver) Clear(mask uint32) {
	d.record("Clear")
	if mask&^(gfx.ColorBufferBit|gfx.DepthBufferBit) != 0 {
		d.errors = append(d.errors, gfx.InvalidValue)
	}
}

func (d *Driver) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	d.record("DrawElements")
	if d.program == 0 || d.vao == 0 {
		d.errors = append(d.errors, gfx.InvalidOperation)
		return
	}
	d.Draws = append(d.Draws, Draw{
		Mode: mode, Count: count, Type: xtype, Offset: offset,
		Program: d.program, VAO: d.vao, IBO: d.boundBuffer[gfx.ElementArrayBuffer],
	})
}

var _ gfx.Driver = (*Driver)(nil)
