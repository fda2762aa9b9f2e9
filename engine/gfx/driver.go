// Package gfx describes the slice of OpenGL the engine talks to.
//
// Packages above the backend only see Driver, so they can be exercised
// without a GL context (see gfx/gfxtest).
package gfx

// GL enum values used by the engine. They match the numbers in the
// OpenGL registry so a backend can pass them through unchanged.
const (
	NoError                     uint32 = 0
	InvalidEnum                 uint32 = 0x0500
	InvalidValue                uint32 = 0x0501
	InvalidOperation            uint32 = 0x0502
	StackOverflow               uint32 = 0x0503
	StackUnderflow              uint32 = 0x0504
	OutOfMemory                 uint32 = 0x0505
	InvalidFramebufferOperation uint32 = 0x0506
	ContextLost                 uint32 = 0x0507

	False = 0
	True  = 1

	Triangles = 0x0004

	UnsignedByte = 0x1401
	UnsignedInt  = 0x1405
	Float        = 0x1406

	ArrayBuffer        = 0x8892
	ElementArrayBuffer = 0x8893
	StaticDraw         = 0x88E4
	DynamicDraw        = 0x88E8

	FragmentShader = 0x8B30
	VertexShader   = 0x8B31
	CompileStatus  = 0x8B81
	LinkStatus     = 0x8B82
	ValidateStatus = 0x8B83
	InfoLogLength  = 0x8B84

	ColorBufferBit = 0x00004000
	DepthBufferBit = 0x00000100

	Texture2D        = 0x0DE1
	Texture0         = 0x84C0
	RGBA             = 0x1908
	RGBA8            = 0x8058
	TextureMinFilter = 0x2801
	TextureMagFilter = 0x2800
	TextureWrapS     = 0x2802
	TextureWrapT     = 0x2803
	Nearest          = 0x2600
	Linear           = 0x2601
	ClampToEdge      = 0x812F

	Vendor   = 0x1F00
	Renderer = 0x1F01
	Version  = 0x1F02
)

// Driver is implemented by the GL backend. Methods mirror the GL entry
// points of the same name; object-creating calls return the new name.
type Driver interface {
	GetError() uint32
	GetString(name uint32) string

	CreateShader(stage uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	GetProgramiv(program, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferFloat32(target uint32, data []float32, usage uint32)
	BufferUint32(target uint32, data []uint32, usage uint32)
	DeleteBuffer(buffer uint32)

	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(target, texture uint32)
	TexParameteri(target, pname uint32, param int32)
	TexImage2D(target uint32, width, height int32, rgba []byte)
	DeleteTexture(texture uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)
}
