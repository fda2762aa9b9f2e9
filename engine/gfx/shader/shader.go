// Package shader compiles shader stages and links them into programs.
package shader

import (
	"fmt"
	"log"
	"strings"

	"github.com/hubastard/hellogl/engine/assets"
	"github.com/hubastard/hellogl/engine/gfx"
	"github.com/hubastard/hellogl/engine/gfx/glcheck"
)

// CompileError carries the driver log of a failed stage.
type CompileError struct {
	Stage assets.Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compile error: %s", e.Stage, e.Log)
}

// LinkError carries the driver log of a failed link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string { return "program link error: " + e.Log }

// UniformNotFoundError reports a uniform the program does not expose.
type UniformNotFoundError struct {
	Program uint32
	Name    string
}

func (e *UniformNotFoundError) Error() string {
	return fmt.Sprintf("uniform %q not found in program %d", e.Name, e.Program)
}

// Compiler builds GPU programs through a driver.
type Compiler struct {
	d     gfx.Driver
	check *glcheck.Checker
}

func NewCompiler(d gfx.Driver, check *glcheck.Checker) *Compiler {
	return &Compiler{d: d, check: check}
}

func glStage(s assets.Stage) (uint32, error) {
	switch s {
	case assets.StageVertex:
		return gfx.VertexShader, nil
	case assets.StageFragment:
		return gfx.FragmentShader, nil
	}
	return 0, fmt.Errorf("shader: no GL stage for %s", s)
}

// Compile builds one stage. On failure the shader object is released and
// the returned handle is 0.
func (c *Compiler) Compile(stage assets.Stage, source string) (uint32, error) {
	typ, err := glStage(stage)
	if err != nil {
		return 0, err
	}
	id, err := glcheck.Value(c.check, "glCreateShader", func() uint32 { return c.d.CreateShader(typ) })
	if err != nil {
		return 0, err
	}

	s := c.check.Seq()
	s.Call("glShaderSource", func() { c.d.ShaderSource(id, source) })
	s.Call("glCompileShader", func() { c.d.CompileShader(id) })
	var status int32
	s.Call("glGetShaderiv(GL_COMPILE_STATUS)", func() { status = c.d.GetShaderiv(id, gfx.CompileStatus) })
	if err := s.Err(); err != nil {
		c.d.DeleteShader(id)
		return 0, err
	}

	if status == gfx.False {
		msg := strings.TrimRight(c.d.GetShaderInfoLog(id), "\x00\n")
		c.d.DeleteShader(id)
		return 0, &CompileError{Stage: stage, Log: msg}
	}
	return id, nil
}

// Link attaches both stages to a new program and links it. The stage
// objects are deleted whatever the outcome.
func (c *Compiler) Link(vs, fs uint32) (uint32, error) {
	defer c.d.DeleteShader(fs)
	defer c.d.DeleteShader(vs)

	prog, err := glcheck.Value(c.check, "glCreateProgram", c.d.CreateProgram)
	if err != nil {
		return 0, err
	}

	s := c.check.Seq()
	s.Call("glAttachShader(vertex)", func() { c.d.AttachShader(prog, vs) })
	s.Call("glAttachShader(fragment)", func() { c.d.AttachShader(prog, fs) })
	s.Call("glLinkProgram", func() { c.d.LinkProgram(prog) })
	var status int32
	s.Call("glGetProgramiv(GL_LINK_STATUS)", func() { status = c.d.GetProgramiv(prog, gfx.LinkStatus) })
	if err := s.Err(); err != nil {
		c.d.DeleteProgram(prog)
		return 0, err
	}
	if status == gfx.False {
		msg := strings.TrimRight(c.d.GetProgramInfoLog(prog), "\x00\n")
		c.d.DeleteProgram(prog)
		return 0, &LinkError{Log: msg}
	}

	// Core profiles may refuse validation while no VAO is bound; report only.
	c.d.ValidateProgram(prog)
	if c.d.GetProgramiv(prog, gfx.ValidateStatus) == gfx.False {
		log.Printf("shader: program %d did not validate: %s", prog, strings.TrimRight(c.d.GetProgramInfoLog(prog), "\x00\n"))
	}
	c.check.Drain()
	return prog, nil
}

// Build compiles both stages of src and links them.
func (c *Compiler) Build(src assets.ShaderSource) (uint32, error) {
	vs, err := c.Compile(assets.StageVertex, src.Vertex())
	if err != nil {
		return 0, err
	}
	fs, err := c.Compile(assets.StageFragment, src.Fragment())
	if err != nil {
		c.d.DeleteShader(vs)
		return 0, err
	}
	return c.Link(vs, fs)
}

// UniformLocation looks name up in program.
func (c *Compiler) UniformLocation(program uint32, name string) (int32, error) {
	loc, err := glcheck.Value(c.check, "glGetUniformLocation("+name+")", func() int32 {
		return c.d.GetUniformLocation(program, name)
	})
	if err != nil {
		return -1, err
	}
	if loc == -1 {
		return -1, &UniformNotFoundError{Program: program, Name: name}
	}
	return loc, nil
}

// DeleteProgram releases a program built by this compiler.
func (c *Compiler) DeleteProgram(program uint32) error {
	if program == 0 {
		return nil
	}
	return c.check.Call("glDeleteProgram", func() { c.d.DeleteProgram(program) })
}
