package core

import (
	"time"

	"github.com/hubastard/hellogl/engine/colors"
	"github.com/hubastard/hellogl/engine/gfx"
	"github.com/hubastard/hellogl/engine/gfx/glcheck"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine) error                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)          // called at a fixed tick (60Hz)
	OnRender(e *Engine, alpha float64) error // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)             // input/window events
	OnShutdown(e *Engine)                    // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   *LayerStack
	Config   Config
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Destroy()
}

// Renderer is the GL backend as seen by the engine.
type Renderer interface {
	Driver() gfx.Driver
	Checker() *glcheck.Checker
	Resize(w, h int) error
	Clear(c colors.Color) error
	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

// Key/mod enums (subset).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyP
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// ErrorPolicy decides what Run does when a frame reports an error.
type ErrorPolicy int

const (
	// PolicyAbort stops the loop and returns the error from Run.
	PolicyAbort ErrorPolicy = iota
	// PolicyLog logs the error and keeps rendering.
	PolicyLog
)

// Config for the engine run. It can be read from a TOML file, see LoadConfigFile.
type Config struct {
	Title      string       `toml:"title"`
	Width      int          `toml:"width"`
	Height     int          `toml:"height"`
	VSync      bool         `toml:"vsync"`
	Resizable  bool         `toml:"resizable"`
	GLMajor    int          `toml:"gl_major"`
	GLMinor    int          `toml:"gl_minor"`
	ClearColor colors.Color `toml:"clear_color"`

	ShaderPath   string `toml:"shader"`   // two-section shader file
	GLHeaderPath string `toml:"glheader"` // header scanned for GL error names
	TexturePath  string `toml:"texture"`  // optional; empty draws the tint only

	ErrorPolicy ErrorPolicy `toml:"on_gl_error"`
}

// DefaultConfig matches the classic "Hello World" tutorial window.
func DefaultConfig() Config {
	return Config{
		Title:        "Hello World",
		Width:        640,
		Height:       480,
		VSync:        true,
		Resizable:    false,
		GLMajor:      3,
		GLMinor:      3,
		ClearColor:   colors.Teal,
		ShaderPath:   "res/shaders/Basic.shader",
		GLHeaderPath: "res/gl/gl_errors.h",
		ErrorPolicy:  PolicyAbort,
	}
}
