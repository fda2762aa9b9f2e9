package main

import (
	"flag"
	"log"
	"os"

	"github.com/hubastard/hellogl/engine/core"
	glbackend "github.com/hubastard/hellogl/engine/gfx/gl"
	"github.com/hubastard/hellogl/engine/platform"
	"github.com/hubastard/hellogl/engine/profiler"
)

type App struct {
	quad  *QuadLayer
	debug *LayerDebug
}

func (a *App) OnStart(e *core.Engine) error {
	a.quad = NewQuadLayer()
	if err := e.Layers.PushAttached(e, a.quad); err != nil {
		return err
	}
	a.debug = &LayerDebug{quad: a.quad}
	return e.Layers.PushAttached(e, a.debug)
}

func (a *App) OnUpdate(e *core.Engine, dt float64)          {}
func (a *App) OnRender(e *core.Engine, alpha float64) error { return nil }
func (a *App) OnEvent(e *core.Engine, ev core.Event)        {}

func (a *App) OnShutdown(e *core.Engine) {
	if profiler.Enabled {
		if err := profiler.Report(os.Stderr); err != nil {
			log.Printf("profiler report: %v", err)
		}
	}
}

func main() {
	cfg := core.DefaultConfig()
	flag.StringVar(&cfg.ShaderPath, "shader", cfg.ShaderPath, "two-section shader file")
	flag.StringVar(&cfg.GLHeaderPath, "glheader", cfg.GLHeaderPath, "GL header used to name error codes")
	flag.StringVar(&cfg.TexturePath, "texture", cfg.TexturePath, "optional PNG/BMP/WebP texture for the quad")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	flag.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "wait for vertical sync")
	keepGoing := flag.Bool("keep-going", false, "log GL errors and keep rendering instead of exiting")
	configPath := flag.String("config", "", "TOML file with settings; command-line flags take precedence")
	dumpConfig := flag.Bool("dumpconfig", false, "print the effective settings as TOML and exit")
	flag.Parse()

	if *configPath != "" {
		if err := core.LoadConfigFile(*configPath, &cfg); err != nil {
			log.Fatal(err)
		}
		// the file overwrote flag values; put the command line back on top
		if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
			log.Fatal(err)
		}
	}
	if *keepGoing {
		cfg.ErrorPolicy = core.PolicyLog
	}
	if *dumpConfig {
		if err := core.WriteConfig(os.Stdout, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(&App{}, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
