package core

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// Run wires the platform window + renderer and executes the main loop.
// Layers still on the stack are detached, newest first, before the
// renderer and window are torn down.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(),
		Layers:   &LayerStack{},
		Config:   cfg,
		start:    time.Now(),
	}
	defer eng.Layers.DetachAll(eng)

	w, h := win.FramebufferSize()
	if err := rend.Resize(w, h); err != nil {
		return err
	}

	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		app.OnEvent(eng, ev)
		eng.Layers.ForEachReverse(func(l Layer) bool { return l.OnEvent(eng, ev) })
		switch ev.(type) {
		case EventResize:
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			if err := rend.Resize(fw, fh); err != nil {
				log.Printf("resize: %v", err)
			}
		case EventCloseRequested:
			win.RequestClose()
		}
	})

	if err := app.OnStart(eng); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer app.OnShutdown(eng)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) error { l.OnUpdate(eng, dt); return nil })
			accum -= tick
			steps++
		}
		if steps == maxStep {
			accum = 0
		}
		alpha := float64(accum) / float64(tick)

		if err := renderFrame(eng, app, alpha); err != nil {
			if cfg.ErrorPolicy == PolicyAbort {
				return err
			}
			log.Printf("frame: %v", err)
		}
		eng.Input.EndFrame()

		win.SwapBuffers()
	}

	log.Println("Engine exit")
	return nil
}

func renderFrame(eng *Engine, app App, alpha float64) error {
	if err := eng.Renderer.Clear(eng.Config.ClearColor); err != nil {
		return err
	}
	if err := app.OnRender(eng, alpha); err != nil {
		return err
	}
	return eng.Layers.ForEach(func(l Layer) error { return l.OnRender(eng, alpha) })
}
