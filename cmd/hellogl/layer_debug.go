package main

import (
	"fmt"
	"time"

	"github.com/hubastard/hellogl/engine/core"
)

// ------- Frame stats in the window title -------
type LayerDebug struct {
	title   string
	quad    *QuadLayer
	frames  int
	since   time.Time
	showing bool
}

func (l *LayerDebug) OnAttach(e *core.Engine) error {
	l.title = e.Config.Title
	l.since = time.Now()
	return nil
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) error {
	l.frames++
	if !l.showing {
		return nil
	}
	if el := time.Since(l.since); el >= time.Second {
		ms := float64(el.Milliseconds()) / float64(l.frames)
		st := l.quad.Stats()
		e.Window.SetTitle(fmt.Sprintf("%s | %.2f ms (%.0f FPS) | draws %d, indices %d",
			l.title, ms, float64(l.frames)/el.Seconds(), st.DrawCalls, st.IndexCount))
		l.frames = 0
		l.since = time.Now()
	}
	return nil
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyP && (k.Mods&core.ModCtrl) != 0 {
		l.showing = !l.showing
		if !l.showing {
			e.Window.SetTitle(l.title)
		}
		l.frames = 0
		l.since = time.Now()
		return true
	}
	return false
}
