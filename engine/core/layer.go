package core

// Layer is a unit of per-frame work pushed onto the engine. Layers own
// their GPU resources: OnAttach acquires them, OnDetach releases them.
type Layer interface {
	OnAttach(e *Engine) error
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64) error
	OnEvent(e *Engine, ev Event) bool // return true if handled; propagation stops
}

type LayerStack struct{ list []Layer }

func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }
func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list = ls.list[:i]
	return l, true
}

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) ForEach(f func(Layer) error) error {
	for _, l := range ls.list {
		if err := f(l); err != nil {
			return err
		}
	}
	return nil
}

func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if stop := f(ls.list[i]); stop {
			break
		}
	}
}

// PushAttached attaches l and pushes it only if attaching succeeded.
func (ls *LayerStack) PushAttached(e *Engine, l Layer) error {
	if err := l.OnAttach(e); err != nil {
		return err
	}
	ls.Push(l)
	return nil
}

// DetachAll pops every layer, newest first, calling OnDetach on each.
func (ls *LayerStack) DetachAll(e *Engine) {
	for {
		l, ok := ls.Pop()
		if !ok {
			return
		}
		l.OnDetach(e)
	}
}
