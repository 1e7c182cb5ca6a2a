package core

// Layer is one slice of the app: the editor, an overlay, a debug HUD.
// Layers render bottom-up and receive events top-down.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // return true if handled; propagation stops
}

type LayerStack struct{ list []Layer }

// Push attaches l on top of the stack.
func (ls *LayerStack) Push(e *Engine, l Layer) {
	ls.list = append(ls.list, l)
	l.OnAttach(e)
}

// Pop detaches the top layer.
func (ls *LayerStack) Pop(e *Engine) (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list[i] = nil
	ls.list = ls.list[:i]
	l.OnDetach(e)
	return l, true
}

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) Update(e *Engine, dt float64) {
	for _, l := range ls.list {
		l.OnUpdate(e, dt)
	}
}

func (ls *LayerStack) Render(e *Engine, alpha float64) {
	for _, l := range ls.list {
		l.OnRender(e, alpha)
	}
}

// Dispatch offers ev to each layer from the top until one handles it.
func (ls *LayerStack) Dispatch(e *Engine, ev Event) bool {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if ls.list[i].OnEvent(e, ev) {
			return true
		}
	}
	return false
}

// Clear detaches every layer, top first.
func (ls *LayerStack) Clear(e *Engine) {
	for ls.Len() > 0 {
		ls.Pop(e)
	}
}
