package ui

import "github.com/samber/lo"

// ScrollContext is the viewport offset of a scrollable widget. Offsets are zero
// or negative: content moves up and left as the user scrolls.
type ScrollContext struct {
	OffsetX, OffsetY float32
	MinX, MaxX       float32
	MinY, MaxY       float32
	Created          bool
}

// Enforce clamps the offsets into their bounds.
func (s *ScrollContext) Enforce() {
	s.OffsetX = lo.Clamp(s.OffsetX, s.MinX, s.MaxX)
	s.OffsetY = lo.Clamp(s.OffsetY, s.MinY, s.MaxY)
}

// FitContent sets the bounds so content of size (w, h) can be panned through a
// viewport of size (vw, vh).
func (s *ScrollContext) FitContent(w, h, vw, vh float32) {
	s.MinX, s.MaxX = -max(w-vw, 0), 0
	s.MinY, s.MaxY = -max(h-vh, 0), 0
}

// ZoomContext is the zoom level of a zoomable widget.
type ZoomContext struct {
	Zoom     float32
	Min, Max float32
	Created  bool
}

// Scroll returns the scroll context of id, creating it on first use.
func (g *Gui) Scroll(id ID) *ScrollContext {
	s, ok := g.scrolls[id]
	if ok {
		s.Created = false
		return s
	}
	return g.scrollContext(id)
}

// Zoom returns the zoom context of id, creating it on first use.
func (g *Gui) Zoom(id ID) *ZoomContext {
	z, ok := g.zooms[id]
	if ok {
		z.Created = false
		return z
	}
	return g.zoomContext(id)
}

// scrollContext looks up or creates without clearing Created, so the owner still
// sees a context made by the resolver as new.
func (g *Gui) scrollContext(id ID) *ScrollContext {
	if s, ok := g.scrolls[id]; ok {
		return s
	}
	s := &ScrollContext{Created: true}
	g.scrolls[id] = s
	return s
}

func (g *Gui) zoomContext(id ID) *ZoomContext {
	if z, ok := g.zooms[id]; ok {
		return z
	}
	z := &ZoomContext{
		Zoom:    float32(g.cfg.MinTextScale),
		Min:     float32(g.cfg.MinTextScale),
		Max:     float32(g.cfg.MaxTextScale),
		Created: true,
	}
	g.zooms[id] = z
	return z
}
