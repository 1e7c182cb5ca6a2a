package ui

import "github.com/samber/lo"

// Rect is an axis aligned rectangle in pixels, top-left origin.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Shrink insets every side by p.
func (r Rect) Shrink(p float32) Rect {
	return Rect{r.X + p, r.Y + p, max(r.W-2*p, 0), max(r.H-2*p, 0)}
}

// Intersect returns the overlap of r and o, empty when they do not touch.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// CutTop removes a band of height h from the top of r and returns it.
func (r *Rect) CutTop(h float32) Rect {
	h = lo.Clamp(h, 0, r.H)
	out := Rect{r.X, r.Y, r.W, h}
	r.Y += h
	r.H -= h
	return out
}

func (r *Rect) CutBottom(h float32) Rect {
	h = lo.Clamp(h, 0, r.H)
	r.H -= h
	return Rect{r.X, r.Y + r.H, r.W, h}
}

func (r *Rect) CutLeft(w float32) Rect {
	w = lo.Clamp(w, 0, r.W)
	out := Rect{r.X, r.Y, w, r.H}
	r.X += w
	r.W -= w
	return out
}

func (r *Rect) CutRight(w float32) Rect {
	w = lo.Clamp(w, 0, r.W)
	r.W -= w
	return Rect{r.X + r.W, r.Y, w, r.H}
}
