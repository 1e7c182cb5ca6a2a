package renderer2d

import (
	"cmp"
	"math"
	"slices"

	"github.com/hubastard/scribe/engine/colors"
	"github.com/hubastard/scribe/engine/core"
	"github.com/hubastard/scribe/engine/ui"
)

// GlyphSource is a font that can place its glyphs on an atlas texture.
type GlyphSource interface {
	ui.Font
	// GlyphQuad reports where ch sits inside its cell at scale, and its atlas rect.
	GlyphQuad(ch rune, scale int) (x, y, w, h float32, sub SubTexture2D, ok bool)
}

// QuadSink receives the sorted quads. *Renderer2D is one.
type QuadSink interface {
	SetScissor(s core.ScissorRect)
	DrawRect(x, y, w, h float32, c colors.Color)
	DrawTexturedRect(x, y, w, h float32, sub SubTexture2D, tint colors.Color)
}

type paintCmd struct {
	z          int
	scissor    core.ScissorRect
	x, y, w, h float32
	color      colors.Color
	sub        SubTexture2D
	textured   bool
}

// Painter implements ui.Painter. Calls are recorded during the frame and
// replayed by Flush in z order; equal z keeps submission order.
type Painter struct {
	sink     QuadSink
	cmds     []paintCmd
	scissors []core.ScissorRect
}

func NewPainter(sink QuadSink) *Painter {
	return &Painter{sink: sink}
}

func (p *Painter) DrawQuad(r ui.Rect, z int, c colors.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	p.cmds = append(p.cmds, paintCmd{z: z, scissor: p.current(), x: r.X, y: r.Y, w: r.W, h: r.H, color: c})
}

func (p *Painter) DrawGlyph(f ui.Font, x, y float32, z int, scale int, ch rune, c colors.Color) {
	gs, ok := f.(GlyphSource)
	if !ok {
		return
	}
	gx, gy, gw, gh, sub, ok := gs.GlyphQuad(ch, scale)
	if !ok || gw <= 0 || gh <= 0 {
		return
	}
	p.cmds = append(p.cmds, paintCmd{
		z: z, scissor: p.current(),
		x: x + gx, y: y + gy, w: gw, h: gh,
		color: c, sub: sub, textured: true,
	})
}

// PushScissor clips to r intersected with the enclosing clip.
func (p *Painter) PushScissor(r ui.Rect) {
	s := core.ScissorRect{
		X:       int(math.Floor(float64(r.X))),
		Y:       int(math.Floor(float64(r.Y))),
		W:       int(math.Ceil(float64(r.W))),
		H:       int(math.Ceil(float64(r.H))),
		Enabled: true,
	}
	if top := p.current(); top.Enabled {
		x0, y0 := max(s.X, top.X), max(s.Y, top.Y)
		x1, y1 := min(s.X+s.W, top.X+top.W), min(s.Y+s.H, top.Y+top.H)
		s = core.ScissorRect{X: x0, Y: y0, W: max(x1-x0, 0), H: max(y1-y0, 0), Enabled: true}
	}
	p.scissors = append(p.scissors, s)
}

func (p *Painter) PopScissor() {
	if len(p.scissors) > 0 {
		p.scissors = p.scissors[:len(p.scissors)-1]
	}
}

// Pending is the number of recorded commands not yet flushed.
func (p *Painter) Pending() int { return len(p.cmds) }

// Flush replays the frame's commands in z order and clears them.
func (p *Painter) Flush() {
	slices.SortStableFunc(p.cmds, func(a, b paintCmd) int { return cmp.Compare(a.z, b.z) })
	for _, c := range p.cmds {
		p.sink.SetScissor(c.scissor)
		if c.textured {
			p.sink.DrawTexturedRect(c.x, c.y, c.w, c.h, c.sub, c.color)
		} else {
			p.sink.DrawRect(c.x, c.y, c.w, c.h, c.color)
		}
	}
	p.sink.SetScissor(core.ScissorRect{})
	p.cmds = p.cmds[:0]
	p.scissors = p.scissors[:0]
}

func (p *Painter) current() core.ScissorRect {
	if len(p.scissors) == 0 {
		return core.ScissorRect{}
	}
	return p.scissors[len(p.scissors)-1]
}
