package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/hubastard/scribe/engine/colors"
	"github.com/hubastard/scribe/engine/core"
	"github.com/hubastard/scribe/engine/gfx/renderer2d"
	"github.com/hubastard/scribe/engine/profiler"
	"github.com/hubastard/scribe/engine/scratch"
	"github.com/hubastard/scribe/engine/text"
	"github.com/hubastard/scribe/engine/ui"
)

// LayerDebug is an overlay with frame timing, renderer and memory stats.
// F1 shows it; Ctrl+P dumps the profiler capture.
type LayerDebug struct {
	app     *App
	gui     *ui.Gui
	painter *renderer2d.Painter
	buf     *scratch.Buffer
	events  core.EventQueue

	visible   bool
	lastFrame time.Time
	frameMs   float64
	tick      int
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.gui = ui.New(ui.ConfigFrom(e.Config.GUI), e.Log.Named("debug"), l.app.font)
	l.painter = renderer2d.NewPainter(l.app.r2d)
	l.gui.SetPainter(l.painter)
	l.buf = scratch.New(1024)
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) { l.tick++ }

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	now := time.Now()
	if !l.lastFrame.IsZero() {
		l.frameMs = now.Sub(l.lastFrame).Seconds() * 1000
	}
	l.lastFrame = now
	if !l.visible {
		const hint = "F1 stats"
		fw, fh := e.Window.FramebufferSize()
		w, h := text.MeasureText(l.app.font, hint, 1)
		text.DrawText(l.app.r2d, l.app.font, float32(fw)-w-8, float32(fh)-h-4, 1, hint, colors.Gray)
		return
	}
	defer profiler.Start("LayerDebug.OnRender")()

	// The overlay takes no input; it only needs a frame for drawing.
	l.gui.BeginFrame(ui.FrameInput{Events: &l.events, Now: e.Now()})
	l.buf.Reset()

	b := l.buf
	m := b.Mark()
	b.S("Frame ").I(l.tick).S("\n  ").F(l.frameMs, 3).S(" ms (")
	if l.frameMs > 0 {
		b.F(1000/l.frameMs, 1)
	} else {
		b.S("-")
	}
	b.S(" FPS)\n")

	st := l.app.stats
	b.S("2D renderer\n  draw calls ").I(st.DrawCalls).
		S("\n  quads ").I(st.QuadCount).
		S("\n  vertices ").I(st.TotalVertexCount()).
		S("\n  textures ").I(st.TextureCount).S("\n")

	inUse, allocs := profiler.Memory()
	b.S("Memory\n  usage ").MB(inUse).
		S("\n  allocs ").U(allocs).
		S("\n  goroutines ").I(profiler.NumGoroutine()).
		S("\n  cpus ").I(profiler.NumCPU()).S("\n")

	b.S("GPU\n  ").S(e.Renderer.GPUVendor()).
		S("\n  ").S(e.Renderer.GPURenderer()).
		S("\n  ").S(e.Renderer.GPUVersion())
	if !profiler.Enabled {
		b.S("\nprofiler off (-tags profile)")
	}
	report := b.View(m)

	const pad = 12
	_, fh := e.Window.FramebufferSize()
	cw := float32(l.app.font.CellW)
	inner := ui.Rect{X: 16 + pad, Y: 48 + pad, W: cw * 36, H: float32(fh)}
	used := l.gui.Label(inner, 101, report, 1, true, colors.Yellow)
	panel := ui.Rect{X: 16, Y: 48, W: inner.W + 2*pad, H: used + 2*pad}
	l.painter.DrawQuad(panel, 100, colors.Black.WithAlpha(0.6))
	l.painter.Flush()
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down {
		return false
	}
	switch {
	case k.Key == core.KeyF1:
		l.visible = !l.visible
		return true
	case k.Key == core.KeyP && k.Mods.Has(core.ModCtrl):
		path, err := profiler.Dump(e.Log)
		if err != nil {
			e.Log.Warn("profiler dump", zap.Error(err))
		} else {
			e.Log.Info("profiler dump", zap.String("path", path))
		}
		return true
	}
	return false
}
