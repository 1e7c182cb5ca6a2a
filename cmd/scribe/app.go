package main

import (
	"go.uber.org/zap"

	"github.com/hubastard/scribe/engine/assets"
	"github.com/hubastard/scribe/engine/core"
	"github.com/hubastard/scribe/engine/gfx/renderer2d"
	"github.com/hubastard/scribe/engine/platform"
	"github.com/hubastard/scribe/engine/profiler"
	"github.com/hubastard/scribe/engine/scene"
	"github.com/hubastard/scribe/engine/text"
)

const maxQuads = 10000

// App owns the resources shared by the layers.
type App struct {
	r2d   *renderer2d.Renderer2D
	cam   *scene.ScreenCamera
	font  *text.Font
	clip  *platform.Clipboard
	stats renderer2d.Statistics

	editor *EditorLayer
	debug  *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 16)

	vs, err := assets.LoadShader(e.Config.AssetsDir, "renderer2d.vert")
	if err != nil {
		e.Log.Fatal("vertex shader", zap.Error(err))
	}
	fs, err := assets.LoadShader(e.Config.AssetsDir, "renderer2d.frag")
	if err != nil {
		e.Log.Fatal("fragment shader", zap.Error(err))
	}
	a.r2d, err = renderer2d.New(e.Renderer, vs, fs, maxQuads)
	if err != nil {
		e.Log.Fatal("2D renderer", zap.Error(err))
	}

	a.font = loadFont(e)
	a.cam = scene.NewScreenOrtho(e.Window.FramebufferSize())
	a.clip = platform.NewClipboard(e.Post, e.Log)

	a.editor = &EditorLayer{app: a}
	e.Layers.Push(e, a.editor)
	a.debug = &LayerDebug{app: a}
	e.Layers.Push(e, a.debug)
}

func loadFont(e *core.Engine) *text.Font {
	size := float32(e.Config.Editor.FontSizePx)
	if path := e.Config.Editor.Font; path != "" {
		f, err := text.LoadTTF(e.Renderer, path, size)
		if err == nil {
			return f
		}
		e.Log.Warn("font not loaded, using Go Mono", zap.String("path", path), zap.Error(err))
	}
	f, err := text.LoadDefault(e.Renderer, size)
	if err != nil {
		e.Log.Fatal("default font", zap.Error(err))
	}
	return f
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	e.Layers.Update(e, dt)
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("App.OnRender")()
	a.r2d.BeginScene(a.cam.VP())
	e.Layers.Render(e, alpha)
	a.r2d.EndScene()
	a.stats = a.r2d.Stats()
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if r, ok := ev.(core.EventResize); ok && r.W > 0 && r.H > 0 {
		a.cam.Resize(r.W, r.H)
	}
	e.Layers.Dispatch(e, ev)
}

func (a *App) OnShutdown(e *core.Engine) {
	e.Layers.Clear(e)
	a.font.Close()
}
