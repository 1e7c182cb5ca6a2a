package core

import (
	"time"

	"go.uber.org/zap"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack
	Log      *zap.Logger
	Config   Config

	// Events collects everything received since the last rendered frame.
	// The app drains it while building the UI.
	Events EventQueue

	posted chan Event
	start  time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Now is the engine clock used for interaction timing.
func (e *Engine) Now() time.Duration { return time.Since(e.start) }

// Post queues an event from any goroutine. It is delivered on the main loop
// before the next frame. Events are dropped when the backlog is full.
func (e *Engine) Post(ev Event) {
	select {
	case e.posted <- ev:
	default:
		e.Log.Warn("event backlog full, dropping", zap.String("event", eventName(ev)))
	}
}

func (e *Engine) drainPosted(dispatch func(Event)) {
	for {
		select {
		case ev := <-e.posted:
			dispatch(ev)
		default:
			return
		}
	}
}

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer abstraction over the GPU backend.
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateTexture(desc TextureDesc) (Texture, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	UpdateMesh(m Mesh, vertices []float32, indices []uint32) error
	Draw(cmd DrawCmd)
	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
	Shutdown()
}

func eventName(ev Event) string {
	switch ev.(type) {
	case EventKey:
		return "key"
	case EventChar:
		return "char"
	case EventMouseButton:
		return "mouse_button"
	case EventMouseMove:
		return "mouse_move"
	case EventScroll:
		return "scroll"
	case EventPaste:
		return "paste"
	case EventResize:
		return "resize"
	case EventCloseRequested:
		return "close"
	default:
		return "unknown"
	}
}
