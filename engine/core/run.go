package core

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

const postedBacklog = 64

// Run wires the platform window + renderer and executes the main loop.
// Input events are fed to the app and queued on Engine.Events; the queue is
// cleared after every rendered frame.
func Run(app App, cfg Config, log *zap.Logger, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	if log == nil {
		log = zap.NewNop()
	}

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()
	log.Info("renderer ready",
		zap.String("vendor", rend.GPUVendor()),
		zap.String("renderer", rend.GPURenderer()),
		zap.String("version", rend.GPUVersion()))

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(),
		Log:      log,
		Config:   cfg,
		posted:   make(chan Event, postedBacklog),
		start:    time.Now(),
	}

	dispatch := func(ev Event) {
		eng.Input.Handle(ev)
		switch v := ev.(type) {
		case EventResize:
			if v.W < 1 || v.H < 1 {
				return
			}
			rend.Resize(v.W, v.H)
		case EventCloseRequested:
			win.RequestClose()
		default:
			eng.Events.Push(ev)
		}
		app.OnEvent(eng, ev)
	}
	win.SetEventCallback(dispatch)

	app.OnStart(eng)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()
		eng.drainPosted(dispatch)

		steps := 0
		for accum >= tick && steps < maxStep {
			app.OnUpdate(eng, float64(tick)/float64(time.Second))
			accum -= tick
			steps++
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng, alpha)
		eng.Events.Reset()

		win.SwapBuffers()
	}

	app.OnShutdown(eng)
	log.Info("engine exit", zap.Duration("uptime", eng.Uptime()))
	return nil
}
