package platform

import (
	"fmt"
	"image"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/hubastard/scribe/engine/assets"
	"github.com/hubastard/scribe/engine/core"
)

// GLFWWindow implements core.Window and pushes events to the app via a handler.
type GLFWWindow struct {
	w    *glfw.Window
	log  *zap.Logger
	onEv func(core.Event)
	mods core.Mod
}

// Must be called on main thread before any GL calls.
func NewGLFWWindow(cfg core.Config, log *zap.Logger, onEvent func(core.Event)) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if log == nil {
		log = zap.NewNop()
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}

	gw := &GLFWWindow{w: win, log: log, onEv: onEvent}
	if cfg.Icon != "" {
		if icon, err := assets.LoadPNG(cfg.Icon); err != nil {
			log.Warn("window icon not loaded", zap.Error(err))
		} else {
			gw.SetIcon(icon)
		}
	}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(core.EventMouseMove{X: x, Y: y})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		gw.mods = translateMods(mods)
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		if action != glfw.Release {
			k = core.Shortcut(k, gw.mods)
		}
		gw.emit(core.EventKey{Key: k, Down: action != glfw.Release, Mods: gw.mods})
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		gw.emit(core.EventChar{Rune: r, Mods: gw.mods})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		btn, ok := translateButton(b)
		if !ok {
			return
		}
		gw.mods = translateMods(mods)
		gw.emit(core.EventMouseButton{Button: btn, Down: action == glfw.Press, Mods: gw.mods})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(core.EventScroll{Xoff: xoff, Yoff: yoff, Mods: gw.mods})
	})

	log.Info("window created", zap.Int("width", cfg.Width), zap.Int("height", cfg.Height), zap.Bool("vsync", cfg.VSync))
	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// Destroy releases the window and terminates GLFW.
func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// SetIcon does nothing on macOS, where GLFW has no window icons.
func (g *GLFWWindow) SetIcon(img *image.RGBA) {
	if runtime.GOOS == "darwin" {
		return
	}
	g.w.SetIcon([]image.Image{img})
}

var keyTable = map[glfw.Key]core.Key{
	glfw.KeyEscape:    core.KeyEscape,
	glfw.KeySpace:     core.KeySpace,
	glfw.KeyEnter:     core.KeyEnter,
	glfw.KeyKPEnter:   core.KeyEnter,
	glfw.KeyTab:       core.KeyTab,
	glfw.KeyBackspace: core.KeyBackspace,
	glfw.KeyDelete:    core.KeyDelete,
	glfw.KeyLeft:      core.KeyLeft,
	glfw.KeyRight:     core.KeyRight,
	glfw.KeyUp:        core.KeyUp,
	glfw.KeyDown:      core.KeyDown,
	glfw.KeyHome:      core.KeyHome,
	glfw.KeyEnd:       core.KeyEnd,
	glfw.KeyPageUp:    core.KeyPageUp,
	glfw.KeyPageDown:  core.KeyPageDown,
	glfw.KeyA:         core.KeyA,
	glfw.KeyC:         core.KeyC,
	glfw.KeyD:         core.KeyD,
	glfw.KeyP:         core.KeyP,
	glfw.KeyS:         core.KeyS,
	glfw.KeyV:         core.KeyV,
	glfw.KeyW:         core.KeyW,
	glfw.KeyX:         core.KeyX,
	glfw.KeyY:         core.KeyY,
	glfw.KeyZ:         core.KeyZ,
	glfw.KeyF1:        core.KeyF1,
}

func translateKey(k glfw.Key) core.Key {
	if ck, ok := keyTable[k]; ok {
		return ck
	}
	return core.KeyUnknown
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft, true
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle, true
	case glfw.MouseButtonRight:
		return core.MouseRight, true
	}
	return 0, false
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
