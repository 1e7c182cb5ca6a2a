package ui

import (
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/hubastard/scribe/engine/core"
)

// FrameInput is what the host hands the Gui at the start of each frame.
type FrameInput struct {
	Events         *core.EventQueue
	MouseX, MouseY float32
	Mods           core.Mod
	Now            time.Duration
}

// Gui owns all immediate-mode state: the widget lists, the hover/active/interacting
// resolution and the per-widget contexts. One per window.
//
// Hover is resolved from the widgets submitted during the previous frame: among
// hoverable widgets containing the pointer the greatest z wins, and on equal z
// the later submission wins.
type Gui struct {
	cfg       Config
	log       *zap.Logger
	font      Font
	painter   Painter
	clipboard Clipboard

	events         *core.EventQueue
	now            time.Duration
	mouseX, mouseY float32
	mods           core.Mod

	widgets     []Widget // submitted this frame
	prevWidgets []Widget

	hovered, prevHovered ID
	hoveredWidget        Widget

	active, nextActive           ID
	interacting, prevInteracting ID
	interactingCaps              Capability

	button          core.MouseButton
	buttonEvent     bool // a button changed state this frame
	buttonDown      bool
	pressMods       core.Mod
	lastButton      core.MouseButton
	clicks          int
	clickedOnce     bool
	lastClick       time.Duration
	lastInteraction time.Duration

	texts   map[ID]*TextContext
	scrolls map[ID]*ScrollContext
	zooms   map[ID]*ZoomContext
}

func New(cfg Config, log *zap.Logger, font Font) *Gui {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gui{
		cfg:     cfg,
		log:     log,
		font:    font,
		events:  &core.EventQueue{},
		texts:   map[ID]*TextContext{},
		scrolls: map[ID]*ScrollContext{},
		zooms:   map[ID]*ZoomContext{},
	}
}

func (g *Gui) SetPainter(p Painter)     { g.painter = p }
func (g *Gui) SetClipboard(c Clipboard) { g.clipboard = c }
func (g *Gui) Config() Config           { return g.cfg }

// BeginFrame resolves hover and activation from last frame's widgets, then
// consumes the mouse button and wheel events it owns.
func (g *Gui) BeginFrame(in FrameInput) {
	g.events = in.Events
	if g.events == nil {
		g.events = &core.EventQueue{}
	}
	g.now = in.Now
	g.mouseX, g.mouseY = in.MouseX, in.MouseY
	g.mods = in.Mods

	g.buttonEvent = false
	g.buttonDown = false
	g.prevInteracting = g.interacting
	g.prevHovered = g.hovered
	g.hovered = NoID
	g.hoveredWidget = Widget{}

	g.active = g.nextActive
	activeSeen := false
	for _, w := range g.widgets {
		if w.ID == g.active {
			activeSeen = true
		}
		if !w.Caps.Has(CapHoverable) || !w.Rect.Contains(g.mouseX, g.mouseY) {
			continue
		}
		if g.hovered == NoID || w.Z >= g.hoveredWidget.Z {
			g.hovered = w.ID
			g.hoveredWidget = w
		}
	}
	if !activeSeen {
		g.active = NoID
	}

	g.events.Consume(func(ev core.Event) bool {
		handled := false
		switch e := ev.(type) {
		case core.EventMouseButton:
			handled = g.mouseButton(e)
		case core.EventScroll:
			handled = g.wheel(e)
		}
		if handled {
			g.lastInteraction = g.now
		}
		return handled
	})

	if g.prevHovered != g.hovered {
		g.log.Debug("hover", zap.Uint64("from", uint64(g.prevHovered)), zap.Uint64("to", uint64(g.hovered)))
	}

	g.prevWidgets, g.widgets = g.widgets, g.prevWidgets[:0]
}

func (g *Gui) mouseButton(e core.EventMouseButton) bool {
	g.buttonEvent = true
	g.button = e.Button

	if !e.Down {
		handled := g.interacting != NoID
		if handled && !g.interactingCaps.Has(CapActivable) && g.nextActive == g.interacting {
			g.nextActive = NoID
		}
		g.interacting = NoID
		return handled
	}

	sameButton := g.clickedOnce && g.lastButton == e.Button
	g.buttonDown = true
	g.pressMods = e.Mods
	g.lastButton = e.Button

	if g.active != NoID && g.hovered != g.active {
		g.nextActive = NoID
		g.interacting = NoID
	}

	if g.hovered == NoID || !g.hoveredWidget.Caps.Has(clickCap(e.Button)) {
		return false
	}
	g.nextActive = g.hovered
	g.interacting = g.hovered
	g.interactingCaps = g.hoveredWidget.Caps

	window := g.cfg.DoubleClick
	if g.clicks > 0 {
		window = g.cfg.MultiClick
	}
	if sameButton && g.now-g.lastClick < window {
		g.clicks++
	} else {
		g.clicks = 0
	}
	g.lastClick = g.now
	g.clickedOnce = true
	return true
}

func (g *Gui) wheel(e core.EventScroll) bool {
	if g.hovered == NoID {
		return false
	}
	caps := g.hoveredWidget.Caps

	if caps.Has(CapZoomable) && e.Mods.Has(core.ModCtrl) {
		z := g.zoomContext(g.hovered)
		z.Zoom = lo.Clamp(z.Zoom+float32(e.Yoff), z.Min, z.Max)
		return true
	}
	if caps&CapScrollable == 0 {
		return false
	}

	dx, dy := e.Xoff, e.Yoff
	if e.Mods.Has(core.ModShift) {
		dx, dy = dy, dx
	}
	s := g.scrollContext(g.hovered)
	if caps.Has(CapScrollX) {
		s.OffsetX += float32(dx) * g.cfg.ScrollStep
	}
	if caps.Has(CapScrollY) {
		s.OffsetY += float32(dy) * g.cfg.ScrollStep
	}
	s.Enforce()
	return true
}

// Submit registers w for this frame and reports its interaction state.
// Ids never submitted before resolve to an empty state.
func (g *Gui) Submit(w Widget) WidgetState {
	st := WidgetState{ID: w.ID, Rect: w.Rect, Z: w.Z, LastInteraction: g.lastInteraction}
	g.widgets = append(g.widgets, w)
	if w.ID == NoID {
		return st
	}
	id := w.ID

	var f StateFlag
	if id == g.hovered {
		f |= Hovered
		if id != g.prevHovered {
			f |= StartHovered
		}
	} else if id == g.prevHovered {
		f |= StopHovered
	}

	if id == g.nextActive {
		f |= Active
		if id != g.active {
			f |= StartActive
		}
	} else if id == g.active {
		f |= StopActive
	}

	if id == g.interacting {
		f |= Interacting
		st.ConsecutiveClicks = g.clicks
		if id != g.prevInteracting {
			f |= StartInteracting
		}
		if g.buttonEvent && g.buttonDown {
			f |= StartInteracting | pressedFlag(g.button)
			if w.Caps.Has(CapClickOnPress) {
				f |= clickedFlag(g.button)
			}
		}
	} else if id == g.prevInteracting {
		f |= StopInteracting
		if g.buttonEvent && !g.buttonDown {
			f |= releasedFlag(g.button)
			if !w.Caps.Has(CapClickOnPress) && id == g.hovered {
				f |= clickedFlag(g.button)
			}
		}
	}

	if f.Has(Active) && g.hasKeyInput() {
		f |= KeyPressed
	}
	st.Flags = f
	return st
}

// Activate gives id focus from the next Submit on.
func (g *Gui) Activate(id ID) { g.nextActive = id }

// Deactivate drops focus if id holds it.
func (g *Gui) Deactivate(id ID) {
	if g.nextActive == id {
		g.nextActive = NoID
	}
	if g.interacting == id {
		g.interacting = NoID
	}
}

// Forget evicts every context kept for id. Call it when the owning element is destroyed.
func (g *Gui) Forget(id ID) {
	delete(g.texts, id)
	delete(g.scrolls, id)
	delete(g.zooms, id)
	g.Deactivate(id)
	g.log.Debug("forget widget", zap.Uint64("id", uint64(id)))
}

func (g *Gui) Hovered() ID            { return g.hovered }
func (g *Gui) ActiveID() ID           { return g.nextActive }
func (g *Gui) InteractingID() ID      { return g.interacting }
func (g *Gui) ConsecutiveClicks() int { return g.clicks }
func (g *Gui) Now() time.Duration     { return g.now }
func (g *Gui) Events() *core.EventQueue {
	return g.events
}
func (g *Gui) Mouse() (float32, float32) { return g.mouseX, g.mouseY }

// ContextCount reports how many text, scroll and zoom contexts are alive.
func (g *Gui) ContextCount() int { return len(g.texts) + len(g.scrolls) + len(g.zooms) }

func (g *Gui) hasKeyInput() bool {
	for _, ev := range g.events.Events() {
		switch e := ev.(type) {
		case core.EventKey:
			if e.Down {
				return true
			}
		case core.EventChar, core.EventPaste:
			return true
		}
	}
	return false
}

func clickCap(b core.MouseButton) Capability {
	switch b {
	case core.MouseMiddle:
		return CapMiddleClick
	case core.MouseRight:
		return CapRightClick
	default:
		return CapLeftClick
	}
}

func pressedFlag(b core.MouseButton) StateFlag {
	switch b {
	case core.MouseMiddle:
		return MiddlePressed
	case core.MouseRight:
		return RightPressed
	default:
		return LeftPressed
	}
}

func clickedFlag(b core.MouseButton) StateFlag {
	switch b {
	case core.MouseMiddle:
		return MiddleClicked
	case core.MouseRight:
		return RightClicked
	default:
		return LeftClicked
	}
}

func releasedFlag(b core.MouseButton) StateFlag {
	switch b {
	case core.MouseMiddle:
		return MiddleReleased
	case core.MouseRight:
		return RightReleased
	default:
		return LeftReleased
	}
}
