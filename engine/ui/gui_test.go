package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hubastard/scribe/engine/colors"
	"github.com/hubastard/scribe/engine/core"
)

// fakeFont has 10x20 pixel cells at scale 1.
type fakeFont struct{}

func (fakeFont) GlyphWidth(scale int) int  { return 10 * scale }
func (fakeFont) GlyphHeight(scale int) int { return 20 * scale }

type fakeClipboard struct {
	text     string
	requests int
}

func (c *fakeClipboard) Write(text string) error { c.text = text; return nil }
func (c *fakeClipboard) RequestPaste()           { c.requests++ }

type drawCall struct {
	kind string
	rect Rect
	z    int
	ch   rune
}

type fakePainter struct {
	calls []drawCall
	depth int
}

func (p *fakePainter) DrawQuad(r Rect, z int, _ colors.Color) {
	p.calls = append(p.calls, drawCall{kind: "quad", rect: r, z: z})
}

func (p *fakePainter) DrawGlyph(_ Font, x, y float32, z int, _ int, ch rune, _ colors.Color) {
	p.calls = append(p.calls, drawCall{kind: "glyph", rect: Rect{X: x, Y: y}, z: z, ch: ch})
}

func (p *fakePainter) PushScissor(Rect) { p.depth++ }
func (p *fakePainter) PopScissor()      { p.depth-- }

func (p *fakePainter) count(kind string, z int) int {
	n := 0
	for _, c := range p.calls {
		if c.kind == kind && c.z == z {
			n++
		}
	}
	return n
}

// harness drives a Gui one frame at a time with a fixed 16ms step.
type harness struct {
	g      *Gui
	q      *core.EventQueue
	clip   *fakeClipboard
	now    time.Duration
	mx, my float32
	mods   core.Mod
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := DefaultConfig()
	cfg.WordModifier = core.ModCtrl
	h := &harness{
		g:    New(cfg, zap.NewNop(), fakeFont{}),
		q:    &core.EventQueue{},
		clip: &fakeClipboard{},
	}
	h.g.SetClipboard(h.clip)
	return h
}

func (h *harness) begin(events ...core.Event) {
	h.q.Reset()
	for _, ev := range events {
		h.q.Push(ev)
	}
	h.now += 16 * time.Millisecond
	h.g.BeginFrame(FrameInput{Events: h.q, MouseX: h.mx, MouseY: h.my, Mods: h.mods, Now: h.now})
}

func press(b core.MouseButton) core.Event {
	return core.EventMouseButton{Button: b, Down: true}
}

func release(b core.MouseButton) core.Event {
	return core.EventMouseButton{Button: b}
}

func key(k core.Key, mods core.Mod) core.Event {
	return core.EventKey{Key: k, Down: true, Mods: mods}
}

var (
	idA = NewID("a")
	idB = NewID("b")
)

func TestHoverPicksHighestZRegardlessOfOrder(t *testing.T) {
	for _, reversed := range []bool{false, true} {
		h := newHarness(t)
		h.mx, h.my = 50, 50
		low := Widget{ID: idA, Rect: Rect{0, 0, 100, 100}, Z: 0, Caps: CapHoverable}
		high := Widget{ID: idB, Rect: Rect{25, 25, 100, 100}, Z: 1, Caps: CapHoverable}
		order := []Widget{low, high}
		if reversed {
			order = []Widget{high, low}
		}

		h.begin()
		for _, w := range order {
			h.g.Submit(w)
		}
		h.begin()
		assert.Equal(t, idB, h.g.Hovered(), "reversed=%v", reversed)
	}
}

func TestHoverEqualZLaterSubmissionWins(t *testing.T) {
	h := newHarness(t)
	h.mx, h.my = 10, 10
	h.begin()
	h.g.Submit(Widget{ID: idA, Rect: Rect{0, 0, 100, 100}, Caps: CapHoverable})
	h.g.Submit(Widget{ID: idB, Rect: Rect{0, 0, 100, 100}, Caps: CapHoverable})
	h.begin()
	assert.Equal(t, idB, h.g.Hovered())
}

func TestHoverIgnoresNonHoverable(t *testing.T) {
	h := newHarness(t)
	h.mx, h.my = 10, 10
	h.begin()
	h.g.Submit(Widget{ID: idA, Rect: Rect{0, 0, 100, 100}, Caps: CapHoverable})
	h.g.Submit(Widget{ID: idB, Rect: Rect{0, 0, 100, 100}, Z: 5})
	h.begin()
	assert.Equal(t, idA, h.g.Hovered())
}

func TestUnknownWidgetIsEmpty(t *testing.T) {
	h := newHarness(t)
	h.mx, h.my = 10, 10
	h.begin()
	st := h.g.Submit(Widget{ID: idA, Rect: Rect{0, 0, 100, 100}, Caps: CapClickable | CapActivable})
	assert.Equal(t, StateFlag(0), st.Flags)
	assert.Equal(t, "EMPTY", st.Flags.String())
}

func TestClickActivatesAndReleaseClicks(t *testing.T) {
	h := newHarness(t)
	h.mx, h.my = 50, 50
	w := Widget{ID: idA, Rect: Rect{0, 0, 100, 100}, Caps: CapClickable | CapActivable}

	h.begin()
	h.g.Submit(w)

	h.begin(press(core.MouseLeft))
	assert.Equal(t, 0, h.q.Len(), "press on a widget is consumed")
	st := h.g.Submit(w)
	for _, f := range []StateFlag{Hovered, StartHovered, Active, StartActive, Interacting, StartInteracting, LeftPressed} {
		assert.True(t, st.Flags.Has(f), "missing %s in %s", f, st.Flags)
	}
	assert.False(t, st.Flags.Has(LeftClicked))

	h.begin(release(core.MouseLeft))
	assert.Equal(t, 0, h.q.Len(), "release ending an interaction is consumed")
	st = h.g.Submit(w)
	assert.True(t, st.Flags.Has(Active|StopInteracting|LeftReleased|LeftClicked), st.Flags.String())
	assert.False(t, st.Flags.Has(StartActive))
	assert.False(t, st.Flags.Has(Interacting))

	// pressing elsewhere drops focus
	h.mx, h.my = 500, 500
	h.begin(press(core.MouseLeft))
	assert.Equal(t, 1, h.q.Len(), "press on nothing stays queued")
	st = h.g.Submit(w)
	assert.True(t, st.Flags.Has(StopActive|StopHovered), st.Flags.String())
	assert.False(t, st.Flags.Has(Active))
	assert.Equal(t, NoID, h.g.ActiveID())
}

func TestReleaseWithoutInteractionNotConsumed(t *testing.T) {
	h := newHarness(t)
	h.begin(release(core.MouseLeft))
	assert.Equal(t, 1, h.q.Len())
}

func TestNonActivableLosesActiveOnRelease(t *testing.T) {
	h := newHarness(t)
	h.mx, h.my = 5, 5
	w := Widget{ID: idA, Rect: Rect{0, 0, 10, 10}, Caps: CapClickable}

	h.begin()
	h.g.Submit(w)
	h.begin(press(core.MouseLeft))
	st := h.g.Submit(w)
	assert.True(t, st.Flags.Has(Active))

	h.begin(release(core.MouseLeft))
	st = h.g.Submit(w)
	assert.True(t, st.Flags.Has(StopActive|LeftClicked), st.Flags.String())
	assert.Equal(t, NoID, h.g.ActiveID())
}

func TestClickOnPress(t *testing.T) {
	h := newHarness(t)
	h.mx, h.my = 5, 5
	w := Widget{ID: idA, Rect: Rect{0, 0, 10, 10}, Caps: CapClickable | CapClickOnPress}

	h.begin()
	h.g.Submit(w)
	h.begin(press(core.MouseLeft))
	assert.True(t, h.g.Submit(w).Flags.Has(LeftClicked))
	h.begin(release(core.MouseLeft))
	st := h.g.Submit(w)
	assert.True(t, st.Flags.Has(LeftReleased))
	assert.False(t, st.Flags.Has(LeftClicked))
}

func TestReleaseOutsideDoesNotClick(t *testing.T) {
	h := newHarness(t)
	h.mx, h.my = 5, 5
	w := Widget{ID: idA, Rect: Rect{0, 0, 10, 10}, Caps: CapClickable}

	h.begin()
	h.g.Submit(w)
	h.begin(press(core.MouseLeft))
	h.g.Submit(w)
	h.mx = 50
	h.begin()
	st := h.g.Submit(w)
	assert.True(t, st.Flags.Has(Interacting), "drag keeps the interaction outside the rect")
	h.begin(release(core.MouseLeft))
	st = h.g.Submit(w)
	assert.True(t, st.Flags.Has(LeftReleased))
	assert.False(t, st.Flags.Has(LeftClicked))
}

func TestConsecutiveClicks(t *testing.T) {
	h := newHarness(t)
	h.mx, h.my = 5, 5
	w := Widget{ID: idA, Rect: Rect{0, 0, 10, 10}, Caps: CapClickable | CapRightClick | CapActivable}

	h.begin()
	h.g.Submit(w)
	for want := 0; want < 4; want++ {
		h.begin(press(core.MouseLeft))
		st := h.g.Submit(w)
		assert.Equal(t, want, st.ConsecutiveClicks)
		h.begin(release(core.MouseLeft))
		st = h.g.Submit(w)
		assert.Equal(t, 0, st.ConsecutiveClicks, "only the interacting widget sees the counter")
	}

	// a different button starts over
	h.begin(press(core.MouseRight))
	assert.Equal(t, 0, h.g.Submit(w).ConsecutiveClicks)
	h.begin(release(core.MouseRight))
	h.g.Submit(w)

	// too slow
	h.now += 400 * time.Millisecond
	h.begin(press(core.MouseRight))
	assert.Equal(t, 0, h.g.Submit(w).ConsecutiveClicks)
}

func TestMultiClickWindowIsLonger(t *testing.T) {
	h := newHarness(t)
	h.mx, h.my = 5, 5
	w := Widget{ID: idA, Rect: Rect{0, 0, 10, 10}, Caps: CapClickable}

	h.begin()
	h.g.Submit(w)
	h.begin(press(core.MouseLeft))
	h.g.Submit(w)
	h.begin(release(core.MouseLeft))
	h.g.Submit(w)
	h.begin(press(core.MouseLeft))
	require.Equal(t, 1, h.g.Submit(w).ConsecutiveClicks)
	h.begin(release(core.MouseLeft))
	h.g.Submit(w)

	// 432ms since the last press: past the first window, inside the second
	h.now += 400 * time.Millisecond
	h.begin(press(core.MouseLeft))
	assert.Equal(t, 2, h.g.Submit(w).ConsecutiveClicks)
}

func TestWheelScrollsHoveredWidget(t *testing.T) {
	h := newHarness(t)
	h.mx, h.my = 5, 5
	w := Widget{ID: idA, Rect: Rect{0, 0, 100, 100}, Caps: CapHoverable | CapScrollable}

	h.begin()
	h.g.Submit(w)
	s := h.g.Scroll(idA)
	s.FitContent(1000, 1000, 100, 100)

	h.begin(core.EventScroll{Yoff: -1})
	assert.Equal(t, 0, h.q.Len())
	h.g.Submit(w)
	assert.Equal(t, float32(-40), s.OffsetY)

	h.begin(core.EventScroll{Yoff: 5})
	h.g.Submit(w)
	assert.Equal(t, float32(0), s.OffsetY, "clamped to the max bound")

	h.begin(core.EventScroll{Yoff: -100})
	h.g.Submit(w)
	assert.Equal(t, float32(-900), s.OffsetY, "clamped to the min bound")

	h.begin(core.EventScroll{Yoff: -2, Mods: core.ModShift})
	h.g.Submit(w)
	assert.Equal(t, float32(-80), s.OffsetX, "shift scrolls horizontally")
	assert.Equal(t, float32(-900), s.OffsetY)
}

func TestWheelIgnoredWithoutScrollCaps(t *testing.T) {
	h := newHarness(t)
	h.mx, h.my = 5, 5
	w := Widget{ID: idA, Rect: Rect{0, 0, 100, 100}, Caps: CapHoverable}
	h.begin()
	h.g.Submit(w)
	h.begin(core.EventScroll{Yoff: -1})
	assert.Equal(t, 1, h.q.Len())
}

func TestCtrlWheelZooms(t *testing.T) {
	h := newHarness(t)
	h.mx, h.my = 5, 5
	w := Widget{ID: idA, Rect: Rect{0, 0, 100, 100}, Caps: CapHoverable | CapScrollable | CapZoomable}

	h.begin()
	h.g.Submit(w)
	z := h.g.Zoom(idA)
	require.Equal(t, float32(1), z.Zoom)

	h.begin(core.EventScroll{Yoff: 2, Mods: core.ModCtrl})
	h.g.Submit(w)
	assert.Equal(t, float32(3), z.Zoom)

	h.begin(core.EventScroll{Yoff: 10, Mods: core.ModCtrl})
	h.g.Submit(w)
	assert.Equal(t, float32(6), z.Zoom)

	h.begin(core.EventScroll{Yoff: -10, Mods: core.ModCtrl})
	h.g.Submit(w)
	assert.Equal(t, float32(1), z.Zoom)
	assert.Equal(t, float32(0), h.g.Scroll(idA).OffsetY, "zoom does not scroll")
}

func TestContextsCreatedOnce(t *testing.T) {
	h := newHarness(t)
	s := h.g.Scroll(idA)
	assert.True(t, s.Created)
	assert.False(t, h.g.Scroll(idA).Created)
	assert.Same(t, s, h.g.Scroll(idA))

	c := h.g.Text(idA)
	assert.True(t, c.Created)
	assert.Equal(t, -1, c.Cursor)
	assert.Equal(t, -1, c.Selection)
	assert.False(t, h.g.Text(idA).Created)
}

func TestForgetEvictsContexts(t *testing.T) {
	h := newHarness(t)
	h.begin()
	h.g.TextEditor(idA, Rect{0, 0, 100, 100}, 0, TextOptions{})
	h.g.Activate(idA)
	require.Equal(t, 3, h.g.ContextCount())

	h.g.Forget(idA)
	assert.Equal(t, 0, h.g.ContextCount())
	assert.Equal(t, NoID, h.g.ActiveID())
	_, ok := h.g.LookupText(idA)
	assert.False(t, ok)
}

func TestMustTextPanicsWithoutContext(t *testing.T) {
	h := newHarness(t)
	assert.Panics(t, func() { h.g.mustText(idA) })
}

func TestKeyPressedOnlyForActive(t *testing.T) {
	h := newHarness(t)
	w := Widget{ID: idA, Rect: Rect{0, 0, 10, 10}, Caps: CapClickable | CapActivable}
	other := Widget{ID: idB, Rect: Rect{20, 0, 10, 10}, Caps: CapClickable | CapActivable}

	h.begin()
	h.g.Submit(w)
	h.g.Submit(other)
	h.g.Activate(idA)

	h.begin(core.EventChar{Rune: 'x'})
	assert.True(t, h.g.Submit(w).Flags.Has(KeyPressed))
	assert.False(t, h.g.Submit(other).Flags.Has(KeyPressed))
}
