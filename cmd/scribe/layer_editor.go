package main

import (
	"go.uber.org/zap"

	"github.com/hubastard/scribe/engine/colors"
	"github.com/hubastard/scribe/engine/core"
	"github.com/hubastard/scribe/engine/gfx/renderer2d"
	"github.com/hubastard/scribe/engine/profiler"
	"github.com/hubastard/scribe/engine/scratch"
	"github.com/hubastard/scribe/engine/text"
	"github.com/hubastard/scribe/engine/textbuf"
	"github.com/hubastard/scribe/engine/ui"
)

var (
	fileID     = ui.NewID("file")
	saveID     = ui.NewID("save")
	readOnlyID = ui.NewID("read-only")
	editorID   = ui.NewID("editor")
	viewID     = ui.NewID("view")
)

const barPad = 4

// EditorLayer is the document window: a file name bar, the text area and a
// status line.
type EditorLayer struct {
	app     *App
	gui     *ui.Gui
	painter *renderer2d.Painter
	doc     *document
	fileBuf *textbuf.Buffer
	status  *scratch.Buffer

	readOnly bool
	scale    int
	cursor   int
	save     bool
	focus    bool
}

func (l *EditorLayer) OnAttach(e *core.Engine) {
	l.gui = ui.New(ui.ConfigFrom(e.Config.GUI), e.Log.Named("ui"), l.app.font)
	l.painter = renderer2d.NewPainter(l.app.r2d)
	l.gui.SetPainter(l.painter)
	l.gui.SetClipboard(l.app.clip)
	l.status = scratch.New(256)
	l.scale = max(e.Config.Editor.TextScale, 1)

	doc, err := openDocument(e.Config.Editor.File)
	if err != nil {
		e.Log.Warn("document not loaded", zap.Error(err))
		doc, _ = openDocument("")
	}
	l.doc = doc
	l.fileBuf = textbuf.FromString(doc.path, ui.InputCapacity)
	l.focus = true
}

func (l *EditorLayer) OnDetach(e *core.Engine) {
	for _, id := range []ui.ID{fileID, editorID, viewID} {
		l.gui.Forget(id)
	}
}

func (l *EditorLayer) OnUpdate(e *core.Engine, dt float64) {}

func (l *EditorLayer) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("EditorLayer.OnRender")()

	mx, my := e.Input.Mouse()
	l.gui.BeginFrame(ui.FrameInput{
		Events: &e.Events,
		MouseX: float32(mx), MouseY: float32(my),
		Mods: e.Input.Mods(),
		Now:  e.Now(),
	})
	l.status.Reset()

	w, h := e.Window.FramebufferSize()
	area := ui.Rect{W: float32(w), H: float32(h)}
	row := text.LineHeight(l.app.font, 1) + 2*barPad
	bar := area.CutTop(row)
	statusBar := area.CutBottom(row)

	l.fileBar(bar)
	l.textArea(area)

	line := l.doc.status(l.status, l.cursor, l.scale, l.readOnly)
	l.painter.DrawQuad(statusBar, 0, colors.DarkGray)
	l.gui.Label(statusBar.Shrink(barPad), 1, line, 1, false, colors.Gray)

	if l.save {
		l.save = false
		l.saveDocument(e)
	}

	l.painter.Flush()
}

func (l *EditorLayer) fileBar(bar ui.Rect) {
	l.painter.DrawQuad(bar, 0, colors.DarkGray)
	inner := bar.Shrink(barPad)
	button := func(caption string) ui.Rect {
		w, _ := text.MeasureText(l.app.font, caption, 1)
		r := inner.CutRight(w + 2*float32(l.app.font.CellW))
		inner.CutRight(barPad)
		return r
	}
	toggle := button("read-only")
	save := button("Save")

	if _, changed := l.gui.Toggle(readOnlyID, toggle, 1, "read-only", &l.readOnly); changed {
		l.gui.Forget(viewID)
	}
	if l.gui.Button(saveID, save, 1, "Save").Flags.Has(ui.LeftClicked) {
		l.save = true
	}
	l.gui.TextInput(fileID, inner, 1, ui.TextOptions{
		Initial: l.fileBuf,
	})
}

func (l *EditorLayer) textArea(r ui.Rect) {
	opts := ui.TextOptions{Initial: l.doc.buf, Scale: l.scale}
	var res ui.TextResult
	if l.readOnly {
		res = l.gui.TextView(viewID, r, 0, opts)
	} else {
		res = l.gui.TextEditor(editorID, r, 0, opts)
	}
	if l.focus {
		// a widget can only take focus once it has been submitted
		l.gui.Activate(editorID)
		l.focus = false
	}
	if res.Modified {
		l.doc.dirty = true
	}
	if c := res.Context; c != nil {
		l.cursor = max(c.Cursor, 0)
		l.scale = c.Scale
	}
}

func (l *EditorLayer) saveDocument(e *core.Engine) {
	path := l.fileBuf.String()
	if err := l.doc.save(path); err != nil {
		e.Log.Error("save failed", zap.Error(err))
		return
	}
	e.Log.Info("saved", zap.String("path", path), zap.Int("runes", l.doc.buf.Len()))
}

func (l *EditorLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyS &&
		(k.Mods.Has(core.ModCtrl) || k.Mods.Has(core.ModSuper)) {
		l.save = true
		return true
	}
	return false
}
