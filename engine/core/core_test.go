package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEventQueueRemoveKeepsOrder(t *testing.T) {
	var q EventQueue
	q.Push(EventChar{Rune: 'a'})
	q.Push(EventChar{Rune: 'b'})
	q.Push(EventChar{Rune: 'c'})

	q.Remove(1)
	require.Equal(t, 2, q.Len())
	assert.Equal(t, EventChar{Rune: 'a'}, q.At(0))
	assert.Equal(t, EventChar{Rune: 'c'}, q.At(1))
}

func TestEventQueueConsume(t *testing.T) {
	var q EventQueue
	q.Push(EventKey{Key: KeyLeft, Down: true})
	q.Push(EventMouseMove{X: 1, Y: 2})
	q.Push(EventKey{Key: KeyRight, Down: true})
	q.Push(EventScroll{Yoff: 1})

	var seen int
	q.Consume(func(ev Event) bool {
		seen++
		_, isKey := ev.(EventKey)
		return isKey
	})
	assert.Equal(t, 4, seen)
	assert.Equal(t, []Event{EventMouseMove{X: 1, Y: 2}, EventScroll{Yoff: 1}}, q.Events())

	q.Reset()
	assert.Equal(t, 0, q.Len())
}

func TestInputTracksState(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyA, Down: true, Mods: ModCtrl})
	in.Handle(EventMouseButton{Button: MouseRight, Down: true, Mods: ModShift})
	in.Handle(EventMouseMove{X: 10, Y: 20})

	assert.True(t, in.IsKeyDown(KeyA))
	assert.True(t, in.IsButtonDown(MouseRight))
	assert.False(t, in.IsButtonDown(MouseLeft))
	assert.Equal(t, ModShift, in.Mods())
	x, y := in.Mouse()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)
}

func TestConfigLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scribe.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
title = "notes"
width = 800

[gui]
double_click_ms = 250
word_modifier = "alt"

[editor]
file = "todo.txt"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "notes", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 720, cfg.Height, "unset keys keep defaults")
	assert.Equal(t, 250, cfg.GUI.DoubleClickMs)
	assert.Equal(t, 500, cfg.GUI.MultiClickMs)
	assert.Equal(t, "alt", cfg.GUI.WordModifier)
	assert.Equal(t, "todo.txt", cfg.Editor.File)
}

func TestConfigMissingFileIsDefault(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigRejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, ParseConfig([]byte(`width = -1`), &cfg))

	cfg = DefaultConfig()
	assert.Error(t, ParseConfig([]byte("[gui]\nmin_text_scale = 9"), &cfg))

	cfg = DefaultConfig()
	assert.Error(t, ParseConfig([]byte(`width = "wide"`), &cfg))

	cfg = DefaultConfig()
	assert.Error(t, ParseConfig([]byte("[gui.theme]\ncaret = \"#12\""), &cfg))

	cfg = DefaultConfig()
	require.NoError(t, ParseConfig([]byte("[gui.theme]\ncaret = \"#f80\""), &cfg))
	assert.Equal(t, "#f80", cfg.GUI.Theme.Caret)
}

func TestConfigSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	want := DefaultConfig()
	want.Editor.File = "main.go"
	require.NoError(t, SaveConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(LogConfig{Level: "debug", Development: true, OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	_, err = NewLogger(LogConfig{Level: "loud"})
	assert.Error(t, err)
}

type recordLayer struct {
	name    string
	handles bool
	trace   *[]string
}

func (l *recordLayer) OnAttach(*Engine)           { *l.trace = append(*l.trace, "attach "+l.name) }
func (l *recordLayer) OnDetach(*Engine)           { *l.trace = append(*l.trace, "detach "+l.name) }
func (l *recordLayer) OnUpdate(*Engine, float64)  {}
func (l *recordLayer) OnRender(*Engine, float64)  { *l.trace = append(*l.trace, "render "+l.name) }
func (l *recordLayer) OnEvent(*Engine, Event) bool {
	*l.trace = append(*l.trace, "event "+l.name)
	return l.handles
}

func TestLayerStackOrder(t *testing.T) {
	var trace []string
	e := &Engine{Log: zap.NewNop()}
	var ls LayerStack
	ls.Push(e, &recordLayer{name: "editor", trace: &trace})
	ls.Push(e, &recordLayer{name: "overlay", handles: true, trace: &trace})

	ls.Render(e, 0)
	assert.True(t, ls.Dispatch(e, EventChar{Rune: 'x'}))
	ls.Clear(e)

	assert.Equal(t, []string{
		"attach editor", "attach overlay",
		"render editor", "render overlay",
		"event overlay",
		"detach overlay", "detach editor",
	}, trace)
}

func TestEnginePost(t *testing.T) {
	e := &Engine{Log: zap.NewNop(), posted: make(chan Event, 1)}
	e.Post(EventPaste{Text: "one"})
	e.Post(EventPaste{Text: "dropped"})

	var got []Event
	e.drainPosted(func(ev Event) { got = append(got, ev) })
	assert.Equal(t, []Event{EventPaste{Text: "one"}}, got)
}

func TestShortcut(t *testing.T) {
	cases := []struct {
		key  Key
		mods Mod
		want Key
	}{
		{KeyA, ModCtrl, KeySelectAll},
		{KeyC, ModSuper, KeyCopy},
		{KeyX, ModCtrl | ModShift, KeyCut},
		{KeyV, ModCtrl, KeyPaste},
		{KeyZ, ModCtrl, KeyUndo},
		{KeyZ, ModCtrl | ModShift, KeyRedo},
		{KeyY, ModCtrl, KeyRedo},
		{KeyA, ModNone, KeyA},
		{KeyA, ModAlt, KeyA},
		{KeyLeft, ModCtrl, KeyLeft},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Shortcut(c.key, c.mods), "%s %d", c.key, c.mods)
	}
}

func TestExampleConfigParses(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "scribe.example.toml"))
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", cfg.Editor.File)
	assert.Equal(t, "#ff3030", cfg.GUI.Theme.Caret)
	assert.True(t, cfg.Log.Development)
}
