package core

import "strconv"

// Event model. Platform backends translate native input into these.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// EventKey is a key press or release. Repeats arrive as Down events.
type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

// EventChar carries one printable codepoint.
type EventChar struct {
	Rune rune
	Mods Mod
}

func (EventChar) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

// EventScroll is one wheel step set; offsets are in wheel notches.
type EventScroll struct {
	Xoff, Yoff float64
	Mods       Mod
}

func (EventScroll) isEvent() {}

// EventPaste delivers clipboard text read asynchronously.
type EventPaste struct {
	Text string
}

func (EventPaste) isEvent() {}

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyA
	KeyC
	KeyD
	KeyP
	KeyS
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyF1

	// Editing commands. Platforms map their shortcut chords onto these.
	KeySelectAll
	KeyCopy
	KeyCut
	KeyPaste
	KeyUndo
	KeyRedo
)

var keyNames = map[Key]string{
	KeyEscape: "Escape", KeySpace: "Space", KeyEnter: "Enter", KeyTab: "Tab",
	KeyBackspace: "Backspace", KeyDelete: "Delete",
	KeyLeft: "Left", KeyRight: "Right", KeyUp: "Up", KeyDown: "Down",
	KeyHome: "Home", KeyEnd: "End", KeyPageUp: "PageUp", KeyPageDown: "PageDown",
	KeySelectAll: "SelectAll", KeyCopy: "Copy", KeyCut: "Cut", KeyPaste: "Paste",
	KeyUndo: "Undo", KeyRedo: "Redo",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

func (m Mod) Has(o Mod) bool { return m&o == o }

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
)
