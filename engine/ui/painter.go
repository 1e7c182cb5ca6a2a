package ui

import "github.com/hubastard/scribe/engine/colors"

// Font gives the pixel cell of a monospace font at an integer scale.
type Font interface {
	GlyphWidth(scale int) int
	GlyphHeight(scale int) int
}

// Painter receives the draw calls of the widgets. Higher z draws on top.
type Painter interface {
	DrawQuad(r Rect, z int, c colors.Color)
	DrawGlyph(f Font, x, y float32, z int, scale int, ch rune, c colors.Color)
	PushScissor(r Rect)
	PopScissor()
}

// Clipboard is the system clipboard. Reads are asynchronous: RequestPaste
// must deliver the text as a core.EventPaste in a later frame.
type Clipboard interface {
	Write(text string) error
	RequestPaste()
}

// Theme colours the built-in widgets.
type Theme struct {
	Text       colors.Color
	Background colors.Color
	Selection  colors.Color
	Caret      colors.Color
	Button     colors.Color
	ButtonHot  colors.Color
	ButtonDown colors.Color
	Scrollbar  colors.Color
}

func DefaultTheme() Theme {
	text := colors.Color{0.8, 0.8, 0.8, 1}
	return Theme{
		Text:       text,
		Background: colors.Black,
		Selection:  colors.Color{0, 0, 0.6, 1},
		Caret:      colors.Red,
		Button:     colors.Color{0.2, 0.22, 0.25, 1},
		ButtonHot:  colors.Color{0.3, 0.33, 0.38, 1},
		ButtonDown: colors.Color{0.15, 0.4, 0.7, 1},
		Scrollbar:  colors.Black.Lerp(text, 0.15),
	}
}
