package ui

import (
	"runtime"
	"time"

	"github.com/hubastard/scribe/engine/colors"
	"github.com/hubastard/scribe/engine/core"
)

// Config holds the interaction tunables of a Gui.
type Config struct {
	// DoubleClick is the window for a second press to count as consecutive.
	DoubleClick time.Duration
	// MultiClick replaces DoubleClick once a multi-click is in progress.
	MultiClick time.Duration
	// ScrollStep is the pixel distance of one wheel notch.
	ScrollStep float32
	CaretBlink time.Duration
	// Text scale bounds used by zoomable text widgets.
	MinTextScale, MaxTextScale int
	// WordModifier switches arrows and deletion to word granularity.
	WordModifier core.Mod
	// AutoScrollEdge is the band, in pixels, where dragging scrolls the view.
	AutoScrollEdge float32
	TabWidth       int
	Theme          Theme
}

func DefaultConfig() Config {
	word := core.ModCtrl
	if runtime.GOOS == "darwin" {
		word = core.ModAlt
	}
	return Config{
		DoubleClick:    350 * time.Millisecond,
		MultiClick:     500 * time.Millisecond,
		ScrollStep:     40,
		CaretBlink:     500 * time.Millisecond,
		MinTextScale:   1,
		MaxTextScale:   6,
		WordModifier:   word,
		AutoScrollEdge: 3,
		TabWidth:       4,
		Theme:          DefaultTheme(),
	}
}

// ConfigFrom overlays the engine GUI section on the defaults. Zero values keep the default.
func ConfigFrom(c core.GUIConfig) Config {
	cfg := DefaultConfig()
	if c.DoubleClickMs > 0 {
		cfg.DoubleClick = time.Duration(c.DoubleClickMs) * time.Millisecond
	}
	if c.MultiClickMs > 0 {
		cfg.MultiClick = time.Duration(c.MultiClickMs) * time.Millisecond
	}
	if c.ScrollStep > 0 {
		cfg.ScrollStep = c.ScrollStep
	}
	if c.CaretBlinkMs > 0 {
		cfg.CaretBlink = time.Duration(c.CaretBlinkMs) * time.Millisecond
	}
	if c.MinTextScale > 0 {
		cfg.MinTextScale = c.MinTextScale
	}
	if c.MaxTextScale > 0 {
		cfg.MaxTextScale = c.MaxTextScale
	}
	if c.AutoScrollEdge > 0 {
		cfg.AutoScrollEdge = c.AutoScrollEdge
	}
	applyTheme(&cfg.Theme, c.Theme)
	switch c.WordModifier {
	case "ctrl":
		cfg.WordModifier = core.ModCtrl
	case "alt":
		cfg.WordModifier = core.ModAlt
	}
	return cfg
}

// applyTheme overrides the colours set in tc. core.ParseConfig has already
// rejected malformed values, so a parse failure here keeps the default.
func applyTheme(t *Theme, tc core.ThemeConfig) {
	set := func(dst *colors.Color, hex string) {
		if hex == "" {
			return
		}
		if c, err := colors.ParseHex(hex); err == nil {
			*dst = c
		}
	}
	set(&t.Text, tc.Text)
	set(&t.Background, tc.Background)
	set(&t.Selection, tc.Selection)
	set(&t.Caret, tc.Caret)
	set(&t.Button, tc.Button)
	set(&t.ButtonHot, tc.ButtonHot)
	set(&t.ButtonDown, tc.ButtonDown)
	set(&t.Scrollbar, tc.Scrollbar)
}
