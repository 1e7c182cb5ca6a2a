package ui

import (
	"strings"
	"time"
)

// Capability declares what a widget reacts to.
type Capability uint16

const (
	CapHoverable Capability = 1 << iota
	CapActivable
	CapLeftClick
	CapMiddleClick
	CapRightClick
	CapScrollX
	CapScrollY
	CapZoomable
	// CapClickOnPress fires the click flag on press instead of release.
	CapClickOnPress
	// CapKeepTextState keeps cursor and selection across focus changes.
	CapKeepTextState

	CapScrollable = CapScrollX | CapScrollY
	CapClickable  = CapHoverable | CapLeftClick
)

func (c Capability) Has(o Capability) bool { return c&o == o }

// StateFlag is the per-frame interaction result of one widget.
type StateFlag uint32

const (
	Active StateFlag = 1 << iota
	StartActive
	StopActive
	Hovered
	StartHovered
	StopHovered
	LeftPressed
	MiddlePressed
	RightPressed
	LeftClicked
	MiddleClicked
	RightClicked
	LeftReleased
	MiddleReleased
	RightReleased
	Interacting
	StartInteracting
	StopInteracting
	KeyPressed
)

var flagNames = []string{
	"ACTIVE", "START_ACTIVE", "STOP_ACTIVE",
	"HOVERED", "START_HOVERED", "STOP_HOVERED",
	"LEFT_PRESSED", "MIDDLE_PRESSED", "RIGHT_PRESSED",
	"LEFT_CLICKED", "MIDDLE_CLICKED", "RIGHT_CLICKED",
	"LEFT_RELEASED", "MIDDLE_RELEASED", "RIGHT_RELEASED",
	"INTERACTING", "START_INTERACTING", "STOP_INTERACTING",
	"KEY_PRESSED",
}

func (f StateFlag) Has(o StateFlag) bool { return f&o == o }

func (f StateFlag) String() string {
	if f == 0 {
		return "EMPTY"
	}
	var parts []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " | ")
}

// Widget is one element submitted for the current frame.
type Widget struct {
	ID   ID
	Rect Rect
	Z    int
	Caps Capability
}

// WidgetState is what Submit reports back.
type WidgetState struct {
	ID                ID
	Rect              Rect
	Z                 int
	Flags             StateFlag
	ConsecutiveClicks int
	LastInteraction   time.Duration
}
