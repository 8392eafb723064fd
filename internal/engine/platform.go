package engine

import (
	"github.com/vovakirdan/hungry-pixel/internal/core"
	"github.com/vovakirdan/hungry-pixel/internal/msg"
)

// Renderer draws in logical pixels; scaling to the physical output is the
// platform's business.
type Renderer interface {
	SetDrawColor(c core.Color)
	Clear()
	FillRect(r core.Rect)
	DrawRect(r core.Rect)
	// Copy draws a text texture stretched into dst.
	Copy(t *Texture, dst core.Rect)
	Present()
}

// EventKind identifies a platform event.
type EventKind uint8

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventKeyUp
	EventResize
)

// Event is a discrete platform input event.
type Event struct {
	Kind EventKind
	Key  msg.Key // EventKeyDown, EventKeyUp
	W, H int     // EventResize, physical size
}

// EventSource yields everything pending right now without blocking.
type EventSource interface {
	Poll() []Event
}

// Timer is a monotonic millisecond clock.
type Timer interface {
	Ticks() uint32
	Delay(ms uint32)
}

// Glyphs reports rasterized glyph metrics for a font size, in logical pixels.
type Glyphs interface {
	GlyphMetrics(size int, r rune) (advance, height int)
}

// Platform bundles the collaborators the engine drives.
type Platform struct {
	Renderer Renderer
	Events   EventSource
	Timer    Timer
	Glyphs   Glyphs
}
