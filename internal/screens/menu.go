// Package screens implements the menu, static text and options screens and
// the Factory the engine builds every screen with.
package screens

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hungry-pixel/internal/core"
	"github.com/vovakirdan/hungry-pixel/internal/engine"
	"github.com/vovakirdan/hungry-pixel/internal/msg"
)

// Layout constants, in logical pixels.
const (
	itemSpacing = 12
	titleGap    = 32
	barWidth    = 8
	barGap      = 14
	padding     = 24
)

// Item is one selectable menu entry.
type Item struct {
	Label string
	Msg   msg.Msg // Emitted on Enter
}

// Position places the menu block.
type Position struct {
	Centered bool
	X, Y     int // Top-left corner when not centered
}

// MenuConfig describes a menu screen.
type MenuConfig struct {
	Items      []Item
	Title      string   // Optional, drawn above the items
	OnEscape   *msg.Msg // Nil swallows Escape
	Position   Position
	Fullscreen bool
	Backdrop   bool // Shade the block so screens below stay visible around it
}

// MenuState is a vertical list of items with a wrapping cursor.
type MenuState struct {
	items      []Item
	cursor     int
	title      string
	onEscape   *msg.Msg
	position   Position
	fullscreen bool
	backdrop   bool

	// Render cache, rebuilt when dirty
	dirty    bool
	labels   []*engine.Texture
	titleTex *engine.Texture
}

// NewMenu creates a menu. It fails on an empty item list or if the menu
// fonts were never loaded.
func NewMenu(d *engine.Data, cfg MenuConfig) (*MenuState, error) {
	if len(cfg.Items) == 0 {
		return nil, errors.New("menu: no items")
	}

	m := &MenuState{
		items:      cfg.Items,
		title:      cfg.Title,
		onEscape:   cfg.OnEscape,
		position:   cfg.Position,
		fullscreen: cfg.Fullscreen,
		backdrop:   cfg.Backdrop,
		dirty:      true,
	}
	if err := m.refresh(d); err != nil {
		return nil, fmt.Errorf("menu: %w", err)
	}
	return m, nil
}

// Cursor returns the index of the highlighted item.
func (m *MenuState) Cursor() int { return m.cursor }

// Len returns the number of items.
func (m *MenuState) Len() int { return len(m.items) }

// SetLabel changes the text of item i. Its texture is rebuilt on the next
// render.
func (m *MenuState) SetLabel(i int, label string) {
	if i < 0 || i >= len(m.items) || m.items[i].Label == label {
		return
	}
	m.items[i].Label = label
	m.dirty = true
}

// Label returns the text of item i.
func (m *MenuState) Label(i int) string { return m.items[i].Label }

// refresh rebuilds the textures if the labels changed.
func (m *MenuState) refresh(d *engine.Data) error {
	if !m.dirty {
		return nil
	}

	labels := make([]*engine.Texture, len(m.items))
	for i, it := range m.items {
		tex, err := d.Fonts.RenderTexture(engine.FontDefault, it.Label, nil)
		if err != nil {
			return err
		}
		labels[i] = tex
	}

	var title *engine.Texture
	if m.title != "" {
		tex, err := d.Fonts.RenderTexture(engine.FontLarge, m.title, &core.ColorHighlight)
		if err != nil {
			return err
		}
		title = tex
	}

	m.labels, m.titleTex, m.dirty = labels, title, false
	return nil
}

// ProcessMessage implements engine.State.
func (m *MenuState) ProcessMessage(_ *engine.Data, in msg.Msg) (msg.Msg, bool) {
	if in.Kind != msg.KindButtonPressed {
		return in, true
	}

	switch in.Key {
	case msg.KeyUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
		return msg.Msg{}, false
	case msg.KeyDown:
		m.cursor = (m.cursor + 1) % len(m.items)
		return msg.Msg{}, false
	case msg.KeyEnter:
		return m.items[m.cursor].Msg, true
	case msg.KeyEscape:
		if m.onEscape != nil {
			return *m.onEscape, true
		}
		return msg.Msg{}, false
	}
	return in, true
}

// Dimensions returns the size of the whole block, title included.
func (m *MenuState) Dimensions() (w, h int) {
	if m.titleTex != nil {
		w = m.titleTex.Width()
		h = m.titleTex.Height() + titleGap
	}
	for i, tex := range m.labels {
		w = max(w, tex.Width()+barWidth+barGap)
		h += tex.Height()
		if i > 0 {
			h += itemSpacing
		}
	}
	return w, h
}

// origin returns the top-left corner of the block.
func (m *MenuState) origin(window core.Size) (x, y int) {
	if !m.position.Centered {
		return m.position.X, m.position.Y
	}
	w, h := m.Dimensions()
	return (window.W - w) / 2, (window.H - h) / 2
}

// Render implements engine.State.
func (m *MenuState) Render(r engine.Renderer, d *engine.Data) {
	// Keep the previous textures if the rebuild fails
	_ = m.refresh(d)

	w, h := m.Dimensions()
	x, y := m.origin(d.WindowSize)

	if m.backdrop {
		r.SetDrawColor(core.ColorBackdrop)
		r.FillRect(core.NewRect(x-padding, y-padding, w+2*padding, h+2*padding))
	}

	if m.titleTex != nil {
		tw, th := m.titleTex.Query()
		r.Copy(m.titleTex, core.NewRect(x+(w-tw)/2, y, tw, th))
		y += th + titleGap
	}

	itemX := x + barWidth + barGap
	for i, tex := range m.labels {
		lw, lh := tex.Query()
		if i == m.cursor {
			r.SetDrawColor(core.ColorHighlight)
			r.FillRect(core.NewRect(x, y, barWidth, lh))
		}
		r.Copy(tex, core.NewRect(itemX, y, lw, lh))
		y += lh + itemSpacing
	}
}

// IsFullscreen implements engine.State.
func (m *MenuState) IsFullscreen() bool { return m.fullscreen }
