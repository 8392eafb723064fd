package screens

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hungry-pixel/internal/core"
	"github.com/vovakirdan/hungry-pixel/internal/engine"
	"github.com/vovakirdan/hungry-pixel/internal/msg"
)

// Line is one line of a static screen.
type Line struct {
	Text string
	Font string // engine.FontDefault when empty
}

// Heading is a line in the large font.
func Heading(text string) Line { return Line{Text: text, Font: engine.FontLarge} }

// Text is a line in the default font.
func Text(text string) Line { return Line{Text: text, Font: engine.FontDefault} }

// StaticState shows centered lines of text. It ignores input until its
// timer runs out; after that any key press emits the next message.
type StaticState struct {
	lines     []*engine.Texture
	width     int
	height    int
	timeLeft  int // milliseconds
	skippable bool
	next      msg.Msg
}

// NewStatic renders the lines once. The screen becomes skippable after
// pauseMS milliseconds of ticks.
func NewStatic(d *engine.Data, lines []Line, pauseMS int, next msg.Msg) (*StaticState, error) {
	if len(lines) == 0 {
		return nil, errors.New("static: no lines")
	}

	s := &StaticState{
		lines:     make([]*engine.Texture, 0, len(lines)),
		timeLeft:  pauseMS,
		skippable: pauseMS <= 0,
		next:      next,
	}
	for _, l := range lines {
		font := l.Font
		if font == "" {
			font = engine.FontDefault
		}
		tex, err := d.Fonts.RenderTexture(font, l.Text, nil)
		if err != nil {
			return nil, fmt.Errorf("static: %w", err)
		}
		s.lines = append(s.lines, tex)
		s.width = max(s.width, tex.Width())
		s.height += tex.Height()
	}
	return s, nil
}

// Skippable reports whether a key press leaves the screen.
func (s *StaticState) Skippable() bool { return s.skippable }

// ProcessMessage implements engine.State.
func (s *StaticState) ProcessMessage(_ *engine.Data, m msg.Msg) (msg.Msg, bool) {
	switch m.Kind {
	case msg.KindTick:
		if !s.skippable {
			s.timeLeft -= int(m.Elapsed)
			s.skippable = s.timeLeft <= 0
		}
		return msg.Msg{}, false
	case msg.KindButtonPressed:
		if s.skippable {
			return s.next, true
		}
		return msg.Msg{}, false
	case msg.KindButtonReleased:
		return msg.Msg{}, false
	}
	return m, true
}

// Render implements engine.State.
func (s *StaticState) Render(r engine.Renderer, d *engine.Data) {
	y := (d.WindowSize.H - s.height) / 2
	for _, tex := range s.lines {
		w, h := tex.Query()
		r.Copy(tex, core.NewRect((d.WindowSize.W-w)/2, y, w, h))
		y += h
	}
}

// IsFullscreen implements engine.State.
func (s *StaticState) IsFullscreen() bool { return true }
