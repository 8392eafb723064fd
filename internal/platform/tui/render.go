package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hungry-pixel/internal/core"
	"github.com/vovakirdan/hungry-pixel/internal/engine"
)

// boldFrom is the smallest font size drawn in bold.
const boldFrom = 20

// Renderer rasterizes logical drawing calls onto a cell screen scaled to
// the terminal. Present hands the finished frame to a sink.
type Renderer struct {
	logical core.Size
	screen  *core.Screen
	color   core.Color
	present func(frame string)

	mu      sync.Mutex
	pending *core.Size // terminal size to apply on the next Clear
}

var (
	_ engine.Renderer = (*Renderer)(nil)
	_ engine.Glyphs   = (*Renderer)(nil)
)

// NewRenderer creates a renderer mapping the logical resolution onto a
// cols x rows terminal.
func NewRenderer(logical core.Size, cols, rows int, present func(string)) *Renderer {
	return &Renderer{
		logical: logical,
		screen:  core.NewScreen(max(cols, 1), max(rows, 1)),
		color:   core.ColorWhite,
		present: present,
	}
}

// Screen returns the cell buffer of the last frame.
func (r *Renderer) Screen() *core.Screen { return r.screen }

// Resize changes the terminal size. It is safe to call from another
// goroutine and takes effect on the next frame.
func (r *Renderer) Resize(cols, rows int) {
	r.mu.Lock()
	r.pending = &core.Size{W: max(cols, 1), H: max(rows, 1)}
	r.mu.Unlock()
}

// SetDrawColor implements engine.Renderer.
func (r *Renderer) SetDrawColor(c core.Color) { r.color = c }

// Clear implements engine.Renderer.
func (r *Renderer) Clear() {
	r.mu.Lock()
	if r.pending != nil {
		r.screen.Resize(r.pending.W, r.pending.H)
		r.pending = nil
	}
	r.mu.Unlock()

	r.screen.SetBackground(r.color)
	r.screen.Clear()
}

// FillRect implements engine.Renderer. Translucent colours are blended over
// the cells already drawn.
func (r *Renderer) FillRect(rc core.Rect) {
	cells := r.toCells(rc)
	if r.color.A == 255 {
		r.screen.FillRect(cells, r.color)
		return
	}
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			c := blend(r.screen.GetCell(x, y).BG, r.color)
			r.screen.Set(x, y, core.Cell{Rune: ' ', FG: c, BG: c})
		}
	}
}

// DrawRect implements engine.Renderer.
func (r *Renderer) DrawRect(rc core.Rect) {
	r.screen.DrawBox(r.toCells(rc), r.color)
}

// Copy implements engine.Renderer. The text starts at the top-left cell of
// dst and runs for as many columns as it has, clipped at the screen edge.
// Textures measured before a resize keep their text whole.
func (r *Renderer) Copy(t *engine.Texture, dst core.Rect) {
	cells := r.toCells(dst)
	r.screen.DrawText(cells.X, cells.Y, t.Text, t.Tint, t.Size >= boldFrom)
}

// GlyphMetrics implements engine.Glyphs against the cell size of the next
// frame, so text measured after a resize spans the columns it is drawn on.
func (r *Renderer) GlyphMetrics(size int, ch rune) (advance, height int) {
	r.mu.Lock()
	cols, rows := r.screen.Width(), r.screen.Height()
	if r.pending != nil {
		cols, rows = r.pending.W, r.pending.H
	}
	r.mu.Unlock()
	return NewCellGlyphs(r.logical, cols, rows).GlyphMetrics(size, ch)
}

// Present implements engine.Renderer.
func (r *Renderer) Present() {
	if r.present != nil {
		r.present(RenderScreen(r.screen))
	}
}

// toCells maps a logical rectangle to the cells it covers. A non-empty
// rectangle always covers at least one cell.
func (r *Renderer) toCells(rc core.Rect) core.Rect {
	cols, rows := r.screen.Width(), r.screen.Height()
	x0 := floorDiv(rc.X*cols, r.logical.W)
	y0 := floorDiv(rc.Y*rows, r.logical.H)
	x1 := floorDiv(rc.Right()*cols, r.logical.W)
	y1 := floorDiv(rc.Bottom()*rows, r.logical.H)
	if rc.W > 0 {
		x1 = max(x1, x0+1)
	}
	if rc.H > 0 {
		y1 = max(y1, y0+1)
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func blend(dst, src core.Color) core.Color {
	a := uint16(src.A)
	mix := func(d, s uint8) uint8 {
		return uint8((uint16(s)*a + uint16(d)*(255-a)) / 255)
	}
	return core.RGB(mix(dst.R, src.R), mix(dst.G, src.G), mix(dst.B, src.B))
}

type cellStyle struct {
	fg, bg core.Color
	bold   bool
}

var (
	stylesMu sync.Mutex
	styles   = make(map[cellStyle]lipgloss.Style)
)

func styleFor(c core.Cell) lipgloss.Style {
	key := cellStyle{fg: c.FG, bg: c.BG, bold: c.Bold}
	stylesMu.Lock()
	defer stylesMu.Unlock()
	if s, ok := styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.FG.Hex())).
		Background(lipgloss.Color(c.BG.Hex())).
		Bold(c.Bold)
	styles[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG || cell.Bold != start.Bold {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
