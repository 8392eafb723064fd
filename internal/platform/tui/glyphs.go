package tui

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/hungry-pixel/internal/core"
	"github.com/vovakirdan/hungry-pixel/internal/engine"
)

// CellGlyphs measures glyphs as terminal cells expressed in logical pixels,
// so a texture laid out by the engine spans exactly as many cells as its
// text has columns. Every font size maps to one cell row.
type CellGlyphs struct {
	CellW, CellH float64 // Logical pixels per cell
}

var _ engine.Glyphs = CellGlyphs{}

// NewCellGlyphs derives the cell size from the logical resolution and the
// terminal size in cells.
func NewCellGlyphs(logical core.Size, cols, rows int) CellGlyphs {
	return CellGlyphs{
		CellW: float64(logical.W) / float64(max(cols, 1)),
		CellH: float64(logical.H) / float64(max(rows, 1)),
	}
}

// GlyphMetrics implements engine.Glyphs.
func (g CellGlyphs) GlyphMetrics(_ int, r rune) (advance, height int) {
	cols := max(runewidth.RuneWidth(r), 1)
	return int(math.Ceil(float64(cols) * g.CellW)), int(math.Ceil(g.CellH))
}
