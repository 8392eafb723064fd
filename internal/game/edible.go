package game

import "github.com/vovakirdan/hungry-pixel/internal/core"

// Edible is food. Its nutrition is also its side length.
type Edible struct {
	Rect      core.Rect
	Nutrition float64
}

// NewEdible creates an edible with its top-left corner at (x, y).
func NewEdible(x, y int, nutrition float64) Edible {
	return Edible{
		Rect:      core.NewRect(x, y, int(nutrition), int(nutrition)),
		Nutrition: nutrition,
	}
}

// Deteriorate reduces nutrition by amount, flooring at zero, and shrinks the
// rectangle to match.
func (e *Edible) Deteriorate(amount float64) {
	e.Nutrition = max(e.Nutrition-amount, 0)
	e.Rect.W = int(e.Nutrition)
	e.Rect.H = int(e.Nutrition)
}

// Spoiled reports whether nothing is left to eat.
func (e *Edible) Spoiled() bool {
	return e.Nutrition <= 0
}
