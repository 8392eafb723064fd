package core

// Cell is one character position of a Screen.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
	Bold bool
}

// blank is the cell a cleared screen is filled with.
var blank = Cell{Rune: ' ', FG: ColorWhite, BG: ColorBackground}

// Screen is a 2D cell buffer. The terminal platform rasterizes the engine's
// logical drawing calls into it and then converts it to a styled string.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	clear  Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		clear:  blank,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// SetBackground changes the colour Clear fills the screen with.
func (s *Screen) SetBackground(c Color) {
	s.clear.BG = c
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = s.clear
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// SetRune changes only the rune and foreground of a cell, keeping its background.
func (s *Screen) SetRune(x, y int, r rune, fg Color, bold bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	c := &s.cells[y][x]
	c.Rune = r
	c.FG = fg
	c.Bold = bold
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color, bold bool) {
	i := 0
	for _, r := range text {
		s.SetRune(x+i, y, r, fg, bold)
		i++
	}
}

// FillRect paints the background of every cell in r.
func (s *Screen) FillRect(r Rect, bg Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if x < 0 || x >= s.width || y < 0 || y >= s.height {
				continue
			}
			s.cells[y][x] = Cell{Rune: ' ', FG: bg, BG: bg}
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, fg Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	if r.W == 1 || r.H == 1 {
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				s.SetRune(x, y, '·', fg, false)
			}
		}
		return
	}

	s.SetRune(r.X, r.Y, '┌', fg, false)
	s.SetRune(r.Right()-1, r.Y, '┐', fg, false)
	s.SetRune(r.X, r.Bottom()-1, '└', fg, false)
	s.SetRune(r.Right()-1, r.Bottom()-1, '┘', fg, false)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetRune(x, r.Y, '─', fg, false)
		s.SetRune(x, r.Bottom()-1, '─', fg, false)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetRune(r.X, y, '│', fg, false)
		s.SetRune(r.Right()-1, y, '│', fg, false)
	}
}
