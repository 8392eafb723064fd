package game

import "github.com/vovakirdan/hungry-pixel/internal/core"

// Edge identifies a side of the play area.
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Inward returns the unit direction pointing from the edge into the area.
func (e Edge) Inward() (dx, dy int) {
	switch e {
	case EdgeTop:
		return 0, 1
	case EdgeRight:
		return -1, 0
	case EdgeBottom:
		return 0, -1
	default:
		return 1, 0
	}
}

// Spike is a hazard moving at constant speed along one axis.
type Spike struct {
	X, Y       float64
	Speed      float64 // pixels per second
	DirX, DirY int
	W, H       int
	Rect       core.Rect
}

// NewSpike creates a spike with its top-left corner at (x, y).
func NewSpike(x, y float64, w, h int, speed float64, dx, dy int) Spike {
	s := Spike{X: x, Y: y, Speed: speed, DirX: dx, DirY: dy, W: w, H: h}
	s.sync()
	return s
}

func (s *Spike) sync() {
	s.Rect = core.NewRect(int(s.X), int(s.Y), s.W, s.H)
}

// Update moves the spike by dt seconds and reverses its direction on any
// wall of the area.
func (s *Spike) Update(dt float64, area core.Size) {
	s.X += s.Speed * float64(s.DirX) * dt
	s.Y += s.Speed * float64(s.DirY) * dt

	var hit bool
	if s.X, hit = core.Bounce(s.X, float64(area.W-s.W)); hit {
		s.DirX = -s.DirX
	}
	if s.Y, hit = core.Bounce(s.Y, float64(area.H-s.H)); hit {
		s.DirY = -s.DirY
	}
	s.sync()
}
