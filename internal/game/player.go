package game

import (
	"github.com/vovakirdan/hungry-pixel/internal/core"
	"github.com/vovakirdan/hungry-pixel/internal/msg"
)

// Player is the square the user steers. Its side length is its size.
type Player struct {
	X, Y       float64 // Top-left corner
	VX, VY     float64 // Velocity, pixels per second
	DirX, DirY int     // Input direction, -1/0/1 per axis
	Size       float64
	Rect       core.Rect // Derived from X, Y and Size
}

// NewPlayer creates a resting player.
func NewPlayer(x, y, size float64) *Player {
	p := &Player{X: x, Y: y, Size: size}
	p.sync()
	return p
}

func (p *Player) sync() {
	p.Rect = core.SquareAt(p.X, p.Y, p.Size)
}

// Resize changes the size by delta. Size never drops below zero.
func (p *Player) Resize(delta float64) {
	p.Size = max(p.Size+delta, 0)
	p.sync()
}

// StartMoving sets the input direction on the movement's axis.
func (p *Player) StartMoving(m msg.Movement) {
	dx, dy := m.Axis()
	if dx != 0 {
		p.DirX = dx
	}
	if dy != 0 {
		p.DirY = dy
	}
}

// StopMoving clears the input direction on the movement's axis, unless the
// opposite direction has taken over in the meantime.
func (p *Player) StopMoving(m msg.Movement) {
	dx, dy := m.Axis()
	if dx != 0 && p.DirX == dx {
		p.DirX = 0
	}
	if dy != 0 && p.DirY == dy {
		p.DirY = 0
	}
}

// Update advances the player by dt seconds inside a play area of the given
// size. It returns false when the player has shrunk to the death size.
func (p *Player) Update(dt float64, s *Settings, area core.Size) bool {
	// Accelerate, capped per axis
	p.VX = core.ClampF(p.VX+float64(p.DirX)*s.Acceleration*dt, -s.MaxVelocity, s.MaxVelocity)
	p.VY = core.ClampF(p.VY+float64(p.DirY)*s.Acceleration*dt, -s.MaxVelocity, s.MaxVelocity)

	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Resize(-s.Deterioration * dt)

	// Bounce off the walls
	var hit bool
	if p.X, hit = core.Bounce(p.X, float64(area.W)-p.Size); hit {
		p.VX = -p.VX
	}
	if p.Y, hit = core.Bounce(p.Y, float64(area.H)-p.Size); hit {
		p.VY = -p.VY
	}
	p.sync()
	return p.Size > s.DeathSize
}
