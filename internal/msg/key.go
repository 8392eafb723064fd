package msg

// Key is a raw, platform-neutral key identity. Names follow the terminal
// conventions ("up", "enter", "esc", "a"), so most platforms can pass their
// own key names through unchanged.
type Key string

// Keys with fixed meaning in menus and gameplay.
const (
	KeyNone   Key = ""
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeyLeft   Key = "left"
	KeyRight  Key = "right"
	KeyEnter  Key = "enter"
	KeyEscape Key = "esc"
	KeySpace  Key = "space"
	KeyP      Key = "p"
	KeyPause  Key = "pause"
)

// String returns the key name.
func (k Key) String() string {
	if k == KeyNone {
		return "none"
	}
	return string(k)
}

// Movement is an abstract movement direction that raw keys are bound to.
type Movement uint8

const (
	MoveUp Movement = iota
	MoveDown
	MoveLeft
	MoveRight
)

// Movements lists every direction in menu order.
var Movements = []Movement{MoveUp, MoveDown, MoveLeft, MoveRight}

// String returns a human-readable name for the movement.
func (m Movement) String() string {
	switch m {
	case MoveUp:
		return "Up"
	case MoveDown:
		return "Down"
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Axis returns the unit vector for the movement in screen coordinates
// (y grows downward).
func (m Movement) Axis() (dx, dy int) {
	switch m {
	case MoveUp:
		return 0, -1
	case MoveDown:
		return 0, 1
	case MoveLeft:
		return -1, 0
	case MoveRight:
		return 1, 0
	default:
		return 0, 0
	}
}
