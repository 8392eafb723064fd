package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hungry-pixel/internal/msg"
)

// MapKey translates a Bubble Tea key message to an engine key.
// Returns the key (msg.KeyNone for keys the engine never sees) and whether
// it is a quit request.
func MapKey(k tea.KeyMsg) (key msg.Key, isQuit bool) {
	switch k.Type {
	case tea.KeyCtrlC:
		return msg.KeyNone, true
	case tea.KeySpace:
		return msg.KeySpace, false
	case tea.KeyRunes:
		// Pasted text or an IME burst is not a key press
		if len(k.Runes) != 1 || k.Paste {
			return msg.KeyNone, false
		}
		if k.Runes[0] == ' ' {
			return msg.KeySpace, false
		}
	}

	name := k.String()
	if k.Alt {
		// Alt combinations are not bindable
		return msg.KeyNone, false
	}
	switch name {
	case "", " ":
		return msg.KeyNone, false
	}
	return msg.Key(name), false
}
