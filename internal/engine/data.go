package engine

import "github.com/vovakirdan/hungry-pixel/internal/core"

// Data is the process-wide session state. The engine owns it and lends it
// to whichever screen is processing a message or rendering.
type Data struct {
	// Running is the loop lifecycle flag; clearing it ends the loop at the
	// end of the current frame.
	Running bool

	// WindowSize is the logical resolution every screen lays out against.
	WindowSize core.Size

	Fonts    *FontCache
	Bindings *Bindings
}
