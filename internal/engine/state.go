// Package engine implements the fixed-rate game loop: it translates platform
// input into messages, routes every message top-down through a stack of
// screens, applies the engine-level reactions (push, pop, replace, exit),
// renders the visible part of the stack and paces frames.
package engine

import "github.com/vovakirdan/hungry-pixel/internal/msg"

// State is one screen of the stack.
type State interface {
	// ProcessMessage consumes one message. It returns ok=false when the
	// message was fully handled, or the same or a transformed message with
	// ok=true to hand it to the screens below and finally to the engine.
	// It must not block, and time only advances through Tick payloads.
	ProcessMessage(data *Data, m msg.Msg) (out msg.Msg, ok bool)

	// Render paints the screen. It may refresh its own cached textures but
	// must not change simulation state.
	Render(r Renderer, data *Data)

	// IsFullscreen reports whether the screen hides everything below it.
	IsFullscreen() bool
}

// Screens builds the concrete screens the engine pushes in reaction to
// messages. Constructors fail only on programmer errors such as a screen
// referencing a font that was never loaded.
type Screens interface {
	Intro(d *Data) (State, error)
	MainMenu(d *Data) (State, error)
	PauseMenu(d *Data) (State, error)
	Game(d *Data) (State, error)
	GameOver(d *Data, r msg.Result) (State, error)
	Win(d *Data, r msg.Result) (State, error)
	Credits(d *Data) (State, error)
	Options(d *Data) (State, error)
}

// Recorder receives the result of every finished play session.
// outcome is KindShowGameOver or KindShowWinScreen.
type Recorder interface {
	Record(outcome msg.Kind, r msg.Result) error
}
