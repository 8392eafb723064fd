package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hungry-pixel/internal/core"
	"github.com/vovakirdan/hungry-pixel/internal/msg"
)

// Default font keys every screen may rely on.
const (
	FontDefault = "default"
	FontLarge   = "default-large"
)

// DefaultFonts returns the fonts loaded when Options.Fonts is empty.
func DefaultFonts() []FontSpec {
	return []FontSpec{
		{Key: FontDefault, Size: 14},
		{Key: FontLarge, Size: 24},
	}
}

// Options configures a new Engine.
type Options struct {
	Config   core.RuntimeConfig
	Fonts    []FontSpec
	Bindings *Bindings // DefaultBindings when nil
	Recorder Recorder  // optional
	Logger   *log.Logger
}

// Engine owns the session data, the platform collaborators and the screen
// stack (last element = top).
type Engine struct {
	data     Data
	platform Platform
	screens  Screens
	recorder Recorder
	logger   *log.Logger

	stack  []State
	queue  []msg.Msg
	marked map[msg.Key]struct{}
	budget uint32
	err    error
}

// New starts an engine: it builds the session data, loads the fonts and
// pushes the intro screen. Any failure is fatal.
func New(p Platform, screens Screens, opts Options) (*Engine, error) {
	if p.Renderer == nil || p.Events == nil || p.Timer == nil || p.Glyphs == nil {
		return nil, errors.New("engine: incomplete platform")
	}
	if screens == nil {
		return nil, errors.New("engine: no screen factory")
	}

	cfg := opts.Config
	if cfg.Window.W <= 0 || cfg.Window.H <= 0 {
		return nil, fmt.Errorf("engine: invalid window size %dx%d", cfg.Window.W, cfg.Window.H)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	bindings := opts.Bindings
	if bindings == nil {
		bindings = DefaultBindings()
	}

	fonts := NewFontCache(p.Glyphs)
	specs := opts.Fonts
	if len(specs) == 0 {
		specs = DefaultFonts()
	}
	for _, f := range specs {
		if err := fonts.Load(f.Key, f.Size); err != nil {
			return nil, fmt.Errorf("engine: loading fonts: %w", err)
		}
	}

	e := &Engine{
		data: Data{
			Running:    true,
			WindowSize: cfg.Window,
			Fonts:      fonts,
			Bindings:   bindings,
		},
		platform: p,
		screens:  screens,
		recorder: opts.Recorder,
		logger:   logger,
		marked:   make(map[msg.Key]struct{}),
		budget:   cfg.FrameBudgetMS(),
	}

	intro, err := screens.Intro(&e.data)
	if err != nil {
		return nil, fmt.Errorf("engine: building intro screen: %w", err)
	}
	e.push(intro)

	logger.Info("engine started",
		"window", fmt.Sprintf("%dx%d", cfg.Window.W, cfg.Window.H),
		"fonts", fonts.Len(),
		"frame_ms", e.budget,
	)
	return e, nil
}

// Data returns the session data.
func (e *Engine) Data() *Data { return &e.data }

// Depth returns the number of screens on the stack.
func (e *Engine) Depth() int { return len(e.stack) }

// Top returns the topmost screen, or nil when the stack is empty.
func (e *Engine) Top() State {
	if len(e.stack) == 0 {
		return nil
	}
	return e.stack[len(e.stack)-1]
}

// Err returns the fatal error that stopped the engine, if any.
func (e *Engine) Err() error { return e.err }

// Enqueue appends a message to the queue processed on the next frame.
func (e *Engine) Enqueue(m msg.Msg) {
	e.queue = append(e.queue, m)
}

// Update routes one message through the stack, top first. Whatever survives
// every screen is matched against the engine reactions. The returned message,
// if any, is queued again by Process.
func (e *Engine) Update(m msg.Msg) (msg.Msg, bool) {
	cur, ok := m, true
	for i := len(e.stack) - 1; i >= 0 && ok; i-- {
		cur, ok = e.stack[i].ProcessMessage(&e.data, cur)
	}
	if !ok {
		return msg.Msg{}, false
	}

	switch cur.Kind {
	case msg.KindNoOp, msg.KindTick:
		// Tick reaches the engine on every frame; nothing to do.

	case msg.KindExit:
		e.data.Running = false

	case msg.KindStartGame:
		e.pushNew("game", e.screens.Game)

	case msg.KindMenuCommand:
		switch cur.Menu {
		case msg.ToMainMenu:
			e.replaceNew("main menu", e.screens.MainMenu)
		case msg.ShowGameMenu:
			e.pushNew("pause menu", e.screens.PauseMenu)
		case msg.ResumeGame:
			return e.pop(1)
		}

	case msg.KindPopState:
		return e.pop(cur.Count)

	case msg.KindShowGameOver, msg.KindShowWinScreen:
		e.record(cur)
		r := cur.Result
		if cur.Kind == msg.KindShowGameOver {
			e.replaceNew("game over", func(d *Data) (State, error) { return e.screens.GameOver(d, r) })
		} else {
			e.replaceNew("win", func(d *Data) (State, error) { return e.screens.Win(d, r) })
		}

	case msg.KindShowCredits:
		e.replaceNew("credits", e.screens.Credits)

	case msg.KindShowOptions:
		e.pushNew("options", e.screens.Options)

	default:
		e.logger.Debug("dropping unmatched message", "msg", cur.String())
	}
	return msg.Msg{}, false
}

// Render clears the frame, draws the window bounds and renders the stack
// from the topmost fullscreen screen upward.
func (e *Engine) Render() {
	r := e.platform.Renderer
	r.SetDrawColor(core.ColorBackground)
	r.Clear()

	r.SetDrawColor(core.ColorGray)
	r.DrawRect(e.data.WindowSize.Bounds())

	for _, s := range e.stack[e.firstVisible():] {
		s.Render(r, &e.data)
	}
	r.Present()
}

// firstVisible returns the index of the topmost fullscreen screen, or 0.
func (e *Engine) firstVisible() int {
	for i := len(e.stack) - 1; i >= 0; i-- {
		if e.stack[i].IsFullscreen() {
			return i
		}
	}
	return 0
}

// Process runs one frame: drain input, render, drain the message queue,
// sleep out the rest of the frame budget and queue the Tick for the next
// frame. It reports whether the loop should keep running.
func (e *Engine) Process() bool {
	timer := e.platform.Timer
	start := timer.Ticks()

	clear(e.marked)
	for _, ev := range e.platform.Events.Poll() {
		e.translate(ev)
	}

	e.Render()

	for len(e.queue) > 0 {
		m := e.queue[0]
		e.queue = e.queue[1:]
		if next, ok := e.Update(m); ok {
			e.queue = append(e.queue, next)
		}
	}

	if spent := timer.Ticks() - start; spent < e.budget {
		timer.Delay(e.budget - spent)
	}
	e.queue = append(e.queue, msg.Tick(timer.Ticks()-start))

	return e.data.Running
}

// Run calls Process until the engine stops or ctx is cancelled. The context
// is only checked between frames.
func (e *Engine) Run(ctx context.Context) error {
	for e.Process() {
		if ctx.Err() != nil {
			e.logger.Info("engine cancelled")
			break
		}
	}
	e.logger.Info("engine stopped", "depth", len(e.stack))
	return e.err
}

// translate turns a platform event into queued messages. Repeated key-down
// events for the same key within one poll are collapsed.
func (e *Engine) translate(ev Event) {
	switch ev.Kind {
	case EventQuit:
		e.Enqueue(msg.Exit())
	case EventKeyDown:
		if _, seen := e.marked[ev.Key]; seen {
			return
		}
		e.marked[ev.Key] = struct{}{}
		e.Enqueue(msg.ButtonPressed(ev.Key))
	case EventKeyUp:
		e.Enqueue(msg.ButtonReleased(ev.Key))
	case EventResize:
		e.logger.Debug("window resized", "w", ev.W, "h", ev.H)
		if err := e.data.Fonts.Remeasure(); err != nil {
			e.logger.Warn("remeasuring fonts after resize", "err", err)
		}
	}
}

func (e *Engine) push(s State) {
	e.stack = append(e.stack, s)
}

// pop removes up to n screens. If that empties the stack it returns a
// ToMainMenu message so the queue restores a menu before the next render.
func (e *Engine) pop(n int) (msg.Msg, bool) {
	n = core.Clamp(n, 0, len(e.stack))
	clear(e.stack[len(e.stack)-n:])
	e.stack = e.stack[:len(e.stack)-n]
	e.logger.Debug("popped screens", "count", n, "depth", len(e.stack))

	if len(e.stack) == 0 && e.data.Running {
		return msg.MenuCommand(msg.ToMainMenu), true
	}
	return msg.Msg{}, false
}

// pushNew builds a screen and pushes it on top of the stack.
func (e *Engine) pushNew(name string, build func(*Data) (State, error)) {
	s, err := build(&e.data)
	if err != nil {
		e.fail(name, err)
		return
	}
	e.push(s)
	e.logger.Debug("pushed screen", "screen", name, "depth", len(e.stack))
}

// replaceNew builds a screen and makes it the only one on the stack.
func (e *Engine) replaceNew(name string, build func(*Data) (State, error)) {
	s, err := build(&e.data)
	if err != nil {
		e.fail(name, err)
		return
	}
	clear(e.stack)
	e.stack = append(e.stack[:0], s)
	e.logger.Debug("replaced stack", "screen", name)
}

func (e *Engine) record(m msg.Msg) {
	if e.recorder == nil {
		return
	}
	if err := e.recorder.Record(m.Kind, m.Result); err != nil {
		e.logger.Warn("could not record session", "error", err)
	}
}

// fail stops the engine on a screen construction error.
func (e *Engine) fail(name string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("engine: building %s screen: %w", name, err)
	}
	e.logger.Error("fatal screen error", "screen", name, "error", err)
	e.data.Running = false
}
