package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hungry-pixel/internal/config"
	"github.com/vovakirdan/hungry-pixel/internal/engine"
)

// frameMsg carries a finished frame from the engine goroutine.
type frameMsg string

// engineDoneMsg reports that the engine loop returned.
type engineDoneMsg struct{ err error }

// Model is the Bubble Tea model of a running engine. It forwards input to
// the event queue and shows the last frame the engine presented.
type Model struct {
	events   *EventQueue
	renderer *Renderer
	frame    string
	err      error
	quitting bool
}

// NewModel creates a model feeding events and resizing renderer.
func NewModel(events *EventQueue, renderer *Renderer) Model {
	return Model{events: events, renderer: renderer}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key, quit := MapKey(msg)
		if quit {
			m.events.Quit()
			return m, nil
		}
		if key != "" {
			m.events.KeyDown(key)
		}
		return m, nil

	case tea.WindowSizeMsg:
		if m.renderer != nil {
			m.renderer.Resize(msg.Width, msg.Height)
		}
		m.events.Resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		m.frame = string(msg)
		return m, nil

	case engineDoneMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frame
}

// Options configures Run.
type Options struct {
	Config   config.Config
	Screens  engine.Screens
	Recorder engine.Recorder // optional
	Logger   *log.Logger
	// Cols and Rows are the terminal size the first frames are drawn at.
	Cols, Rows int
	// Input and Output override the terminal, mainly for tests.
	Input  io.Reader
	Output io.Writer
}

// Run starts the engine on its own goroutine and the Bubble Tea program on
// the calling one. It returns when either side stops, with the engine's
// fatal error if it had one.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config
	rt := cfg.Runtime()

	events := NewEventQueue(time.Duration(cfg.Terminal.KeyReleaseMS) * time.Millisecond)

	var p *tea.Program
	renderer := NewRenderer(rt.Window, opts.Cols, opts.Rows, func(frame string) {
		p.Send(frameMsg(frame))
	})

	eng, err := engine.New(engine.Platform{
		Renderer: renderer,
		Events:   events,
		Timer:    NewClock(),
		Glyphs:   renderer,
	}, opts.Screens, engine.Options{
		Config:   rt,
		Fonts:    cfg.Fonts,
		Bindings: engine.NewBindings(cfg.KeyBindings()),
		Recorder: opts.Recorder,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.Terminal.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	p = tea.NewProgram(NewModel(events, renderer), progOpts...)

	engineCtx, stop := context.WithCancel(ctx)
	defer stop()
	done := make(chan error, 1)
	go func() {
		err := eng.Run(engineCtx)
		p.Send(engineDoneMsg{err: err})
		done <- err
	}()

	_, progErr := p.Run()
	// The program may end first (killed or context cancelled)
	stop()
	engErr := <-done

	if progErr != nil && !errors.Is(progErr, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", progErr)
	}
	return engErr
}
