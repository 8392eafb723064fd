package engine

import (
	"errors"

	"github.com/vovakirdan/hungry-pixel/internal/core"
	"github.com/vovakirdan/hungry-pixel/internal/msg"
)

type fakeRenderer struct {
	color    core.Color
	clears   int
	presents int
	fills    []core.Rect
	rects    []core.Rect
	copies   []*Texture
	dsts     []core.Rect
}

func (r *fakeRenderer) SetDrawColor(c core.Color) { r.color = c }
func (r *fakeRenderer) Clear()                    { r.clears++ }
func (r *fakeRenderer) FillRect(rc core.Rect)     { r.fills = append(r.fills, rc) }
func (r *fakeRenderer) DrawRect(rc core.Rect)     { r.rects = append(r.rects, rc) }
func (r *fakeRenderer) Present()                  { r.presents++ }

func (r *fakeRenderer) Copy(t *Texture, dst core.Rect) {
	r.copies = append(r.copies, t)
	r.dsts = append(r.dsts, dst)
}

type fakeEvents struct {
	batches [][]Event
}

func (f *fakeEvents) Poll() []Event {
	if len(f.batches) == 0 {
		return nil
	}
	b := f.batches[0]
	f.batches = f.batches[1:]
	return b
}

// fakeTimer advances only when the engine sleeps.
type fakeTimer struct {
	now    uint32
	delays []uint32
}

func (t *fakeTimer) Ticks() uint32 { return t.now }

func (t *fakeTimer) Delay(ms uint32) {
	t.delays = append(t.delays, ms)
	t.now += ms
}

// monospace glyphs: every rune advances size/2 and is size tall.
type fakeGlyphs struct{}

func (fakeGlyphs) GlyphMetrics(size int, _ rune) (int, int) { return size / 2, size }

// scaledGlyphs advances every rune by a width that can change between calls.
type scaledGlyphs struct{ w *int }

func (g scaledGlyphs) GlyphMetrics(size int, _ rune) (int, int) { return *g.w, size }

type emptyGlyphs struct{}

func (emptyGlyphs) GlyphMetrics(int, rune) (int, int) { return 0, 0 }

// stubState records what it sees and reacts according to its handler.
type stubState struct {
	name       string
	fullscreen bool
	handle     func(m msg.Msg) (msg.Msg, bool)
	seen       []msg.Msg
	renders    int
	log        *[]string
}

func (s *stubState) ProcessMessage(_ *Data, m msg.Msg) (msg.Msg, bool) {
	s.seen = append(s.seen, m)
	if s.handle == nil {
		return m, true
	}
	return s.handle(m)
}

func (s *stubState) Render(Renderer, *Data) {
	s.renders++
	if s.log != nil {
		*s.log = append(*s.log, s.name)
	}
}

func (s *stubState) IsFullscreen() bool { return s.fullscreen }

// stubScreens builds stubState screens and remembers the last one of each.
type stubScreens struct {
	built    map[string]*stubState
	order    []string
	fail     map[string]bool
	results  []msg.Result
	handlers map[string]func(m msg.Msg) (msg.Msg, bool)
	renders  []string
}

func newStubScreens() *stubScreens {
	return &stubScreens{
		built:    make(map[string]*stubState),
		fail:     make(map[string]bool),
		handlers: make(map[string]func(m msg.Msg) (msg.Msg, bool)),
	}
}

var errBuild = errors.New("build failed")

func (f *stubScreens) make(name string, fullscreen bool) (State, error) {
	if f.fail[name] {
		return nil, errBuild
	}
	s := &stubState{name: name, fullscreen: fullscreen, handle: f.handlers[name], log: &f.renders}
	f.built[name] = s
	f.order = append(f.order, name)
	return s, nil
}

func (f *stubScreens) Intro(*Data) (State, error)     { return f.make("intro", true) }
func (f *stubScreens) MainMenu(*Data) (State, error)  { return f.make("main", true) }
func (f *stubScreens) PauseMenu(*Data) (State, error) { return f.make("pause", false) }
func (f *stubScreens) Game(*Data) (State, error)      { return f.make("game", true) }
func (f *stubScreens) Credits(*Data) (State, error)   { return f.make("credits", true) }
func (f *stubScreens) Options(*Data) (State, error)   { return f.make("options", true) }

func (f *stubScreens) GameOver(_ *Data, r msg.Result) (State, error) {
	f.results = append(f.results, r)
	return f.make("gameover", true)
}

func (f *stubScreens) Win(_ *Data, r msg.Result) (State, error) {
	f.results = append(f.results, r)
	return f.make("win", true)
}

type fakeRecorder struct {
	outcomes []msg.Kind
	results  []msg.Result
	err      error
}

func (r *fakeRecorder) Record(outcome msg.Kind, res msg.Result) error {
	r.outcomes = append(r.outcomes, outcome)
	r.results = append(r.results, res)
	return r.err
}

type testRig struct {
	engine   *Engine
	renderer *fakeRenderer
	events   *fakeEvents
	timer    *fakeTimer
	screens  *stubScreens
	recorder *fakeRecorder
}

func newRig(screens *stubScreens) (*testRig, error) {
	rig := &testRig{
		renderer: &fakeRenderer{},
		events:   &fakeEvents{},
		timer:    &fakeTimer{now: 1000},
		screens:  screens,
		recorder: &fakeRecorder{},
	}
	p := Platform{
		Renderer: rig.renderer,
		Events:   rig.events,
		Timer:    rig.timer,
		Glyphs:   fakeGlyphs{},
	}
	e, err := New(p, screens, Options{
		Config:   core.DefaultConfig(),
		Recorder: rig.recorder,
	})
	if err != nil {
		return nil, err
	}
	rig.engine = e
	return rig, nil
}
