package screens

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/hungry-pixel/internal/config"
	"github.com/vovakirdan/hungry-pixel/internal/core"
	"github.com/vovakirdan/hungry-pixel/internal/engine"
	"github.com/vovakirdan/hungry-pixel/internal/game"
	"github.com/vovakirdan/hungry-pixel/internal/msg"
)

type monoGlyphs struct{}

func (monoGlyphs) GlyphMetrics(size int, _ rune) (int, int) { return size / 2, size }

type recRenderer struct {
	color  core.Color
	fills  []core.Rect
	colors []core.Color
	texts  []string
	dsts   []core.Rect
}

func (r *recRenderer) SetDrawColor(c core.Color) { r.color = c }
func (r *recRenderer) Clear()                    {}
func (r *recRenderer) DrawRect(core.Rect)        {}
func (r *recRenderer) Present()                  {}

func (r *recRenderer) FillRect(rc core.Rect) {
	r.fills = append(r.fills, rc)
	r.colors = append(r.colors, r.color)
}

func (r *recRenderer) Copy(t *engine.Texture, dst core.Rect) {
	r.texts = append(r.texts, t.Text)
	r.dsts = append(r.dsts, dst)
}

type noEvents struct{}

func (noEvents) Poll() []engine.Event { return nil }

type stepTimer struct{ now uint32 }

func (t *stepTimer) Ticks() uint32   { return t.now }
func (t *stepTimer) Delay(ms uint32) { t.now += ms }

func newData(t *testing.T) *engine.Data {
	t.Helper()
	fonts := engine.NewFontCache(monoGlyphs{})
	for _, f := range engine.DefaultFonts() {
		if err := fonts.Load(f.Key, f.Size); err != nil {
			t.Fatalf("Load: %v", err)
		}
	}
	return &engine.Data{
		Running:    true,
		WindowSize: core.Size{W: 1024, H: 768},
		Fonts:      fonts,
		Bindings:   engine.DefaultBindings(),
	}
}

func testMenu(t *testing.T, d *engine.Data, escape *msg.Msg) *MenuState {
	t.Helper()
	m, err := NewMenu(d, MenuConfig{
		Items: []Item{
			{Label: "New Game", Msg: msg.StartGame()},
			{Label: "Options", Msg: msg.ShowOptions()},
			{Label: "Exit", Msg: msg.Exit()},
		},
		OnEscape: escape,
		Position: Position{Centered: true},
	})
	if err != nil {
		t.Fatalf("NewMenu: %v", err)
	}
	return m
}

func TestMenuWraps(t *testing.T) {
	d := newData(t)
	m := testMenu(t, d, nil)

	tests := []struct {
		key  msg.Key
		want int
	}{
		{msg.KeyUp, 2},
		{msg.KeyDown, 0},
		{msg.KeyDown, 1},
		{msg.KeyDown, 2},
		{msg.KeyDown, 0},
	}

	for i, tc := range tests {
		if _, ok := m.ProcessMessage(d, msg.ButtonPressed(tc.key)); ok {
			t.Errorf("step %d: navigation should be consumed", i)
		}
		if m.Cursor() != tc.want {
			t.Fatalf("step %d: cursor = %d, expected %d", i, m.Cursor(), tc.want)
		}
	}
}

func TestMenuEnterEmitsItem(t *testing.T) {
	d := newData(t)
	want := []msg.Msg{msg.StartGame(), msg.ShowOptions(), msg.Exit()}

	for i, w := range want {
		m := testMenu(t, d, nil)
		for range i {
			m.ProcessMessage(d, msg.ButtonPressed(msg.KeyDown))
		}
		out, ok := m.ProcessMessage(d, msg.ButtonPressed(msg.KeyEnter))
		if !ok || out != w {
			t.Errorf("Enter at %d = %v, %v; expected %v", i, out, ok, w)
		}
	}
}

func TestMenuEscape(t *testing.T) {
	d := newData(t)

	if _, ok := testMenu(t, d, nil).ProcessMessage(d, msg.ButtonPressed(msg.KeyEscape)); ok {
		t.Error("Escape without an escape message should be swallowed")
	}

	resume := msg.MenuCommand(msg.ResumeGame)
	out, ok := testMenu(t, d, &resume).ProcessMessage(d, msg.ButtonPressed(msg.KeyEscape))
	if !ok || out != resume {
		t.Errorf("Escape = %v, %v; expected %v", out, ok, resume)
	}
}

func TestMenuPassesOtherMessages(t *testing.T) {
	d := newData(t)
	m := testMenu(t, d, nil)

	for _, in := range []msg.Msg{msg.Tick(15), msg.ButtonPressed(msg.KeyLeft), msg.ButtonReleased(msg.KeyUp), msg.Exit()} {
		if out, ok := m.ProcessMessage(d, in); !ok || out != in {
			t.Errorf("ProcessMessage(%v) = %v, %v; expected unchanged", in, out, ok)
		}
	}
}

func TestMenuErrors(t *testing.T) {
	d := newData(t)
	if _, err := NewMenu(d, MenuConfig{}); err == nil {
		t.Error("empty menu should fail")
	}

	d.Fonts = engine.NewFontCache(monoGlyphs{})
	_, err := NewMenu(d, MenuConfig{Items: []Item{{Label: "x"}}})
	if !errors.Is(err, engine.ErrFontNotFound) {
		t.Errorf("NewMenu() = %v, expected ErrFontNotFound", err)
	}
}

func TestMenuRender(t *testing.T) {
	d := newData(t)
	m := testMenu(t, d, nil)
	m.ProcessMessage(d, msg.ButtonPressed(msg.KeyDown))
	r := &recRenderer{}

	m.Render(r, d)

	if strings.Join(r.texts, ",") != "New Game,Options,Exit" {
		t.Errorf("drew %v", r.texts)
	}
	// Selection bar sits beside the second item
	if len(r.fills) != 1 || r.fills[0].Y != r.dsts[1].Y || r.colors[0] != core.ColorHighlight {
		t.Errorf("bar = %v, item rects = %v", r.fills, r.dsts)
	}
	// Block is centered horizontally
	w, _ := m.Dimensions()
	if r.fills[0].X != (1024-w)/2 {
		t.Errorf("block x = %d, expected %d", r.fills[0].X, (1024-w)/2)
	}
}

func TestMenuFixedPosition(t *testing.T) {
	d := newData(t)
	m, err := NewMenu(d, MenuConfig{
		Items:    []Item{{Label: "Only", Msg: msg.Exit()}},
		Position: Position{X: 40, Y: 60},
	})
	if err != nil {
		t.Fatal(err)
	}
	r := &recRenderer{}
	m.Render(r, d)

	if r.fills[0].X != 40 || r.fills[0].Y != 60 {
		t.Errorf("bar at %v, expected (40, 60)", r.fills[0])
	}
	if m.IsFullscreen() {
		t.Error("menu should not be fullscreen unless configured")
	}
}

func TestMenuRelabel(t *testing.T) {
	d := newData(t)
	m := testMenu(t, d, nil)

	m.SetLabel(1, "Settings")
	if !m.dirty {
		t.Fatal("SetLabel should mark the menu dirty")
	}
	r := &recRenderer{}
	m.Render(r, d)
	if r.texts[1] != "Settings" || m.dirty {
		t.Errorf("drew %v, dirty=%v", r.texts, m.dirty)
	}

	m.SetLabel(1, "Settings")
	if m.dirty {
		t.Error("unchanged label should not mark dirty")
	}
}

func TestStaticTimer(t *testing.T) {
	d := newData(t)
	next := msg.MenuCommand(msg.ToMainMenu)
	s, err := NewStatic(d, []Line{Heading("GAME OVER"), Text("size 1.0")}, 100, next)
	if err != nil {
		t.Fatalf("NewStatic: %v", err)
	}

	if _, ok := s.ProcessMessage(d, msg.ButtonPressed(msg.KeySpace)); ok {
		t.Error("key press before the timer should be swallowed")
	}
	s.ProcessMessage(d, msg.Tick(60))
	if s.Skippable() {
		t.Error("should not be skippable after 60ms")
	}
	if _, ok := s.ProcessMessage(d, msg.Tick(40)); ok {
		t.Error("ticks should be consumed")
	}
	if !s.Skippable() {
		t.Fatal("should be skippable after 100ms")
	}
	if _, ok := s.ProcessMessage(d, msg.ButtonReleased(msg.KeySpace)); ok {
		t.Error("releases should be consumed")
	}
	out, ok := s.ProcessMessage(d, msg.ButtonPressed(msg.KeySpace))
	if !ok || out != next {
		t.Errorf("press = %v, %v; expected %v", out, ok, next)
	}
	if out, ok := s.ProcessMessage(d, msg.Exit()); !ok || out != msg.Exit() {
		t.Error("Exit should pass through")
	}
	if !s.IsFullscreen() {
		t.Error("static screens are fullscreen")
	}
}

func TestStaticRenderCentered(t *testing.T) {
	d := newData(t)
	s, err := NewStatic(d, []Line{Heading("AB"), Text("ABCD")}, 0, msg.Exit())
	if err != nil {
		t.Fatal(err)
	}
	if !s.Skippable() {
		t.Error("zero pause should be skippable at once")
	}

	r := &recRenderer{}
	s.Render(r, d)

	// Heading: 2 glyphs of 12px, 24 tall; text: 4 glyphs of 7px, 14 tall
	want := []core.Rect{
		core.NewRect((1024-24)/2, (768-38)/2, 24, 24),
		core.NewRect((1024-28)/2, (768-38)/2+24, 28, 14),
	}
	for i, w := range want {
		if r.dsts[i] != w {
			t.Errorf("line %d at %v, expected %v", i, r.dsts[i], w)
		}
	}
}

func TestOptionsRemap(t *testing.T) {
	d := newData(t)
	o, err := NewOptions(d)
	if err != nil {
		t.Fatalf("NewOptions: %v", err)
	}
	if o.Menu().Label(2) != "Left: left" {
		t.Errorf("label = %q", o.Menu().Label(2))
	}

	// Select Left
	o.ProcessMessage(d, msg.ButtonPressed(msg.KeyDown))
	o.ProcessMessage(d, msg.ButtonPressed(msg.KeyDown))
	if _, ok := o.ProcessMessage(d, msg.ButtonPressed(msg.KeyEnter)); ok {
		t.Error("selection should be consumed")
	}
	if mv, ok := o.Waiting(); !ok || mv != msg.MoveLeft {
		t.Fatalf("Waiting() = %v, %v; expected Left", mv, ok)
	}

	// The next key is captured, not routed to the menu
	if _, ok := o.ProcessMessage(d, msg.ButtonPressed(msg.KeyUp)); ok {
		t.Error("captured key should be consumed")
	}
	if _, ok := o.Waiting(); ok {
		t.Error("should stop waiting after a key")
	}
	if o.Menu().Cursor() != 2 {
		t.Errorf("cursor = %d, the captured key should not move it", o.Menu().Cursor())
	}

	if mv, _ := d.Bindings.Lookup(msg.KeyUp); mv != msg.MoveLeft {
		t.Errorf("up is bound to %v, expected Left", mv)
	}
	if _, ok := d.Bindings.KeyFor(msg.MoveUp); ok {
		t.Error("Up should have lost its key")
	}
	if o.Menu().Label(0) != "Up: ---" || o.Menu().Label(2) != "Left: up" {
		t.Errorf("labels = %q, %q", o.Menu().Label(0), o.Menu().Label(2))
	}
}

func TestOptionsMessages(t *testing.T) {
	d := newData(t)
	o, err := NewOptions(d)
	if err != nil {
		t.Fatal(err)
	}

	// OptionsSet without a pending direction is ignored
	o.ProcessMessage(d, msg.OptionsSet("z"))
	if _, ok := d.Bindings.Lookup("z"); ok {
		t.Error("stray OptionsSet should not bind")
	}

	o.ProcessMessage(d, msg.OptionsSelect(msg.MoveRight))
	o.ProcessMessage(d, msg.OptionsSet("d"))
	if mv, ok := d.Bindings.Lookup("d"); !ok || mv != msg.MoveRight {
		t.Errorf("Lookup(d) = %v, %v; expected Right", mv, ok)
	}

	for _, in := range []msg.Msg{msg.Tick(15), msg.ButtonReleased("d")} {
		if _, ok := o.ProcessMessage(d, in); ok {
			t.Errorf("%v should be consumed", in)
		}
	}

	out, ok := o.ProcessMessage(d, msg.ButtonPressed(msg.KeyEscape))
	if !ok || out != msg.PopState(1) {
		t.Errorf("Escape = %v, %v; expected PopState(1)", out, ok)
	}
}

func TestOptionsRenderPrompt(t *testing.T) {
	d := newData(t)
	o, err := NewOptions(d)
	if err != nil {
		t.Fatal(err)
	}

	r := &recRenderer{}
	o.Render(r, d)
	for _, s := range r.texts {
		if s == promptText {
			t.Error("prompt should only show while waiting")
		}
	}

	o.ProcessMessage(d, msg.OptionsSelect(msg.MoveUp))
	r = &recRenderer{}
	o.Render(r, d)
	if r.texts[len(r.texts)-1] != promptText {
		t.Errorf("last text = %q, expected the prompt", r.texts[len(r.texts)-1])
	}
}

func TestFactoryScreens(t *testing.T) {
	d := newData(t)
	f := NewFactory(config.Default(), rand.New(rand.NewSource(1)))
	res := msg.Result{FinalSize: 1, PeakSize: 55.5, PlayedMS: 12345}

	builders := []struct {
		name       string
		build      func() (engine.State, error)
		fullscreen bool
	}{
		{"intro", func() (engine.State, error) { return f.Intro(d) }, true},
		{"main menu", func() (engine.State, error) { return f.MainMenu(d) }, true},
		{"pause menu", func() (engine.State, error) { return f.PauseMenu(d) }, false},
		{"game", func() (engine.State, error) { return f.Game(d) }, true},
		{"game over", func() (engine.State, error) { return f.GameOver(d, res) }, true},
		{"win", func() (engine.State, error) { return f.Win(d, res) }, true},
		{"credits", func() (engine.State, error) { return f.Credits(d) }, true},
		{"options", func() (engine.State, error) { return f.Options(d) }, true},
	}

	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			s, err := b.build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if s.IsFullscreen() != b.fullscreen {
				t.Errorf("IsFullscreen() = %v, expected %v", s.IsFullscreen(), b.fullscreen)
			}
		})
	}
}

func TestFactoryMissingFont(t *testing.T) {
	d := newData(t)
	d.Fonts = engine.NewFontCache(monoGlyphs{})
	f := NewFactory(config.Default(), rand.New(rand.NewSource(1)))

	s, err := f.MainMenu(d)
	if err == nil || s != nil {
		t.Errorf("MainMenu() = %v, %v; expected nil state and an error", s, err)
	}
}

func TestResultLines(t *testing.T) {
	lines := resultLines("YOU WIN!", msg.Result{FinalSize: 390.25, PeakSize: 401, PlayedMS: 61240})

	var texts []string
	for _, l := range lines {
		texts = append(texts, l.Text)
	}
	joined := strings.Join(texts, "\n")
	for _, want := range []string{"YOU WIN!", "390.2", "401.0", "1m1.2s"} {
		if !strings.Contains(joined, want) {
			t.Errorf("lines miss %q:\n%s", want, joined)
		}
	}
}

// newEngine runs the real engine with the real factory over fake platform
// collaborators.
func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	cfg := config.Default()
	p := engine.Platform{
		Renderer: &recRenderer{},
		Events:   noEvents{},
		Timer:    &stepTimer{},
		Glyphs:   monoGlyphs{},
	}
	e, err := engine.New(p, NewFactory(cfg, rand.New(rand.NewSource(7))), engine.Options{Config: cfg.Runtime()})
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return e
}

// send routes m and everything it produces, the way the frame loop does.
func send(e *engine.Engine, m msg.Msg) {
	for next, ok := m, true; ok; {
		next, ok = e.Update(next)
	}
}

func TestFlowMainMenuToOptions(t *testing.T) {
	e := newEngine(t)
	send(e, msg.MenuCommand(msg.ToMainMenu))

	menu, ok := e.Top().(*MenuState)
	if !ok || e.Depth() != 1 {
		t.Fatalf("top = %T, depth %d; expected the main menu alone", e.Top(), e.Depth())
	}

	send(e, msg.ButtonPressed(msg.KeyDown))
	if menu.Cursor() != 1 {
		t.Fatalf("cursor = %d, expected 1", menu.Cursor())
	}
	send(e, msg.ButtonPressed(msg.KeyEnter))

	if _, ok := e.Top().(*OptionsState); !ok {
		t.Fatalf("top = %T, expected the options screen", e.Top())
	}
	if e.Depth() != 2 {
		t.Errorf("depth = %d, options should be pushed over the menu", e.Depth())
	}

	send(e, msg.ButtonPressed(msg.KeyEscape))
	if e.Top() != engine.State(menu) {
		t.Errorf("top = %T, expected the main menu back", e.Top())
	}
}

func TestFlowPauseAndResume(t *testing.T) {
	e := newEngine(t)
	send(e, msg.MenuCommand(msg.ToMainMenu))
	send(e, msg.ButtonPressed(msg.KeyEnter))

	g, ok := e.Top().(*game.GameState)
	if !ok {
		t.Fatalf("top = %T, expected the game", e.Top())
	}

	send(e, msg.ButtonPressed(msg.KeyEscape))
	if e.Depth() != 3 || !g.Paused() {
		t.Fatalf("depth = %d paused = %v, expected the pause menu over a paused game", e.Depth(), g.Paused())
	}
	if e.Top().IsFullscreen() {
		t.Error("pause menu should let the game show through")
	}

	// Escape in the pause menu resumes
	send(e, msg.ButtonPressed(msg.KeyEscape))
	if e.Top() != engine.State(g) || g.Paused() {
		t.Errorf("top = %T paused = %v, expected the running game", e.Top(), g.Paused())
	}

	// Main Menu from the pause menu replaces everything
	send(e, msg.ButtonPressed(msg.KeyEscape))
	send(e, msg.ButtonPressed(msg.KeyDown))
	send(e, msg.ButtonPressed(msg.KeyEnter))
	if _, ok := e.Top().(*MenuState); !ok || e.Depth() != 1 {
		t.Errorf("top = %T depth = %d, expected the main menu alone", e.Top(), e.Depth())
	}
}

func TestFlowWinClearsStack(t *testing.T) {
	e := newEngine(t)
	send(e, msg.MenuCommand(msg.ToMainMenu))
	send(e, msg.ButtonPressed(msg.KeyEnter))
	g := e.Top().(*game.GameState)

	g.Player().Resize(g.WinSize() + 10 - g.Player().Size)
	send(e, msg.Tick(16))

	s, ok := e.Top().(*StaticState)
	if !ok || e.Depth() != 1 {
		t.Fatalf("top = %T depth = %d, expected the win screen alone", e.Top(), e.Depth())
	}

	send(e, msg.Tick(2000))
	if !s.Skippable() {
		t.Fatal("win screen should be skippable after its pause")
	}
	send(e, msg.ButtonPressed(msg.KeySpace))
	if _, ok := e.Top().(*MenuState); !ok {
		t.Errorf("top = %T, expected the main menu", e.Top())
	}
}

func TestFlowExitFromMenu(t *testing.T) {
	e := newEngine(t)
	send(e, msg.MenuCommand(msg.ToMainMenu))
	send(e, msg.ButtonPressed(msg.KeyUp))
	send(e, msg.ButtonPressed(msg.KeyEnter))

	if e.Data().Running {
		t.Error("Exit item should stop the engine")
	}
}

func TestFlowIntroSkipsToMenu(t *testing.T) {
	e := newEngine(t)
	intro, ok := e.Top().(*StaticState)
	if !ok {
		t.Fatalf("top = %T, expected the intro", e.Top())
	}

	send(e, msg.ButtonPressed(msg.KeySpace))
	if e.Top() != engine.State(intro) {
		t.Fatal("intro should wait for its timer")
	}
	send(e, msg.Tick(uint32(config.Default().Screens.IntroMS)))
	send(e, msg.ButtonPressed(msg.KeySpace))
	if _, ok := e.Top().(*MenuState); !ok {
		t.Errorf("top = %T, expected the main menu", e.Top())
	}
}
