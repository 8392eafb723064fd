// Package game implements the Hungry Pixel gameplay screen: a square that
// grows by eating food, shrinks over time and loses size to moving spikes.
package game

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/hungry-pixel/internal/config"
	"github.com/vovakirdan/hungry-pixel/internal/core"
	"github.com/vovakirdan/hungry-pixel/internal/engine"
	"github.com/vovakirdan/hungry-pixel/internal/msg"
)

// GameState is the gameplay screen. It is created fresh for every session.
type GameState struct {
	settings   Settings
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	area       core.Size

	player  *Player
	edibles []Edible
	spikes  []Spike

	edibleETA float64 // seconds until the next edible
	spikeETA  float64 // seconds until the next spike

	paused   bool
	menuOpen bool // paused behind the in-game menu
	over     bool // result already emitted

	peak     float64
	playedMS uint32
}

// New creates a session laid out against the window size in d. It fails if
// the HUD fonts were never loaded.
func New(d *engine.Data, s Settings, rng *rand.Rand) (*GameState, error) {
	for _, key := range []string{engine.FontDefault, engine.FontLarge} {
		if _, err := d.Fonts.Atlas(key); err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
	}

	area := d.WindowSize
	g := &GameState{
		settings:   s,
		difficulty: config.NewDifficultyManager(s.Difficulty),
		rng:        rng,
		area:       area,
		player: NewPlayer(
			(float64(area.W)-s.StartSize)/2,
			(float64(area.H)-s.StartSize)/2,
			s.StartSize,
		),
		edibleETA: s.EdibleSpawnInterval,
		spikeETA:  s.SpikeSpawnInterval,
		peak:      s.StartSize,
	}
	return g, nil
}

// Player returns the player entity.
func (g *GameState) Player() *Player { return g.player }

// Edibles returns the live edibles in spawn order.
func (g *GameState) Edibles() []Edible { return g.edibles }

// Spikes returns the live spikes in spawn order.
func (g *GameState) Spikes() []Spike { return g.spikes }

// Paused reports whether the simulation is stopped.
func (g *GameState) Paused() bool { return g.paused }

// Over reports whether the session has produced its result.
func (g *GameState) Over() bool { return g.over }

// WinSize is the size at which the player wins.
func (g *GameState) WinSize() float64 { return float64(g.area.H) / 2 }

// Result summarizes the session so far.
func (g *GameState) Result() msg.Result {
	return msg.Result{
		FinalSize: g.player.Size,
		PeakSize:  g.peak,
		PlayedMS:  g.playedMS,
	}
}

// ProcessMessage implements engine.State.
func (g *GameState) ProcessMessage(d *engine.Data, m msg.Msg) (msg.Msg, bool) {
	switch m.Kind {
	case msg.KindTick:
		if g.paused || g.over {
			return m, true
		}
		return g.step(m)

	case msg.KindButtonPressed:
		if mv, ok := d.Bindings.Lookup(m.Key); ok {
			return g.command(msg.StartMoving(mv))
		}
		switch m.Key {
		case msg.KeyEscape:
			return g.command(msg.GameCommand(msg.Menu))
		case msg.KeyP, msg.KeyPause:
			return g.command(msg.GameCommand(msg.Pause))
		}
		return msg.Msg{}, false

	case msg.KindButtonReleased:
		if mv, ok := d.Bindings.Lookup(m.Key); ok {
			return g.command(msg.StopMoving(mv))
		}
		return msg.Msg{}, false

	case msg.KindGameCommand:
		return g.command(m)

	case msg.KindMenuCommand:
		if m.Menu == msg.ResumeGame {
			g.paused, g.menuOpen = false, false
		}
		return m, true

	case msg.KindNoOp:
		return msg.Msg{}, false
	}
	return m, true
}

func (g *GameState) command(m msg.Msg) (msg.Msg, bool) {
	switch m.Command {
	case msg.StartMovement:
		g.player.StartMoving(m.Movement)
	case msg.StopMovement:
		g.player.StopMoving(m.Movement)
	case msg.Pause:
		// The in-game menu owns the pause while it is open
		if !g.menuOpen && !g.over {
			g.paused = !g.paused
		}
	case msg.Resume:
		if !g.menuOpen {
			g.paused = false
		}
	case msg.Menu:
		if g.menuOpen || g.over {
			return msg.Msg{}, false
		}
		g.paused, g.menuOpen = true, true
		return msg.MenuCommand(msg.ShowGameMenu), true
	}
	return msg.Msg{}, false
}

// step runs one simulation tick of m.Elapsed milliseconds.
func (g *GameState) step(m msg.Msg) (msg.Msg, bool) {
	dt := float64(m.Elapsed) / 1000
	g.playedMS += m.Elapsed

	if !g.player.Update(dt, &g.settings, g.area) {
		return g.finish(msg.KindShowGameOver)
	}

	g.edibleETA -= dt
	if g.edibleETA <= 0 {
		g.spawnEdible()
		g.edibleETA = g.settings.EdibleSpawnInterval
	}

	level := g.difficulty.Level(g.player.Size, g.settings.StartSize, g.WinSize())
	g.spikeETA -= dt
	if g.spikeETA <= 0 {
		g.spawnSpike(level)
		g.spikeETA = g.difficulty.SpikeInterval(g.settings.SpikeSpawnInterval, level)
	}

	var eaten []int
	for i := range g.edibles {
		e := &g.edibles[i]
		e.Deteriorate(g.settings.EdibleDeterioration * dt)
		if e.Spoiled() {
			eaten = append(eaten, i)
		} else if e.Rect.Intersects(g.player.Rect) {
			g.player.Resize(e.Nutrition)
			eaten = append(eaten, i)
		}
	}

	var hits []int
	for i := range g.spikes {
		s := &g.spikes[i]
		s.Update(dt, g.area)
		if s.Rect.Intersects(g.player.Rect) {
			g.player.Resize(-g.settings.Penalty(g.player.Size))
			hits = append(hits, i)
		}
	}

	g.edibles = removeAt(g.edibles, eaten)
	g.spikes = removeAt(g.spikes, hits)

	g.peak = max(g.peak, g.player.Size)
	switch {
	case g.player.Size >= g.WinSize():
		return g.finish(msg.KindShowWinScreen)
	case g.player.Size <= g.settings.DeathSize:
		return g.finish(msg.KindShowGameOver)
	}
	return m, true
}

func (g *GameState) finish(outcome msg.Kind) (msg.Msg, bool) {
	g.over = true
	if outcome == msg.KindShowWinScreen {
		return msg.ShowWinScreen(g.Result()), true
	}
	return msg.ShowGameOver(g.Result()), true
}

// removeAt deletes the elements at the ascending indices idx, keeping the
// order of the survivors.
func removeAt[T any](s []T, idx []int) []T {
	for _, i := range slices.Backward(idx) {
		s = slices.Delete(s, i, i+1)
	}
	return s
}

func (g *GameState) spawnEdible() {
	lo, hi := g.settings.EdibleBounds[0], g.settings.EdibleBounds[1]
	size := lo + g.rng.Intn(hi-lo+1)
	x := g.rng.Intn(max(g.area.W-size, 1))
	y := g.rng.Intn(max(g.area.H-size, 1))
	g.edibles = append(g.edibles, NewEdible(x, y, float64(size)))
}

func (g *GameState) spawnSpike(level float64) {
	lo, hi := g.settings.SpikeSizeBounds[0], g.settings.SpikeSizeBounds[1]
	w := lo + g.rng.Intn(hi-lo+1)
	h := lo + g.rng.Intn(hi-lo+1)

	minSpeed, maxSpeed := g.settings.SpikeSpeedBounds[0], g.settings.SpikeSpeedBounds[1]
	speed := minSpeed + g.rng.Float64()*(maxSpeed-minSpeed)
	speed = g.difficulty.SpikeSpeed(speed, level)

	edge := Edge(g.rng.Intn(4))
	var x, y int
	switch edge {
	case EdgeTop:
		x = g.rng.Intn(max(g.area.W-w, 1))
	case EdgeRight:
		x, y = g.area.W-w, g.rng.Intn(max(g.area.H-h, 1))
	case EdgeBottom:
		x, y = g.rng.Intn(max(g.area.W-w, 1)), g.area.H-h
	case EdgeLeft:
		y = g.rng.Intn(max(g.area.H-h, 1))
	}

	dx, dy := edge.Inward()
	g.spikes = append(g.spikes, NewSpike(float64(x), float64(y), w, h, speed, dx, dy))
}

// Render implements engine.State.
func (g *GameState) Render(r engine.Renderer, d *engine.Data) {
	r.SetDrawColor(core.ColorEdible)
	for _, e := range g.edibles {
		r.FillRect(e.Rect)
	}

	r.SetDrawColor(core.ColorSpike)
	for _, s := range g.spikes {
		r.FillRect(s.Rect)
	}

	r.SetDrawColor(core.ColorPlayer)
	r.FillRect(g.player.Rect)

	// HUD; fonts were checked in New
	_ = d.Fonts.RenderText(r, engine.FontDefault, g.hud(), &core.ColorWhite, 10, 10)

	if g.paused && !g.menuOpen {
		w, h, _ := d.Fonts.Measure(engine.FontLarge, "PAUSED")
		_ = d.Fonts.RenderText(r, engine.FontLarge, "PAUSED", &core.ColorHighlight,
			(d.WindowSize.W-w)/2, (d.WindowSize.H-h)/2)
	}
}

// hud is the status line: the size against the goal, and the spike pressure
// when it ramps up with growth.
func (g *GameState) hud() string {
	line := fmt.Sprintf("Size %.1f / %.0f", g.player.Size, g.WinSize())
	if g.difficulty.IsEnabled() {
		level := g.difficulty.Level(g.player.Size, g.settings.StartSize, g.WinSize())
		line += fmt.Sprintf("  Danger %.0f%%", level*100)
	}
	return line
}

// IsFullscreen implements engine.State.
func (g *GameState) IsFullscreen() bool { return true }
