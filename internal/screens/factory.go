package screens

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/hungry-pixel/internal/config"
	"github.com/vovakirdan/hungry-pixel/internal/engine"
	"github.com/vovakirdan/hungry-pixel/internal/game"
	"github.com/vovakirdan/hungry-pixel/internal/msg"
)

// Title is the game name shown on the intro and main menu.
const Title = "HUNGRY PIXEL"

// Factory builds the concrete screens of the game.
type Factory struct {
	settings game.Settings
	timing   config.ScreensConfig
	rng      *rand.Rand // shared by every session
}

var _ engine.Screens = (*Factory)(nil)

// NewFactory creates a factory from the configuration. Sessions draw their
// randomness from rng.
func NewFactory(cfg config.Config, rng *rand.Rand) *Factory {
	return &Factory{
		settings: game.NewSettings(cfg.Game),
		timing:   cfg.Screens,
		rng:      rng,
	}
}

// state converts a typed constructor result, keeping a nil State on error.
func state[S engine.State](s S, err error) (engine.State, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Intro shows the title until a key is pressed, then opens the main menu.
func (f *Factory) Intro(d *engine.Data) (engine.State, error) {
	return state(NewStatic(d, []Line{
		Heading(Title),
		Text(""),
		Text("Eat to grow. Dodge the spikes."),
		Text("Reach half the screen height to win."),
		Text(""),
		Text("Press any key"),
	}, f.timing.IntroMS, msg.MenuCommand(msg.ToMainMenu)))
}

// MainMenu is the top-level menu.
func (f *Factory) MainMenu(d *engine.Data) (engine.State, error) {
	return state(NewMenu(d, MenuConfig{
		Items: []Item{
			{Label: "New Game", Msg: msg.StartGame()},
			{Label: "Options", Msg: msg.ShowOptions()},
			{Label: "Credits", Msg: msg.ShowCredits()},
			{Label: "Exit", Msg: msg.Exit()},
		},
		Title:      Title,
		Position:   Position{Centered: true},
		Fullscreen: true,
	}))
}

// PauseMenu is drawn over a paused game.
func (f *Factory) PauseMenu(d *engine.Data) (engine.State, error) {
	resume := msg.MenuCommand(msg.ResumeGame)
	return state(NewMenu(d, MenuConfig{
		Items: []Item{
			{Label: "Resume", Msg: resume},
			{Label: "Main Menu", Msg: msg.MenuCommand(msg.ToMainMenu)},
			{Label: "Exit", Msg: msg.Exit()},
		},
		Title:    "Paused",
		OnEscape: &resume,
		Position: Position{Centered: true},
		Backdrop: true,
	}))
}

// Game starts a new session.
func (f *Factory) Game(d *engine.Data) (engine.State, error) {
	return state(game.New(d, f.settings, f.rng))
}

// GameOver reports a lost session.
func (f *Factory) GameOver(d *engine.Data, r msg.Result) (engine.State, error) {
	return state(NewStatic(d, resultLines("GAME OVER", r), f.timing.GameOverMS, msg.MenuCommand(msg.ToMainMenu)))
}

// Win reports a won session.
func (f *Factory) Win(d *engine.Data, r msg.Result) (engine.State, error) {
	return state(NewStatic(d, resultLines("YOU WIN!", r), f.timing.WinMS, msg.MenuCommand(msg.ToMainMenu)))
}

// Credits replaces the menu until a key is pressed.
func (f *Factory) Credits(d *engine.Data) (engine.State, error) {
	return state(NewStatic(d, []Line{
		Heading("Credits"),
		Text(""),
		Text("Hungry Pixel"),
		Text("Built with Go, Bubble Tea and Lip Gloss"),
		Text(""),
		Text("Press any key"),
	}, f.timing.CreditsMS, msg.MenuCommand(msg.ToMainMenu)))
}

// Options opens the key remapping screen.
func (f *Factory) Options(d *engine.Data) (engine.State, error) {
	return state(NewOptions(d))
}

func resultLines(heading string, r msg.Result) []Line {
	played := (time.Duration(r.PlayedMS) * time.Millisecond).Round(100 * time.Millisecond)
	return []Line{
		Heading(heading),
		Text(""),
		Text(fmt.Sprintf("Final size  %.1f", r.FinalSize)),
		Text(fmt.Sprintf("Peak size   %.1f", r.PeakSize)),
		Text(fmt.Sprintf("Time        %s", played)),
		Text(""),
		Text("Press any key"),
	}
}
