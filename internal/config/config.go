// Package config provides YAML-based configuration loading for Hungry Pixel:
// window and pacing, fonts, gameplay tuning, default key bindings and the
// terminal platform options.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hungry-pixel/internal/core"
	"github.com/vovakirdan/hungry-pixel/internal/engine"
	"github.com/vovakirdan/hungry-pixel/internal/msg"
)

// Config is the complete application configuration.
type Config struct {
	Window   WindowConfig      `yaml:"window"`
	TickRate int               `yaml:"tick_rate"` // Target frames per second
	Seed     int64             `yaml:"seed"`      // 0 = time-based
	Fonts    []engine.FontSpec `yaml:"fonts"`
	Game     GameConfig        `yaml:"game"`
	Bindings BindingsConfig    `yaml:"bindings"`
	Screens  ScreensConfig     `yaml:"screens"`
	Terminal TerminalConfig    `yaml:"terminal"`
}

// WindowConfig defines the logical resolution every screen lays out against.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GameConfig contains all gameplay tuning.
type GameConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Edibles    EdibleConfig     `yaml:"edibles"`
	Spikes     SpikeConfig      `yaml:"spikes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines player physics.
type PlayerConfig struct {
	StartSize     float64 `yaml:"start_size"`
	DeathSize     float64 `yaml:"death_size"`    // Game over at or below this size
	MaxVelocity   float64 `yaml:"max_velocity"`  // Pixels per second, per axis
	Acceleration  float64 `yaml:"acceleration"`  // Pixels per second squared
	Deterioration float64 `yaml:"deterioration"` // Size lost per second
}

// EdibleConfig defines food spawning and decay.
type EdibleConfig struct {
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
	Deterioration float64 `yaml:"deterioration"`  // Nutrition lost per second
	MinSize       int     `yaml:"min_size"`
	MaxSize       int     `yaml:"max_size"`
}

// SpikeConfig defines hazard spawning, movement and penalties.
type SpikeConfig struct {
	SpawnInterval    float64 `yaml:"spawn_interval"` // Seconds between spawns
	MinSize          int     `yaml:"min_size"`
	MaxSize          int     `yaml:"max_size"`
	MinSpeed         float64 `yaml:"min_speed"` // Pixels per second
	MaxSpeed         float64 `yaml:"max_speed"`
	PenaltyThreshold float64 `yaml:"penalty_threshold"` // Above this size the flat penalty applies
	FlatPenalty      float64 `yaml:"flat_penalty"`
	PenaltyRatio     float64 `yaml:"penalty_ratio"` // Fraction of size lost at or below the threshold
}

// BindingsConfig holds the default key name for each movement direction.
type BindingsConfig struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// ScreensConfig defines how long static screens stay unskippable.
type ScreensConfig struct {
	IntroMS    int `yaml:"intro_ms"`
	GameOverMS int `yaml:"game_over_ms"`
	WinMS      int `yaml:"win_ms"`
	CreditsMS  int `yaml:"credits_ms"`
}

// TerminalConfig contains options of the terminal platform.
type TerminalConfig struct {
	// KeyReleaseMS is how long a key counts as held after its last press or
	// repeat. Terminals report no key releases, so they are synthesized.
	KeyReleaseMS int  `yaml:"key_release_ms"`
	AltScreen    bool `yaml:"alt_screen"`
}

// Runtime returns the engine runtime settings.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Window:   core.Size{W: c.Window.Width, H: c.Window.Height},
		Title:    c.Window.Title,
		TickRate: c.TickRate,
		Seed:     c.Seed,
	}
}

// KeyBindings returns the default bindings as a key to movement table.
func (c Config) KeyBindings() map[msg.Key]msg.Movement {
	return map[msg.Key]msg.Movement{
		msg.Key(c.Bindings.Up):    msg.MoveUp,
		msg.Key(c.Bindings.Down):  msg.MoveDown,
		msg.Key(c.Bindings.Left):  msg.MoveLeft,
		msg.Key(c.Bindings.Right): msg.MoveRight,
	}
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.TickRate <= 0 || c.TickRate > 1000 {
		errs = append(errs, fmt.Errorf("tick_rate %d out of range 1..1000", c.TickRate))
	}
	if len(c.Fonts) == 0 {
		errs = append(errs, errors.New("at least one font is required"))
	}
	for _, f := range c.Fonts {
		if f.Key == "" || f.Size <= 0 {
			errs = append(errs, fmt.Errorf("font %q: size %d must be positive", f.Key, f.Size))
		}
	}

	p := c.Game.Player
	if p.StartSize <= p.DeathSize {
		errs = append(errs, fmt.Errorf("player start_size %.1f must exceed death_size %.1f", p.StartSize, p.DeathSize))
	}
	if p.MaxVelocity <= 0 || p.Acceleration < 0 || p.Deterioration < 0 {
		errs = append(errs, errors.New("player max_velocity must be positive and acceleration, deterioration non-negative"))
	}

	e := c.Game.Edibles
	if e.SpawnInterval <= 0 {
		errs = append(errs, errors.New("edibles spawn_interval must be positive"))
	}
	if e.MinSize <= 0 || e.MinSize > e.MaxSize {
		errs = append(errs, fmt.Errorf("edibles size bounds %d..%d are invalid", e.MinSize, e.MaxSize))
	}

	s := c.Game.Spikes
	if s.SpawnInterval <= 0 {
		errs = append(errs, errors.New("spikes spawn_interval must be positive"))
	}
	if s.MinSize <= 0 || s.MinSize > s.MaxSize {
		errs = append(errs, fmt.Errorf("spikes size bounds %d..%d are invalid", s.MinSize, s.MaxSize))
	}
	if s.MinSpeed < 0 || s.MinSpeed > s.MaxSpeed {
		errs = append(errs, fmt.Errorf("spikes speed bounds %.1f..%.1f are invalid", s.MinSpeed, s.MaxSpeed))
	}
	if s.PenaltyRatio < 0 || s.PenaltyRatio > 1 {
		errs = append(errs, fmt.Errorf("spikes penalty_ratio %.2f out of range 0..1", s.PenaltyRatio))
	}
	if s.FlatPenalty < 0 || s.FlatPenalty > s.PenaltyThreshold {
		errs = append(errs, fmt.Errorf("spikes flat_penalty %.1f must be within 0..penalty_threshold", s.FlatPenalty))
	}

	if c.Game.Difficulty.Enabled && c.Game.Difficulty.MinSpikeInterval <= 0 {
		errs = append(errs, errors.New("difficulty min_spike_interval must be positive"))
	}

	seen := make(map[string]string, 4)
	for name, key := range map[string]string{
		"up": c.Bindings.Up, "down": c.Bindings.Down, "left": c.Bindings.Left, "right": c.Bindings.Right,
	} {
		if key == "" {
			errs = append(errs, fmt.Errorf("binding for %s is empty", name))
			continue
		}
		if other, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("key %q is bound to both %s and %s", key, other, name))
		}
		seen[key] = name
	}

	if c.Terminal.KeyReleaseMS <= 0 {
		errs = append(errs, errors.New("terminal key_release_ms must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
