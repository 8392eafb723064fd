package main

import (
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hungry-pixel/internal/engine"
	"github.com/vovakirdan/hungry-pixel/internal/platform/tui"
	"github.com/vovakirdan/hungry-pixel/internal/screens"
	"github.com/vovakirdan/hungry-pixel/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start the game at the intro screen.

Controls:
  Arrows     - Move (rebind in Options)
  Enter      - Select
  Esc        - Game menu / back
  P          - Pause
  Ctrl+C     - Quit

Examples:
  hungry-pixel play
  hungry-pixel play --seed 42 --fps 30
  hungry-pixel play --config ./easy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Info("config loaded", "source", source, "tick_rate", cfg.TickRate, "seed", cfg.Seed)

	// Get terminal size before the program starts
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	// Session history is best-effort
	var recorder engine.Recorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session database", "error", err)
	} else {
		defer store.Close()
		recorder = store
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	err = tui.Run(ctx, tui.Options{
		Config:   cfg,
		Screens:  screens.NewFactory(cfg, rng),
		Recorder: recorder,
		Logger:   logger,
		Cols:     width,
		Rows:     height,
	})
	if err != nil {
		logger.Error("game stopped", "error", err)
	}
	return err
}
