// hungry-pixel is a terminal arcade game: eat to grow, dodge the spikes and
// reach half the screen height to win.
//
// Usage:
//
//	hungry-pixel              - Play (same as "play")
//	hungry-pixel play         - Play a session
//	hungry-pixel scores       - Show the session history
//	hungry-pixel config       - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--fps <rate>     - Override the tick rate
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.hungry-pixel/sessions.db)
//	--log <path>     - Log file (default: ~/.hungry-pixel/hungry-pixel.log)
//	--debug          - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hungry-pixel/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hungry-pixel",
	Short: "Hungry Pixel - eat, grow and dodge in your terminal",
	Long: `Hungry Pixel is a terminal arcade game. Steer a growing square,
eat the food before it spoils and dodge the spikes. Reach half the
screen height to win; shrink to nothing and it is over.

Available commands:
  play     - Play a session (default)
  scores   - View the session history
  config   - Print the effective configuration

Examples:
  hungry-pixel
  hungry-pixel play --seed 42
  hungry-pixel scores --tui
  hungry-pixel config > ~/.hungry-pixel/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hungry-pixel/sessions.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Log file (default ~/.hungry-pixel/hungry-pixel.log)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the flag overrides.
func loadConfig() (config.Config, string, error) {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	return cfg, source, cfg.Validate()
}

// newLogger opens the log file. The terminal belongs to the game, so the
// log never goes to stdout.
func newLogger() (*log.Logger, io.Closer, error) {
	path := flagLogPath
	if path == "" {
		path = filepath.Join(config.UserDir(), "hungry-pixel.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "hungry-pixel",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}
