package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hungry-pixel/internal/platform/tui"
	"github.com/vovakirdan/hungry-pixel/internal/storage"
)

var (
	flagLimit int
	flagTUI   bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the session history",
	Long: `Display the best recorded sessions, ranked by peak size.

Examples:
  hungry-pixel scores
  hungry-pixel scores --limit 25
  hungry-pixel scores --tui
  hungry-pixel scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded session")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening session database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Session history cleared.")
		return nil

	case flagTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	sessions, err := store.TopSessions(flagLimit)
	if err != nil {
		return err
	}
	best, err := store.BestPeak()
	if err != nil {
		return err
	}
	printSessions(cmd.OutOrStdout(), sessions, best)
	return nil
}

func printSessions(w io.Writer, sessions []storage.Session, best float64) {
	fmt.Fprintln(w, "Best Sessions - Hungry Pixel")
	fmt.Fprintln(w)

	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'hungry-pixel play' to set the first record!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %-8s  %-8s  %s\n", "Rank", "Result", "Peak", "Final", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %-8s  %-8s  %s\n", "----", "------", "----", "-----", "----", "----")

	for i, s := range sessions {
		result := "lost"
		if s.Outcome == storage.OutcomeWin {
			result = "WON"
		}
		fmt.Fprintf(w, "  %-4d  %-6s  %-8.1f  %-8.1f  %-8s  %s\n",
			i+1, result, s.PeakSize, s.FinalSize,
			s.Played().Truncate(100*time.Millisecond), s.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best peak: %.1f\n", best)
}
