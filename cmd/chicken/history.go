package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chicken-arcade/internal/storage"
)

var (
	flagHistoryGame  string
	flagHistoryLimit int
	flagHistoryRun   string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs",
	Long: `Display the most recent finished runs, newest first.

Examples:
  chicken history
  chicken history --game hop --limit 5
  chicken history --run 3f2c9a1e-...`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryGame, "game", "", "Only show runs of this game")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of runs to show")
	historyCmd.Flags().StringVar(&flagHistoryRun, "run", "", "Show a single run by its full ID")
}

func runHistory(cmd *cobra.Command, args []string) {
	if flagHistoryGame != "" {
		requireGame(flagHistoryGame)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryRun != "" {
		showRun(store, flagHistoryRun)
		return
	}

	runs, err := store.RecentRuns(flagHistoryGame, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-36s  %-8s  %-7s  %-6s  %-8s  %-16s  %s\n", "Run", "Game", "Outcome", "Score", "Leaps", "Date", "Time")
	fmt.Printf("  %-36s  %-8s  %-7s  %-6s  %-8s  %-16s  %s\n", "---", "----", "-------", "-----", "-----", "----", "----")

	for _, r := range runs {
		fmt.Printf("  %-36s  %-8s  %-7s  %-6d  %-8d  %-16s  %s\n",
			r.RunID,
			r.GameID,
			r.Outcome,
			r.Score,
			r.Leaps,
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Duration.Round(100*time.Millisecond),
		)
	}
}

func showRun(store *storage.Store, runID string) {
	run, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run %q\n", runID)
		os.Exit(1)
	}

	fmt.Printf("Run:      %s\n", run.RunID)
	fmt.Printf("Game:     %s\n", run.GameID)
	fmt.Printf("Outcome:  %s\n", run.Outcome)
	fmt.Printf("Score:    %d\n", run.Score)
	fmt.Printf("Leaps:    %d\n", run.Leaps)
	fmt.Printf("Time:     %s\n", run.Duration.Round(100*time.Millisecond))
	fmt.Printf("Date:     %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
}
