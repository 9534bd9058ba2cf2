package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rubiks/internal/registry"
	"github.com/vovakirdan/tui-rubiks/internal/storage"
)

var (
	flagClearScores bool
	flagAllScores   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best solves for a mode",
	Long: `Display the 10 best solves for the specified mode (default: rubiks).
Solves are ranked by move count, then by time.

Examples:
  rubiks scores
  rubiks scores rubiks_free
  rubiks scores --all
  rubiks scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all stored solves for the mode")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "Show a stats line for every mode with solves")
}

func runScores(cmd *cobra.Command, args []string) {
	if flagAllScores {
		runAllScores()
		return
	}

	gameID := "rubiks"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'rubiks list' to see available modes.")
		os.Exit(1)
	}
	title := game.Title()
	if !registry.IsRanked(game) && !flagClearScores {
		fmt.Printf("%s is not ranked; its solves are not recorded.\n", title)
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}

	if flagClearScores {
		err := store.ClearSolves(gameID)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing solves: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared solves for %s.\n", title)
		return
	}

	solves, err := store.BestSolves(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Best Solves - %s\n", title)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'rubiks play %s' to set the first record!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-8s  %s\n", "Rank", "Moves", "Time", "Scramble", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-8s  %s\n", "----", "-----", "----", "--------", "----")

	for i, s := range solves {
		dateStr := s.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-8s  %-8d  %s\n", i+1, s.Moves, s.Elapsed.Round(100*time.Millisecond), s.ShuffleMoves, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.Solves > 0 {
		fmt.Println()
		fmt.Printf("Solves: %d  Best: %d moves  Fastest: %s  Average: %.1f moves\n",
			stats.Solves, stats.BestMoves, stats.BestTime.Round(100*time.Millisecond), stats.AvgMoves)
	}
}

func runAllScores() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}

	stats, err := store.GetAllGamesStats()
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	printAllStats(os.Stdout, stats)
}

// printAllStats writes one line per mode, sorted by mode ID.
// Modes that are no longer registered are shown by ID.
func printAllStats(w io.Writer, stats map[string]*storage.GameStats) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "No solves recorded yet.")
		return
	}

	fmt.Fprintf(w, "  %-26s  %-6s  %-5s  %-8s  %-6s  %s\n", "Mode", "Solves", "Best", "Fastest", "Avg", "Last played")
	fmt.Fprintf(w, "  %-26s  %-6s  %-5s  %-8s  %-6s  %s\n", "----", "------", "----", "-------", "---", "-----------")
	for _, id := range slices.Sorted(maps.Keys(stats)) {
		st := stats[id]
		title := id
		if g, err := registry.Create(id); err == nil {
			title = g.Title()
		}
		fmt.Fprintf(w, "  %-26s  %-6d  %-5d  %-8s  %-6.1f  %s\n",
			title, st.Solves, st.BestMoves, st.BestTime.Round(100*time.Millisecond), st.AvgMoves,
			st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}
