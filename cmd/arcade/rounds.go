package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/lightcycle"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

var flagRoundsLimit int

var roundsCmd = &cobra.Command{
	Use:   "rounds [round-id]",
	Short: "Show recent Laser Bikes rounds",
	Long: `List the most recent Laser Bikes rounds with the winner, the cells
each rider claimed, where the crash happened and how long it lasted.

Pass a round ID to show a single round.

Examples:
  arcade rounds
  arcade rounds --limit 50
  arcade rounds 5f0c6d1e-0a4b-4f8e-9d55-3c2b7f1e9a10`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRounds,
}

func init() {
	roundsCmd.Flags().IntVar(&flagRoundsLimit, "limit", 20, "Number of rounds to show")
}

func runRounds(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		showRound(store, args[0])
		return
	}

	rounds, err := store.RecentRounds(lightcycle.GameID, flagRoundsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		return
	}

	fmt.Println("Recent Rounds - Laser Bikes")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' with a friend!\n", lightcycle.GameID)
		return
	}

	fmt.Printf("  %-8s  %-6s  %-6s  %-9s  %-7s  %-16s  %s\n", "Winner", "P1", "P2", "Crash", "Time", "Date", "ID")
	fmt.Printf("  %-8s  %-6s  %-6s  %-9s  %-7s  %-16s  %s\n", "------", "--", "--", "-----", "----", "----", "--")
	for _, r := range rounds {
		fmt.Printf("  %-8s  %-6d  %-6d  %-9s  %-7s  %-16s  %s\n",
			winnerLabel(r.Winner),
			r.Claimed1,
			r.Claimed2,
			fmt.Sprintf("%d,%d", r.CollisionX, r.CollisionY),
			fmt.Sprintf("%.1fs", r.Duration),
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.ID,
		)
	}

	fmt.Println()
	if wins, err := store.WinCounts(lightcycle.GameID); err == nil {
		fmt.Printf("Wins: P1 %d   P2 %d   Draws %d\n", wins[core.Player1], wins[core.Player2], wins[core.NoPlayer])
	}
}

func showRound(store *storage.Store, id string) {
	r, err := store.RoundByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving round: %v\n", err)
		return
	}
	if r == nil {
		fmt.Fprintf(os.Stderr, "No round with ID %s\n", id)
		os.Exit(1)
	}

	fmt.Printf("Round %s\n\n", r.ID)
	fmt.Printf("  Winner    %s\n", winnerLabel(r.Winner))
	fmt.Printf("  Claimed   P1 %d, P2 %d\n", r.Claimed1, r.Claimed2)
	fmt.Printf("  Crash at  %d,%d\n", r.CollisionX, r.CollisionY)
	fmt.Printf("  Lasted    %.2fs\n", r.Duration)
	fmt.Printf("  Played    %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
}

func winnerLabel(p core.PlayerID) string {
	if p == core.NoPlayer {
		return "draw"
	}
	return p.String()
}
