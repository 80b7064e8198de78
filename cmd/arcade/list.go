package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game in the arcade with its player count and a short description.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println(gameTable(games))
	fmt.Println("Run 'arcade play <id>' to play a game.")
}

// gameTable renders the game list as a bordered table.
func gameTable(games []registry.GameInfo) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "PLAYERS", "DESCRIPTION")
	for _, g := range games {
		t.Row(g.ID, g.Title, strconv.Itoa(g.Players), g.Description)
	}
	return t.Render()
}
