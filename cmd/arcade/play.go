package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/blocks"
	"github.com/vovakirdan/grid-arcade/internal/games/lightcycle"
	"github.com/vovakirdan/grid-arcade/internal/platform/tui"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Laser Bikes (lightcycle):
  Arrows     - Player 1 steering
  W/A/S/D    - Player 2 steering
  / and E    - Brake (Player 1 / Player 2), hold to stop
  Enter      - Start / next round
  Esc/B      - Back to the game menu

Blocks:
  Left/Right - Shift piece
  Up/X/Z     - Rotate
  Down       - Soft drop
  Space      - Hard drop

Both games:
  P          - Pause
  R          - Restart after a round ends
  Ctrl+S     - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play lightcycle
  arcade play blocks --difficulty easy
  arcade play lightcycle --difficulty fixed
  arcade play blocks --config ./my-blocks.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// configureGame passes the config path and difficulty to a game before
// it is created.
func configureGame(gameID, configPath, preset string) error {
	if _, ok := config.ParsePreset(preset); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", preset)
	}

	switch gameID {
	case lightcycle.GameID:
		lightcycle.SetConfigPath(configPath)
		lightcycle.SetDifficultyPreset(preset)
	case blocks.GameID:
		blocks.SetConfigPath(configPath)
		blocks.SetDifficultyPreset(preset)
	}
	return nil
}

// terminalConfig builds a runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if err := configureGame(gameID, flagConfig, flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, terminalConfig(), tui.WithLogger(logger))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
