// arcade is a terminal arcade with two grid games: Laser Bikes, a
// two-player light-cycle duel, and Blocks, a falling-block puzzle.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade rounds            - Show recent Laser Bikes rounds
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--log-file <path>    - Write logs to a file instead of stderr
//
// Settings may also come from the environment or a .env file in the
// working directory: ARCADE_DB, ARCADE_LOG_LEVEL and ARCADE_LOG_FILE.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/games/blocks"
	"github.com/vovakirdan/grid-arcade/internal/games/lightcycle"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	logger  = log.New(os.Stderr)
	logSink io.Closer
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Grid Arcade - Laser Bikes and Blocks in your terminal",
	Long: `Grid Arcade is a terminal arcade with two grid games.

  lightcycle  Laser Bikes: two riders leave walls behind them;
              the last one riding wins the round.
  blocks      Blocks: steer falling pieces and clear full rows.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  rounds   - View recent Laser Bikes rounds

Examples:
  arcade list
  arcade play lightcycle
  arcade play blocks --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores blocks`,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logSink != nil {
			logSink.Close()
		}
	},
}

func init() {
	// Load .env before the flag defaults read the environment.
	// A missing .env is normal.
	_ = godotenv.Load()

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("ARCADE_DB", "~/.arcade/scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envOr("ARCADE_LOG_LEVEL", "warn"), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", envOr("ARCADE_LOG_FILE", ""), "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(roundsCmd)
}

// setupLogging builds the shared logger from the log flags and hands it to
// the games.
func setupLogging(*cobra.Command, []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		logSink = f
	}

	logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})

	lightcycle.SetLogger(logger.WithPrefix(lightcycle.GameID))
	blocks.SetLogger(logger.WithPrefix(blocks.GameID))
	return nil
}

// envOr returns the environment variable or a fallback when it is unset.
func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
