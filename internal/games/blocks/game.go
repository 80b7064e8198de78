package blocks

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/sim/round"
)

// GameID is the registry identifier of Blocks.
const GameID = "blocks"

// Each well cell is drawn two columns wide to look square in a terminal.
const cellWidth = 2

var (
	configPath       string
	difficultyPreset string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLogger sets the package logger.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game adapts a Well and its round controller to the platform.
type Game struct {
	cfg        config.BlocksConfig
	difficulty *config.DifficultyManager
	well       *Well
	ctrl       *round.Controller

	originX, originY int
}

// New creates a Blocks game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Blocks" }

// Description summarises the game for listings.
func (g *Game) Description() string {
	return "Steer falling pieces and clear full rows"
}

// Players returns the number of local players.
func (g *Game) Players() int { return 1 }

// Reset loads configuration, builds an empty well and returns to the menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	bc, err := config.LoadBlocks(configPath)
	if err != nil {
		logger.Warn("using default blocks config", "err", err)
	}
	if preset, ok := config.ParsePreset(difficultyPreset); ok {
		config.ApplyBlocksPreset(&bc, preset)
	}
	g.cfg = bc
	g.difficulty = config.NewDifficultyManager(bc.Difficulty)

	g.well = NewWell(Options{
		Width:            bc.Well.Width,
		Height:           bc.Well.Height,
		FallInterval:     bc.Timing.FallInterval,
		SoftDropInterval: bc.Timing.SoftDropInterval,
		LinePoints:       bc.Scoring.LinePoints,
		LinesPerLevel:    bc.Scoring.LinesPerLevel,
		Seed:             cfg.Seed,
	})
	g.ctrl = round.NewController(g.well, round.WithLogger(logger))
	g.updateSpeed()

	opts := g.well.Options()
	g.originX = max(0, (cfg.ScreenW-opts.Width*cellWidth)/2-8)
	g.originY = max(1, (cfg.ScreenH-opts.Height-2)/2)

	logger.Debug("blocks reset", "well", fmt.Sprintf("%dx%d", opts.Width, opts.Height), "seed", cfg.Seed)
}

// Well returns the simulation context.
func (g *Game) Well() *Well { return g.well }

// Controller returns the round controller.
func (g *Game) Controller() *round.Controller { return g.ctrl }

// Step advances the game by dt seconds.
func (g *Game) Step(dt float64, in core.MultiInputFrame) core.StepResult {
	if g.ctrl == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Any(core.ActionRestart) {
		in = in.Clone()
		in.Set(core.Player1, core.ActionConfirm)
	}
	if in.Any(core.ActionBack) {
		if g.ctrl.State() == round.StateMenu {
			return core.StepResult{State: g.State(), Quit: true}
		}
		g.ctrl.Reset()
		g.updateSpeed()
		return core.StepResult{State: g.State()}
	}

	wasOver := g.ctrl.State() == round.StateCollision
	for _, ev := range g.ctrl.Tick(dt, in) {
		switch ev.Kind {
		case round.EventLineClear:
			g.updateSpeed()
			logger.Debug("lines cleared", "rows", ev.Lines, "total", g.well.Lines(), "level", g.well.Level())
		case round.EventGameOver:
			logger.Info("game over", "score", g.well.Score(), "lines", g.well.Lines())
		}
	}
	if wasOver && g.ctrl.State() == round.StatePlaying {
		g.updateSpeed()
	}

	return core.StepResult{State: g.State(), Quit: g.ctrl.Quit()}
}

// updateSpeed derives the fall interval from the lines cleared so far.
func (g *Game) updateSpeed() {
	t := g.cfg.Timing
	g.well.SetFallInterval(g.difficulty.Interval(t.FallInterval, t.MinFallInterval, g.well.Lines(), 0))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{InMenu: true}
	}
	s := g.ctrl.State()
	return core.GameState{
		Score:    g.well.Score(),
		GameOver: s == round.StateCollision,
		Paused:   s == round.StatePaused,
		InMenu:   s == round.StateMenu,
	}
}

// Render draws the well, the pieces, the side panel and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}
	snap := g.Snapshot()

	frame := core.NewRect(g.originX, g.originY, snap.Width*cellWidth+2, snap.Height+2)
	dst.DrawBox(frame, core.ColorGray)

	for y := range snap.Height {
		for x := range snap.Width {
			if c := snap.Cell(x, y); c.Filled {
				g.drawCell(dst, x, y, "██", VariantColor(c.Variant))
			}
		}
	}
	if snap.State != round.StateMenu {
		for _, p := range snap.Ghost {
			g.drawCell(dst, p.X, p.Y, "░░", core.ColorGray)
		}
		for _, p := range snap.Active {
			g.drawCell(dst, p.X, p.Y, "██", snap.ActiveColor)
		}
	}

	g.renderPanel(dst, snap, frame.Right()+2)

	switch snap.State {
	case round.StateMenu:
		lines := []string{"BLOCKS", ""}
		for o := round.MenuStart; o <= round.MenuQuit; o++ {
			marker := "  "
			if o == snap.Menu {
				marker = "> "
			}
			lines = append(lines, marker+o.String())
		}
		lines = append(lines, "", "Up/Down + Enter")
		dst.DrawPanel(lines, core.ColorCyan)
	case round.StateCollision:
		dst.DrawPanel([]string{"Game Over", fmt.Sprintf("Score: %d", snap.Score), "", "Enter: again  Esc: menu"}, core.ColorBrightRed)
	case round.StatePaused:
		dst.DrawPanel([]string{"Paused", "P to continue"}, core.ColorWhite)
	}
}

// drawCell draws one well cell; cells above the well are skipped.
func (g *Game) drawCell(dst *core.Screen, x, y int, glyph string, c core.Color) {
	if y < 0 {
		return
	}
	dst.DrawTextColored(g.originX+1+x*cellWidth, g.originY+1+y, glyph, c)
}

func (g *Game) renderPanel(dst *core.Screen, snap Snapshot, x int) {
	y := g.originY
	dst.DrawTextColored(x, y, "BLOCKS", core.ColorBrightWhite)
	dst.DrawText(x, y+2, fmt.Sprintf("Score  %d", snap.Score))
	dst.DrawText(x, y+3, fmt.Sprintf("Lines  %d", snap.Lines))
	dst.DrawText(x, y+4, fmt.Sprintf("Level  %d", snap.Level))

	dst.DrawText(x, y+6, "Next")
	for _, p := range snap.NextCells {
		dst.DrawTextColored(x+p.X*cellWidth, y+7+p.Y, "██", VariantColor(snap.Next))
	}

	dst.DrawText(x, y+11, "←/→ move  ↑/X rotate")
	dst.DrawText(x, y+12, "↓ soft  Space drop")
	dst.DrawText(x, y+13, "P pause  Q quit")
}
