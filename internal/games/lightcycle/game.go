package lightcycle

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/sim/round"
)

// GameID is the registry identifier of Laser Bikes.
const GameID = "lightcycle"

const hudHeight = 2

// Package-level settings applied on the next Reset.
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

// SetLogger sets the logger handed to new rounds.
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

// Game adapts an Arena and its round controller to the platform.
type Game struct {
	cfg        config.LightcycleConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	arena      *Arena
	ctrl       *round.Controller

	blockSize int
	offsetX   int
	offsetY   int

	score    int
	reported bool // Result of the current round already returned
}

// New creates a Laser Bikes game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Laser Bikes" }

// Description summarises the game for listings.
func (g *Game) Description() string {
	return "Two light cycles lay walls; the last one riding wins"
}

// Players returns the number of local players.
func (g *Game) Players() int { return 2 }

// Reset loads configuration, sizes the arena for the screen and returns to
// the in-game menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	lc, err := config.LoadLightcycle(configPath)
	if err != nil {
		logger.Warn("using default lightcycle config", "err", err)
	}
	if preset, ok := config.ParsePreset(difficultyPreset); ok {
		config.ApplyLightcyclePreset(&lc, preset)
	}
	g.cfg = lc
	g.difficulty = config.NewDifficultyManager(lc.Difficulty)

	g.blockSize = max(1, lc.Grid.BlockSize)
	w, h := lc.Grid.Width, lc.Grid.Height
	if w <= 0 {
		w = cfg.ScreenW / g.blockSize
	}
	if h <= 0 {
		h = (cfg.ScreenH - hudHeight) / g.blockSize
	}
	w, h = max(w, 8), max(h, 8)
	g.offsetX = max(0, (cfg.ScreenW-w*g.blockSize)/2)
	g.offsetY = hudHeight

	g.arena = NewArena(Options{
		Width:         w,
		Height:        h,
		MoveInterval:  lc.Bikes.MoveInterval,
		StopThreshold: lc.Bikes.StopThreshold,
		BrakeRate:     lc.Bikes.BrakeRate,
	})
	g.arena.SetLogger(logger)
	g.ctrl = round.NewController(g.arena, round.WithLogger(logger))
	g.score = 0
	g.reported = false

	logger.Debug("lightcycle reset", "grid", fmt.Sprintf("%dx%d", w, h), "interval", lc.Bikes.MoveInterval)
}

// Arena returns the simulation context.
func (g *Game) Arena() *Arena { return g.arena }

// Controller returns the round controller.
func (g *Game) Controller() *round.Controller { return g.ctrl }

// Step advances the round by dt seconds.
func (g *Game) Step(dt float64, in core.MultiInputFrame) core.StepResult {
	if g.ctrl == nil {
		g.Reset(core.DefaultConfig())
	}

	// R restarts like Enter; Esc leaves a round for the menu.
	if in.Any(core.ActionRestart) {
		in = in.Clone()
		in.Set(core.Player1, core.ActionConfirm)
	}
	if in.Any(core.ActionBack) {
		if g.ctrl.State() == round.StateMenu {
			return core.StepResult{State: g.State(), Quit: true}
		}
		g.ctrl.Reset()
		g.reported = false
		return core.StepResult{State: g.State()}
	}

	if g.ctrl.State() == round.StatePlaying {
		g.applySpeed()
	}

	g.ctrl.Tick(dt, in)

	result := core.StepResult{Quit: g.ctrl.Quit()}
	switch g.ctrl.State() {
	case round.StateCollision:
		if !g.reported {
			result.Round = g.finishRound()
			g.reported = true
		}
	case round.StatePlaying:
		g.reported = false
	}
	result.State = g.State()
	return result
}

// applySpeed sets every live bike's unthrottled interval from the difficulty
// curve. Braking keeps working on top of it.
func (g *Game) applySpeed() {
	base := g.arena.Options().MoveInterval
	interval := g.difficulty.Interval(base, base/4, 0, g.ctrl.Elapsed())
	for _, b := range g.arena.Bikes() {
		if b.Alive() {
			b.SetMoveInterval(interval)
		}
	}
}

func (g *Game) finishRound() *core.RoundSummary {
	at, _ := g.ctrl.CollisionAt()
	winner := g.arena.Winner()
	g.score = 0
	if winner != core.NoPlayer {
		g.score = g.arena.Claimed(winner)
	}
	logger.Info("round over", "winner", winner, "score", g.score, "at", at, "seconds", g.ctrl.Elapsed())
	return &core.RoundSummary{
		Winner:     winner,
		Claimed:    g.arena.ClaimedAll(),
		CollisionX: at.X,
		CollisionY: at.Y,
		Duration:   g.ctrl.Elapsed(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{InMenu: true}
	}
	s := g.ctrl.State()
	return core.GameState{
		Score:    g.score,
		GameOver: s == round.StateCollision,
		Paused:   s == round.StatePaused,
		InMenu:   s == round.StateMenu,
	}
}

// Render draws the arena, bikes and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}
	snap := g.Snapshot()

	g.renderHUD(dst, snap)
	g.renderWalls(dst, snap)
	g.renderBikes(dst, snap)
	if snap.HasCollision && snap.SinceCollision < g.cfg.Round.FlashSeconds {
		g.renderFlash(dst, snap)
	}

	switch snap.State {
	case round.StateMenu:
		lines := []string{"LASER BIKES", ""}
		for o := round.MenuStart; o <= round.MenuQuit; o++ {
			marker := "  "
			if o == snap.Menu {
				marker = "> "
			}
			lines = append(lines, marker+o.String())
		}
		lines = append(lines, "", "P1: arrows /  P2: WASD E", "Up/Down + Enter")
		dst.DrawPanel(lines, core.ColorCyan)
	case round.StateCollision:
		headline := "Draw!"
		if snap.Winner != core.NoPlayer {
			headline = fmt.Sprintf("%s wins with %d cells!", snap.Winner, g.score)
		}
		dst.DrawPanel([]string{headline, "", "Enter: rematch  Esc: menu"}, core.ColorBrightYellow)
	case round.StatePaused:
		dst.DrawPanel([]string{"Paused", "P to continue"}, core.ColorWhite)
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	x := 1
	dst.DrawTextColored(x, 0, "Laser Bikes", core.ColorBrightWhite)
	x += len("Laser Bikes") + 3
	for _, b := range snap.Bikes {
		text := fmt.Sprintf("%s %d", b.ID, b.Claimed)
		dst.DrawTextColored(x, 0, text, OwnerColor(b.ID))
		x += len(text) + 3
	}
	text := fmt.Sprintf("%.1fs", snap.Elapsed)
	dst.DrawText(x, 0, text)
	x += len(text) + 3
	if area := snap.Width * snap.Height; area > 0 {
		dst.DrawTextColored(x, 0, fmt.Sprintf("%d%% filled", snap.Filled*100/area), core.ColorGray)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// fill draws one arena cell, scaled to the block size.
func (g *Game) fill(dst *core.Screen, cx, cy int, r rune, c core.Color) {
	for dy := range g.blockSize {
		for dx := range g.blockSize {
			dst.SetColored(g.offsetX+cx*g.blockSize+dx, g.offsetY+cy*g.blockSize+dy, r, c)
		}
	}
}

func (g *Game) renderWalls(dst *core.Screen, snap Snapshot) {
	for y := range snap.Height {
		for x := range snap.Width {
			w := snap.Wall(x, y)
			if !w.Filled {
				continue
			}
			g.fill(dst, x, y, SegmentGlyph(w.Orientation), OwnerColor(w.Owner))
		}
	}
}

func (g *Game) renderBikes(dst *core.Screen, snap Snapshot) {
	for _, b := range snap.Bikes {
		x, y := int(math.Round(b.X)), int(math.Round(b.Y))
		if x < 0 || y < 0 || x >= snap.Width || y >= snap.Height {
			continue
		}
		if !b.Alive {
			g.fill(dst, x, y, 'X', core.ColorBrightRed)
			continue
		}
		g.fill(dst, x, y, HeadGlyph(b.Dir), core.ColorBrightWhite)
	}
}

// renderFlash blinks the crash cell a few times per second.
func (g *Game) renderFlash(dst *core.Screen, snap Snapshot) {
	if int(snap.SinceCollision*8)%2 == 1 {
		return
	}
	c := core.ColorBrightYellow
	if int(snap.SinceCollision*4)%2 == 1 {
		c = core.ColorBrightRed
	}
	g.fill(dst, snap.Collision.X, snap.Collision.Y, '*', c)
}
