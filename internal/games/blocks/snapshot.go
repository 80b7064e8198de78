package blocks

import (
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/sim/grid"
	"github.com/vovakirdan/grid-arcade/internal/sim/round"
)

// Snapshot is a read-only copy of a Blocks game for rendering and tests.
type Snapshot struct {
	Width, Height int
	Cells         *grid.Grid[Cell] // Private copy of the locked cells
	Active        []grid.Point
	ActiveColor   core.Color
	Variant       Variant
	Rotation      int
	Ghost         []grid.Point
	Next          Variant
	NextCells     []grid.Point // Offsets of the next piece in its first state
	Score         int
	Lines         int
	Level         int
	Over          bool
	OverAt        grid.Point
	State         round.State
	Menu          round.MenuOption
}

// Cell returns the locked cell at (x, y) of the snapshot.
func (s Snapshot) Cell(x, y int) Cell {
	c, _ := s.Cells.Get(grid.P(x, y))
	return c
}

// Snapshot captures the well without the round controller state.
func (w *Well) Snapshot() Snapshot {
	s := Snapshot{
		Width:       w.opts.Width,
		Height:      w.opts.Height,
		Cells:       w.cells.Clone(),
		Active:      w.active.Cells(),
		ActiveColor: w.active.Color(),
		Variant:     w.active.Variant(),
		Rotation:    w.active.Rotation(),
		Ghost:       w.Ghost().Cells(),
		Next:        w.next,
		NextCells:   NewPiece(w.next, grid.P(0, 0)).Cells(),
		Score:       w.score,
		Lines:       w.lines,
		Level:       w.level,
		Over:        w.over,
		OverAt:      w.overAt,
	}
	return s
}

// Snapshot returns the full drawable state of the game.
func (g *Game) Snapshot() Snapshot {
	s := g.well.Snapshot()
	s.State = g.ctrl.State()
	s.Menu = g.ctrl.Menu()
	return s
}
