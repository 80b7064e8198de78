package lightcycle

import (
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/sim/grid"
	"github.com/vovakirdan/grid-arcade/internal/sim/round"
)

// BikeView is the drawable state of one bike.
type BikeView struct {
	ID      core.PlayerID
	Cell    grid.Point
	X, Y    float64 // Interpolated position
	Dir     grid.Point
	Alive   bool
	Claimed int
}

// Snapshot is a read-only copy of a round for rendering and tests.
type Snapshot struct {
	Width, Height  int
	Walls          *grid.Grid[WallSegment] // Private copy of the arena walls
	Filled         int                     // Wall cells claimed so far
	Bikes          []BikeView
	State          round.State
	Menu           round.MenuOption
	Collision      grid.Point
	HasCollision   bool
	SinceCollision float64
	Elapsed        float64
	Winner         core.PlayerID
}

// Wall returns the segment at (x, y) of the snapshot.
func (s Snapshot) Wall(x, y int) WallSegment {
	w, _ := s.Walls.Get(grid.P(x, y))
	return w
}

// Snapshot captures the arena without the round controller state.
func (a *Arena) Snapshot() Snapshot {
	s := Snapshot{
		Width:  a.walls.Width(),
		Height: a.walls.Height(),
		Walls:  a.walls.Clone(),
		Filled: a.walls.Count(func(w WallSegment) bool { return w.Filled }),
		Winner: a.Winner(),
	}
	for _, b := range a.bikes {
		x, y := b.Interpolated()
		s.Bikes = append(s.Bikes, BikeView{
			ID:      b.ID(),
			Cell:    b.Pos(),
			X:       x,
			Y:       y,
			Dir:     b.Dir(),
			Alive:   b.Alive(),
			Claimed: a.Claimed(b.ID()),
		})
	}
	return s
}

// Snapshot returns the full drawable state of the game.
func (g *Game) Snapshot() Snapshot {
	s := g.arena.Snapshot()
	s.State = g.ctrl.State()
	s.Menu = g.ctrl.Menu()
	s.Collision, s.HasCollision = g.ctrl.CollisionAt()
	s.SinceCollision = g.ctrl.SinceCollision()
	s.Elapsed = g.ctrl.Elapsed()
	return s
}
