// Package lightcycle implements Laser Bikes: two light cycles leave solid
// walls behind them and the first to run into a wall or off the grid loses.
package lightcycle

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/sim/grid"
	"github.com/vovakirdan/grid-arcade/internal/sim/round"
)

// Options sizes the arena and sets bike speed.
type Options struct {
	Width, Height int
	MoveInterval  float64 // Seconds per cell
	StopThreshold float64 // Intervals at or above this stop the bike
	BrakeRate     float64 // Throttle change per second while braking or releasing
}

// DefaultOptions returns a 640x480 play-field in 8 pixel blocks.
func DefaultOptions() Options {
	return Options{
		Width:         80,
		Height:        60,
		MoveInterval:  0.05,
		StopThreshold: 0.2,
		BrakeRate:     4,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.MoveInterval <= 0 {
		o.MoveInterval = d.MoveInterval
	}
	if o.StopThreshold <= o.MoveInterval {
		o.StopThreshold = max(d.StopThreshold, o.MoveInterval*4)
	}
	if o.BrakeRate <= 0 {
		o.BrakeRate = d.BrakeRate
	}
	return o
}

// Arena is the simulation context of one Laser Bikes round. It owns the wall
// grid and the bikes, processed in registration order.
type Arena struct {
	opts    Options
	walls   *grid.Grid[WallSegment]
	bikes   []*Bike
	claimed *intmap.Map[core.PlayerID, int]
	logger  *log.Logger
	dt      float64 // Length of the last advance, for braking
}

var _ round.Scene = (*Arena)(nil)

// NewArena creates an arena with both bikes at their spawn points.
func NewArena(opts Options) *Arena {
	opts = opts.normalized()
	a := &Arena{
		opts:    opts,
		walls:   grid.New[WallSegment](opts.Width, opts.Height),
		claimed: intmap.New[core.PlayerID, int](2),
		logger:  log.New(io.Discard),
	}
	a.Reset()
	return a
}

// SetLogger sets the logger used for deaths and resets.
func (a *Arena) SetLogger(l *log.Logger) {
	if l != nil {
		a.logger = l
	}
}

// Spawns returns the starting cell and heading of each player. Both bikes
// start one step away from their first cell; player 1 enters from the left
// edge and player 2 from the right.
func (a *Arena) Spawns() map[core.PlayerID]struct{ Pos, Dir grid.Point } {
	row := min(10, a.opts.Height/4)
	return map[core.PlayerID]struct{ Pos, Dir grid.Point }{
		core.Player1: {Pos: grid.P(-1, row), Dir: Right},
		core.Player2: {Pos: grid.P(a.opts.Width, a.opts.Height-row), Dir: Left},
	}
}

// Reset clears every wall and respawns both bikes.
func (a *Arena) Reset() {
	a.walls.Reset()
	a.claimed.Clear()
	a.dt = 0

	spawns := a.Spawns()
	a.bikes = a.bikes[:0]
	for _, id := range []core.PlayerID{core.Player1, core.Player2} {
		s := spawns[id]
		a.bikes = append(a.bikes, NewBike(id, s.Pos, s.Dir, a.opts.MoveInterval, a.opts.StopThreshold))
	}
	a.logger.Debug("arena reset", "width", a.opts.Width, "height", a.opts.Height)
}

// Advance steps every live bike in registration order. All bikes are
// processed even after one of them dies, so simultaneous crashes all report.
func (a *Arena) Advance(dt float64) []round.Event {
	a.dt = dt
	var events []round.Event
	for _, b := range a.bikes {
		s, ok := b.Advance(dt, a.walls)
		if !ok {
			continue
		}
		if s.Wrote {
			if s.Prev.Filled {
				a.addClaim(s.Prev.Owner, -1)
			}
			a.addClaim(b.ID(), 1)
		}
		if s.Died {
			a.logger.Info("bike crashed", "player", b.ID(), "at", s.To, "wall", s.Prev.Filled)
			events = append(events, round.Event{
				Kind:  round.EventCollision,
				Actor: b.ID(),
				Pos:   s.To,
			})
		}
	}
	return events
}

// Apply routes held direction intents to each player's bike. A held brake
// raises the bike's throttle by BrakeRate per second of the last advance;
// once released the throttle falls back at the same rate.
func (a *Arena) Apply(in *core.InputSampler) {
	step := a.dt * a.opts.BrakeRate
	for _, b := range a.bikes {
		if !b.Alive() {
			continue
		}
		id := b.ID()
		switch {
		case in.Held(id, core.ActionBrake):
			b.Throttle(b.Throttled() + step)
		case b.Throttled() > 0:
			b.Throttle(b.Throttled() - step)
		}

		switch {
		case in.Held(id, core.ActionUp):
			b.RequestDirection(Up)
		case in.Held(id, core.ActionDown):
			b.RequestDirection(Down)
		case in.Held(id, core.ActionLeft):
			b.RequestDirection(Left)
		case in.Held(id, core.ActionRight):
			b.RequestDirection(Right)
		}
	}
}

func (a *Arena) addClaim(id core.PlayerID, delta int) {
	n, _ := a.claimed.Get(id)
	a.claimed.Put(id, n+delta)
}

// Claimed returns the number of wall cells currently owned by id.
func (a *Arena) Claimed(id core.PlayerID) int {
	n, _ := a.claimed.Get(id)
	return n
}

// ClaimedAll returns the claimed-cell count of every registered bike.
func (a *Arena) ClaimedAll() map[core.PlayerID]int {
	out := make(map[core.PlayerID]int, len(a.bikes))
	for _, b := range a.bikes {
		out[b.ID()] = a.Claimed(b.ID())
	}
	return out
}

// Bike returns the bike of a player.
func (a *Arena) Bike(id core.PlayerID) (*Bike, bool) {
	for _, b := range a.bikes {
		if b.ID() == id {
			return b, true
		}
	}
	return nil, false
}

// Bikes returns the bikes in registration order.
func (a *Arena) Bikes() []*Bike {
	return a.bikes
}

// Walls returns the wall grid. Callers must treat it as read-only.
func (a *Arena) Walls() *grid.Grid[WallSegment] {
	return a.walls
}

// Options returns the normalized arena options.
func (a *Arena) Options() Options {
	return a.opts
}

// Alive returns the number of live bikes.
func (a *Arena) Alive() int {
	n := 0
	for _, b := range a.bikes {
		if b.Alive() {
			n++
		}
	}
	return n
}

// Winner returns the sole surviving player, or NoPlayer for a draw or a
// round still in progress.
func (a *Arena) Winner() core.PlayerID {
	winner := core.NoPlayer
	for _, b := range a.bikes {
		if !b.Alive() {
			continue
		}
		if winner != core.NoPlayer {
			return core.NoPlayer
		}
		winner = b.ID()
	}
	return winner
}
