package lightcycle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/sim/grid"
	"github.com/vovakirdan/grid-arcade/internal/sim/round"
)

// arenaWith replaces the spawned bikes with the given ones.
func arenaWith(opts Options, bikes ...*Bike) *Arena {
	a := NewArena(opts)
	a.bikes = bikes
	return a
}

func bike(id core.PlayerID, x, y int, dir grid.Point) *Bike {
	o := DefaultOptions()
	return NewBike(id, grid.P(x, y), dir, o.MoveInterval, o.StopThreshold)
}

func TestSpawnFirstStep(t *testing.T) {
	a := NewArena(DefaultOptions())
	p1, ok := a.Bike(core.Player1)
	require.True(t, ok)
	require.Equal(t, grid.P(-1, 10), p1.Pos())
	require.Equal(t, Right, p1.Dir())

	events := a.Advance(0.05)
	assert.Empty(t, events)

	assert.Equal(t, grid.P(0, 10), p1.Pos())
	cell, ok := a.Walls().Get(grid.P(0, 10))
	require.True(t, ok)
	assert.True(t, cell.Filled)
	assert.Equal(t, core.Player1, cell.Owner)
	assert.Equal(t, Horizontal, cell.Orientation)

	p2, _ := a.Bike(core.Player2)
	assert.Equal(t, grid.P(79, 50), p2.Pos(), "player 2 enters from the right edge")
	assert.Equal(t, 1, a.Claimed(core.Player1))
	assert.Equal(t, 1, a.Claimed(core.Player2))
}

func TestSpawnsScaleWithSmallArenas(t *testing.T) {
	a := NewArena(Options{Width: 40, Height: 20})
	spawns := a.Spawns()

	assert.Equal(t, grid.P(-1, 5), spawns[core.Player1].Pos)
	assert.Equal(t, grid.P(40, 15), spawns[core.Player2].Pos)
}

func TestContestedCellOverwrite(t *testing.T) {
	b1 := bike(core.Player1, 4, 5, Right)
	b2 := bike(core.Player2, 6, 5, Left)
	a := arenaWith(DefaultOptions(), b1, b2)

	events := a.Advance(0.05)

	require.Len(t, events, 1)
	assert.Equal(t, round.Event{Kind: round.EventCollision, Actor: core.Player2, Pos: grid.P(5, 5)}, events[0])

	assert.True(t, b1.Alive())
	assert.False(t, b2.Alive())

	cell, _ := a.Walls().Get(grid.P(5, 5))
	assert.True(t, cell.Filled)
	assert.Equal(t, core.Player2, cell.Owner, "the crashing bike overwrites the owner")
	assert.Equal(t, grid.P(5, 5), b2.Pos())

	assert.Equal(t, 0, a.Claimed(core.Player1))
	assert.Equal(t, 1, a.Claimed(core.Player2))
	assert.Equal(t, core.Player1, a.Winner())
}

func TestRightEdgeDeath(t *testing.T) {
	b := bike(core.Player1, 79, 10, Right)
	a := arenaWith(DefaultOptions(), b)

	events := a.Advance(0.05)

	require.Len(t, events, 1)
	assert.Equal(t, round.EventCollision, events[0].Kind)
	assert.Equal(t, grid.P(79, 10), events[0].Pos, "reported at the last valid cell")
	assert.False(t, b.Alive())
	assert.Equal(t, grid.P(79, 10), b.Pos())
	assert.Zero(t, a.Walls().Count(func(s WallSegment) bool { return s.Filled }), "no grid write")
}

func TestDeadBikesStopMoving(t *testing.T) {
	b := bike(core.Player1, 79, 10, Right)
	a := arenaWith(DefaultOptions(), b)
	a.Advance(0.05)

	events := a.Advance(1)
	assert.Empty(t, events)
	assert.Equal(t, grid.P(79, 10), b.Pos())
	assert.Len(t, a.Bikes(), 1, "dead bikes stay registered")
}

func TestTurnOrientationTable(t *testing.T) {
	dirs := []grid.Point{Up, Down, Left, Right}
	want := map[[2]grid.Point]Orientation{
		{Left, Down}:  TurnNW,
		{Up, Right}:   TurnNW,
		{Right, Down}: TurnNE,
		{Up, Left}:    TurnNE,
		{Right, Up}:   TurnSE,
		{Down, Left}:  TurnSE,
		{Left, Up}:    TurnSW,
		{Down, Right}: TurnSW,
	}

	for _, from := range dirs {
		for _, to := range dirs {
			got, ok := TurnOrientation(from, to)
			exp, isTurn := want[[2]grid.Point{from, to}]
			assert.Equal(t, isTurn, ok, "%v -> %v", from, to)
			if isTurn {
				assert.Equal(t, exp, got, "%v -> %v", from, to)
			}
		}
	}

	assert.Equal(t, Horizontal, StraightOrientation(Left))
	assert.Equal(t, Horizontal, StraightOrientation(Right))
	assert.Equal(t, Vertical, StraightOrientation(Up))
	assert.Equal(t, Vertical, StraightOrientation(Down))
}

func TestTurnWritesCornerTag(t *testing.T) {
	b := bike(core.Player1, 10, 10, Right)
	a := arenaWith(DefaultOptions(), b)

	require.True(t, b.RequestDirection(Down))
	assert.Equal(t, Right, b.Dir(), "the turn waits for the next step")

	a.Advance(0.05)

	cell, _ := a.Walls().Get(grid.P(11, 10))
	assert.Equal(t, TurnNE, cell.Orientation)
	assert.Equal(t, '┐', SegmentGlyph(cell.Orientation))
	assert.Equal(t, Down, b.Dir())

	a.Advance(0.05)
	cell, _ = a.Walls().Get(grid.P(11, 11))
	assert.Equal(t, Vertical, cell.Orientation)
}

func TestRequestDirectionRejectsReversal(t *testing.T) {
	b := bike(core.Player1, 10, 10, Right)

	assert.False(t, b.RequestDirection(Left))
	assert.False(t, b.RequestDirection(grid.P(1, 1)))
	assert.False(t, b.RequestDirection(grid.P(0, 0)))
	assert.Equal(t, Right, b.Desired())

	assert.True(t, b.RequestDirection(Up))
	assert.True(t, b.RequestDirection(Right), "cancelling a buffered turn is allowed")
	assert.Equal(t, Right, b.Desired())
}

func TestNeverReverses(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dirs := []grid.Point{Up, Down, Left, Right}

	for trial := range 50 {
		b := NewBike(core.Player1, grid.P(50, 50), Right, 0.05, 0.2)
		a := arenaWith(Options{Width: 100, Height: 100}, b)

		for range 40 {
			for range rng.Intn(3) {
				b.RequestDirection(dirs[rng.Intn(len(dirs))])
			}
			before := b.Dir()
			if _, ok := b.Advance(0.05, a.Walls()); !ok {
				break
			}
			assert.NotEqual(t, before.Neg(), b.Dir(), "trial %d", trial)
		}
	}
}

func TestMonotonicOccupancy(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	dirs := []grid.Point{Up, Down, Left, Right}
	a := NewArena(Options{Width: 30, Height: 20})
	filled := make(map[grid.Point]bool)

	for range 200 {
		for _, b := range a.Bikes() {
			if rng.Intn(4) == 0 {
				b.RequestDirection(dirs[rng.Intn(len(dirs))])
			}
		}
		a.Advance(0.05)

		a.Walls().Each(func(p grid.Point, s WallSegment) {
			if filled[p] {
				assert.True(t, s.Filled, "cell %v was cleared mid-round", p)
			}
			if s.Filled {
				filled[p] = true
			}
		})
		if a.Alive() == 0 {
			break
		}
	}

	total := 0
	for _, id := range []core.PlayerID{core.Player1, core.Player2} {
		total += a.Claimed(id)
	}
	assert.Equal(t, len(filled), total, "every filled cell has exactly one owner")
}

func TestSimultaneousCrashIsDraw(t *testing.T) {
	b1 := bike(core.Player1, 0, 3, Left)
	b2 := bike(core.Player2, 9, 6, Right)
	a := arenaWith(Options{Width: 10, Height: 10}, b1, b2)

	events := a.Advance(0.05)

	require.Len(t, events, 2)
	assert.Equal(t, core.Player1, events[0].Actor, "registration order")
	assert.Equal(t, core.Player2, events[1].Actor)
	assert.Equal(t, core.NoPlayer, a.Winner())
}

func TestThrottleAndStopThreshold(t *testing.T) {
	b := bike(core.Player1, 10, 10, Right)
	a := arenaWith(DefaultOptions(), b)

	b.Throttle(0.5)
	assert.InDelta(t, 0.125, b.MoveInterval(), 1e-9)
	assert.False(t, b.Stopped())

	b.Throttle(1)
	assert.True(t, b.Stopped())
	a.Advance(10)
	assert.Equal(t, grid.P(10, 10), b.Pos(), "a stopped bike does not move")

	b.Throttle(0)
	assert.InDelta(t, 0.05, b.MoveInterval(), 1e-9)
	a.Advance(0.05)
	assert.Equal(t, grid.P(11, 10), b.Pos())
}

func TestStepCadence(t *testing.T) {
	b := bike(core.Player1, 10, 10, Right)
	a := arenaWith(DefaultOptions(), b)

	a.Advance(0.01) // First advance steps immediately
	assert.Equal(t, grid.P(11, 10), b.Pos())

	a.Advance(0.02)
	a.Advance(0.02)
	assert.Equal(t, grid.P(11, 10), b.Pos())
	x, _ := b.Interpolated()
	assert.InDelta(t, 11.8, x, 1e-9)

	a.Advance(0.02)
	assert.Equal(t, grid.P(12, 10), b.Pos())
}

func TestSetMoveIntervalClampsRemaining(t *testing.T) {
	b := NewBike(core.Player1, grid.P(1, 1), Right, 0.15, 0.2)
	a := arenaWith(Options{Width: 10, Height: 10}, b)
	a.Advance(0.01)
	require.Equal(t, grid.P(2, 1), b.Pos())

	b.SetMoveInterval(0.05)
	a.Advance(0.05)
	assert.Equal(t, grid.P(3, 1), b.Pos(), "remaining time was cut to the new interval")
}

func TestApplyRoutesHeldDirections(t *testing.T) {
	a := NewArena(DefaultOptions())
	sampler := core.NewInputSampler()

	in := core.NewMultiInputFrame()
	in.Set(core.Player2, core.ActionUp)
	in.Set(core.Player1, core.ActionLeft) // Reversal, ignored
	sampler.Sample(in)
	a.Apply(sampler)

	p1, _ := a.Bike(core.Player1)
	p2, _ := a.Bike(core.Player2)
	assert.Equal(t, Right, p1.Desired())
	assert.Equal(t, Up, p2.Desired())
}

func TestApplyBrakeRampsWithLastAdvance(t *testing.T) {
	a := NewArena(DefaultOptions())
	sampler := core.NewInputSampler()
	p1, _ := a.Bike(core.Player1)

	braking := core.NewMultiInputFrame()
	braking.Set(core.Player1, core.ActionBrake)
	sampler.Sample(braking)
	a.Apply(sampler)
	assert.Zero(t, p1.Throttled(), "no time has passed yet")

	a.Advance(0.125)
	a.Apply(sampler)
	assert.InDelta(t, 0.5, p1.Throttled(), 1e-9)
	assert.InDelta(t, 0.125, p1.MoveInterval(), 1e-9)

	p1.SetMoveInterval(0.04)
	assert.InDelta(t, 0.04+0.5*(0.2-0.04), p1.MoveInterval(), 1e-9, "throttle applies on top of a new base")

	sampler.Sample(core.NewMultiInputFrame())
	a.Apply(sampler)
	assert.Zero(t, p1.Throttled())
}

func TestResetClearsRound(t *testing.T) {
	a := NewArena(DefaultOptions())
	for range 5 {
		a.Advance(0.05)
	}
	require.NotZero(t, a.Claimed(core.Player1))

	a.Reset()

	assert.Zero(t, a.Walls().Count(func(s WallSegment) bool { return s.Filled }))
	assert.Zero(t, a.Claimed(core.Player1))
	p1, _ := a.Bike(core.Player1)
	assert.Equal(t, grid.P(-1, 10), p1.Pos())
	assert.True(t, p1.Alive())
}

func TestSnapshot(t *testing.T) {
	a := NewArena(Options{Width: 20, Height: 12})
	a.Advance(0.05)

	snap := a.Snapshot()
	require.Equal(t, 20, snap.Walls.Width())
	require.Equal(t, 12, snap.Walls.Height())
	assert.True(t, snap.Wall(0, 3).Filled)
	assert.False(t, snap.Wall(-1, 3).Filled)
	assert.Equal(t, 2, snap.Filled)

	a.Reset()
	assert.True(t, snap.Wall(0, 3).Filled, "snapshots do not share the arena's walls")
	require.Len(t, snap.Bikes, 2)
	assert.Equal(t, grid.P(0, 3), snap.Bikes[0].Cell)
	assert.Equal(t, 1, snap.Bikes[0].Claimed)
}

func TestPresentationHelpers(t *testing.T) {
	assert.Equal(t, '─', SegmentGlyph(Horizontal))
	assert.Equal(t, '│', SegmentGlyph(Vertical))
	assert.Equal(t, '┌', SegmentGlyph(TurnNW))
	assert.Equal(t, '└', SegmentGlyph(TurnSW))
	assert.Equal(t, '▲', HeadGlyph(Up))
	assert.NotEqual(t, OwnerColor(core.Player1), OwnerColor(core.Player2))
}
