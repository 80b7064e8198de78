// Package blocks implements Blocks, a falling-block puzzle: pieces drop into
// a well, lock when they land and full rows are cleared for points.
package blocks

import (
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/sim/clock"
	"github.com/vovakirdan/grid-arcade/internal/sim/grid"
	"github.com/vovakirdan/grid-arcade/internal/sim/round"
)

// Cell is one square of the well.
type Cell struct {
	Filled  bool
	Variant Variant
}

// Options sizes the well and sets its timing and scoring.
type Options struct {
	Width, Height    int
	FallInterval     float64 // Seconds per row
	SoftDropInterval float64 // Seconds per row while Down is held
	LinePoints       []int   // Points for 1..n rows cleared at once, times level
	LinesPerLevel    int
	Seed             int64
}

// DefaultOptions returns a classic 10x20 well.
func DefaultOptions() Options {
	return Options{
		Width:            10,
		Height:           20,
		FallInterval:     0.8,
		SoftDropInterval: 0.05,
		LinePoints:       []int{100, 300, 500, 800},
		LinesPerLevel:    10,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Width < 4 {
		o.Width = d.Width
	}
	if o.Height < 4 {
		o.Height = d.Height
	}
	if o.FallInterval <= 0 {
		o.FallInterval = d.FallInterval
	}
	if o.SoftDropInterval <= 0 {
		o.SoftDropInterval = d.SoftDropInterval
	}
	if len(o.LinePoints) == 0 {
		o.LinePoints = d.LinePoints
	}
	if o.LinesPerLevel <= 0 {
		o.LinesPerLevel = d.LinesPerLevel
	}
	return o
}

// Well is the simulation context of one Blocks game: the grid of locked
// cells, the active piece and the upcoming one.
type Well struct {
	opts  Options
	cells *grid.Grid[Cell]
	rng   *rand.Rand

	active Piece
	next   Variant
	bag    []Variant

	fall     clock.Countdown
	softDrop bool

	score, lines, level int
	over                bool
	overAt              grid.Point

	// Events raised from input between two Advance calls.
	pending []round.Event
}

var _ round.Scene = (*Well)(nil)

// NewWell creates a well with its first piece ready to fall.
func NewWell(opts Options) *Well {
	opts = opts.normalized()
	w := &Well{
		opts:  opts,
		cells: grid.New[Cell](opts.Width, opts.Height),
		rng:   rand.New(rand.NewSource(opts.Seed)),
		fall:  clock.NewCountdown(opts.FallInterval),
	}
	w.Reset()
	return w
}

// Reset empties the well, refills the piece bag and spawns the first piece.
// The random sequence continues from the previous game.
func (w *Well) Reset() {
	w.cells.Reset()
	w.bag = w.bag[:0]
	w.score, w.lines, w.level = 0, 0, 1
	w.over = false
	w.overAt = grid.Point{}
	w.pending = nil
	w.softDrop = false
	w.fall.SetInterval(w.opts.FallInterval)

	w.next = w.draw()
	w.spawn()
}

// draw takes the next variant from a shuffled bag of all seven.
func (w *Well) draw() Variant {
	if len(w.bag) == 0 {
		for _, i := range w.rng.Perm(len(Variants)) {
			w.bag = append(w.bag, Variants[i])
		}
	}
	v := w.bag[0]
	w.bag = w.bag[1:]
	return v
}

// spawn brings the next piece in. It reports false when the piece has no
// room, which ends the game.
func (w *Well) spawn() bool {
	w.active = SpawnPiece(w.next, w.opts.Width)
	w.next = w.draw()
	w.fall.Rearm()
	if w.collides(w.active) {
		w.over = true
		w.overAt = w.active.Pos
		return false
	}
	return true
}

// collides reports whether p overlaps a wall, the floor or a locked cell.
// Cells above the top row are free.
func (w *Well) collides(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= w.opts.Width || c.Y >= w.opts.Height {
			return true
		}
		if c.Y < 0 {
			continue
		}
		if cell, _ := w.cells.Get(c); cell.Filled {
			return true
		}
	}
	return false
}

// Advance drops the active piece one row whenever the fall timer expires and
// locks it when it cannot move down.
func (w *Well) Advance(dt float64) []round.Event {
	events := w.pending
	w.pending = nil
	if w.over {
		return events
	}

	interval := w.opts.FallInterval
	if w.softDrop {
		interval = min(interval, w.opts.SoftDropInterval)
	}
	w.fall.SetInterval(interval)

	if w.fall.Advance(dt) && !w.shift(grid.P(0, 1)) {
		events = append(events, w.lock()...)
	}
	return events
}

// Apply maps edge-triggered moves from any player onto the active piece.
func (w *Well) Apply(in *core.InputSampler) {
	w.softDrop = in.HeldAny(core.ActionDown)
	if w.over {
		return
	}
	switch {
	case in.PressedAny(core.ActionLeft):
		w.MoveLeft()
	case in.PressedAny(core.ActionRight):
		w.MoveRight()
	}
	if in.PressedAny(core.ActionRotate) || in.PressedAny(core.ActionUp) {
		w.Rotate()
	}
	if in.PressedAny(core.ActionDown) {
		w.SoftDrop()
	}
	if in.PressedAny(core.ActionDrop) {
		w.HardDrop()
	}
}

// shift moves the active piece by d if it fits.
func (w *Well) shift(d grid.Point) bool {
	moved := w.active.Moved(d)
	if w.collides(moved) {
		return false
	}
	w.active = moved
	return true
}

// MoveLeft shifts the piece one column left if it fits.
func (w *Well) MoveLeft() bool {
	return !w.over && w.shift(grid.P(-1, 0))
}

// MoveRight shifts the piece one column right if it fits.
func (w *Well) MoveRight() bool {
	return !w.over && w.shift(grid.P(1, 0))
}

// SoftDrop moves the piece one row down for one point and restarts the fall
// timer. A piece that cannot move is left for the timer to lock.
func (w *Well) SoftDrop() bool {
	if w.over || !w.shift(grid.P(0, 1)) {
		return false
	}
	w.score++
	w.fall.Rearm()
	return true
}

// Rotate turns the piece, keeping the old state when the new one would
// overlap something.
func (w *Well) Rotate() bool {
	if w.over {
		return false
	}
	turned := w.active
	turned.Rotate()
	if w.collides(turned) {
		return false
	}
	w.active = turned
	return true
}

// HardDrop drops the piece as far as it goes, two points per row, and locks
// it at once. The resulting events are returned by the next Advance.
func (w *Well) HardDrop() int {
	if w.over {
		return 0
	}
	rows := 0
	for w.shift(grid.P(0, 1)) {
		rows++
	}
	w.score += 2 * rows
	w.pending = append(w.pending, w.lock()...)
	return rows
}

// Ghost returns the active piece moved down to where it would land.
func (w *Well) Ghost() Piece {
	g := w.active
	for {
		next := g.Moved(grid.P(0, 1))
		if w.collides(next) {
			return g
		}
		g = next
	}
}

// lock copies the active piece into the well, clears full rows and spawns
// the next piece.
func (w *Well) lock() []round.Event {
	events := []round.Event{{Kind: round.EventLock, Pos: w.active.Pos}}

	aboveTop := false
	for _, c := range w.active.Cells() {
		if c.Y < 0 {
			aboveTop = true
			continue
		}
		//nolint:errcheck // collides() already rejected out-of-bounds cells
		w.cells.Set(c, Cell{Filled: true, Variant: w.active.Variant()})
	}
	if aboveTop {
		w.over = true
		w.overAt = w.active.Pos
		logger.Debug("piece locked above the well", "variant", w.active.Variant(), "at", w.active.Pos)
		return append(events, round.Event{Kind: round.EventGameOver, Pos: w.active.Pos})
	}

	if n := w.clearLines(); n > 0 {
		w.lines += n
		w.score += w.linePoints(n) * w.level
		w.level = 1 + w.lines/w.opts.LinesPerLevel
		events = append(events, round.Event{Kind: round.EventLineClear, Lines: n})
	}

	if !w.spawn() {
		logger.Debug("no room for next piece", "variant", w.active.Variant())
		events = append(events, round.Event{Kind: round.EventGameOver, Pos: w.overAt})
	}
	return events
}

func (w *Well) linePoints(n int) int {
	pts := w.opts.LinePoints
	return pts[min(n, len(pts))-1]
}

// clearLines removes every full row and returns how many there were.
func (w *Well) clearLines() int {
	n := 0
	for y := w.opts.Height - 1; y >= 0; {
		if !w.rowFull(y) {
			y--
			continue
		}
		//nolint:errcheck // y is in range
		w.cells.RemoveRow(y)
		n++
	}
	return n
}

func (w *Well) rowFull(y int) bool {
	for _, c := range w.cells.Row(y) {
		if !c.Filled {
			return false
		}
	}
	return true
}

// SetFallInterval changes the seconds per row.
func (w *Well) SetFallInterval(v float64) {
	if v > 0 {
		w.opts.FallInterval = v
		w.fall.SetInterval(v)
	}
}

// Active returns the falling piece.
func (w *Well) Active() Piece { return w.active }

// Next returns the variant that spawns after the active piece locks.
func (w *Well) Next() Variant { return w.next }

// Cells returns the grid of locked cells. Callers must treat it as read-only.
func (w *Well) Cells() *grid.Grid[Cell] { return w.cells }

// Score returns the points earned so far.
func (w *Well) Score() int { return w.score }

// Lines returns the number of rows cleared.
func (w *Well) Lines() int { return w.lines }

// Level returns the current level, starting at 1.
func (w *Well) Level() int { return w.level }

// Over reports whether the game has ended.
func (w *Well) Over() bool { return w.over }

// Options returns the normalized well options.
func (w *Well) Options() Options { return w.opts }
