package lightcycle

import (
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/sim/clock"
	"github.com/vovakirdan/grid-arcade/internal/sim/grid"
)

// Step describes one discrete move of a bike.
type Step struct {
	From  grid.Point
	To    grid.Point  // Cell entered, or the last valid cell when the bike left the grid
	Wrote bool        // A segment was written at To
	Prev  WallSegment // Contents of To before the write
	Died  bool
}

// Bike is a light cycle. It moves one cell per MoveInterval seconds and
// lays a wall segment in every cell it enters.
type Bike struct {
	id      core.PlayerID
	pos     grid.Point
	dir     grid.Point
	desired grid.Point
	alive   bool

	baseInterval  float64
	stopThreshold float64
	throttle      float64
	timer         clock.Countdown
}

// NewBike creates a live bike. The timer starts expired, so the first
// Advance performs a step.
func NewBike(id core.PlayerID, pos, dir grid.Point, moveInterval, stopThreshold float64) *Bike {
	return &Bike{
		id:            id,
		pos:           pos,
		dir:           dir,
		desired:       dir,
		alive:         true,
		baseInterval:  moveInterval,
		stopThreshold: stopThreshold,
		timer:         clock.NewCountdown(moveInterval),
	}
}

// ID returns the owning player.
func (b *Bike) ID() core.PlayerID { return b.id }

// Pos returns the current cell.
func (b *Bike) Pos() grid.Point { return b.pos }

// Dir returns the direction of travel.
func (b *Bike) Dir() grid.Point { return b.dir }

// Desired returns the buffered direction applied on the next step.
func (b *Bike) Desired() grid.Point { return b.desired }

// Alive reports whether the bike still moves.
func (b *Bike) Alive() bool { return b.alive }

// MoveInterval returns the seconds per cell.
func (b *Bike) MoveInterval() float64 { return b.timer.Interval() }

// Stopped reports whether the bike is throttled down to a halt.
func (b *Bike) Stopped() bool {
	return b.timer.Interval() >= b.stopThreshold
}

// SetMoveInterval changes the unthrottled speed; the current throttle still
// applies on top. The time left until the next step never exceeds the new
// interval.
func (b *Bike) SetMoveInterval(v float64) {
	b.baseInterval = v
	b.applyThrottle()
}

// Throttle maps t in [0,1] onto the range between the base interval and the
// stop threshold. Throttle(1) stops the bike.
func (b *Bike) Throttle(t float64) {
	b.throttle = core.ClampF(t, 0, 1)
	b.applyThrottle()
}

// Throttled returns the current throttle in [0,1].
func (b *Bike) Throttled() float64 { return b.throttle }

func (b *Bike) applyThrottle() {
	if b.throttle >= 1 {
		b.timer.SetInterval(b.stopThreshold)
		return
	}
	b.timer.SetInterval(b.baseInterval + b.throttle*(b.stopThreshold-b.baseInterval))
}

// RequestDirection buffers d for the next step. A reversal onto the bike's
// own trail and anything that is not an axis unit vector are ignored.
func (b *Bike) RequestDirection(d grid.Point) bool {
	if !isAxisUnit(d) || d == b.dir.Neg() {
		return false
	}
	b.desired = d
	return true
}

// Interpolated returns the drawing position between the current cell and the
// next one.
func (b *Bike) Interpolated() (x, y float64) {
	x, y = float64(b.pos.X), float64(b.pos.Y)
	if !b.alive || b.Stopped() {
		return x, y
	}
	p := b.timer.Progress()
	return x + float64(b.dir.X)*p, y + float64(b.dir.Y)*p
}

// Advance moves the bike's clock forward by dt seconds and performs at most
// one step on expiry. ok is false when no step happened.
func (b *Bike) Advance(dt float64, walls *grid.Grid[WallSegment]) (step Step, ok bool) {
	if !b.alive || b.Stopped() {
		return Step{}, false
	}
	if !b.timer.Advance(dt) {
		return Step{}, false
	}
	return b.step(walls), true
}

func (b *Bike) step(walls *grid.Grid[WallSegment]) Step {
	s := Step{From: b.pos, To: b.pos}
	dest := b.pos.Add(b.dir)

	cell, err := walls.At(dest)
	if err != nil {
		b.alive = false
		s.Died = true
		return s
	}

	s.To = dest
	s.Prev = *cell
	s.Wrote = true
	s.Died = cell.Filled

	tag := StraightOrientation(b.dir)
	if b.desired != b.dir {
		if turn, ok := TurnOrientation(b.dir, b.desired); ok {
			tag = turn
		}
	}

	// A bike that runs into a wall still claims the cell it crashed into.
	*cell = WallSegment{Filled: true, Owner: b.id, Orientation: tag}
	b.pos = dest
	b.dir = b.desired
	if s.Died {
		b.alive = false
	}
	return s
}
