package lightcycle

import (
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/sim/grid"
)

// Orientation tags how a wall segment is drawn. The corner name is the corner
// of the cell the bend occupies.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
	TurnNW // ┌
	TurnNE // ┐
	TurnSE // ┘
	TurnSW // └
)

// String returns a short name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case TurnNW:
		return "turn-nw"
	case TurnNE:
		return "turn-ne"
	case TurnSE:
		return "turn-se"
	case TurnSW:
		return "turn-sw"
	default:
		return "unknown"
	}
}

// WallSegment is one cell of the light-wall grid.
// The zero value is an empty cell.
type WallSegment struct {
	Filled      bool
	Owner       core.PlayerID
	Orientation Orientation
}

// Directions of travel as unit grid vectors.
var (
	Up    = grid.P(0, -1)
	Down  = grid.P(0, 1)
	Left  = grid.P(-1, 0)
	Right = grid.P(1, 0)
)

// isAxisUnit reports whether d is one of the four travel directions.
func isAxisUnit(d grid.Point) bool {
	return d == Up || d == Down || d == Left || d == Right
}

// StraightOrientation returns the tag for a segment laid while travelling
// along d without turning.
func StraightOrientation(d grid.Point) Orientation {
	if d.X != 0 {
		return Horizontal
	}
	return Vertical
}

// TurnOrientation returns the corner tag for a bend from old to next.
// ok is false when the pair is not a 90 degree turn.
func TurnOrientation(old, next grid.Point) (o Orientation, ok bool) {
	switch {
	case old == Left && next == Down, old == Up && next == Right:
		return TurnNW, true
	case old == Right && next == Down, old == Up && next == Left:
		return TurnNE, true
	case old == Right && next == Up, old == Down && next == Left:
		return TurnSE, true
	case old == Left && next == Up, old == Down && next == Right:
		return TurnSW, true
	}
	return Horizontal, false
}

// SegmentGlyph returns the box-drawing rune for a wall orientation.
func SegmentGlyph(o Orientation) rune {
	switch o {
	case Horizontal:
		return '─'
	case Vertical:
		return '│'
	case TurnNW:
		return '┌'
	case TurnNE:
		return '┐'
	case TurnSE:
		return '┘'
	case TurnSW:
		return '└'
	default:
		return '?'
	}
}

// HeadGlyph returns the rune drawn for a bike travelling along d.
func HeadGlyph(d grid.Point) rune {
	switch d {
	case Up:
		return '▲'
	case Down:
		return '▼'
	case Left:
		return '◀'
	default:
		return '▶'
	}
}

// OwnerColor returns the trail colour of a player.
func OwnerColor(id core.PlayerID) core.Color {
	switch id {
	case core.Player1:
		return core.ColorCyan
	case core.Player2:
		return core.ColorOrange
	default:
		return core.ColorGray
	}
}
