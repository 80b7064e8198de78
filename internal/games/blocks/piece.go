package blocks

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/sim/grid"
)

// ErrInvalidRotation is reported for a rotation state outside
// 1..Rotations(). Rotate never produces one.
var ErrInvalidRotation = errors.New("blocks: invalid rotation state")

// Piece is a falling block: a variant, a 1-indexed rotation state and the
// anchor its shape offsets are added to.
type Piece struct {
	variant  Variant
	rotation int
	Pos      grid.Point
}

// NewPiece creates a piece in rotation state 1.
func NewPiece(v Variant, pos grid.Point) Piece {
	return Piece{variant: v, rotation: 1, Pos: pos}
}

// SpawnPosition returns where a variant enters a well of the given width:
// left of centre by two columns (one for the square) and one row higher for
// every shape except I, whose first state sits on its top row.
func SpawnPosition(v Variant, gridWidth int) grid.Point {
	x := gridWidth/2 - 2
	if v == Square {
		x = gridWidth/2 - 1
	}
	y := -1
	if v == I {
		y = 0
	}
	return grid.P(x, y)
}

// SpawnPiece creates a variant at its spawn position.
func SpawnPiece(v Variant, gridWidth int) Piece {
	return NewPiece(v, SpawnPosition(v, gridWidth))
}

// Variant returns the piece's shape.
func (p Piece) Variant() Variant { return p.variant }

// Rotation returns the 1-indexed rotation state.
func (p Piece) Rotation() int { return p.rotation }

// Color returns the piece's draw colour.
func (p Piece) Color() core.Color { return VariantColor(p.variant) }

// SetRotation selects a rotation state directly.
func (p *Piece) SetRotation(state int) error {
	if err := checkRotation(p.variant, state); err != nil {
		return err
	}
	p.rotation = state
	return nil
}

// Rotate advances to the next rotation state, wrapping back to 1 after the
// last. Rotating a square does nothing.
func (p *Piece) Rotate() {
	if err := checkRotation(p.variant, p.rotation); err != nil {
		invalidRotation(err)
		p.rotation = 1
	}
	n := p.variant.Rotations()
	if n == 0 {
		return
	}
	if err := p.SetRotation(p.rotation%n + 1); err != nil {
		invalidRotation(err)
	}
}

// Moved returns a copy of the piece shifted by d.
func (p Piece) Moved(d grid.Point) Piece {
	p.Pos = p.Pos.Add(d)
	return p
}

// Cells returns the absolute cells covered by the piece.
func (p Piece) Cells() []grid.Point {
	s := p.offsets()
	cells := make([]grid.Point, len(s))
	for i, o := range s {
		cells[i] = p.Pos.Add(o)
	}
	return cells
}

func (p Piece) offsets() shape {
	if err := checkRotation(p.variant, p.rotation); err != nil {
		invalidRotation(err)
		if p.variant.Rotations() == 0 {
			return shape{}
		}
		return shapeTable[p.variant][0]
	}
	return shapeTable[p.variant][p.rotation-1]
}

func checkRotation(v Variant, state int) error {
	n := v.Rotations()
	if n == 0 {
		return fmt.Errorf("%w: unknown variant %d", ErrInvalidRotation, v)
	}
	if state < 1 || state > n {
		return fmt.Errorf("%w: %d for %s (1..%d)", ErrInvalidRotation, state, v, n)
	}
	return nil
}

// invalidRotation panics in debug builds and logs otherwise.
func invalidRotation(err error) {
	if debugAssertions {
		panic(err)
	}
	logger.Error("resetting piece rotation", "err", err)
}
