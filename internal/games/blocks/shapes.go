package blocks

import (
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/sim/grid"
)

// Variant is one of the seven block shapes.
type Variant uint8

const (
	I Variant = iota
	S
	Z
	Square
	J
	L
	T
)

// Variants lists every shape in bag order.
var Variants = [...]Variant{I, S, Z, Square, J, L, T}

// String returns the shape's letter.
func (v Variant) String() string {
	switch v {
	case I:
		return "I"
	case S:
		return "S"
	case Z:
		return "Z"
	case Square:
		return "O"
	case J:
		return "J"
	case L:
		return "L"
	case T:
		return "T"
	default:
		return "?"
	}
}

// shape is the set of cells a piece covers, relative to its anchor.
type shape [4]grid.Point

func sh(xy ...int) shape {
	var s shape
	for i := range s {
		s[i] = grid.P(xy[2*i], xy[2*i+1])
	}
	return s
}

// shapeTable holds one entry per rotation state, state 1 first. The number
// of entries is the variant's rotation count.
var shapeTable = [...][]shape{
	I: {
		sh(0, 0, 1, 0, 2, 0, 3, 0),
		sh(1, 0, 1, 1, 1, 2, 1, 3),
	},
	S: {
		sh(1, 1, 2, 1, 0, 2, 1, 2),
		sh(0, 0, 0, 1, 1, 1, 1, 2),
	},
	Z: {
		sh(0, 1, 1, 1, 1, 2, 2, 2),
		sh(1, 0, 0, 1, 1, 1, 0, 2),
	},
	Square: {
		sh(0, 1, 1, 1, 0, 2, 1, 2),
	},
	J: {
		sh(0, 1, 1, 1, 2, 1, 2, 2),
		sh(1, 0, 1, 1, 0, 2, 1, 2),
		sh(0, 0, 0, 1, 1, 1, 2, 1),
		sh(1, 0, 2, 0, 1, 1, 1, 2),
	},
	L: {
		sh(0, 1, 1, 1, 2, 1, 0, 2),
		sh(0, 0, 1, 0, 1, 1, 1, 2),
		sh(2, 0, 0, 1, 1, 1, 2, 1),
		sh(1, 0, 1, 1, 1, 2, 2, 2),
	},
	T: {
		sh(0, 1, 1, 1, 2, 1, 1, 2),
		sh(1, 0, 0, 1, 1, 1, 1, 2),
		sh(1, 0, 0, 1, 1, 1, 2, 1),
		sh(1, 0, 1, 1, 2, 1, 1, 2),
	},
}

// Rotations returns how many distinct rotation states the variant has.
func (v Variant) Rotations() int {
	if int(v) >= len(shapeTable) {
		return 0
	}
	return len(shapeTable[v])
}

// VariantColor returns the colour a variant is drawn in.
func VariantColor(v Variant) core.Color {
	switch v {
	case I:
		return core.ColorRed
	case S:
		return core.ColorBlue
	case Z:
		return core.ColorGreen
	case Square:
		return core.ColorSlateBlue
	case J:
		return core.ColorYellow
	case L:
		return core.ColorOrange
	case T:
		return core.ColorCyan
	default:
		return core.ColorGray
	}
}
