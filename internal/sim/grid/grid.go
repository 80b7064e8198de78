// Package grid provides the fixed-size occupancy grid shared by the arcade's
// grid games. Cells are stored in row-major order: index = y*W + x.
package grid

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a coordinate lies outside the grid.
var ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

// Point is an integral grid coordinate or a unit step between cells.
type Point struct {
	X, Y int
}

// P is a shorthand constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is a rectangular array of cells of type T, dimensions fixed at
// construction. It is not safe for concurrent use.
type Grid[T any] struct {
	w, h  int
	cells []T
}

// New creates a grid with every cell set to the zero value of T.
// Negative dimensions are treated as zero.
func New[T any](w, h int) *Grid[T] {
	w, h = max(w, 0), max(h, 0)
	return &Grid[T]{
		w:     w,
		h:     h,
		cells: make([]T, w*h),
	}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.h
}

// InBounds reports whether p lies within [0,w) × [0,h).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

func (g *Grid[T]) index(p Point) int {
	return p.Y*g.w + p.X
}

// At returns a pointer to the cell at p for in-place mutation.
func (g *Grid[T]) At(p Point) (*T, error) {
	if !g.InBounds(p) {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.w, g.h)
	}
	return &g.cells[g.index(p)], nil
}

// Get returns a copy of the cell at p. The second result is false when p is
// out of bounds, in which case the zero value is returned.
func (g *Grid[T]) Get(p Point) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[g.index(p)], true
}

// Set stores v at p.
func (g *Grid[T]) Set(p Point, v T) error {
	cell, err := g.At(p)
	if err != nil {
		return err
	}
	*cell = v
	return nil
}

// Reset sets every cell back to the zero value.
func (g *Grid[T]) Reset() {
	clear(g.cells)
}

// Row returns a copy of row y, or nil when y is out of range.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.h {
		return nil
	}
	row := make([]T, g.w)
	copy(row, g.cells[y*g.w:(y+1)*g.w])
	return row
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(p Point, v T)) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			fn(Point{X: x, Y: y}, g.cells[y*g.w+x])
		}
	}
}

// Count returns the number of cells for which pred is true.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, c := range g.cells {
		if pred(c) {
			n++
		}
	}
	return n
}

// RemoveRow deletes row y, shifting every row above it down by one and
// leaving a zero row at the top.
func (g *Grid[T]) RemoveRow(y int) error {
	if y < 0 || y >= g.h {
		return fmt.Errorf("%w: row %d in %dx%d", ErrOutOfBounds, y, g.w, g.h)
	}
	copy(g.cells[g.w:(y+1)*g.w], g.cells[:y*g.w])
	clear(g.cells[:g.w])
	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{w: g.w, h: g.h, cells: cells}
}
