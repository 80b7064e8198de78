package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/grid-arcade/internal/sim/grid"
)

type cell struct {
	Filled bool
	Tag    int
}

func TestGridInBounds(t *testing.T) {
	g := grid.New[cell](80, 60)

	testCases := []struct {
		p        grid.Point
		expected bool
	}{
		{grid.P(0, 0), true},
		{grid.P(79, 59), true},
		{grid.P(40, 30), true},
		{grid.P(-1, 0), false},
		{grid.P(0, -1), false},
		{grid.P(80, 10), false},
		{grid.P(10, 60), false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, g.InBounds(tc.p), "InBounds(%v)", tc.p)
	}
}

func TestGridAtOutOfBounds(t *testing.T) {
	g := grid.New[cell](5, 5)

	c, err := g.At(grid.P(5, 0))
	assert.Nil(t, c)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "(5,0)")

	err = g.Set(grid.P(-1, -1), cell{Filled: true})
	require.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, ok := g.Get(grid.P(0, 9))
	assert.False(t, ok)
}

func TestGridMutateInPlace(t *testing.T) {
	g := grid.New[cell](3, 3)

	c, err := g.At(grid.P(1, 2))
	require.NoError(t, err)
	c.Filled = true
	c.Tag = 7

	got, ok := g.Get(grid.P(1, 2))
	require.True(t, ok)
	assert.Equal(t, cell{Filled: true, Tag: 7}, got)
	assert.Equal(t, 1, g.Count(func(c cell) bool { return c.Filled }))
}

func TestGridReset(t *testing.T) {
	g := grid.New[cell](4, 4)
	g.Each(func(p grid.Point, _ cell) {
		require.NoError(t, g.Set(p, cell{Filled: true}))
	})
	require.Equal(t, 16, g.Count(func(c cell) bool { return c.Filled }))

	g.Reset()
	assert.Equal(t, 0, g.Count(func(c cell) bool { return c.Filled }))
}

func TestGridRemoveRow(t *testing.T) {
	g := grid.New[int](2, 3)
	// rows: [1 1] [2 2] [3 3]
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			require.NoError(t, g.Set(grid.P(x, y), y+1))
		}
	}

	require.NoError(t, g.RemoveRow(1))

	assert.Equal(t, []int{0, 0}, g.Row(0))
	assert.Equal(t, []int{1, 1}, g.Row(1))
	assert.Equal(t, []int{3, 3}, g.Row(2))
	assert.ErrorIs(t, g.RemoveRow(3), grid.ErrOutOfBounds)
}

func TestGridClone(t *testing.T) {
	g := grid.New[int](2, 2)
	require.NoError(t, g.Set(grid.P(0, 0), 5))

	c := g.Clone()
	require.NoError(t, g.Set(grid.P(0, 0), 9))

	v, _ := c.Get(grid.P(0, 0))
	assert.Equal(t, 5, v)
}

func TestPointArithmetic(t *testing.T) {
	assert.Equal(t, grid.P(3, 1), grid.P(1, 2).Add(grid.P(2, -1)))
	assert.Equal(t, grid.P(-1, 0), grid.P(1, 0).Neg())
	assert.Equal(t, "(4,-2)", grid.P(4, -2).String())
}
