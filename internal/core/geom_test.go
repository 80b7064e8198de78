package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(tc.x, tc.y))
		})
	}
}

func TestRectCentered(t *testing.T) {
	r := NewRect(0, 0, 80, 24)
	c := r.Centered(20, 4)

	assert.Equal(t, NewRect(30, 10, 20, 4), c)
	assert.Equal(t, 50, c.Right())
	assert.Equal(t, 14, c.Bottom())
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.lo, tc.hi))
	}
	assert.Equal(t, 0.5, ClampF(0.5, 0, 1))
	assert.Equal(t, 1.0, ClampF(7, 0, 1))
	assert.Equal(t, 0.0, ClampF(-7, 0, 1))
}
