package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorGreen)
	assert.Equal(t, Cell{Rune: 'X', Color: ColorGreen}, s.GetCell(5, 5))
	assert.Equal(t, 'X', s.Get(5, 5))

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ColorDefault, s.GetCell(100, 0).Color)
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(NewRect(0, 0, 4, 4), 'X')
	s.Clear()

	assert.Equal(t, strings.Repeat(" ", 4), s.Row(2))
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	assert.True(t, strings.HasPrefix(s.Row(1)[2:], "Hello"))

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	assert.Equal(t, 'H', s.Get(18, 0))
	assert.Equal(t, 'e', s.Get(19, 0))
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorRed)

	x := (20 - 2) / 2
	assert.Equal(t, 'H', s.Get(x, 2))
	assert.Equal(t, ColorRed, s.GetCell(x+1, 2).Color)
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	assert.Equal(t, '┌', s.Get(1, 1))
	assert.Equal(t, '┐', s.Get(5, 1))
	assert.Equal(t, '└', s.Get(1, 4))
	assert.Equal(t, '┘', s.Get(5, 4))
	for x := 2; x < 5; x++ {
		assert.Equal(t, '─', s.Get(x, 1))
		assert.Equal(t, '─', s.Get(x, 4))
	}
	for y := 2; y < 4; y++ {
		assert.Equal(t, '│', s.Get(1, y))
		assert.Equal(t, '│', s.Get(5, y))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 4, s.Height())
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"))

	s.Resize(15, 8)
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"))
	assert.Len(t, s.Row(0), 15)
}

func TestScreenDrawPanel(t *testing.T) {
	s := NewScreen(20, 7)
	s.DrawRect(NewRect(0, 0, 20, 7), '#')

	box := s.DrawPanel([]string{"Paused", "P to resume"}, ColorWhite)

	assert.Equal(t, NewRect(2, 1, 15, 4), box)
	assert.Equal(t, '┌', s.Get(2, 1))
	assert.Contains(t, s.Row(2), "Paused")
	assert.Contains(t, s.Row(3), "P to resume")
	assert.Equal(t, ' ', s.Get(3, 2), "interior is blanked")
	assert.Equal(t, '#', s.Get(0, 0), "outside untouched")
}
