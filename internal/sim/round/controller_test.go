package round

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/sim/grid"
)

// fakeScene records what the controller routes to it.
type fakeScene struct {
	resets   int
	advanced float64
	applied  int
	next     []Event
}

func (s *fakeScene) Reset() { s.resets++ }

func (s *fakeScene) Advance(dt float64) []Event {
	s.advanced += dt
	ev := s.next
	s.next = nil
	return ev
}

func (s *fakeScene) Apply(*core.InputSampler) { s.applied++ }

func press(a core.Action) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	in.Set(core.Player1, a)
	return in
}

func idle() core.MultiInputFrame {
	return core.NewMultiInputFrame()
}

func TestMenuToPlaying(t *testing.T) {
	scene := &fakeScene{}
	c := NewController(scene)

	require.Equal(t, StateMenu, c.State())
	require.Equal(t, 1, scene.resets)

	c.Tick(0.016, idle())
	assert.Zero(t, scene.advanced, "menu must not advance the scene")

	c.Tick(0.016, press(core.ActionConfirm))
	assert.Equal(t, StatePlaying, c.State())
}

func TestMenuNavigationWrapsAndIsEdgeTriggered(t *testing.T) {
	c := NewController(&fakeScene{})

	c.Tick(0.016, press(core.ActionDown))
	assert.Equal(t, MenuQuit, c.Menu())

	// Still held: no further movement.
	c.Tick(0.016, press(core.ActionDown))
	assert.Equal(t, MenuQuit, c.Menu())

	c.Tick(0.016, idle())
	c.Tick(0.016, press(core.ActionDown))
	assert.Equal(t, MenuStart, c.Menu(), "wraps back to the first option")

	c.Tick(0.016, press(core.ActionUp))
	assert.Equal(t, MenuQuit, c.Menu(), "up from the first option wraps to the last")
}

func TestMenuQuit(t *testing.T) {
	c := NewController(&fakeScene{})
	c.Tick(0.016, press(core.ActionDown))
	c.Tick(0.016, press(core.ActionConfirm))

	assert.True(t, c.Quit())
	assert.Equal(t, StateMenu, c.State())
}

func TestPlayingRoutesTimeAndInput(t *testing.T) {
	scene := &fakeScene{}
	c := NewController(scene, WithInitialState(StatePlaying))

	c.Tick(0.25, idle())
	c.Tick(0.25, idle())

	assert.InDelta(t, 0.5, scene.advanced, 1e-9)
	assert.Equal(t, 2, scene.applied)
	assert.InDelta(t, 0.5, c.Elapsed(), 1e-9)
}

func TestPauseToggleSuspendsTicks(t *testing.T) {
	scene := &fakeScene{}
	c := NewController(scene, WithInitialState(StatePlaying))

	c.Tick(0.1, press(core.ActionPause))
	require.Equal(t, StatePaused, c.State())
	advancedBefore := scene.advanced

	c.Tick(0.1, press(core.ActionPause)) // held, not a new press
	c.Tick(0.1, idle())
	assert.Equal(t, StatePaused, c.State())
	assert.Equal(t, advancedBefore, scene.advanced, "paused scene receives no time")

	c.Tick(0.1, press(core.ActionPause))
	assert.Equal(t, StatePlaying, c.State())
}

func TestCollisionAndRestart(t *testing.T) {
	scene := &fakeScene{}
	c := NewController(scene, WithInitialState(StatePlaying))

	scene.next = []Event{
		{Kind: EventLineClear, Lines: 1},
		{Kind: EventCollision, Actor: core.Player2, Pos: grid.P(5, 5)},
		{Kind: EventCollision, Actor: core.Player1, Pos: grid.P(6, 6)},
	}
	events := c.Tick(0.05, idle())

	assert.Len(t, events, 3)
	require.Equal(t, StateCollision, c.State())
	ev, ok := c.Collision()
	require.True(t, ok)
	assert.Equal(t, core.Player2, ev.Actor, "the first terminal event is the one recorded")
	at, _ := c.CollisionAt()
	assert.Equal(t, grid.P(5, 5), at)

	c.Tick(0.5, idle())
	c.Tick(0.5, idle())
	assert.InDelta(t, 1.0, c.SinceCollision(), 1e-9)

	resets := scene.resets
	c.Tick(0.016, press(core.ActionConfirm))
	assert.Equal(t, StatePlaying, c.State())
	assert.Equal(t, resets+1, scene.resets, "confirm after a collision rebuilds the scene")
	_, ok = c.Collision()
	assert.False(t, ok)
	assert.Zero(t, c.Elapsed())
}

func TestNonTerminalEventsKeepPlaying(t *testing.T) {
	scene := &fakeScene{next: []Event{{Kind: EventLock}, {Kind: EventLineClear, Lines: 2}}}
	c := NewController(scene, WithInitialState(StatePlaying))

	c.Tick(0.1, idle())
	assert.Equal(t, StatePlaying, c.State())
}

func TestResetReturnsToMenu(t *testing.T) {
	scene := &fakeScene{}
	c := NewController(scene, WithInitialState(StatePlaying))
	scene.next = []Event{{Kind: EventGameOver}}
	c.Tick(0.1, idle())
	require.Equal(t, StateCollision, c.State())

	c.Reset()
	assert.Equal(t, StateMenu, c.State())
	assert.Equal(t, MenuStart, c.Menu())
	assert.False(t, c.Quit())
}
