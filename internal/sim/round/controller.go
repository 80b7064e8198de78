// Package round drives a grid scene through menu, play, collision and pause.
//
// The Controller is the single router of elapsed time and input to a scene.
// It owns nothing about the game rules; scenes report what happened through
// Events and the controller maps terminal events onto round transitions.
package round

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/sim/grid"
)

// State is the round state that decides who receives ticks and input.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateCollision
	StatePaused
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateCollision:
		return "collision"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// MenuOption is an entry of the in-game menu.
type MenuOption int

const (
	MenuStart MenuOption = iota
	MenuQuit
)

const menuOptionCount = 2

// String returns the label shown for the option.
func (o MenuOption) String() string {
	switch o {
	case MenuStart:
		return "Start"
	case MenuQuit:
		return "Quit"
	default:
		return "?"
	}
}

// Scene is a simulation context driven by the controller.
type Scene interface {
	// Reset rebuilds the scene for a new round: clears the grid and respawns
	// every entity at its initial position.
	Reset()

	// Advance moves the simulation forward by dt seconds.
	Advance(dt float64) []Event

	// Apply forwards this tick's input to the entities. It runs after
	// Advance, so input buffered now takes effect on a later step.
	Apply(in *core.InputSampler)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithInitialState starts the controller somewhere other than the menu.
func WithInitialState(s State) Option {
	return func(c *Controller) {
		c.state = s
	}
}

// Controller owns the round state machine for one scene.
type Controller struct {
	scene   Scene
	state   State
	menu    MenuOption
	sampler *core.InputSampler
	logger  *log.Logger

	collision      *Event
	sinceCollision float64
	elapsed        float64 // Simulated seconds of the current round
	quit           bool
}

// NewController creates a controller in the menu state. The scene is reset
// once so it is ready to play.
func NewController(scene Scene, opts ...Option) *Controller {
	c := &Controller{
		scene:   scene,
		state:   StateMenu,
		sampler: core.NewInputSampler(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	scene.Reset()
	return c
}

// Tick runs one update pass. It returns the events the scene produced
// during this tick (empty unless playing).
func (c *Controller) Tick(dt float64, in core.MultiInputFrame) []Event {
	c.sampler.Sample(in)

	switch c.state {
	case StateMenu:
		c.tickMenu()
		return nil

	case StatePlaying:
		return c.tickPlaying(dt)

	case StateCollision:
		c.sinceCollision += dt
		if c.sampler.PressedAny(core.ActionConfirm) {
			c.restart()
		}
		return nil

	case StatePaused:
		if c.sampler.PressedAny(core.ActionPause) {
			c.transition(StatePlaying)
		}
		return nil
	}
	return nil
}

func (c *Controller) tickMenu() {
	switch {
	case c.sampler.PressedAny(core.ActionConfirm):
		if c.menu == MenuQuit {
			c.quit = true
			c.logger.Debug("quit selected from menu")
			return
		}
		c.transition(StatePlaying)
	case c.sampler.PressedAny(core.ActionUp):
		c.menu = MenuOption((int(c.menu) + menuOptionCount - 1) % menuOptionCount)
	case c.sampler.PressedAny(core.ActionDown):
		c.menu = MenuOption((int(c.menu) + 1) % menuOptionCount)
	}
}

func (c *Controller) tickPlaying(dt float64) []Event {
	c.elapsed += dt
	events := c.scene.Advance(dt)
	c.scene.Apply(c.sampler)

	for i := range events {
		ev := events[i]
		if !ev.Terminal() {
			continue
		}
		if c.collision == nil {
			c.collision = &ev
			c.sinceCollision = 0
		}
		c.logger.Debug("terminal event", "kind", ev.Kind, "actor", ev.Actor, "pos", ev.Pos)
	}

	if c.collision != nil {
		c.transition(StateCollision)
		return events
	}

	if c.sampler.PressedAny(core.ActionPause) {
		c.transition(StatePaused)
	}
	return events
}

// restart performs the full scene reset that follows a collision.
func (c *Controller) restart() {
	c.scene.Reset()
	c.collision = nil
	c.sinceCollision = 0
	c.elapsed = 0
	c.transition(StatePlaying)
}

// Reset returns to the menu with a freshly reset scene.
func (c *Controller) Reset() {
	c.scene.Reset()
	c.sampler.Reset()
	c.collision = nil
	c.sinceCollision = 0
	c.elapsed = 0
	c.quit = false
	c.menu = MenuStart
	c.transition(StateMenu)
}

func (c *Controller) transition(to State) {
	if c.state == to {
		return
	}
	c.logger.Debug("round state", "from", c.state, "to", to)
	c.state = to
}

// State returns the current round state.
func (c *Controller) State() State {
	return c.state
}

// Menu returns the highlighted menu option.
func (c *Controller) Menu() MenuOption {
	return c.menu
}

// Quit reports whether Quit was confirmed in the menu.
func (c *Controller) Quit() bool {
	return c.quit
}

// Collision returns the first terminal event of the round and whether one
// has happened.
func (c *Controller) Collision() (Event, bool) {
	if c.collision == nil {
		return Event{}, false
	}
	return *c.collision, true
}

// CollisionAt returns the location of the round's terminal event.
func (c *Controller) CollisionAt() (grid.Point, bool) {
	ev, ok := c.Collision()
	return ev.Pos, ok
}

// SinceCollision returns the seconds spent in the collision state.
func (c *Controller) SinceCollision() float64 {
	return c.sinceCollision
}

// Elapsed returns the simulated seconds played in the current round.
func (c *Controller) Elapsed() float64 {
	return c.elapsed
}
