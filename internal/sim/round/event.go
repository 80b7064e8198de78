package round

import (
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/sim/grid"
)

// EventKind classifies a gameplay event emitted by a scene.
type EventKind int

const (
	// EventCollision: an actor died by leaving the grid or hitting a wall.
	EventCollision EventKind = iota
	// EventLock: a falling piece came to rest.
	EventLock
	// EventLineClear: one or more full rows were removed.
	EventLineClear
	// EventGameOver: a new piece could not enter the play-field.
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCollision:
		return "collision"
	case EventLock:
		return "lock"
	case EventLineClear:
		return "line-clear"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is a gameplay outcome reported by a scene during Advance.
type Event struct {
	Kind  EventKind
	Actor core.PlayerID // Actor involved, if any
	Pos   grid.Point    // Where it happened
	Lines int           // Rows removed, for EventLineClear
}

// Terminal reports whether the event ends the round.
func (e Event) Terminal() bool {
	return e.Kind == EventCollision || e.Kind == EventGameOver
}
