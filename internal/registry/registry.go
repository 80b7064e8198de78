// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// Game is the interface every arcade game implements.
// Games hold pure simulation state and never import Bubble Tea; the platform
// owns input mapping, frame timing and drawing to the terminal.
type Game interface {
	// ID returns a unique identifier such as "lightcycle" or "blocks".
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Laser Bikes").
	Title() string

	// Reset rebuilds the game for the given screen size and seed and
	// returns it to its in-game menu.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt seconds of wall-clock time.
	// Input carries one frame of intents per player.
	Step(dt float64, in core.MultiInputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused, menu).
	State() core.GameState
}

// Describer is implemented by games that can summarise themselves for
// listings. Games without it are listed as single-player with no summary.
type Describer interface {
	Description() string
	Players() int
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
	Players     int
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Metadata comes from a throwaway instance.
	g := f()
	info := GameInfo{ID: id, Title: g.Title(), Players: 1}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
		info.Players = max(1, d.Players())
	}
	entries[id] = entry{factory: f, info: info}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
