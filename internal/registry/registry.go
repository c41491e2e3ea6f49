// Package registry maps game IDs to factories.
// Game packages register themselves from init(), so the CLI and the terminal
// front end can start a game by name without importing it directly.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/prism-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the contract between a simulation and its hosts.
// Games hold pure logic: no terminal, no clock, no I/O. The host maps keys to
// actions, drives Step at a fixed rate and renders into a Screen.
type Game interface {
	// ID returns a unique identifier used by the CLI and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts the game over with the given screen size, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-sized screen buffer.
	Render(dst *core.Screen)

	// State returns score, game over and pause status.
	State() core.GameState
}

// Hasher is implemented by games that can fingerprint their full state.
// Headless runs record the fingerprint to check replays for determinism.
type Hasher interface {
	StateHash() uint64
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory.
// Panics if the ID is empty or already taken; both are programming errors.
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: Register needs an id and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a game. Tests use it to keep the global table clean.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, id)
	delete(titles, id)
}
