// Package registry maps game IDs to factories. The tic-tac-toe variants
// register themselves in init(), so the TUI and the CLI can list and start
// them without importing the game package directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// Game is what the platform drives. Implementations hold pure game logic and
// never import Bubble Tea; the platform maps keys to actions, ticks the game
// and paints the screen buffer.
type Game interface {
	// ID is the stable identifier used on the command line and in storage
	// (e.g. "tictactoe", "tictactoe_pvp").
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts over with a fresh session. Called once at start and again
	// on a full reset; a plain new round is driven through Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions collected since the last one.
	// The result carries an Outcome exactly once per finished round.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the coarse state used by the platform.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
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

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
