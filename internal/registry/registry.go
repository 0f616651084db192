// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ninja/internal/config"
	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/gfx"
	"github.com/vovakirdan/ninja/internal/tilemap"
)

// Game is the core interface that all games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea or Ebiten).
// The platform handles input mapping, timing, and scaling the rendered frame.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "ninja").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display (e.g., "Ninja Game").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again on restart.
	// The RuntimeConfig provides the surface size and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to held directions plus edge actions (Jump, Dash, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame onto a surface of the size given to Reset.
	// Games draw their own background, so the surface need not be cleared.
	Render(dst gfx.Surface)

	// State returns the current game state (tick, paused, player action).
	State() core.GameState

	// Resolution returns the logical surface size Render expects.
	Resolution() (w, h int)
}

// MapSource loads named maps, e.g. from the SQLite store.
type MapSource interface {
	LoadMap(name string) (*tilemap.TileMap, error)
}

// Options carries launch settings. Games ignore the ones they do not use.
type Options struct {
	Config    *config.NinjaConfig // Loaded configuration; nil uses the search path
	MapPath   string              // Map file to play
	StoredMap string              // Name of a map in Maps
	Maps      MapSource           // Store for StoredMap
	Logger    *log.Logger         // Startup diagnostics; nil discards
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func(opts Options) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f(Options{})
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(opts), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
