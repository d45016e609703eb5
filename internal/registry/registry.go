// Package registry provides a global registry for game variant factories.
// Variants register themselves in init() functions, allowing the platforms
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/highscore"
	"github.com/vovakirdan/tui-pacman/internal/render"
)

// Game is the contract between a game and the platforms.
// Games contain pure logic: the platform handles input mapping, timing,
// and presentation.
type Game interface {
	// ID returns the variant identifier, used for CLI arguments and history.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts over from the menu with the given runtime settings.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a terminal screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Drawer is implemented by games that can paint onto any render.Canvas.
type Drawer interface {
	Draw(c render.Canvas)
}

// TextReceiver is implemented by games that sometimes want typed text, so
// the platform can stop treating letter keys as commands.
type TextReceiver interface {
	AcceptsText() bool
}

// FPSReceiver is implemented by games that display the measured frame rate.
type FPSReceiver interface {
	SetFPS(fps int)
}

// Sized is implemented by games with a fixed layout.
type Sized interface {
	// ScreenSize is the terminal size in cells.
	ScreenSize() (cols, rows int)
	// LogicalSize is the window size in pixels.
	LogicalSize() (w, h int)
}

// Env carries everything a factory may need to build a game.
type Env struct {
	ConfigPath string
	Difficulty string
	LevelFiles []string
	Scores     *highscore.Book
	Logger     *log.Logger
}

// Log returns the env logger, or a discarding one.
func (e Env) Log() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game. Resource failures are returned
// so the process can exit with a diagnostic.
type Factory func(env Env) (Game, error)

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a variant factory to the registry.
// Panics if a variant with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns all registered variants, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a variant by its ID.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	g, err := e.factory(env)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
