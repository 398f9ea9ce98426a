// Package registry maps game ids to factories. Game packages register
// from init(), so frontends find every mode by importing it.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tank-arcade/internal/core"
)

// Game is the interface every playable mode implements.
// Game packages contain pure logic with no Bubble Tea or ebiten imports;
// the platform handles input mapping, timing, and rendering.
type Game interface {
	// ID is the stable key used by the CLI and the score table,
	// e.g. "battle" or "battle_2p".
	ID() string
	Title() string

	// Reset starts a fresh session; it is also the restart path.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick with Player 1 input.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, clearing it first.
	Render(dst *core.Screen)

	State() core.GameState
}

// MultiPlayerGame is implemented by games that read input for more than one
// local seat. Platforms prefer StepMulti over Step when it is available.
type MultiPlayerGame interface {
	Game
	Players() int
	StepMulti(in core.MultiInputFrame) core.StepResult
}

// GameInfo describes a registered mode for menus and score tables.
type GameInfo struct {
	ID      string
	Title   string
	Players int
}

// Factory builds a fresh game instance.
type Factory func() Game

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a factory under id, normally from an init() function.
// Title and player count are read once from a throwaway instance.
// Registering an id twice panics.
func Register(id string, f Factory) {
	g := f()
	info := GameInfo{ID: id, Title: g.Title(), Players: 1}
	if mg, ok := g.(MultiPlayerGame); ok {
		info.Players = mg.Players()
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns every registered mode ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create builds a new instance of the mode registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
