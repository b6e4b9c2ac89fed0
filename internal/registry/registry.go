// Package registry provides a global registry of game variants.
// Variants register themselves in init() functions, allowing the CLI and
// the API to discover them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownVariant is returned when looking up an unregistered variant.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Variant describes the fixed rules of one way to play.
type Variant struct {
	// ID is a unique identifier (e.g., "lines", "lines_mini").
	// Used for CLI commands and score storage.
	ID string `json:"id"`

	// Title is a human-readable name for display.
	Title string `json:"title"`

	// Size is the board edge length.
	Size int `json:"size"`

	// BallsPerTurn is how many balls are queued and dropped after a
	// move that clears nothing.
	BallsPerTurn int `json:"balls_per_turn"`

	// InitialBalls is how many balls are on the board at the start.
	InitialBalls int `json:"initial_balls"`
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Typically called from a game's init() function.
// Panics if the variant is malformed or its ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if v.ID == "" || v.Size <= 0 || v.BallsPerTurn <= 0 || v.InitialBalls < 0 {
		panic(fmt.Sprintf("registry: invalid variant %+v", v))
	}
	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}

	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get looks up a variant by its ID.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}

	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}

// unregister removes a variant. Only used by tests.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(variants, id)
}
