// Package registry provides a global registry of game modes.
// Modes register themselves in init() functions, allowing the CLI and the
// platform to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/superngon/internal/config"
)

// Mode is a named variant of the game. A mode only tunes configuration; the
// rules of play are the same for every mode.
type Mode struct {
	// ID is a unique identifier (e.g., "classic"). Used for CLI arguments
	// and as the key for stored runs.
	ID string

	// Title is a human-readable name for display.
	Title string

	// Description is a one-line summary shown by the list command.
	Description string

	// Configure adjusts a loaded configuration for this mode. May be nil.
	Configure func(cfg *config.NgonConfig)
}

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID          string
	Title       string
	Description string
}

var (
	modes = make(map[string]Mode)
	mu    sync.RWMutex
)

// Register adds a mode to the registry.
// Typically called from an init() function.
// Panics if the ID is empty or already registered.
func Register(m Mode) {
	mu.Lock()
	defer mu.Unlock()

	if m.ID == "" {
		panic("registry: mode with empty ID")
	}
	if _, exists := modes[m.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", m.ID))
	}

	modes[m.ID] = m
}

// List returns information about all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(modes))
	for _, m := range modes {
		result = append(result, ModeInfo{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the mode with the given ID.
// Returns an error if the mode ID is not registered.
func Get(id string) (Mode, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := modes[id]
	if !ok {
		return Mode{}, fmt.Errorf("registry: unknown mode %q", id)
	}

	return m, nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}

// Apply returns cfg adjusted for the mode and validated.
func (m Mode) Apply(cfg config.NgonConfig) config.NgonConfig {
	if m.Configure != nil {
		m.Configure(&cfg)
	}
	cfg.Validate()
	return cfg
}
