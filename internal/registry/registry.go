// Package registry provides a global registry for reference image providers.
// Providers register themselves in init() functions, allowing the CLI to
// select one by name from configuration without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-scribble/internal/config"
	"github.com/vovakirdan/tui-scribble/internal/refimage"
)

// ProviderInfo contains metadata about a registered provider.
type ProviderInfo struct {
	ID    string
	Title string
}

// Factory builds a provider from the reference section of the config.
type Factory func(cfg config.ReferenceConfig) (refimage.Provider, error)

type entry struct {
	title   string
	factory Factory
}

var (
	providers = make(map[string]entry)
	mu        sync.RWMutex
)

// Register adds a provider factory to the registry.
// Typically called from a provider package's init() function.
// Panics if a provider with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := providers[id]; exists {
		panic(fmt.Sprintf("registry: provider %q already registered", id))
	}

	providers[id] = entry{title: title, factory: f}
}

// List returns information about all registered providers, sorted by ID.
func List() []ProviderInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ProviderInfo, 0, len(providers))
	for id, e := range providers {
		result = append(result, ProviderInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds the provider named by cfg.Provider.
// Returns an error if the provider is not registered or its factory fails.
func Create(cfg config.ReferenceConfig) (refimage.Provider, error) {
	mu.RLock()
	e, ok := providers[cfg.Provider]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown provider %q", cfg.Provider)
	}

	p, err := e.factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", cfg.Provider, err)
	}
	return p, nil
}

// Exists checks if a provider with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := providers[id]
	return ok
}
