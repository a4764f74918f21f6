// Package registry provides a global registry of terminal backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and run them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/randscreen/internal/core"
	"github.com/vovakirdan/randscreen/internal/saver"
)

// ErrUnknownBackend is returned by Get for names nobody registered.
var ErrUnknownBackend = errors.New("registry: unknown backend")

// Result describes a finished screensaver run.
type Result struct {
	Reason  saver.StopReason // Why the render loop stopped
	Painted int              // Glyphs written before stopping
}

// Runner takes over the terminal, runs the render loop until it stops and
// gives the terminal back.
type Runner func(ctx context.Context, cfg core.RuntimeConfig, logger *log.Logger) (Result, error)

// Backend is a named way of driving a terminal.
type Backend struct {
	// Name is the identifier used on the command line (e.g., "console").
	Name string

	// Description is a one-line human-readable summary.
	Description string

	// Run executes the screensaver on this backend.
	Run Runner
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

var (
	backends = make(map[string]Backend)
	mu       sync.RWMutex
)

// Register adds a backend to the registry.
// Typically called from a backend package's init() function.
// Panics if the name is empty, Run is nil, or the name is already taken.
func Register(b Backend) {
	mu.Lock()
	defer mu.Unlock()

	if b.Name == "" || b.Run == nil {
		panic("registry: backend needs a name and a runner")
	}
	if _, exists := backends[b.Name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", b.Name))
	}
	backends[b.Name] = b
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(backends))
	for _, b := range backends {
		result = append(result, BackendInfo{
			Name:        b.Name,
			Description: b.Description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns the backend registered under name.
func Get(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	b, ok := backends[name]
	if !ok {
		return Backend{}, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}
	return b, nil
}
