// Package baseline resolves the starting workforce figures that anchor
// supply projections. Sources are registered by name so a run can switch
// between the workforce survey and the regulator register.
package baseline

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

const (
	// SourceSurvey anchors on workforce survey FTE returns.
	SourceSurvey = "survey"
	// SourceRegistry anchors on regulator register headcounts.
	SourceRegistry = "registry"
)

// ErrUnknownSource reports a request for a source name nothing registered.
var ErrUnknownSource = errors.New("unknown baseline source")

// Source yields a baseline value per profession for the baseline year.
type Source interface {
	Baselines(ctx context.Context) (map[string]float64, error)
	// Describe names the data origin for reports and logs.
	Describe() string
}

// SourceFactory builds a Source when it is first requested.
type SourceFactory func() (Source, error)

// Registry manages named baseline source factories.
type Registry interface {
	// Register adds a new source factory under a name.
	Register(name string, factory SourceFactory) error
	// Create instantiates the named source.
	Create(name string) (Source, error)
	// ListSources returns the registered source names.
	ListSources() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]SourceFactory
}

// NewRegistry creates an empty source registry.
func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]SourceFactory),
	}
}

func (r *registry) Register(name string, factory SourceFactory) error {
	if name == "" {
		return fmt.Errorf("source name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("source %q is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

func (r *registry) Create(name string) (Source, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("source %q is not registered: %w", name, ErrUnknownSource)
	}

	return factory()
}

func (r *registry) ListSources() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}
