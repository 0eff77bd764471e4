package providers

import (
	"errors"
	"sync"
)

var (
	// ErrProviderNotFound is returned when a provider is not registered.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrProviderExists is returned when trying to register a duplicate provider.
	ErrProviderExists = errors.New("provider already exists")

	// ErrNoAvailableProvider is returned when no provider is available.
	ErrNoAvailableProvider = errors.New("no available provider")
)

// Registry manages provider registration and lookup.
type Registry struct {
	mu                  sync.RWMutex
	semanticProviders   map[string]SemanticProvider
	embeddingsProviders map[string]EmbeddingsProvider
	defaultSemantic     string
	defaultEmbeddings   string
}

// NewRegistry creates a new provider registry.
func NewRegistry() *Registry {
	return &Registry{
		semanticProviders:   make(map[string]SemanticProvider),
		embeddingsProviders: make(map[string]EmbeddingsProvider),
	}
}

// RegisterSemantic registers a semantic provider.
func (r *Registry) RegisterSemantic(p SemanticProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := p.Name()
	if _, exists := r.semanticProviders[name]; exists {
		return ErrProviderExists
	}

	r.semanticProviders[name] = p

	// Set as default if first available provider
	if r.defaultSemantic == "" && p.Available() {
		r.defaultSemantic = name
	}

	return nil
}

// RegisterEmbeddings registers an embeddings provider.
func (r *Registry) RegisterEmbeddings(p EmbeddingsProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := p.Name()
	if _, exists := r.embeddingsProviders[name]; exists {
		return ErrProviderExists
	}

	r.embeddingsProviders[name] = p

	// Set as default if first available provider
	if r.defaultEmbeddings == "" && p.Available() {
		r.defaultEmbeddings = name
	}

	return nil
}

// GetSemantic returns a semantic provider by name, or the default when
// name is empty.
func (r *Registry) GetSemantic(name string) (SemanticProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == "" {
		name = r.defaultSemantic
	}
	if name == "" {
		return nil, ErrNoAvailableProvider
	}

	p, ok := r.semanticProviders[name]
	if !ok {
		return nil, ErrProviderNotFound
	}
	return p, nil
}

// GetEmbeddings returns an embeddings provider by name, or the default
// when name is empty.
func (r *Registry) GetEmbeddings(name string) (EmbeddingsProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == "" {
		name = r.defaultEmbeddings
	}
	if name == "" {
		return nil, ErrNoAvailableProvider
	}

	p, ok := r.embeddingsProviders[name]
	if !ok {
		return nil, ErrProviderNotFound
	}
	return p, nil
}

// SemanticNames returns the registered semantic provider names.
func (r *Registry) SemanticNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.semanticProviders))
	for name := range r.semanticProviders {
		names = append(names, name)
	}
	return names
}

// EmbeddingsNames returns the registered embeddings provider names.
func (r *Registry) EmbeddingsNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.embeddingsProviders))
	for name := range r.embeddingsProviders {
		names = append(names, name)
	}
	return names
}
