package component

import (
	"fmt"
	"sort"
	"sync"

	"github.com/evanx/component-validator/logger"
)

// Registry is the registration boundary of the component convention.
// Each loadable module reference is bound to an Export that declares,
// up front, whether it is constructor- or factory-shaped.
type Registry struct {
	exports map[string]Export
	mu      sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		exports: make(map[string]Export),
	}
}

// Register binds a module reference to an export. The export is
// validated here so shape mistakes surface at registration, not load.
func (r *Registry) Register(ref string, exp Export) error {
	if ref == "" {
		return fmt.Errorf("module reference is empty")
	}
	if err := exp.Validate(); err != nil {
		return fmt.Errorf("module %s: %w", ref, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.exports[ref]; exists {
		return fmt.Errorf("module %s already registered", ref)
	}
	r.exports[ref] = exp

	logger.Debug("Module registered", map[string]interface{}{
		"module": ref,
		"kind":   string(exp.Kind),
	})
	return nil
}

// RegisterConstructor binds a constructor-shaped export.
func (r *Registry) RegisterConstructor(ref string, ctor Constructor) error {
	return r.Register(ref, Export{Kind: KindConstructor, Constructor: ctor})
}

// RegisterFactory binds a factory-shaped export.
func (r *Registry) RegisterFactory(ref string, factory Factory) error {
	return r.Register(ref, Export{Kind: KindFactory, Factory: factory})
}

// Resolve returns the export bound to a module reference.
func (r *Registry) Resolve(ref string) (Export, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exp, exists := r.exports[ref]
	if !exists {
		return Export{}, fmt.Errorf("module %s not registered", ref)
	}
	return exp, nil
}

// Refs returns all registered module references in sorted order.
func (r *Registry) Refs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	refs := make([]string, 0, len(r.exports))
	for ref := range r.exports {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}

// Len returns the number of registered exports.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.exports)
}
