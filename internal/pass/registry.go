package pass

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory builds a pass from its variant string ("" when none was given).
type Factory func(variant string) (Pass, error)

// Registry maps stable pass names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds name to f, replacing an earlier binding.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Lookup instantiates name with variant. Unknown names wrap ErrUnknownPass;
// a rejected variant wraps ErrBadVariant.
func (r *Registry) Lookup(name, variant string) (Pass, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPass, name)
	}
	p, err := f(variant)
	if err != nil {
		return nil, fmt.Errorf("%w: %s(%q): %w", ErrBadVariant, name, variant, err)
	}
	return p, nil
}

// Names lists the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Spec is a pass reference as written in configuration: "Name" or "Name:variant".
type Spec struct {
	Name    string
	Variant string
}

func (s Spec) String() string {
	if s.Variant == "" {
		return s.Name
	}
	return s.Name + ":" + s.Variant
}

// ParseSpec splits "Name:variant" at the first colon.
func ParseSpec(s string) Spec {
	name, variant, _ := strings.Cut(strings.TrimSpace(s), ":")
	return Spec{Name: strings.TrimSpace(name), Variant: variant}
}
