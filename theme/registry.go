package theme

import (
	"errors"
	"sync"
)

// ErrUnknownTheme is returned when a theme name is not registered.
var ErrUnknownTheme = errors.New("theme: unknown theme")

// Registry maps names to themes, remembering registration order. It is safe
// for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	order  []Name
	themes map[Name]Theme
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{themes: make(map[Name]Theme)}
}

// Register adds t under t.Name, replacing any earlier entry with that name.
func (r *Registry) Register(t Theme) {
	r.set(t.Name, t)
}

// Alias registers name as another entry for the theme registered under
// target. It returns ErrUnknownTheme if target is missing.
func (r *Registry) Alias(name, target Name) error {
	t, ok := r.Lookup(target)
	if !ok {
		return ErrUnknownTheme
	}
	r.set(name, t)
	return nil
}

func (r *Registry) set(name Name, t Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.themes[name]; !exists {
		r.order = append(r.order, name)
	}
	r.themes[name] = t
}

// Lookup returns the theme registered under name.
func (r *Registry) Lookup(name Name) (Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.themes[name]
	return t, ok
}

// Get returns the theme registered under name, or the default theme.
func (r *Registry) Get(name Name) Theme {
	if t, ok := r.Lookup(name); ok {
		return t
	}
	if t, ok := r.Lookup(Default); ok {
		return t
	}
	return ClassicClean
}

// Names returns every registered name, aliases included, in registration
// order.
func (r *Registry) Names() []Name {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Name(nil), r.order...)
}

// All returns each distinct theme once, in registration order. Aliases that
// point at an already listed theme are skipped.
func (r *Registry) All() []Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[Name]bool, len(r.order))
	var out []Theme
	for _, n := range r.order {
		t := r.themes[n]
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		out = append(out, t)
	}
	return out
}
