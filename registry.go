package matter

import (
	"fmt"
	"slices"
	"sync"
)

// Registry is an ordered collection of named handlers consulted during
// format detection. Registration order is significant: Detect returns
// the first handler whose detection matches, and replacing a name
// keeps its original position.
//
// A Registry is safe for concurrent readers once populated. Register
// is atomic with respect to readers, so a resolution running
// concurrently with a registration sees either the old or the new
// entry, never a partial one.
type Registry struct {
	mu       sync.RWMutex
	names    []string
	handlers map[string]Handler
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// NewDefaultRegistry returns a Registry populated with the built-in
// handlers: yaml, json and toml, consulted in that order.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("yaml", NewYAMLHandler())
	r.Register("json", NewJSONHandler())
	r.Register("toml", NewTOMLHandler())
	return r
}

// Register adds handler under name, or replaces the existing entry
// with that name in place.
func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.handlers == nil {
		r.handlers = make(map[string]Handler)
	}
	if _, ok := r.handlers[name]; !ok {
		r.names = append(r.names, name)
	}
	r.handlers[name] = h
}

// Lookup returns the handler registered under name, or
// ErrUnknownHandler.
func (r *Registry) Lookup(name string) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownHandler)
	}
	return h, nil
}

// Detect returns the first registered handler whose detection matches
// text, or nil when none does. A nil result means the document has no
// recognizable front matter, which is not an error.
func (r *Registry) Detect(text string) Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, name := range r.names {
		if h := r.handlers[name]; h.Detect(text) {
			return h
		}
	}
	return nil
}

// Names returns the registered handler names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.names)
}

// defaultHandler returns the handler used when a dump has no override
// and the post carries none: the yaml handler when registered,
// otherwise the first registered handler, otherwise nil.
func (r *Registry) defaultHandler() Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if h, ok := r.handlers["yaml"]; ok {
		return h
	}
	if len(r.names) > 0 {
		return r.handlers[r.names[0]]
	}
	return nil
}
