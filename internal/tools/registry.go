package tools

import (
	"net/http"
	"sort"
	"sync"
)

// Registry maps tool names to their HTTP handlers, safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	data map[string]http.Handler
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{data: make(map[string]http.Handler)}
}

// Register registers a handler for a tool. An existing handler with the
// same name is replaced.
func (r *Registry) Register(name string, h http.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[name] = h
}

// RegisterFunc registers a plain handler function for a tool.
func (r *Registry) RegisterFunc(name string, fn func(http.ResponseWriter, *http.Request)) {
	r.Register(name, http.HandlerFunc(fn))
}

// Get returns the handler registered under name, or (nil, false).
func (r *Registry) Get(name string) (http.Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.data[name]
	return h, ok
}

// List returns the sorted names of all registered tools.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.data))
	for name := range r.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Serve dispatches the request to the tool registered under name,
// answering 404 when the tool is unknown.
func (r *Registry) Serve(w http.ResponseWriter, req *http.Request, name string) {
	h, ok := r.Get(name)
	if !ok {
		WriteError(w, http.StatusNotFound, "tool not found: "+name)
		return
	}
	h.ServeHTTP(w, req)
}
