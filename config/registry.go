// Package config provides a task registry and human-readable pipeline configuration.
package config

import (
	"fmt"
	"sync"

	"github.com/neopipe/neopipe/task"
)

// Registry maps task names to work functions. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	works map[string]task.Work
}

// NewRegistry returns an empty task registry.
func NewRegistry() *Registry {
	return &Registry{works: make(map[string]task.Work)}
}

// Register adds a work function under the given name. Overwrites any existing registration.
func (r *Registry) Register(name string, work task.Work) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.works == nil {
		r.works = make(map[string]task.Work)
	}
	r.works[name] = work
}

// Get returns the work function for name, or nil and false if not found.
func (r *Registry) Get(name string) (task.Work, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.works[name]
	return w, ok
}

// MustGet returns the work function for name, or panics if not found.
func (r *Registry) MustGet(name string) task.Work {
	w, ok := r.Get(name)
	if !ok {
		panic(fmt.Sprintf("config: task %q not registered", name))
	}
	return w
}

// Names returns all registered task names (unordered).
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.works))
	for n := range r.works {
		names = append(names, n)
	}
	return names
}
