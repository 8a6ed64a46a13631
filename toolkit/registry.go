// Copyright 2026 The glasskit Authors
// SPDX-License-Identifier: MIT

package toolkit

import (
	"errors"
	"sort"
	"sync"
)

// Factory creates a new Toolkit instance.
type Factory func() Toolkit

// RegistryEntry represents a registered toolkit.
type RegistryEntry struct {
	// Name is the unique identifier for this toolkit.
	Name string

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory creates toolkit instances.
	Factory Factory

	// Available reports if the toolkit can be used in this process.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered toolkits.
//
// Platform packages register themselves from init(), so importing a
// platform package is all it takes to make it selectable:
//
//	import _ "github.com/glasskit/glass/toolkit/cocoa"
//
// Example usage:
//
//	tk := toolkit.Default() // nil when no toolkit is available
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and Default.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a toolkit to the global registry.
//
// If available is nil, the toolkit is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a toolkit from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered toolkit names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available toolkits sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns a toolkit instance by name.
func Get(name string) (Toolkit, error) {
	return globalRegistry.Get(name)
}

// Default returns an instance of the best available toolkit, or nil when
// none is available on this platform.
func Default() Toolkit {
	return globalRegistry.Default()
}

// Register adds a toolkit to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a toolkit from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered toolkit names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available toolkits sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns a toolkit instance by name.
func (r *Registry) Get(name string) (Toolkit, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &UnavailableError{Name: name}
	}
	return entry.Factory(), nil
}

// Default returns an instance of the highest-priority available toolkit,
// or nil when none is available.
func (r *Registry) Default() Toolkit {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	for _, name := range available {
		if tk, err := r.Get(name); err == nil && tk != nil {
			return tk
		}
	}
	return nil
}

// sortedNames returns toolkit names sorted by priority (highest first).
// If onlyAvailable is true, filters to available toolkits only.
// Must be called with the lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoToolkitAvailable is returned when no toolkit is registered or
	// available on the current system.
	ErrNoToolkitAvailable = errors.New("toolkit: no toolkit available")
)

// NotFoundError indicates a named toolkit is not registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "toolkit: not found: " + e.Name
}

// UnavailableError indicates a toolkit exists but is not available.
type UnavailableError struct {
	Name string
}

func (e *UnavailableError) Error() string {
	return "toolkit: unavailable: " + e.Name
}
