/*
Package registry defines the persistent alias-to-template mapping.
*/
package registry

import (
	"sort"

	"github.com/AntonioJCosta/zen/internal/core/domain/alias"
)

/*
Registry is the system's only durable state: a mapping from alias name to
command template. Keys are case-sensitive. Iteration order is not meaningful.
*/
type Registry struct {
	Commands map[string]string `toml:"commands"`
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{Commands: make(map[string]string)}
}

// Add inserts the alias or replaces its template if it already exists.
func (r *Registry) Add(name, template string) {
	if r.Commands == nil {
		r.Commands = make(map[string]string)
	}
	r.Commands[name] = template
}

// Get returns the template bound to name.
func (r *Registry) Get(name string) (string, bool) {
	template, ok := r.Commands[name]
	return template, ok
}

// Remove deletes name and reports whether it was present.
func (r *Registry) Remove(name string) bool {
	if _, ok := r.Commands[name]; !ok {
		return false
	}
	delete(r.Commands, name)
	return true
}

func (r *Registry) IsEmpty() bool {
	return len(r.Commands) == 0
}

func (r *Registry) Len() int {
	return len(r.Commands)
}

// Entries returns every binding sorted by alias name.
func (r *Registry) Entries() []alias.Alias {
	entries := make([]alias.Alias, 0, len(r.Commands))
	for name, template := range r.Commands {
		entries = append(entries, alias.Alias{Name: name, Command: template})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}
