package testutil

import (
	"maps"

	"github.com/AntonioJCosta/zen/internal/core/domain/registry"
	"github.com/AntonioJCosta/zen/internal/core/ports"
)

// MockRegistryStore is a mock implementation of ports.RegistryStore.
// Without LoadFunc it loads an empty registry; without SaveFunc saves succeed.
type MockRegistryStore struct {
	LoadFunc func() (*registry.Registry, error)
	SaveFunc func(r *registry.Registry) error
	PathVal  string

	// SaveCalls records a snapshot of the commands passed to each Save.
	SaveCalls []map[string]string
}

func (m *MockRegistryStore) Load() (*registry.Registry, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return registry.New(), nil
}

func (m *MockRegistryStore) Save(r *registry.Registry) error {
	m.SaveCalls = append(m.SaveCalls, maps.Clone(r.Commands))
	if m.SaveFunc != nil {
		return m.SaveFunc(r)
	}
	return nil
}

func (m *MockRegistryStore) Path() string {
	if m.PathVal != "" {
		return m.PathVal
	}
	return "zen-config.toml"
}

// RegistryWith returns a LoadFunc serving a fresh registry with the given bindings.
func RegistryWith(commands map[string]string) func() (*registry.Registry, error) {
	return func() (*registry.Registry, error) {
		r := registry.New()
		for name, template := range commands {
			r.Add(name, template)
		}
		return r, nil
	}
}

var _ ports.RegistryStore = (*MockRegistryStore)(nil)
