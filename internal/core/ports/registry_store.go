package ports

import "github.com/AntonioJCosta/zen/internal/core/domain/registry"

/*
RegistryStore loads and saves the alias registry as a single artifact.
This is a driven port, implemented by a repository adapter.
*/
type RegistryStore interface {
	/*
	   Load reads the artifact. A missing artifact yields an empty registry and no error.
	   A malformed artifact fails with ErrDeserialization.
	*/
	Load() (*registry.Registry, error)

	// Save overwrites the artifact with the full registry.
	Save(r *registry.Registry) error

	// Path identifies the artifact for user-facing messages.
	Path() string
}
