package ports

import "github.com/AntonioJCosta/zen/internal/core/domain/alias"

// PredefinedAliasProvider defines the interface for sourcing aliases
// from a predefined list, like a file shared between machines.
type PredefinedAliasProvider interface {
	// GetPredefinedAliases loads aliases from a predefined source.
	GetPredefinedAliases() ([]alias.Alias, error)
}
