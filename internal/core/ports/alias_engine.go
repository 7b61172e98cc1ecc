package ports

import (
	"github.com/AntonioJCosta/zen/internal/core/domain/alias"
	"github.com/AntonioJCosta/zen/internal/core/domain/command"
)

// ExecuteStatus tells whether an alias was found and run.
type ExecuteStatus int

const (
	ExecuteNotFound ExecuteStatus = iota
	Executed
)

// ExecuteResult describes one ExecuteAlias call.
type ExecuteResult struct {
	Status  ExecuteStatus
	Command string          // resolved command line; empty when not found
	Outcome command.Outcome // child exit status; zero when not found
}

// RemoveResult tells whether RemoveAlias deleted anything.
type RemoveResult int

const (
	RemoveNotPresent RemoveResult = iota
	Removed
)

// AliasEngine is the single entry point the front end uses to manage and run aliases.
type AliasEngine interface {
	// RegisterAlias binds name to template, replacing any previous binding, and persists.
	RegisterAlias(name, template string) error

	// ExecuteAlias resolves name with args and runs it. An unknown name is reported
	// as ExecuteNotFound without spawning anything.
	ExecuteAlias(name string, args []string) (ExecuteResult, error)

	// RemoveAlias deletes name and persists if it existed. A failed save still
	// reports Removed alongside the error.
	RemoveAlias(name string) (RemoveResult, error)

	// ImportAliases registers every alias in the list with a single save.
	// It returns how many were imported.
	ImportAliases(aliases []alias.Alias) (int, error)

	ListAliases() []alias.Alias
	IsEmpty() bool
	ConfigPath() string
}
