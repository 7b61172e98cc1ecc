package aliasengine

import (
	"fmt"

	"github.com/AntonioJCosta/zen/internal/core/domain/alias"
	"github.com/AntonioJCosta/zen/internal/core/domain/command"
	"github.com/AntonioJCosta/zen/internal/core/domain/registry"
	"github.com/AntonioJCosta/zen/internal/core/ports"
)

/*
service owns one registry for the duration of a single invocation.
Mutations are saved immediately; nothing is shared between processes except
the artifact itself, and concurrent invocations are not synchronized (the
last save wins).
*/
type service struct {
	store    ports.RegistryStore
	executor ports.CommandExecutor
	registry *registry.Registry
}

// Load creates an alias engine by reading the registry from store.
// It panics if store or executor is nil.
func Load(store ports.RegistryStore, executor ports.CommandExecutor) (ports.AliasEngine, error) {
	if store == nil {
		panic("registry store cannot be nil")
	}
	if executor == nil {
		panic("command executor cannot be nil")
	}

	reg, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load alias registry: %w", err)
	}
	if reg == nil {
		reg = registry.New()
	}
	return &service{store: store, executor: executor, registry: reg}, nil
}

// RegisterAlias implements the ports.AliasEngine interface.
func (s *service) RegisterAlias(name, template string) error {
	s.registry.Add(name, template)
	if err := s.store.Save(s.registry); err != nil {
		return fmt.Errorf("failed to register alias '%s': %w", name, err)
	}
	return nil
}

// ExecuteAlias implements the ports.AliasEngine interface.
func (s *service) ExecuteAlias(name string, args []string) (ports.ExecuteResult, error) {
	template, ok := s.registry.Get(name)
	if !ok {
		return ports.ExecuteResult{Status: ports.ExecuteNotFound}, nil
	}

	resolved := command.Substitute(template, args)
	outcome, err := s.executor.Execute(resolved)
	if err != nil {
		return ports.ExecuteResult{}, fmt.Errorf("failed to execute alias '%s': %w", name, err)
	}
	return ports.ExecuteResult{Status: ports.Executed, Command: resolved, Outcome: outcome}, nil
}

// RemoveAlias implements the ports.AliasEngine interface.
// When the save fails the alias is already gone from memory, so Removed is
// returned together with the error.
func (s *service) RemoveAlias(name string) (ports.RemoveResult, error) {
	if !s.registry.Remove(name) {
		return ports.RemoveNotPresent, nil
	}
	if err := s.store.Save(s.registry); err != nil {
		return ports.Removed, fmt.Errorf("failed to remove alias '%s': %w", name, err)
	}
	return ports.Removed, nil
}

// ImportAliases implements the ports.AliasEngine interface.
// Entries without a name are skipped. Nothing is saved when nothing was imported.
func (s *service) ImportAliases(aliases []alias.Alias) (int, error) {
	imported := 0
	for _, a := range aliases {
		if a.Name == "" {
			continue
		}
		s.registry.Add(a.Name, a.Command)
		imported++
	}
	if imported == 0 {
		return 0, nil
	}
	if err := s.store.Save(s.registry); err != nil {
		return 0, fmt.Errorf("failed to import %d alias(es): %w", imported, err)
	}
	return imported, nil
}

func (s *service) ListAliases() []alias.Alias {
	return s.registry.Entries()
}

func (s *service) IsEmpty() bool {
	return s.registry.IsEmpty()
}

func (s *service) ConfigPath() string {
	return s.store.Path()
}
