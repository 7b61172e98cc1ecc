package testutil

import (
	"github.com/AntonioJCosta/zen/internal/core/domain/command"
	"github.com/AntonioJCosta/zen/internal/core/ports"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
// Every resolved command it receives is recorded in ExecuteCalls.
type MockCommandExecutor struct {
	ExecuteFunc  func(resolved string) (command.Outcome, error)
	ExecuteCalls []string
}

// Execute calls the mock ExecuteFunc, succeeding with exit code 0 if it is unset.
func (m *MockCommandExecutor) Execute(resolved string) (command.Outcome, error) {
	m.ExecuteCalls = append(m.ExecuteCalls, resolved)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(resolved)
	}
	return command.Outcome{}, nil
}

var _ ports.CommandExecutor = (*MockCommandExecutor)(nil)
