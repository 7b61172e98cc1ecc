package testutil

import "github.com/AntonioJCosta/zen/internal/core/ports"

// MockSelector is a mock implementation of ports.Selector.
type MockSelector struct {
	AvailableFunc func() bool
	SelectFunc    func(entries []ports.SelectionEntry) (ports.SelectionEntry, bool, error)

	// SelectCalls records the entries offered on each Select.
	SelectCalls [][]ports.SelectionEntry
}

func (m *MockSelector) Available() bool {
	if m.AvailableFunc != nil {
		return m.AvailableFunc()
	}
	return true
}

func (m *MockSelector) Select(entries []ports.SelectionEntry) (ports.SelectionEntry, bool, error) {
	m.SelectCalls = append(m.SelectCalls, entries)
	if m.SelectFunc != nil {
		return m.SelectFunc(entries)
	}
	return ports.SelectionEntry{}, false, nil // Default behavior: user cancelled
}

var _ ports.Selector = (*MockSelector)(nil)
