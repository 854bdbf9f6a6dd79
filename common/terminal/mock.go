package terminal

import (
	"github.com/stretchr/testify/mock"
)

// MockTerminal provides a mock implementation of Terminal for testing.
type MockTerminal struct {
	mock.Mock
}

// Ensure MockTerminal implements Terminal.
var _ Terminal = (*MockTerminal)(nil)

// Exec mocks the Exec method.
func (m *MockTerminal) Exec(name string, args ...string) (string, error) {
	callArgs := m.Called(name, args)
	return callArgs.String(0), callArgs.Error(1)
}

// GetWd mocks the GetWd method.
func (m *MockTerminal) GetWd() (string, error) {
	callArgs := m.Called()
	return callArgs.String(0), callArgs.Error(1)
}
