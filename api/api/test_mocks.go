/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package
 * Authors: Zachary Bower
 */

package api

import (
	"context"

	"nba-scorigami/api/store"
)

// MockStore implements the store Interface for testing
type MockStore struct {
	// Guesses stored by "username|gameId"
	Guesses map[string]store.Guess
	// Inserted keeps insertion order for listing methods
	Inserted []string

	// Error injection for testing error paths
	EnsureIndexesError  error
	StoreGuessError     error
	GetUserGuessesError error
	GetAllGuessesError  error

	DatabaseName string
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// mockClient implements the minimal Client interface needed for tests
type mockClient struct{}

func (m *mockClient) Disconnect(ctx context.Context) error {
	return nil
}

// NewMockStore creates a new MockStore with default values
func NewMockStore() *MockStore {
	return &MockStore{
		Guesses:      make(map[string]store.Guess),
		DatabaseName: "test_db",
	}
}

// EnsureIndexes mock implementation
func (m *MockStore) EnsureIndexes() error {
	return m.EnsureIndexesError
}

// StoreGuess mock implementation. Mirrors the real store's duplicate rule
func (m *MockStore) StoreGuess(guess store.Guess) error {
	if m.StoreGuessError != nil {
		return m.StoreGuessError
	}
	key := guess.Username + "|" + guess.GameId
	if _, exists := m.Guesses[key]; exists {
		return store.ErrDuplicateGuess
	}
	m.Guesses[key] = guess
	m.Inserted = append(m.Inserted, key)
	return nil
}

// GetUserGuesses mock implementation
func (m *MockStore) GetUserGuesses(username string) ([]store.Guess, error) {
	if m.GetUserGuessesError != nil {
		return nil, m.GetUserGuessesError
	}
	var guesses []store.Guess
	for _, key := range m.Inserted {
		if m.Guesses[key].Username == username {
			guesses = append(guesses, m.Guesses[key])
		}
	}
	return guesses, nil
}

// GetAllGuesses mock implementation
func (m *MockStore) GetAllGuesses() ([]store.Guess, error) {
	if m.GetAllGuessesError != nil {
		return nil, m.GetAllGuessesError
	}
	var guesses []store.Guess
	for _, key := range m.Inserted {
		guesses = append(guesses, m.Guesses[key])
	}
	return guesses, nil
}

// GetDatabase mock implementation
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{name: m.DatabaseName}
}

// GetClient mock implementation
func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}

// Ensure MockStore implements the store Interface
var _ store.Interface = (*MockStore)(nil)
