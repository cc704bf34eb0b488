// File: services/directory/directory.go
package directory

import (
	"errors"
	"sync"

	"estateconnect/models"
)

// ErrNameRequired is returned when an append request carries no name.
var ErrNameRequired = errors.New("Name is required")

// Store is the in-memory seed user directory. State lives in process memory
// only; a restart resets it to the two seed records. The monotonic counter
// makes ID assignment safe under concurrent writers; with no delete
// operation it always equals the pre-call collection length + 1.
type Store struct {
	mu     sync.Mutex
	users  []models.DirectoryUser
	nextID int
}

// NewStore returns a directory seeded with the two starter records.
func NewStore() *Store {
	return &Store{
		users: []models.DirectoryUser{
			{ID: 1, Name: "Alice"},
			{ID: 2, Name: "Bob"},
		},
		nextID: 3,
	}
}

// List returns all records in insertion order.
func (s *Store) List() []models.DirectoryUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.DirectoryUser, len(s.users))
	copy(out, s.users)
	return out
}

// Add appends a record with the next ID. An empty name is rejected and
// leaves the collection unchanged.
func (s *Store) Add(name string) (models.DirectoryUser, error) {
	if name == "" {
		return models.DirectoryUser{}, ErrNameRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user := models.DirectoryUser{ID: s.nextID, Name: name}
	s.nextID++
	s.users = append(s.users, user)
	return user, nil
}

// Len returns the current collection length.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
