package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/userkit/internal/core/domain"
	"github.com/custodia-labs/userkit/internal/core/ports/driven"
)

// Ensure UserStore implements the interface.
var _ driven.UserStore = (*UserStore)(nil)

// UserStore is an in-memory implementation of driven.UserStore.
// Users are kept in a slice so insertion order survives.
type UserStore struct {
	mu    sync.RWMutex
	users []domain.User
}

// NewUserStore creates a new, empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		users: []domain.User{},
	}
}

// Append adds a user to the end of the sequence.
func (s *UserStore) Append(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	return nil
}

// RemoveAll replaces the sequence with one that omits every user with the given ID.
func (s *UserStore) RemoveAll(_ context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]domain.User, 0, len(s.users))
	for i := range s.users {
		if s.users[i].ID != id {
			kept = append(kept, s.users[i])
		}
	}
	removed := len(s.users) - len(kept)
	s.users = kept
	return removed, nil
}

// First returns the earliest-inserted user with the given ID.
// The record is copied; its Fields map is shared with the stored user.
func (s *UserStore) First(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns a copy of the sequence in insertion order.
func (s *UserStore) List(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.User, len(s.users))
	copy(result, s.users)
	return result, nil
}
