package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/userkit/internal/core/domain"
	"github.com/custodia-labs/userkit/internal/core/ports/driven"
	"github.com/custodia-labs/userkit/internal/core/ports/driving"
	"github.com/custodia-labs/userkit/internal/logger"
)

// Ensure UserRegistry implements the interface.
var _ driving.UserRegistry = (*UserRegistry)(nil)

// UserRegistry maintains the ordered list of users for the lifetime of the instance.
// Uniqueness of IDs is not enforced; lookups return the first match.
type UserRegistry struct {
	store driven.UserStore
}

// NewUserRegistry creates an empty registry backed by store.
func NewUserRegistry(store driven.UserStore) *UserRegistry {
	return &UserRegistry{store: store}
}

// AddUser appends user to the end of the sequence.
func (r *UserRegistry) AddUser(ctx context.Context, user domain.User) {
	if err := r.store.Append(ctx, user); err != nil {
		logger.Warn("Failed to add user %q: %v", user.ID, err)
		return
	}
	logger.Debug("Added user %q", user.ID)
}

// RemoveUser drops every user whose ID equals id.
func (r *UserRegistry) RemoveUser(ctx context.Context, id string) {
	removed, err := r.store.RemoveAll(ctx, id)
	if err != nil {
		logger.Warn("Failed to remove user %q: %v", id, err)
		return
	}
	logger.Debug("Removed %d user(s) with id %q", removed, id)
}

// GetUser returns the first user with the given ID in insertion order.
func (r *UserRegistry) GetUser(ctx context.Context, id string) (*domain.User, bool) {
	user, err := r.store.First(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Failed to look up user %q: %v", id, err)
		}
		return nil, false
	}
	return user, true
}

// ListUsers returns the users in insertion order.
func (r *UserRegistry) ListUsers(ctx context.Context) []domain.User {
	users, err := r.store.List(ctx)
	if err != nil {
		logger.Warn("Failed to list users: %v", err)
		return []domain.User{}
	}
	return users
}

// Len returns the number of stored users.
func (r *UserRegistry) Len(ctx context.Context) int {
	return len(r.ListUsers(ctx))
}
