package driving

import (
	"context"

	"github.com/custodia-labs/userkit/internal/core/domain"
)

// UserRegistry maintains the in-memory list of users.
type UserRegistry interface {
	// AddUser appends a user. Duplicate IDs are accepted.
	AddUser(ctx context.Context, user domain.User)

	// RemoveUser drops every user with the given ID. No match is a no-op.
	RemoveUser(ctx context.Context, id string)

	// GetUser returns the first user with the given ID in insertion order.
	// The boolean is false when no user matches.
	GetUser(ctx context.Context, id string) (*domain.User, bool)

	// ListUsers returns the users in insertion order.
	ListUsers(ctx context.Context) []domain.User

	// Len returns the number of stored users.
	Len(ctx context.Context) int
}
