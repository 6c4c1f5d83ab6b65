package driven

import (
	"context"

	"github.com/custodia-labs/userkit/internal/core/domain"
)

// UserStore holds an ordered sequence of user records.
// Insertion order is preserved and duplicate IDs are allowed.
type UserStore interface {
	// Append adds a user to the end of the sequence.
	Append(ctx context.Context, user domain.User) error

	// RemoveAll drops every user with the given ID.
	// Returns the number of users removed; zero is not an error.
	RemoveAll(ctx context.Context, id string) (int, error)

	// First returns the earliest-inserted user with the given ID.
	// Returns domain.ErrNotFound if no user matches.
	First(ctx context.Context, id string) (*domain.User, error)

	// List returns a copy of the sequence in insertion order.
	List(ctx context.Context) ([]domain.User, error)
}
