package store

import (
	"context"

	"github.com/BennoAlif/cats-social/internal/domain"
)

// UserStore defines the persistence operations for users.
type UserStore interface {
	// Create saves a new user and fills in the store-assigned ID and
	// CreatedAt. Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// FindOne looks up a single user matching the filter's present
	// predicates. Returns ErrUserNotFound when no row matches.
	FindOne(ctx context.Context, filter domain.UserFilter) (*domain.User, error)
}
