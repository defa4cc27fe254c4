package repository

import (
	"context"
	"errors"

	"user-records/internal/domain"
)

var (
	// ErrUserNotFound is returned when no user is registered under an ID.
	ErrUserNotFound = errors.New("user not found")
	// ErrNilUser is returned when Create is called without a user.
	ErrNilUser = errors.New("user is required")
)

// UserRepository keeps registered users and hands out their IDs.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
