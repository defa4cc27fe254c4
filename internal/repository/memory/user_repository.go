// Package memory holds process-local repository implementations.
package memory

import (
	"context"
	"fmt"
	"sync"

	"user-records/internal/domain"
	"user-records/internal/repository"
)

// UserRepository stores users in a map. Returned users are the stored
// instances, so changes made through them are visible to later lookups.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[int64]*domain.User
	order  []int64
	nextID int64
}

func NewUserRepository() repository.UserRepository {
	return &UserRepository{
		users:  make(map[int64]*domain.User),
		nextID: 1,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	if user == nil {
		return 0, repository.ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.users[id] = user
	r.order = append(r.order, id)
	return id, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, repository.ErrUserNotFound)
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id])
	}
	return users, nil
}
