package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"estate-backend/internal/auth/domain"
	"estate-backend/pkg/apperror"
)

// memoryUserRepository is an in-memory UserRepository for tests and local
// runs without a database. It enforces the same uniqueness contract the
// Mongo indexes do.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User // keyed by hex id
}

// NewMemoryUserRepository creates an empty in-memory repository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]*domain.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return apperror.Duplicate("Username or email already exists")
		}
	}

	user.ID = bson.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	clone := *user
	r.users[user.ID.Hex()] = &clone
	return nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.ID.Hex()]
	if !ok {
		return apperror.NotFound("User not found")
	}

	for id, u := range r.users {
		if id == user.ID.Hex() {
			continue
		}
		if u.Email == user.Email || u.Username == user.Username {
			return apperror.Duplicate("Username or email already exists")
		}
	}

	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now()
	clone := *user
	r.users[user.ID.Hex()] = &clone
	return nil
}

func (r *memoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
	return nil
}
