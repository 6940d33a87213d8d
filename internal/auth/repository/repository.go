package repository

import (
	"context"

	"estate-backend/internal/auth/domain"
)

// UserRepository is the storage contract for credential records. Find
// methods return (nil, nil) when no record matches; Create maps a unique
// index violation to apperror.Duplicate.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
