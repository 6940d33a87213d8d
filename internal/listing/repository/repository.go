package repository

import (
	"context"

	"estate-backend/internal/listing/domain"
	"estate-backend/internal/listing/dto"
)

// ListingRepository is the storage contract for listings. Find methods
// return (nil, nil) when no record matches.
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	FindByID(ctx context.Context, id string) (*domain.Listing, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q *dto.SearchQuery) ([]domain.Listing, error)
}
