package usecase

import (
	"context"

	"estate-backend/internal/listing/domain"
	"estate-backend/internal/listing/dto"
)

// ListingUsecase holds the listing business rules: ownership checks on
// mutation, public reads, filtered search and typo-tolerant suggestions.
type ListingUsecase interface {
	Create(ctx context.Context, ownerID string, req *dto.ListingRequest) (*domain.Listing, error)
	Update(ctx context.Context, callerID, id string, req *dto.ListingRequest) (*domain.Listing, error)
	Delete(ctx context.Context, callerID, id string) error
	Get(ctx context.Context, id string) (*domain.Listing, error)
	Search(ctx context.Context, q *dto.SearchQuery) ([]domain.Listing, error)
	Suggest(ctx context.Context, term string, max int) ([]string, error)
}
