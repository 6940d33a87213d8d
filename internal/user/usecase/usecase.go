package usecase

import (
	"context"

	authdomain "estate-backend/internal/auth/domain"
	listingdomain "estate-backend/internal/listing/domain"
	"estate-backend/internal/user/dto"
)

// UserUsecase covers profile management. Mutations are self-only; reads
// of other profiles are allowed for signed-in users.
type UserUsecase interface {
	UpdateProfile(ctx context.Context, callerID, targetID string, req *dto.UpdateRequest) (*authdomain.Profile, error)
	DeleteAccount(ctx context.Context, callerID, targetID string) error
	GetProfile(ctx context.Context, id string) (*authdomain.Profile, error)
	Listings(ctx context.Context, callerID, targetID string) ([]listingdomain.Listing, error)
}
