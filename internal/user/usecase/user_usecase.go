package usecase

import (
	"context"

	authdomain "estate-backend/internal/auth/domain"
	authrepo "estate-backend/internal/auth/repository"
	authusecase "estate-backend/internal/auth/usecase"
	listingdomain "estate-backend/internal/listing/domain"
	listingrepo "estate-backend/internal/listing/repository"
	"estate-backend/internal/user/dto"
	"estate-backend/pkg/apperror"
)

// userUsecase implements UserUsecase
type userUsecase struct {
	userRepo    authrepo.UserRepository
	listingRepo listingrepo.ListingRepository
	hasher      authusecase.PasswordHasher
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo authrepo.UserRepository, listingRepo listingrepo.ListingRepository, hasher authusecase.PasswordHasher) UserUsecase {
	return &userUsecase{
		userRepo:    userRepo,
		listingRepo: listingRepo,
		hasher:      hasher,
	}
}

func (u *userUsecase) UpdateProfile(ctx context.Context, callerID, targetID string, req *dto.UpdateRequest) (*authdomain.Profile, error) {
	if callerID != targetID {
		return nil, apperror.Unauthorized("You can only update your own account")
	}

	user, err := u.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.Password != "" {
		digest, err := u.hasher.Hash(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = digest
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.Profile(), nil
}

func (u *userUsecase) DeleteAccount(ctx context.Context, callerID, targetID string) error {
	if callerID != targetID {
		return apperror.Unauthorized("You can only delete your own account")
	}
	return u.userRepo.Delete(ctx, targetID)
}

func (u *userUsecase) GetProfile(ctx context.Context, id string) (*authdomain.Profile, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user.Profile(), nil
}

func (u *userUsecase) Listings(ctx context.Context, callerID, targetID string) ([]listingdomain.Listing, error) {
	if callerID != targetID {
		return nil, apperror.Unauthorized("You can only view your own listings")
	}
	return u.listingRepo.FindByOwner(ctx, targetID)
}
