package usecase

import (
	"context"

	"estate-backend/internal/listing/domain"
	"estate-backend/internal/listing/dto"
	"estate-backend/internal/listing/repository"
	"estate-backend/pkg/apperror"
	"estate-backend/pkg/fuzzy"
)

// suggestScanLimit caps how many recent listings feed the fuzzy matcher.
const suggestScanLimit = 200

// listingUsecase implements ListingUsecase
type listingUsecase struct {
	listingRepo repository.ListingRepository
}

// NewListingUsecase creates a new instance of listingUsecase
func NewListingUsecase(listingRepo repository.ListingRepository) ListingUsecase {
	return &listingUsecase{
		listingRepo: listingRepo,
	}
}

func (u *listingUsecase) Create(ctx context.Context, ownerID string, req *dto.ListingRequest) (*domain.Listing, error) {
	listing := listingFromRequest(req)
	listing.OwnerID = ownerID

	if err := u.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (u *listingUsecase) Update(ctx context.Context, callerID, id string, req *dto.ListingRequest) (*domain.Listing, error) {
	existing, err := u.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Listing not found")
	}
	if existing.OwnerID != callerID {
		return nil, apperror.Forbidden("You can only update your own listings")
	}

	listing := listingFromRequest(req)
	listing.ID = existing.ID
	listing.OwnerID = existing.OwnerID
	listing.CreatedAt = existing.CreatedAt

	if err := u.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (u *listingUsecase) Delete(ctx context.Context, callerID, id string) error {
	existing, err := u.listingRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Listing not found")
	}
	if existing.OwnerID != callerID {
		return apperror.Forbidden("You can only delete your own listings")
	}

	return u.listingRepo.Delete(ctx, id)
}

func (u *listingUsecase) Get(ctx context.Context, id string) (*domain.Listing, error) {
	listing, err := u.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, apperror.NotFound("Listing not found")
	}
	return listing, nil
}

func (u *listingUsecase) Search(ctx context.Context, q *dto.SearchQuery) ([]domain.Listing, error) {
	return u.listingRepo.Search(ctx, q)
}

// Suggest fuzzy-matches the term against recent listing names and
// addresses, tolerating typos the regex search would miss.
func (u *listingUsecase) Suggest(ctx context.Context, term string, max int) ([]string, error) {
	if term == "" {
		return []string{}, nil
	}

	recent, err := u.listingRepo.Search(ctx, &dto.SearchQuery{Limit: suggestScanLimit})
	if err != nil {
		return nil, err
	}

	candidates := make([]fuzzy.Candidate, len(recent))
	for i, l := range recent {
		candidates[i] = fuzzy.Candidate{Name: l.Name, Address: l.Address}
	}
	return fuzzy.Suggest(term, candidates, max), nil
}

func listingFromRequest(req *dto.ListingRequest) *domain.Listing {
	return &domain.Listing{
		Name:          req.Name,
		Description:   req.Description,
		Address:       req.Address,
		RegularPrice:  req.RegularPrice,
		DiscountPrice: req.DiscountPrice,
		Bathrooms:     req.Bathrooms,
		Bedrooms:      req.Bedrooms,
		Furnished:     req.Furnished,
		Parking:       req.Parking,
		Type:          req.Type,
		Offer:         req.Offer,
		ImageURLs:     req.ImageURLs,
	}
}
