package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"estate-backend/internal/listing/domain"
	"estate-backend/internal/listing/dto"
)

// memoryListingRepository is an in-memory ListingRepository for tests.
type memoryListingRepository struct {
	mu       sync.RWMutex
	listings map[string]*domain.Listing
}

// NewMemoryListingRepository creates an empty in-memory repository.
func NewMemoryListingRepository() ListingRepository {
	return &memoryListingRepository{listings: make(map[string]*domain.Listing)}
}

func (r *memoryListingRepository) Create(_ context.Context, listing *domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing.ID = bson.NewObjectID()
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = time.Now()

	clone := *listing
	r.listings[listing.ID.Hex()] = &clone
	return nil
}

func (r *memoryListingRepository) FindByID(_ context.Context, id string) (*domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if l, ok := r.listings[id]; ok {
		clone := *l
		return &clone, nil
	}
	return nil, nil
}

func (r *memoryListingRepository) FindByOwner(_ context.Context, ownerID string) ([]domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Listing{}
	for _, l := range r.listings {
		if l.OwnerID == ownerID {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryListingRepository) Update(_ context.Context, listing *domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.listings[listing.ID.Hex()]; ok {
		listing.CreatedAt = existing.CreatedAt
		listing.UpdatedAt = time.Now()
		clone := *listing
		r.listings[listing.ID.Hex()] = &clone
	}
	return nil
}

func (r *memoryListingRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.listings, id)
	return nil
}

func (r *memoryListingRepository) Search(_ context.Context, q *dto.SearchQuery) ([]domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []domain.Listing{}
	for _, l := range r.listings {
		if q.SearchTerm != "" && !strings.Contains(strings.ToLower(l.Name), strings.ToLower(q.SearchTerm)) {
			continue
		}
		if q.Offer != nil && l.Offer != *q.Offer {
			continue
		}
		if q.Furnished != nil && l.Furnished != *q.Furnished {
			continue
		}
		if q.Parking != nil && l.Parking != *q.Parking {
			continue
		}
		if q.Type != "" && q.Type != "all" && l.Type != q.Type {
			continue
		}
		matched = append(matched, *l)
	}

	asc := q.Order == "asc"
	byPrice := q.Sort == "regularPrice"
	sort.Slice(matched, func(i, j int) bool {
		var less bool
		if byPrice {
			less = matched[i].RegularPrice < matched[j].RegularPrice
		} else {
			less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	})

	start := q.StartIndex
	if start > int64(len(matched)) {
		start = int64(len(matched))
	}
	matched = matched[start:]

	limit := q.Limit
	if limit <= 0 {
		limit = 9
	}
	if int64(len(matched)) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}
