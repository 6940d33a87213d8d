package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"estate-backend/internal/listing/domain"
	"estate-backend/internal/listing/dto"
)

// sortFields maps client sort keys to stored field names. Unknown keys
// fall back to creation time.
var sortFields = map[string]string{
	"createdAt":    "created_at",
	"regularPrice": "regular_price",
}

// listingRepository implements ListingRepository on a Mongo collection
type listingRepository struct {
	collection *mongo.Collection
}

// NewListingRepository creates a new instance of listingRepository
func NewListingRepository(db *mongo.Database) ListingRepository {
	return &listingRepository{
		collection: db.Collection("listings"),
	}
}

func (r *listingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	if listing.ID.IsZero() {
		listing.ID = bson.NewObjectID()
	}
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, listing)
	return err
}

func (r *listingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var listing domain.Listing
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Listing, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}

	listings := []domain.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	listing.UpdatedAt = time.Now()

	_, err := r.collection.UpdateByID(ctx, listing.ID, bson.M{"$set": bson.M{
		"name":           listing.Name,
		"description":    listing.Description,
		"address":        listing.Address,
		"regular_price":  listing.RegularPrice,
		"discount_price": listing.DiscountPrice,
		"bathrooms":      listing.Bathrooms,
		"bedrooms":       listing.Bedrooms,
		"furnished":      listing.Furnished,
		"parking":        listing.Parking,
		"type":           listing.Type,
		"offer":          listing.Offer,
		"image_urls":     listing.ImageURLs,
		"updated_at":     listing.UpdatedAt,
	}})
	return err
}

func (r *listingRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *listingRepository) Search(ctx context.Context, q *dto.SearchQuery) ([]domain.Listing, error) {
	filter := bson.M{}

	if q.SearchTerm != "" {
		filter["name"] = bson.M{"$regex": q.SearchTerm, "$options": "i"}
	}
	if q.Offer != nil {
		filter["offer"] = *q.Offer
	}
	if q.Furnished != nil {
		filter["furnished"] = *q.Furnished
	}
	if q.Parking != nil {
		filter["parking"] = *q.Parking
	}
	if q.Type != "" && q.Type != "all" {
		filter["type"] = q.Type
	}

	sortField, ok := sortFields[q.Sort]
	if !ok {
		sortField = "created_at"
	}
	direction := -1
	if q.Order == "asc" {
		direction = 1
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 9
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: sortField, Value: direction}}).
		SetSkip(q.StartIndex).
		SetLimit(limit))
	if err != nil {
		return nil, err
	}

	listings := []domain.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}
