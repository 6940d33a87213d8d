package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Listing types.
const (
	TypeSale = "sale"
	TypeRent = "rent"
)

// Listing is a property advertised for sale or rent.
type Listing struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID       string        `bson:"owner_id" json:"ownerId"`
	Name          string        `bson:"name" json:"name"`
	Description   string        `bson:"description" json:"description"`
	Address       string        `bson:"address" json:"address"`
	RegularPrice  int64         `bson:"regular_price" json:"regularPrice"`
	DiscountPrice int64         `bson:"discount_price" json:"discountPrice"`
	Bathrooms     int           `bson:"bathrooms" json:"bathrooms"`
	Bedrooms      int           `bson:"bedrooms" json:"bedrooms"`
	Furnished     bool          `bson:"furnished" json:"furnished"`
	Parking       bool          `bson:"parking" json:"parking"`
	Type          string        `bson:"type" json:"type"`
	Offer         bool          `bson:"offer" json:"offer"`
	ImageURLs     []string      `bson:"image_urls" json:"imageUrls"`
	CreatedAt     time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updatedAt"`
}
