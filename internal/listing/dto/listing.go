package dto

// ListingRequest is the payload for create and update.
type ListingRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	RegularPrice  int64    `json:"regularPrice" binding:"required,min=0"`
	DiscountPrice int64    `json:"discountPrice" binding:"min=0"`
	Bathrooms     int      `json:"bathrooms" binding:"required,min=1"`
	Bedrooms      int      `json:"bedrooms" binding:"required,min=1"`
	Furnished     bool     `json:"furnished"`
	Parking       bool     `json:"parking"`
	Type          string   `json:"type" binding:"required,oneof=sale rent"`
	Offer         bool     `json:"offer"`
	ImageURLs     []string `json:"imageUrls" binding:"required,min=1,max=6"`
}

// SearchQuery mirrors the query parameters of the public search endpoint.
// Nil booleans mean "both": an absent filter matches everything.
type SearchQuery struct {
	SearchTerm string
	Offer      *bool
	Furnished  *bool
	Parking    *bool
	Type       string // "sale", "rent" or "all"
	Sort       string // createdAt or regularPrice
	Order      string // asc or desc
	Limit      int64
	StartIndex int64
}
