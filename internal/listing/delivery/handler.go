package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authDelivery "estate-backend/internal/auth/delivery"
	"estate-backend/internal/listing/dto"
	"estate-backend/internal/listing/usecase"
	"estate-backend/pkg/apperror"
)

// ListingHandler exposes listing CRUD and search over HTTP.
type ListingHandler struct {
	listingUsecase usecase.ListingUsecase
}

// NewListingHandler creates a new instance of ListingHandler
func NewListingHandler(listingUsecase usecase.ListingUsecase) *ListingHandler {
	return &ListingHandler{
		listingUsecase: listingUsecase,
	}
}

func (h *ListingHandler) Create(c *gin.Context) {
	var req dto.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		authDelivery.Fail(c, apperror.BadRequest(err.Error()))
		return
	}

	listing, err := h.listingUsecase.Create(c.Request.Context(), c.GetString(authDelivery.ContextUserIDKey), &req)
	if err != nil {
		authDelivery.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

func (h *ListingHandler) Update(c *gin.Context) {
	var req dto.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		authDelivery.Fail(c, apperror.BadRequest(err.Error()))
		return
	}

	listing, err := h.listingUsecase.Update(c.Request.Context(), c.GetString(authDelivery.ContextUserIDKey), c.Param("id"), &req)
	if err != nil {
		authDelivery.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) Delete(c *gin.Context) {
	err := h.listingUsecase.Delete(c.Request.Context(), c.GetString(authDelivery.ContextUserIDKey), c.Param("id"))
	if err != nil {
		authDelivery.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, "Listing has been deleted!")
}

func (h *ListingHandler) Get(c *gin.Context) {
	listing, err := h.listingUsecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		authDelivery.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) Search(c *gin.Context) {
	q := &dto.SearchQuery{
		SearchTerm: c.Query("searchTerm"),
		Offer:      boolFilter(c.Query("offer")),
		Furnished:  boolFilter(c.Query("furnished")),
		Parking:    boolFilter(c.Query("parking")),
		Type:       c.DefaultQuery("type", "all"),
		Sort:       c.DefaultQuery("sort", "createdAt"),
		Order:      c.DefaultQuery("order", "desc"),
		Limit:      intQuery(c, "limit", 9),
		StartIndex: intQuery(c, "startIndex", 0),
	}

	listings, err := h.listingUsecase.Search(c.Request.Context(), q)
	if err != nil {
		authDelivery.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) Suggest(c *gin.Context) {
	names, err := h.listingUsecase.Suggest(c.Request.Context(), c.Query("searchTerm"), int(intQuery(c, "limit", 5)))
	if err != nil {
		authDelivery.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, names)
}

// boolFilter maps an absent, "false" or "all" parameter to nil, matching
// records with either value.
func boolFilter(value string) *bool {
	if value == "" || value == "false" || value == "all" {
		return nil
	}
	v := value == "true"
	return &v
}

func intQuery(c *gin.Context, key string, fallback int64) int64 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
