package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "estate-backend/internal/auth/delivery"
	"estate-backend/internal/user/dto"
	"estate-backend/internal/user/usecase"
	"estate-backend/pkg/apperror"
)

// UserHandler exposes profile management over HTTP. All routes sit behind
// the auth middleware.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	authHandler *authDelivery.AuthHandler
}

// NewUserHandler creates a new instance of UserHandler. The auth handler
// is needed to clear the session cookie on account deletion.
func NewUserHandler(userUsecase usecase.UserUsecase, authHandler *authDelivery.AuthHandler) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		authHandler: authHandler,
	}
}

func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		authDelivery.Fail(c, apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.userUsecase.UpdateProfile(c.Request.Context(), c.GetString(authDelivery.ContextUserIDKey), c.Param("id"), &req)
	if err != nil {
		authDelivery.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) Delete(c *gin.Context) {
	err := h.userUsecase.DeleteAccount(c.Request.Context(), c.GetString(authDelivery.ContextUserIDKey), c.Param("id"))
	if err != nil {
		authDelivery.Fail(c, err)
		return
	}

	h.authHandler.ClearSessionCookie(c)
	c.JSON(http.StatusOK, "User has been deleted!")
}

func (h *UserHandler) Get(c *gin.Context) {
	profile, err := h.userUsecase.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		authDelivery.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) Listings(c *gin.Context) {
	listings, err := h.userUsecase.Listings(c.Request.Context(), c.GetString(authDelivery.ContextUserIDKey), c.Param("id"))
	if err != nil {
		authDelivery.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}
