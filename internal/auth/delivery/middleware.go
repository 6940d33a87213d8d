package delivery

import (
	"github.com/gin-gonic/gin"

	"estate-backend/internal/auth/usecase"
	"estate-backend/pkg/apperror"
)

// ContextUserIDKey is where the middleware stores the authenticated
// user id in the gin context.
const ContextUserIDKey = "userID"

// AuthMiddleware authenticates requests from the session cookie and
// injects the asserted user id into the context.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			Fail(c, apperror.Unauthorized("Unauthorized"))
			c.Abort()
			return
		}

		userID, err := authUsecase.ValidateToken(token)
		if err != nil {
			Fail(c, apperror.Forbidden("Forbidden"))
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}
