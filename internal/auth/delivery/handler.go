package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-backend/internal/auth/dto"
	"estate-backend/internal/auth/usecase"
	"estate-backend/pkg/apperror"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "access_token"

// AuthHandler exposes the auth flows over HTTP and owns the session
// cookie attributes.
type AuthHandler struct {
	authUsecase   usecase.AuthUsecase
	secureCookies bool
}

// NewAuthHandler creates a new instance of AuthHandler. secureCookies
// should be true in production so the cookie is HTTPS-only.
func NewAuthHandler(authUsecase usecase.AuthUsecase, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authUsecase:   authUsecase,
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.Signup(c.Request.Context(), &req); err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, "User created successfully")
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperror.BadRequest(err.Error()))
		return
	}

	profile, token, err := h.authUsecase.Signin(c.Request.Context(), &req)
	if err != nil {
		Fail(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, profile)
}

func (h *AuthHandler) GoogleSignin(c *gin.Context) {
	var req dto.GoogleSigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperror.BadRequest(err.Error()))
		return
	}

	profile, token, err := h.authUsecase.GoogleSignin(c.Request.Context(), &req)
	if err != nil {
		Fail(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, profile)
}

// Signout clears the cookie unconditionally. No token validation happens,
// so signing out an already-signed-out client still succeeds.
func (h *AuthHandler) Signout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, "User has been logged out!")
}

// ClearSessionCookie removes the session cookie on the response. Shared
// with the user handler for account deletion.
func (h *AuthHandler) ClearSessionCookie(c *gin.Context) {
	h.clearSessionCookie(c)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, token, int(h.authUsecase.SessionTTL().Seconds()), "/", "", h.secureCookies, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", h.secureCookies, true)
}

// Fail writes the error envelope shared by every handler. Expected
// failures keep their status and message; anything else becomes a
// generic 500.
func Fail(c *gin.Context, err error) {
	status, message := apperror.StatusOf(err)
	c.JSON(status, gin.H{
		"success":    false,
		"statusCode": status,
		"message":    message,
	})
}
