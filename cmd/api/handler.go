package api

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"estate-backend/internal/auth/delivery"
	authUsecase "estate-backend/internal/auth/usecase"
	listingUsecase "estate-backend/internal/listing/usecase"
	userUsecase "estate-backend/internal/user/usecase"
	"estate-backend/pkg/apperror"
	"estate-backend/pkg/config"
	"estate-backend/pkg/storage"
)

// Handler owns the HTTP server wiring.
type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	listingUsecase listingUsecase.ListingUsecase
	userUsecase    userUsecase.UserUsecase
	uploader       *storage.Uploader
	config         *config.Config
}

// NewHandler creates a new instance of Handler
func NewHandler(auth authUsecase.AuthUsecase, listings listingUsecase.ListingUsecase, users userUsecase.UserUsecase, uploader *storage.Uploader, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    auth,
		listingUsecase: listings,
		userUsecase:    users,
		uploader:       uploader,
		config:         cfg,
	}
}

// Start builds the engine and listens on addr.
func (h *Handler) Start(addr string) error {
	gin.SetMode(h.config.GinMode)
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = h.config.CORSAllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsConfig))

	secureCookies := h.config.GinMode == gin.ReleaseMode
	SetupRoutes(r, h.authUsecase, h.listingUsecase, h.userUsecase, h.uploader, secureCookies)

	h.setupStatic(r)

	return r.Run(addr)
}

// setupStatic serves the SPA build. Unknown non-API paths fall back to
// index.html so client-side routing works on hard refresh.
func (h *Handler) setupStatic(r *gin.Engine) {
	staticDir := h.config.StaticDir
	if staticDir == "" {
		return
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			delivery.Fail(c, apperror.NotFound("Not found"))
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	})
}
