package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-backend/internal/auth/delivery"
	authUsecase "estate-backend/internal/auth/usecase"
	listingDelivery "estate-backend/internal/listing/delivery"
	listingUsecase "estate-backend/internal/listing/usecase"
	userDelivery "estate-backend/internal/user/delivery"
	userUsecase "estate-backend/internal/user/usecase"
	"estate-backend/pkg/storage"
)

// SetupRoutes wires every endpoint onto the engine.
func SetupRoutes(r *gin.Engine, auth authUsecase.AuthUsecase, listings listingUsecase.ListingUsecase, users userUsecase.UserUsecase, uploader *storage.Uploader, secureCookies bool) {
	authHandler := delivery.NewAuthHandler(auth, secureCookies)
	listingHandler := listingDelivery.NewListingHandler(listings)
	userHandler := userDelivery.NewUserHandler(users, authHandler)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is up and running")
	})

	api := r.Group("/api")
	{
		// Auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", authHandler.Signup)
			authRoutes.POST("/signin", authHandler.Signin)
			authRoutes.POST("/google", authHandler.GoogleSignin)
			authRoutes.POST("/signout", authHandler.Signout)
		}

		// User routes (protected)
		userRoutes := api.Group("/user")
		userRoutes.Use(delivery.AuthMiddleware(auth))
		{
			userRoutes.POST("/update/:id", userHandler.Update)
			userRoutes.DELETE("/delete/:id", userHandler.Delete)
			userRoutes.GET("/listings/:id", userHandler.Listings)
			userRoutes.GET("/:id", userHandler.Get)
		}

		// Listing routes (reads are public, writes require auth)
		listingRoutes := api.Group("/listing")
		{
			listingRoutes.POST("/create", delivery.AuthMiddleware(auth), listingHandler.Create)
			listingRoutes.POST("/update/:id", delivery.AuthMiddleware(auth), listingHandler.Update)
			listingRoutes.DELETE("/delete/:id", delivery.AuthMiddleware(auth), listingHandler.Delete)
			listingRoutes.GET("/get/:id", listingHandler.Get)
			listingRoutes.GET("/get", listingHandler.Search)
			listingRoutes.GET("/suggest", listingHandler.Suggest)
		}

		// Photo uploads (protected; absent when no bucket is configured)
		if uploader != nil {
			uploadHandler := NewUploadHandler(uploader)
			api.POST("/upload/presign", delivery.AuthMiddleware(auth), uploadHandler.Presign)
		}
	}
}
