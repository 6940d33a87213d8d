package main

import (
	"context"
	"log"

	api "estate-backend/cmd/api"
	authRepo "estate-backend/internal/auth/repository"
	authUsecase "estate-backend/internal/auth/usecase"
	listingRepo "estate-backend/internal/listing/repository"
	listingUsecase "estate-backend/internal/listing/usecase"
	userUsecase "estate-backend/internal/user/usecase"
	"estate-backend/pkg/config"
	"estate-backend/pkg/database"
	"estate-backend/pkg/storage"
)

func main() {
	// Load configuration; a missing signing secret or store URI is fatal
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// Initialize database
	client, db, err := database.NewMongoConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	log.Println("Connected to MongoDB")

	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal("Failed to create indexes: ", err)
	}

	// Initialize repositories (dependency injection)
	users := authRepo.NewUserRepository(db)
	listings := listingRepo.NewListingRepository(db)

	// Token issuer refuses to construct without a secret
	issuer, err := authUsecase.NewTokenIssuer(cfg.JWTSecret, cfg.SessionExpiry)
	if err != nil {
		log.Fatal("Failed to initialize token issuer: ", err)
	}

	// Initialize use cases
	hasher := authUsecase.NewPasswordHasher()
	authUsecaseInstance := authUsecase.NewAuthUsecase(users, issuer, hasher, authUsecase.NewCredentialGenerator())
	listingUsecaseInstance := listingUsecase.NewListingUsecase(listings)
	userUsecaseInstance := userUsecase.NewUserUsecase(users, listings, hasher)

	// Optional photo upload support
	uploader := storage.NewUploader(cfg)
	if uploader == nil {
		log.Println("S3_BUCKET not configured, photo upload endpoint disabled")
	}

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, listingUsecaseInstance, userUsecaseInstance, uploader, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
