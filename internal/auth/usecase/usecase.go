package usecase

import (
	"context"
	"time"

	"estate-backend/internal/auth/domain"
	"estate-backend/internal/auth/dto"
)

// AuthUsecase orchestrates the signup, signin and federated signin flows.
type AuthUsecase interface {
	// Signup creates a local account. No token is issued; the user signs
	// in separately.
	Signup(ctx context.Context, req *dto.SignupRequest) error

	// Signin authenticates a local account and returns the profile plus a
	// signed session token.
	Signin(ctx context.Context, req *dto.SigninRequest) (*domain.Profile, string, error)

	// GoogleSignin signs an existing account in, or creates one on first
	// use with synthesized credentials.
	GoogleSignin(ctx context.Context, req *dto.GoogleSigninRequest) (*domain.Profile, string, error)

	// ValidateToken verifies a session token and returns the user id it
	// asserts.
	ValidateToken(token string) (string, error)

	// SessionTTL is the validity window of issued tokens, used for the
	// cookie max-age.
	SessionTTL() time.Duration
}
