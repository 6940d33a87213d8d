package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"estate-backend/internal/auth/domain"
	"estate-backend/internal/auth/dto"
	"estate-backend/internal/auth/repository"
	"estate-backend/pkg/apperror"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo repository.UserRepository
	issuer   *TokenIssuer
	hasher   PasswordHasher
	creds    CredentialGenerator
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, issuer *TokenIssuer, hasher PasswordHasher, creds CredentialGenerator) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		issuer:   issuer,
		hasher:   hasher,
		creds:    creds,
	}
}

func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) error {
	digest, err := u.hasher.Hash(req.Password)
	if err != nil {
		return err
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: digest,
		Avatar:       domain.DefaultAvatar,
	}

	return u.userRepo.Create(ctx, user)
}

func (u *authUsecase) Signin(ctx context.Context, req *dto.SigninRequest) (*domain.Profile, string, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", apperror.NotFound("User not found")
	}

	if !u.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}

	token, err := u.issuer.Issue(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}

	return user.Profile(), token, nil
}

// GoogleSignin trusts the provider-verified email: when it matches an
// existing local account, that account is signed in without any password
// check. An attacker controlling a federated identity with a victim's
// email therefore gains the victim's account. This mirrors the historical
// behavior clients depend on; changing it requires verified email
// ownership before merging identities.
func (u *authUsecase) GoogleSignin(ctx context.Context, req *dto.GoogleSigninRequest) (*domain.Profile, string, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}

	if user == nil {
		user, err = u.createFederatedUser(ctx, req)
		if err != nil {
			return nil, "", err
		}
	}

	token, err := u.issuer.Issue(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}

	return user.Profile(), token, nil
}

func (u *authUsecase) createFederatedUser(ctx context.Context, req *dto.GoogleSigninRequest) (*domain.User, error) {
	digest, err := u.hasher.Hash(u.creds.Password())
	if err != nil {
		return nil, err
	}

	avatar := req.Photo
	if avatar == "" {
		avatar = domain.DefaultAvatar
	}

	user := &domain.User{
		Username:     u.creds.Username(req.Name),
		Email:        req.Email,
		PasswordHash: digest,
		Avatar:       avatar,
	}

	err = u.userRepo.Create(ctx, user)
	if isDuplicate(err) {
		// The random suffix can collide; one retry with a fresh suffix.
		// A second duplicate means the email itself is taken and the
		// failure surfaces as-is.
		user.Username = u.creds.Username(req.Name)
		err = u.userRepo.Create(ctx, user)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) ValidateToken(token string) (string, error) {
	return u.issuer.Verify(token)
}

func (u *authUsecase) SessionTTL() time.Duration {
	return u.issuer.TTL()
}

func isDuplicate(err error) bool {
	var appErr *apperror.Error
	return errors.As(err, &appErr) && appErr.Status == http.StatusConflict
}
