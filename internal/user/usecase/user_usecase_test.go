package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "estate-backend/internal/auth/domain"
	authrepo "estate-backend/internal/auth/repository"
	authusecase "estate-backend/internal/auth/usecase"
	listingdomain "estate-backend/internal/listing/domain"
	listingrepo "estate-backend/internal/listing/repository"
	"estate-backend/internal/user/dto"
	"estate-backend/pkg/apperror"
)

func setup(t *testing.T) (UserUsecase, authrepo.UserRepository, listingrepo.ListingRepository, *authdomain.User) {
	t.Helper()

	users := authrepo.NewMemoryUserRepository()
	listings := listingrepo.NewMemoryListingRepository()
	uc := NewUserUsecase(users, listings, authusecase.NewPasswordHasher())

	user := &authdomain.User{
		Username:     "jane",
		Email:        "jane@example.com",
		PasswordHash: "digest",
		Avatar:       authdomain.DefaultAvatar,
	}
	require.NoError(t, users.Create(context.Background(), user))

	return uc, users, listings, user
}

func TestUpdateProfile_SelfOnly(t *testing.T) {
	uc, _, _, user := setup(t)

	_, err := uc.UpdateProfile(context.Background(), "someone-else", user.ID.Hex(), &dto.UpdateRequest{Username: "evil"})
	status, _ := apperror.StatusOf(err)
	assert.Equal(t, http.StatusUnauthorized, status)

	profile, err := uc.UpdateProfile(context.Background(), user.ID.Hex(), user.ID.Hex(), &dto.UpdateRequest{Username: "janet"})
	require.NoError(t, err)
	assert.Equal(t, "janet", profile.Username)
	assert.Equal(t, "jane@example.com", profile.Email)
}

func TestUpdateProfile_RehashesPassword(t *testing.T) {
	uc, users, _, user := setup(t)

	_, err := uc.UpdateProfile(context.Background(), user.ID.Hex(), user.ID.Hex(), &dto.UpdateRequest{Password: "new-secret"})
	require.NoError(t, err)

	stored, err := users.FindByID(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	assert.NotEqual(t, "digest", stored.PasswordHash)
	assert.True(t, authrepo.CheckPasswordHash("new-secret", stored.PasswordHash))
}

func TestUpdateProfile_DuplicateUsername(t *testing.T) {
	uc, users, _, user := setup(t)
	require.NoError(t, users.Create(context.Background(), &authdomain.User{
		Username: "taken", Email: "taken@example.com", PasswordHash: "digest",
	}))

	_, err := uc.UpdateProfile(context.Background(), user.ID.Hex(), user.ID.Hex(), &dto.UpdateRequest{Username: "taken"})
	status, _ := apperror.StatusOf(err)
	assert.Equal(t, http.StatusConflict, status)
}

func TestDeleteAccount_SelfOnly(t *testing.T) {
	uc, users, _, user := setup(t)

	err := uc.DeleteAccount(context.Background(), "someone-else", user.ID.Hex())
	status, _ := apperror.StatusOf(err)
	assert.Equal(t, http.StatusUnauthorized, status)

	require.NoError(t, uc.DeleteAccount(context.Background(), user.ID.Hex(), user.ID.Hex()))

	stored, err := users.FindByID(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestGetProfile(t *testing.T) {
	uc, _, _, user := setup(t)

	profile, err := uc.GetProfile(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "jane", profile.Username)

	_, err = uc.GetProfile(context.Background(), "64f000000000000000000000")
	status, _ := apperror.StatusOf(err)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListings_SelfOnly(t *testing.T) {
	uc, _, listings, user := setup(t)
	require.NoError(t, listings.Create(context.Background(), &listingdomain.Listing{
		OwnerID: user.ID.Hex(), Name: "Sunny Villa", Type: listingdomain.TypeSale,
	}))

	_, err := uc.Listings(context.Background(), "someone-else", user.ID.Hex())
	status, _ := apperror.StatusOf(err)
	assert.Equal(t, http.StatusUnauthorized, status)

	got, err := uc.Listings(context.Background(), user.ID.Hex(), user.ID.Hex())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sunny Villa", got[0].Name)
}
