package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"estate-backend/internal/auth/domain"
	"estate-backend/internal/auth/dto"
	"estate-backend/pkg/apperror"
)

// fakeUserRepo is an in-memory UserRepository enforcing the unique-index
// contract of the real store.
type fakeUserRepo struct {
	users   []*domain.User
	failAll bool
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.failAll {
		return assertError
	}
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return apperror.Duplicate("Username or email already exists")
		}
	}
	user.ID = bson.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.failAll {
		return nil, assertError
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user
			return nil
		}
	}
	return apperror.NotFound("User not found")
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	for i, u := range r.users {
		if u.ID.Hex() == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

var assertError = errors.New("store unavailable")

// spyHasher records every call so tests can prove which code paths touch
// password material.
type spyHasher struct {
	hashCalls   int
	verifyCalls int
}

func (h *spyHasher) Hash(password string) (string, error) {
	h.hashCalls++
	return "digest:" + password, nil
}

func (h *spyHasher) Verify(password, digest string) bool {
	h.verifyCalls++
	return digest == "digest:"+password
}

// fixedGenerator returns deterministic credentials.
type fixedGenerator struct {
	usernames []string
	next      int
}

func (g *fixedGenerator) Username(string) string {
	name := g.usernames[g.next%len(g.usernames)]
	g.next++
	return name
}

func (g *fixedGenerator) Password() string { return "throwaway-secret" }

func newTestUsecase(t *testing.T, repo *fakeUserRepo, hasher PasswordHasher, gen CredentialGenerator) AuthUsecase {
	t.Helper()
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	if hasher == nil {
		hasher = &spyHasher{}
	}
	if gen == nil {
		gen = &fixedGenerator{usernames: []string{"janedoeab12"}}
	}
	return NewAuthUsecase(repo, issuer, hasher, gen)
}

func TestSignup_CreatesUserWithoutToken(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newTestUsecase(t, repo, nil, nil)

	err := uc.Signup(context.Background(), &dto.SignupRequest{
		Username: "jane", Email: "jane@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	require.Len(t, repo.users, 1)
	assert.Equal(t, "digest:hunter22", repo.users[0].PasswordHash)
	assert.Equal(t, domain.DefaultAvatar, repo.users[0].Avatar)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newTestUsecase(t, repo, nil, nil)

	req := &dto.SignupRequest{Username: "jane", Email: "jane@example.com", Password: "hunter22"}
	require.NoError(t, uc.Signup(context.Background(), req))

	err := uc.Signup(context.Background(), &dto.SignupRequest{
		Username: "jane2", Email: "jane@example.com", Password: "hunter22",
	})

	status, _ := apperror.StatusOf(err)
	assert.Equal(t, http.StatusConflict, status)
	assert.Len(t, repo.users, 1)
}

func TestSignin_Success(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newTestUsecase(t, repo, nil, nil)
	require.NoError(t, uc.Signup(context.Background(), &dto.SignupRequest{
		Username: "jane", Email: "jane@example.com", Password: "hunter22",
	}))

	profile, token, err := uc.Signin(context.Background(), &dto.SigninRequest{
		Email: "jane@example.com", Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "jane", profile.Username)

	userID, err := uc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, userID)
}

func TestSignin_UnknownEmail(t *testing.T) {
	uc := newTestUsecase(t, &fakeUserRepo{}, nil, nil)

	_, token, err := uc.Signin(context.Background(), &dto.SigninRequest{
		Email: "ghost@example.com", Password: "whatever",
	})

	status, _ := apperror.StatusOf(err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Empty(t, token)
}

func TestSignin_WrongPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newTestUsecase(t, repo, nil, nil)
	require.NoError(t, uc.Signup(context.Background(), &dto.SignupRequest{
		Username: "jane", Email: "jane@example.com", Password: "hunter22",
	}))

	_, token, err := uc.Signin(context.Background(), &dto.SigninRequest{
		Email: "jane@example.com", Password: "wrong",
	})

	status, _ := apperror.StatusOf(err)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Empty(t, token)
}

func TestGoogleSignin_FirstUseCreatesAccount(t *testing.T) {
	repo := &fakeUserRepo{}
	hasher := &spyHasher{}
	uc := newTestUsecase(t, repo, hasher, nil)

	profile, token, err := uc.GoogleSignin(context.Background(), &dto.GoogleSigninRequest{
		Email: "jane@gmail.com", Name: "Jane Doe", Photo: "https://lh3.example/p.jpg",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.Len(t, repo.users, 1)
	assert.Equal(t, "janedoeab12", profile.Username)
	assert.Equal(t, "https://lh3.example/p.jpg", profile.Avatar)
	// The throwaway password is hashed, never compared.
	assert.Equal(t, 1, hasher.hashCalls)
	assert.Equal(t, 0, hasher.verifyCalls)
}

func TestGoogleSignin_ExistingEmailSkipsPasswordCheck(t *testing.T) {
	repo := &fakeUserRepo{}
	hasher := &spyHasher{}
	uc := newTestUsecase(t, repo, hasher, nil)
	require.NoError(t, uc.Signup(context.Background(), &dto.SignupRequest{
		Username: "jane", Email: "jane@example.com", Password: "hunter22",
	}))
	hasher.hashCalls = 0

	profile, token, err := uc.GoogleSignin(context.Background(), &dto.GoogleSigninRequest{
		Email: "jane@example.com", Name: "Jane Doe",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, "jane", profile.Username)
	assert.Len(t, repo.users, 1)
	// No password material is touched on the merge path.
	assert.Equal(t, 0, hasher.verifyCalls)
	assert.Equal(t, 0, hasher.hashCalls)
}

func TestGoogleSignin_UsernameCollisionRetries(t *testing.T) {
	repo := &fakeUserRepo{}
	gen := &fixedGenerator{usernames: []string{"janedoeab12", "janedoexy99"}}
	uc := newTestUsecase(t, repo, nil, gen)
	require.NoError(t, uc.Signup(context.Background(), &dto.SignupRequest{
		Username: "janedoeab12", Email: "other@example.com", Password: "hunter22",
	}))

	profile, _, err := uc.GoogleSignin(context.Background(), &dto.GoogleSigninRequest{
		Email: "jane@gmail.com", Name: "Jane Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "janedoexy99", profile.Username)
	assert.Len(t, repo.users, 2)
}

func TestSignin_StoreFailureIsNotClassified(t *testing.T) {
	repo := &fakeUserRepo{failAll: true}
	uc := newTestUsecase(t, repo, nil, nil)

	_, _, err := uc.Signin(context.Background(), &dto.SigninRequest{
		Email: "jane@example.com", Password: "hunter22",
	})
	require.Error(t, err)
}
