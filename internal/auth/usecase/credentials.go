package usecase

import (
	"crypto/rand"
	"strings"

	"estate-backend/internal/auth/repository"
)

// PasswordHasher is the one-way transform used for stored secrets.
// Injectable so tests can observe whether verification happens at all.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// bcryptHasher delegates to the repository bcrypt helpers.
type bcryptHasher struct{}

// NewPasswordHasher returns the bcrypt-backed hasher.
func NewPasswordHasher() PasswordHasher {
	return bcryptHasher{}
}

func (bcryptHasher) Hash(password string) (string, error) {
	return repository.HashPassword(password)
}

func (bcryptHasher) Verify(password, digest string) bool {
	return repository.CheckPasswordHash(password, digest)
}

// CredentialGenerator synthesizes credentials for accounts created through
// a federated sign-in, where the user never chose a username or password.
type CredentialGenerator interface {
	// Username derives a handle from the provider display name: lower-cased,
	// spaces stripped, with a random suffix to dodge collisions.
	Username(displayName string) string
	// Password returns a random throwaway secret. It is hashed and stored
	// but never disclosed, so the account stays unusable for local signin
	// until a password reset flow exists.
	Password() string
}

type randomCredentialGenerator struct{}

// NewCredentialGenerator returns the production random generator.
func NewCredentialGenerator() CredentialGenerator {
	return randomCredentialGenerator{}
}

const credentialAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func (randomCredentialGenerator) Username(displayName string) string {
	base := strings.ToLower(strings.Join(strings.Fields(displayName), ""))
	if base == "" {
		base = "user"
	}
	return base + randomString(4)
}

func (randomCredentialGenerator) Password() string {
	return randomString(16)
}

func randomString(n int) string {
	buf := make([]byte, n)
	// rand.Read on crypto/rand never fails on supported platforms
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = credentialAlphabet[int(b)%len(credentialAlphabet)]
	}
	return string(buf)
}
