package usecase

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// SessionClaims carries the user id alongside the registered claims. The
// token is the entire session; nothing is persisted server-side.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// TokenIssuer signs and verifies session tokens with a process-wide
// shared secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer fails when the secret is empty so a misconfigured server
// refuses to start instead of failing per request.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("token issuer: signing secret is required")
	}
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// TTL returns the validity window of issued tokens.
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token asserting the given user id, valid for the
// configured TTL from now.
func (i *TokenIssuer) Issue(userID string) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID: userID,
	})
	return token.SignedString(i.secret)
}

// Verify checks signature and expiry and returns the asserted user id.
func (i *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return i.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || claims.UserID == "" {
		return "", ErrTokenInvalid
	}
	return claims.UserID, nil
}
