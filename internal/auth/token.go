package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/eduhire/placement-be/internal/models"
)

var (
	// ErrTokenExpired means the signature was valid but the token is past its
	// expiry. Callers treat it the same as ErrInvalidToken on the wire; the
	// distinction exists for logging.
	ErrTokenExpired = errors.New("token expired")
	// ErrInvalidToken covers malformed, tampered, or otherwise unverifiable
	// tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the token payload: identity claims plus the registered iat/exp.
type Claims struct {
	UserID uuid.UUID   `json:"id"`
	Role   models.Role `json:"role"`
	Email  string      `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed HS256 JWTs under a shared secret.
// It knows nothing about HTTP or storage.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a manager with the provided secret and lifetime.
// Config guarantees the secret is non-empty before this is ever called.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user's id, role, and email.
func (t *TokenManager) Issue(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the Principal carried by the
// token. Expired tokens yield ErrTokenExpired; everything else that fails
// yields ErrInvalidToken.
func (t *TokenManager) Verify(tokenStr string) (Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(tok *jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, ErrTokenExpired
		}
		return Principal{}, ErrInvalidToken
	}
	if !token.Valid || !claims.Role.Valid() {
		return Principal{}, ErrInvalidToken
	}

	p := Principal{
		UserID: claims.UserID,
		Role:   claims.Role,
		Email:  claims.Email,
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}
	return p, nil
}
