package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long a session token stays valid after issuance
const TokenTTL = time.Hour

var ErrInvalidToken = errors.New("token invalid or expired")

// Claims carried by every session token. Role is copied from the
// user record at issuance and trusted for the token's lifetime.
type Claims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies session tokens. Validity is purely
// cryptographic, nothing is persisted server-side.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = TokenTTL
	}

	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (t *TokenService) Issue(userID, role string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})

	return token.SignedString(t.secret)
}

// Validate rejects tampered, malformed and expired tokens alike.
func (t *TokenService) Validate(raw string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(raw, claims, func(tk *jwt.Token) (any, error) {
		if tk.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", tk.Method.Alg())
		}

		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Refresh exchanges a still-valid token for one with a fresh expiry
// and the same identity claims.
func (t *TokenService) Refresh(raw string) (string, error) {
	claims, err := t.Validate(raw)
	if err != nil {
		return "", err
	}

	return t.Issue(claims.UserID, claims.Role)
}
