package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers forged, malformed, and expired tokens alike;
// callers are not told which of the three they presented.
var ErrInvalidToken = errors.New("invalid token")

// DefaultTokenTTL applies when a caller does not request an explicit lifetime.
const DefaultTokenTTL = 15 * time.Minute

// Claims are the statements embedded in an access token. The registered
// subject carries the user's email.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 signed bearer tokens.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Issue creates a token for the given identity expiring exactly ttl from now.
// A zero or negative ttl yields a token that is already expired.
func (m *TokenManager) Issue(email, userID string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	})
	return token.SignedString(m.secret)
}

// IssueDefault issues a token with the default lifetime.
func (m *TokenManager) IssueDefault(email, userID string) (string, error) {
	return m.Issue(email, userID, DefaultTokenTTL)
}

// Validate checks signature and expiry and returns the embedded claims.
// Any failure is reported as ErrInvalidToken.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
