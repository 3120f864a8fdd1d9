package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the claims in the session token
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer creates and verifies signed session tokens. Tokens are
// not persisted server-side; expiry is the only invalidation mechanism
// besides explicit reissue.
type TokenIssuer struct {
	secret     []byte
	sessionTTL time.Duration
}

// NewTokenIssuer creates a TokenIssuer with the given HMAC secret and
// default session TTL.
func NewTokenIssuer(secret string, sessionTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), sessionTTL: sessionTTL}
}

// SessionTTL returns the default validity duration of issued tokens.
func (i *TokenIssuer) SessionTTL() time.Duration {
	return i.sessionTTL
}

// Issue produces a signed token embedding username, email and an
// absolute expiry of now + the default session TTL.
func (i *TokenIssuer) Issue(username, email string) (string, error) {
	return i.IssueWithTTL(username, email, i.sessionTTL)
}

// IssueWithTTL is Issue with an explicit validity duration.
func (i *TokenIssuer) IssueWithTTL(username, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "skillbarter-api",
			Subject:   "user_session",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify validates a session token and returns its claims. A bad
// signature, a malformed payload, and an elapsed expiry all fail.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenMalformed
	}
	return claims, nil
}
