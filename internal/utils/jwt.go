package utils // package utils provides helper functions for token creation and hashing

import (
	"time" // time utilities for computing expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// Identity is the set of claims embedded in a credential. The token is
// self-contained: everything downstream handlers need about the caller
// travels inside it, so there is no server-side session store and no way to
// revoke a token before it expires.
type Identity struct {
	ID    int    // user id
	Email string // user email
	Role  string // admin, farmer or buyer
	Name  string // display name
}

// NewToken builds and signs an HS256 JWT for a user. The claims carry the
// identity fields plus the standard exp and iat timestamps; ttlDays controls
// the validity window (7 days in the default configuration).
func NewToken(secret string, id Identity, ttlDays int) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":    id.ID,
		"email": id.Email,
		"role":  id.Role,
		"name":  id.Name,
		"exp":   now.Add(time.Duration(ttlDays) * 24 * time.Hour).Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
