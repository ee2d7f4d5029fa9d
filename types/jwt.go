package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the access-token payload. UserID identifies the operator
// account; expiry, issue and not-before times ride in the registered
// claims.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}
