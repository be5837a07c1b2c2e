package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims will be encoded inside the token
type AuthClaims struct {
	UserID string `json:"user_id"`
	// Standard claims (sub, exp, iss, iat) are embedded here
	jwt.RegisteredClaims
}
