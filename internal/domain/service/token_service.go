package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for operator tokens.
type Claims struct {
	Subject string   `json:"sub_id"`
	Roles   []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService validates bearer tokens presented on the admin surface.
// Tokens are issued by an external identity provider sharing the signing secret.
type TokenService interface {
	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
