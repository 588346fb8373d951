package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are the claims carried by a backend-issued access token.
type AccessClaims struct {
	UserID   string `json:"sub"`
	Email    string `json:"email,omitempty"`
	UserType string `json:"user_type,omitempty"`
	HasStore bool   `json:"has_store,omitempty"`
	StoreID  string `json:"store_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the marketplace backend.
// The service never issues tokens itself.
type TokenService interface {
	// ValidateAccessToken checks signature and expiry and returns the claims.
	ValidateAccessToken(tokenString string) (*AccessClaims, error)
}
