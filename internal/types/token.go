package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims in a device token
type TokenClaims struct {
	jwt.RegisteredClaims
	Device string `json:"device"`
}
