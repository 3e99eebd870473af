package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is an access token issued by the gateway.
//
// It embeds [jwt.RegisteredClaims] so that a *Token can be handed directly to
// [jwt.ParseWithClaims] as the claims target. The subject claim carries the
// username the token was issued for.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature) that is
	// returned to the caller and sent back in the Authorization header.
	SignedString string `json:"-"`
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
