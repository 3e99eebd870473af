package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/coin-gateway/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidTokenParams is returned when a token is requested without an
	// issuer, subject, sign key or with a non-positive duration.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

	// ErrEmptySubject is returned when a verified token carries no subject.
	ErrEmptySubject = errors.New("empty subject error")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the username the token was issued for
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration, rounded up to whole seconds
//     so the token never expires before tokenDuration has elapsed
//   - ID        (jti): a random UUID, so two tokens for the same subject
//     never share a signed string
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("coin-gateway", "patil", time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(ceilToTimePrecision(now.Add(tokenDuration))),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ceilToTimePrecision rounds t up to the precision NumericDate keeps.
func ceilToTimePrecision(t time.Time) time.Time {
	if truncated := t.Truncate(jwt.TimePrecision); truncated.Before(t) {
		return truncated.Add(jwt.TimePrecision)
	}
	return t
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Algorithm check: only HS256 is accepted
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim presence and check against now
//   - Subject (sub) claim presence
//
// Errors wrap the underlying jwt errors, so callers can match
// [jwt.ErrTokenExpired] with errors.Is.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now time.Time) (models.Token, error) {
	var token models.Token
	_, err := jwt.ParseWithClaims(tokenString, &token, func(t *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if token.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	token.SignedString = tokenString
	return token, nil
}
