package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/coin-gateway/internal/logger"
	"github.com/rs/zerolog"
)

const bearerScheme = "Bearer"

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken] and, on success, adds the
// token subject to the request-scoped logger before delegating to the next
// handler. Claims are not otherwise exposed to handlers.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - No token can be extracted from the header ([ErrTokenMissing]).
//   - The token has expired ([service.ErrTokenExpired]).
//   - The token is otherwise invalid ([service.ErrTokenInvalid]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("subject", token.Subject)
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// Every failure wraps [ErrTokenMissing]:
//   - [ErrEmptyAuthorizationHeader] if the header is absent or empty.
//   - [ErrInvalidAuthorizationHeader] if it is not exactly two parts.
//   - [ErrInvalidAuthorizationScheme] if the scheme is not Bearer.
//   - [ErrEmptyToken] if the token part is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	if !strings.EqualFold(parts[0], bearerScheme) {
		return "", ErrInvalidAuthorizationScheme
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
