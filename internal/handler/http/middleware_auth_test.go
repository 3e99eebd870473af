package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/coin-gateway/internal/service"
	"github.com/MKhiriev/coin-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lower-case scheme", header: "bearer abc", wantToken: "abc"},
		{name: "upper-case scheme", header: "BEARER abc", wantToken: "abc"},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "token only", header: "abc.def.ghi", wantErr: ErrInvalidAuthorizationHeader},
		{name: "too many parts", header: "Bearer abc def", wantErr: ErrInvalidAuthorizationHeader},
		{name: "double space", header: "Bearer  abc", wantErr: ErrInvalidAuthorizationHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationScheme},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrTokenMissing)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth_MissingOrMalformedHeader(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "no header"},
		{name: "wrong scheme", headers: map[string]string{"Authorization": "Token abc"}},
		{name: "no token", headers: map[string]string{"Authorization": "Bearer"}},
		{name: "empty token", headers: map[string]string{"Authorization": "Bearer "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rr := doRequest(router, http.MethodGet, "/coins", "", tt.headers)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Token is missing", decodeMessage(t, rr))
		})
	}
}

func TestAuth_TokenRejected(t *testing.T) {
	tests := []struct {
		name        string
		parseErr    error
		wantMessage string
	}{
		{name: "expired", parseErr: service.ErrTokenExpired, wantMessage: "Token expired"},
		{name: "invalid", parseErr: service.ErrTokenInvalid, wantMessage: "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			deps.auth.EXPECT().ParseToken(gomock.Any(), "some-token").Return(models.Token{}, tt.parseErr)

			rr := doRequest(router, http.MethodGet, "/categories", "", authHeader("some-token"))

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
		})
	}
}

func TestAuth_ValidTokenReachesHandler(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.expectValidToken()
	deps.coins.EXPECT().ListCategories(gomock.Any()).Return([]models.Category{}, nil)

	rr := doRequest(router, http.MethodGet, "/categories", "", authHeader(validTestToken))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestAuth_PublicRoutesNeedNoToken(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/health", "/version"} {
		rr := doRequest(router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}
}
