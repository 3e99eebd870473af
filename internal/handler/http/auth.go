package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/coin-gateway/internal/logger"
	"github.com/MKhiriev/coin-gateway/models"
)

const maxLoginBodySize = 1 << 20

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLoginBodySize)).Decode(&creds); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("subject", token.Subject).Msg("user successfully logged in")

	writeJSON(w, r, models.TokenResponse{Token: token.SignedString})
}
