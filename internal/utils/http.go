package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/coin-gateway/models"
)

// internalErrorBody is written when a response value cannot be encoded.
var internalErrorBody = []byte(`{"message":"Internal Server Error"}`)

// WriteJSON encodes data and writes it with the given status code.
//
// The body is encoded before any header is written, so an encoding failure
// still produces a JSON 500 response instead of a half-written body.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) error {
	body, err := json.Marshal(data)
	if err != nil {
		statusCode, body = http.StatusInternalServerError, internalErrorBody
		err = fmt.Errorf("encoding response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, writeErr := w.Write(body); writeErr != nil && err == nil {
		err = fmt.Errorf("writing response body: %w", writeErr)
	}
	return err
}

// WriteError writes {"message": message} with the given status code.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_ = WriteJSON(w, models.ErrorResponse{Message: message}, statusCode)
}
