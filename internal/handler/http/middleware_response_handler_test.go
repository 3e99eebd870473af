// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusBadGateway)
	w.WriteHeader(http.StatusGatewayTimeout)

	assert.Equal(t, http.StatusBadGateway, w.Status())
	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n, err := w.Write([]byte("hello"))

	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.Status())
	assert.Equal(t, 5, w.size)
}

func TestResponseWriter_AccumulatesSize(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _ = w.Write([]byte("abc"))
	_, _ = w.Write([]byte("de"))

	assert.Equal(t, 5, w.size)
}

func TestResponseWriter_StatusWithoutWrites(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Equal(t, http.StatusOK, w.Status())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
}
