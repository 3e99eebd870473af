// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrTokenMissing is reported whenever no bearer token can be taken from
	// the request. Every header parsing error below wraps it.
	ErrTokenMissing = errors.New("token is missing")

	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = fmt.Errorf("%w: empty `Authorization` header", ErrTokenMissing)

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not exactly two space-separated parts.
	ErrInvalidAuthorizationHeader = fmt.Errorf("%w: invalid `Authorization` header", ErrTokenMissing)

	// ErrInvalidAuthorizationScheme is returned when the scheme is not
	// "Bearer" (case-insensitive).
	ErrInvalidAuthorizationScheme = fmt.Errorf("%w: unsupported `Authorization` scheme", ErrTokenMissing)

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = fmt.Errorf("%w: empty token in `Authorization` header", ErrTokenMissing)
)

// ErrInvalidJSON is returned when a request body cannot be decoded.
var ErrInvalidJSON = errors.New("invalid JSON was passed")
