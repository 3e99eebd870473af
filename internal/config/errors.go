package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates missing credentials, sign key or a
	// non-positive token duration.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or request
	// timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUpstreamConfigs indicates an unusable upstream base URL,
	// timeout or quote currency.
	ErrInvalidUpstreamConfigs = errors.New("invalid upstream configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
