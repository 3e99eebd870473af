// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinel errors from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.Username == "" || cfg.Auth.Password == "" {
		return fmt.Errorf("%w: username and password are required", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAuthConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	u, err := url.Parse(cfg.Upstream.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidUpstreamConfigs, cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout <= 0 || cfg.Upstream.VsCurrency == "" {
		return ErrInvalidUpstreamConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return nil
}
