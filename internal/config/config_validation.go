// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// supportedTokenAlgorithms lists the HMAC algorithms accepted for signing.
var supportedTokenAlgorithms = map[string]struct{}{
	"HS256": {},
	"HS384": {},
	"HS512": {},
}

const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if _, ok := supportedTokenAlgorithms[cfg.App.TokenAlgorithm]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedTokenAlgorithm, cfg.App.TokenAlgorithm)
	}

	if cfg.App.TokenExpirationHours <= 0 {
		return ErrInvalidTokenExpiration
	}

	if cfg.App.PasswordHashCost < minPasswordHashCost || cfg.App.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: %d", ErrInvalidPasswordHashCost, cfg.App.PasswordHashCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDSN
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidServerPort, cfg.Server.Port)
	}

	return nil
}
