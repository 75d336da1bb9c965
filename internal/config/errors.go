package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration cannot be used to start the server.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was provided.
	ErrMissingTokenSignKey = errors.New("token sign key is not specified")
	// ErrUnsupportedTokenAlgorithm indicates a signing algorithm other than
	// HS256, HS384 or HS512.
	ErrUnsupportedTokenAlgorithm = errors.New("unsupported token algorithm")
	// ErrInvalidTokenExpiration indicates a non-positive token lifetime.
	ErrInvalidTokenExpiration = errors.New("token expiration must be positive")
	// ErrInvalidPasswordHashCost indicates a bcrypt cost outside [4, 31].
	ErrInvalidPasswordHashCost = errors.New("invalid password hash cost")
	// ErrMissingDSN indicates that no database connection string was provided.
	ErrMissingDSN = errors.New("database DSN is not specified")
	// ErrInvalidServerPort indicates a port outside [1, 65535].
	ErrInvalidServerPort = errors.New("invalid server port")
)
