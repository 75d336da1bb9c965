package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultTokenAlgorithm       = "HS256"
	DefaultTokenExpirationHours = 24
	DefaultTokenIssuer          = "go-task-keeper"
	DefaultPasswordHashCost     = 10
	DefaultVersion              = "1.0.0"

	DefaultHost           = "0.0.0.0"
	DefaultPort           = 8000
	DefaultAllowedOrigin  = "http://localhost:3000"
	DefaultRequestTimeout = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenAlgorithm:       DefaultTokenAlgorithm,
			TokenExpirationHours: DefaultTokenExpirationHours,
			TokenIssuer:          DefaultTokenIssuer,
			PasswordHashCost:     DefaultPasswordHashCost,
			Version:              DefaultVersion,
		},
		Server: Server{
			Host:           DefaultHost,
			Port:           DefaultPort,
			AllowedOrigin:  DefaultAllowedOrigin,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
