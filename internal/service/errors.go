package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrInvalidUserIDInToken    = errors.New("invalid user ID in token")

	ErrPersistence = errors.New("persistence failure")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
