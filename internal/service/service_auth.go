// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles account creation, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and a PasswordHasher for
// password storage.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHasher hashes new passwords and verifies signin attempts.
	passwordHasher crypto.PasswordHasher

	// idGenerator assigns identifiers to new accounts.
	idGenerator IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenAlgorithm is the HMAC method name, e.g. "HS256".
	tokenAlgorithm string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for timestamps, token issuing and expiry checks.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and PasswordHasher and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, passwordHasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		idGenerator:    utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenAlgorithm: cfg.TokenAlgorithm,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration(),
		now:            time.Now,
		logger:         logger,
	}
}

// Signup creates a new account and issues its first token.
//
// The email is normalized (trimmed, lower-cased) before the uniqueness check.
// Returns:
//   - store.ErrEmailAlreadyExists if the email is taken, including the case
//     where a concurrent signup wins the race on the unique index.
//   - ErrPersistence for any other storage failure.
func (a *authService) Signup(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	email := validators.NormalizeEmail(credentials.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Debug().Str("func", "*authService.Signup").Msg("email already registered")
		return models.User{}, models.Token{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*authService.Signup").Msg("user search by email failed")
		return models.User{}, models.Token{}, persistenceError(err)
	}

	hashedPassword, err := a.passwordHasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := timestamp(a.now())
	user, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:         a.idGenerator.Generate(),
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", persistenceError(err))
	}

	token, err := a.createToken(user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("token creation failed")
		return models.User{}, models.Token{}, err
	}

	log.Info().Str("user_id", user.UserID.String()).Msg("account created")
	return user, token, nil
}

// Signin authenticates an existing account and issues a fresh token.
//
// An unknown email still costs one bcrypt comparison against the dummy hash,
// so the response time does not reveal whether the account exists. Both an
// unknown email and a wrong password return ErrInvalidCredentials.
func (a *authService) Signin(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, validators.NormalizeEmail(credentials.Email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			a.passwordHasher.Verify(credentials.Password, a.passwordHasher.DummyHash())
			log.Debug().Str("func", "*authService.Signin").Msg("unknown email")
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Signin").Msg("user search by email failed")
		return models.User{}, models.Token{}, persistenceError(err)
	}

	if !a.passwordHasher.Verify(credentials.Password, user.HashedPassword) {
		log.Debug().Str("func", "*authService.Signin").Str("user_id", user.UserID.String()).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.createToken(user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signin").Msg("token creation failed")
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// ResolveUser verifies tokenString and returns the account named by its
// subject. It never modifies state.
//
// Returns:
//   - ErrTokenIsExpired if the token is past its expiry.
//   - ErrTokenIsExpiredOrInvalid for any other verification failure.
//   - ErrInvalidUserIDInToken if the subject is not an account identifier.
//   - store.ErrUserNotFound if the account no longer exists.
func (a *authService) ResolveUser(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAlgorithm, a.now)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.ResolveUser").Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.User{}, ErrTokenIsExpired
		}
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	userID, err := token.GetUserID()
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.ResolveUser").Msg("token subject is not a user ID")
		return models.User{}, ErrInvalidUserIDInToken
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("func", "*authService.ResolveUser").Msg("user search by id failed")
		}
		return models.User{}, persistenceError(err)
	}

	return user, nil
}

func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey, a.tokenAlgorithm, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
