// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque unique identifier of the account.
	// It is a random UUID so that accounts cannot be enumerated.
	UserID uuid.UUID `json:"id"`

	// Email is the normalized (trimmed, lower-cased) login of the account.
	// It is unique across all accounts.
	Email string `json:"email"`

	// HashedPassword is the bcrypt hash of the account password.
	// It is never serialized.
	HashedPassword string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every row mutation.
	// Not part of the public representation.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
