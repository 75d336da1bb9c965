// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client of the go-task-keeper HTTP API.
//
// The primary abstraction is [ServerAdapter], which hides the JSON envelope,
// bearer token handling and error decoding from its callers. Failed calls
// return an [*APIError] that matches the sentinel values of errors.go with
// [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the go-task-keeper server.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent task requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Signup registers a new account. On success the issued token is stored
	// via SetToken and the account is returned.
	Signup(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Signin authenticates an existing account. On success the issued token
	// is stored via SetToken and the account is returned.
	Signin(ctx context.Context, credentials models.Credentials) (models.User, error)

	// CreateTask creates a task owned by the authenticated account.
	CreateTask(ctx context.Context, input models.TaskInput) (models.Task, error)

	// ListTasks returns every task of the authenticated account, newest first.
	ListTasks(ctx context.Context) ([]models.Task, error)

	// GetTask returns one task of the authenticated account.
	GetTask(ctx context.Context, taskID uuid.UUID) (models.Task, error)

	// UpdateTask replaces the title and description of a task.
	UpdateTask(ctx context.Context, taskID uuid.UUID, input models.TaskInput) (models.Task, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, taskID uuid.UUID) error

	// ToggleTask flips the completion flag of a task.
	ToggleTask(ctx context.Context, taskID uuid.UUID) (models.Task, error)

	// Health calls the liveness endpoint.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Info calls the root endpoint.
	Info(ctx context.Context) (models.InfoResponse, error)
}
