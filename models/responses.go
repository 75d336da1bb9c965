// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope is the uniform response shape of every JSON endpoint.
// Exactly one of Data or Error is non-nil.
type Envelope struct {
	Data    any            `json:"data"`
	Message *string        `json:"message"`
	Error   *ErrorResponse `json:"error"`
}

// ErrorResponse describes a failed request. Code is a stable machine-readable
// identifier (e.g. "TASK_NOT_FOUND"); Message is safe to show to end users.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// AuthResponse is the data payload of signup and signin.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// TaskResponse is the data payload of single-task endpoints.
type TaskResponse struct {
	Task Task `json:"task"`
}

// TaskListResponse is the data payload of the task listing endpoint.
type TaskListResponse struct {
	// Tasks is never nil so that an empty list serializes as [].
	Tasks []Task `json:"tasks"`

	// Count is the number of entries in Tasks.
	Count int `json:"count"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// InfoResponse is returned by the root endpoint.
type InfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Health  string `json:"health"`
}
