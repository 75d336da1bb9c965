// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do item owned by exactly one [User].
type Task struct {
	// ID is the opaque unique identifier of the task.
	ID uuid.UUID `json:"id"`

	// UserID references the owning account. It is always taken from the
	// authenticated session and never from a request payload.
	UserID uuid.UUID `json:"user_id"`

	// Title is the trimmed, non-blank task title (at most 500 characters).
	Title string `json:"title"`

	// Description is the optional trimmed description (at most 5000
	// characters). An empty description is stored as NULL.
	Description *string `json:"description"`

	// IsCompleted reports whether the task has been marked as done.
	IsCompleted bool `json:"is_completed"`

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation of the task.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskInput carries the user-editable fields of a task for creation and
// update. It deliberately has no owner field.
type TaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}
