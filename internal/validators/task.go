// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Field names of [models.TaskInput].
const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

// Length limits of task fields, counted in characters after trimming.
const (
	MaxTitleLength       = 500
	MaxDescriptionLength = 5000
)

// TaskValidator implements [Validator] for [models.TaskInput].
type TaskValidator struct {
}

// NewTaskValidator constructs a new TaskValidator and returns it as the
// Validator interface.
func NewTaskValidator() Validator {
	return &TaskValidator{}
}

// Validate checks a value or pointer [models.TaskInput]. The input is
// expected to be normalized with [NormalizeTaskInput] first.
//
// Default validated fields: title, description.
func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TaskInput:
		return v.validateTaskInput(value, fields...)
	case *models.TaskInput:
		if value == nil {
			return ErrInvalidTaskPayload
		}
		return v.validateTaskInput(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *TaskValidator) validateTaskInput(input models.TaskInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(input.Title) == "" {
				return fieldError(FieldTitle, "Task title is required", ErrInvalidTitle)
			}
			if utf8.RuneCountInString(input.Title) > MaxTitleLength {
				return fieldError(FieldTitle, fmt.Sprintf("Task title must be at most %d characters", MaxTitleLength), ErrTitleTooLong)
			}
		case FieldDescription:
			if input.Description != nil && utf8.RuneCountInString(*input.Description) > MaxDescriptionLength {
				return fieldError(FieldDescription, fmt.Sprintf("Task description must be at most %d characters", MaxDescriptionLength), ErrDescriptionTooLong)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// NormalizeTaskInput trims title and description. A description that is
// empty after trimming becomes nil.
func NormalizeTaskInput(input models.TaskInput) models.TaskInput {
	normalized := models.TaskInput{Title: strings.TrimSpace(input.Title)}

	if input.Description != nil {
		if description := strings.TrimSpace(*input.Description); description != "" {
			normalized.Description = &description
		}
	}

	return normalized
}
