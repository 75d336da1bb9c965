package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// Error codes of the wire protocol.
const (
	CodeInvalidJSON        = "INVALID_JSON"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeInvalidTitle       = "INVALID_TITLE"
	CodeTitleTooLong       = "TITLE_TOO_LONG"
	CodeDescriptionTooLong = "DESCRIPTION_TOO_LONG"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeTaskNotFound       = "TASK_NOT_FOUND"
	CodeNotFound           = "NOT_FOUND"
	CodeDatabaseError      = "DATABASE_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
)

type apiError struct {
	status  int
	code    string
	message string
}

var internalError = apiError{http.StatusInternalServerError, CodeInternalError, "An unexpected error occurred"}

// errorMappings is scanned in order, the first matching target wins.
// Validation sentinels come before the rest because they are also wrapped
// by the services.
var errorMappings = []struct {
	target error
	apiError
}{
	{utils.ErrInvalidJSON, apiError{http.StatusBadRequest, CodeInvalidJSON, "Request body is not valid JSON"}},

	{validators.ErrInvalidTitle, apiError{http.StatusBadRequest, CodeInvalidTitle, "Task title is required"}},
	{validators.ErrTitleTooLong, apiError{http.StatusBadRequest, CodeTitleTooLong, fmt.Sprintf("Task title must be at most %d characters", validators.MaxTitleLength)}},
	{validators.ErrDescriptionTooLong, apiError{http.StatusBadRequest, CodeDescriptionTooLong, fmt.Sprintf("Task description must be at most %d characters", validators.MaxDescriptionLength)}},
	{validators.ErrInvalidTaskPayload, apiError{http.StatusBadRequest, CodeValidationError, "Invalid request data"}},
	{validators.ErrInvalidCredentials, apiError{http.StatusBadRequest, CodeValidationError, "Invalid request data"}},
	{validators.ErrEmptyEmail, apiError{http.StatusBadRequest, CodeValidationError, "Invalid request data"}},
	{validators.ErrInvalidEmail, apiError{http.StatusBadRequest, CodeValidationError, "Invalid request data"}},
	{validators.ErrEmailTooLong, apiError{http.StatusBadRequest, CodeValidationError, "Invalid request data"}},
	{validators.ErrEmptyPassword, apiError{http.StatusBadRequest, CodeValidationError, "Invalid request data"}},
	{validators.ErrPasswordTooShort, apiError{http.StatusBadRequest, CodeValidationError, "Invalid request data"}},
	{validators.ErrPasswordTooLong, apiError{http.StatusBadRequest, CodeValidationError, "Invalid request data"}},
	{validators.ErrPasswordBlank, apiError{http.StatusBadRequest, CodeValidationError, "Invalid request data"}},

	{store.ErrEmailAlreadyExists, apiError{http.StatusBadRequest, CodeEmailExists, "Email already registered"}},
	{service.ErrInvalidCredentials, apiError{http.StatusUnauthorized, CodeInvalidCredentials, "Invalid email or password"}},

	{ErrEmptyAuthorizationHeader, apiError{http.StatusUnauthorized, CodeInvalidToken, "Not authenticated"}},
	{utils.ErrInvalidAuthorizationHeader, apiError{http.StatusUnauthorized, CodeInvalidToken, "Not authenticated"}},
	{ErrNoUserInContext, apiError{http.StatusUnauthorized, CodeInvalidToken, "Not authenticated"}},
	{service.ErrTokenIsExpired, apiError{http.StatusUnauthorized, CodeInvalidToken, "Invalid or expired token"}},
	{service.ErrTokenIsExpiredOrInvalid, apiError{http.StatusUnauthorized, CodeInvalidToken, "Invalid or expired token"}},
	{service.ErrInvalidUserIDInToken, apiError{http.StatusUnauthorized, CodeInvalidToken, "Invalid user ID in token"}},
	{store.ErrUserNotFound, apiError{http.StatusUnauthorized, CodeUserNotFound, "User not found"}},

	{store.ErrTaskNotFound, apiError{http.StatusNotFound, CodeTaskNotFound, "Task not found"}},
	{errRouteNotFound, apiError{http.StatusNotFound, CodeNotFound, "Not found"}},

	{service.ErrPersistence, apiError{http.StatusInternalServerError, CodeDatabaseError, "A database error occurred"}},
}

func mapError(err error) apiError {
	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.target) {
			return mapping.apiError
		}
	}
	return internalError
}

// writeError renders err as an error envelope. Internal details never reach
// the client; they are logged with the request-scoped logger instead.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	mapped := mapError(err)

	if mapped.status >= http.StatusInternalServerError {
		log.Err(err).Str("code", mapped.code).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("code", mapped.code).Msg("request rejected")
	}

	response := &models.ErrorResponse{Code: mapped.code, Message: mapped.message}

	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		response.Details = map[string]any{
			"field":  fieldErr.Field,
			"reason": fieldErr.Reason,
		}
	}

	if mapped.status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	utils.WriteJSON(w, models.Envelope{Error: response}, mapped.status)
}
