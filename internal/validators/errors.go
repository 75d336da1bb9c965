package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTitle       = errors.New("task title is required")
	ErrTitleTooLong       = errors.New("task title is too long")
	ErrDescriptionTooLong = errors.New("task description is too long")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmailTooLong       = errors.New("email address is too long")
	ErrEmptyEmail         = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrPasswordTooLong    = errors.New("password is too long")
	ErrPasswordBlank      = errors.New("password cannot be blank")
	ErrEmptyPassword      = errors.New("password is required")
	ErrInvalidCredentials = errors.New("invalid credentials payload")
	ErrInvalidTaskPayload = errors.New("invalid task payload")
)

// FieldError describes a rule violated by one input field. It unwraps to
// the sentinel error of the rule so callers can match it with errors.Is.
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string
	// Reason is a human-readable description of the violation.
	Reason string
	// Err is the sentinel error of the violated rule.
	Err error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field, reason string, err error) *FieldError {
	return &FieldError{Field: field, Reason: reason, Err: err}
}
