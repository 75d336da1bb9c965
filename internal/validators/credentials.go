package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Field names of [models.Credentials]. FieldEmail and FieldPassword apply
// the signup policy; the *Required variants only check presence and are
// used on signin.
const (
	FieldEmail            = "email"
	FieldPassword         = "password"
	FieldEmailRequired    = "email required"
	FieldPasswordRequired = "password required"
)

// Credential policy limits, counted in characters.
const (
	MaxEmailLength    = 255
	MinPasswordLength = 8
	MaxPasswordLength = 100
)

// CredentialsValidator implements [Validator] for [models.Credentials].
type CredentialsValidator struct {
}

// NewCredentialsValidator constructs a new CredentialsValidator and returns
// it as the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate checks a value or pointer [models.Credentials].
//
// Default validated fields (signup policy): email, password.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrInvalidCredentials
		}
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = validateEmail(credentials.Email)
		case FieldPassword:
			err = validatePassword(credentials.Password)
		case FieldEmailRequired:
			if strings.TrimSpace(credentials.Email) == "" {
				err = fieldError(FieldEmail, "Email is required", ErrEmptyEmail)
			}
		case FieldPasswordRequired:
			if credentials.Password == "" {
				err = fieldError(FieldPassword, "Password is required", ErrEmptyPassword)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fieldError(FieldEmail, "Email is required", ErrEmptyEmail)
	}
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return fieldError(FieldEmail, fmt.Sprintf("Email must be at most %d characters", MaxEmailLength), ErrEmailTooLong)
	}

	// reject display names and comments, only a bare address is allowed
	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return fieldError(FieldEmail, "Value is not a valid email address", ErrInvalidEmail)
	}

	return nil
}

func validatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if length < MinPasswordLength {
		return fieldError(FieldPassword, fmt.Sprintf("Password must be at least %d characters", MinPasswordLength), ErrPasswordTooShort)
	}
	if length > MaxPasswordLength {
		return fieldError(FieldPassword, fmt.Sprintf("Password must be at most %d characters", MaxPasswordLength), ErrPasswordTooLong)
	}
	if strings.TrimSpace(password) == "" {
		return fieldError(FieldPassword, "Password cannot be empty or whitespace only", ErrPasswordBlank)
	}

	return nil
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
