package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsValidator_Dispatch(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	require.ErrorIs(t, v.Validate(ctx, "user@example.com"), ErrUnsupportedType)

	var nilCredentials *models.Credentials
	require.ErrorIs(t, v.Validate(ctx, nilCredentials), ErrInvalidCredentials)

	valid := models.Credentials{Email: "user@example.com", Password: "password123"}
	require.NoError(t, v.Validate(ctx, valid))
	require.NoError(t, v.Validate(ctx, &valid))

	require.ErrorIs(t, v.Validate(ctx, valid, "username"), ErrUnknownField)
}

func TestCredentialsValidator_Signup(t *testing.T) {
	v := NewCredentialsValidator()

	tests := []struct {
		name      string
		email     string
		password  string
		wantErr   error
		wantField string
	}{
		{name: "valid", email: "user@example.com", password: "password123"},
		{name: "valid with surrounding spaces", email: "  user@example.com ", password: "password123"},
		{name: "empty email", email: "", password: "password123", wantErr: ErrEmptyEmail, wantField: FieldEmail},
		{name: "no at sign", email: "user.example.com", password: "password123", wantErr: ErrInvalidEmail, wantField: FieldEmail},
		{name: "no domain dot", email: "user@localhost", password: "password123", wantErr: ErrInvalidEmail, wantField: FieldEmail},
		{name: "display name", email: "User <user@example.com>", password: "password123", wantErr: ErrInvalidEmail, wantField: FieldEmail},
		{name: "email too long", email: strings.Repeat("a", MaxEmailLength) + "@example.com", password: "password123", wantErr: ErrEmailTooLong, wantField: FieldEmail},
		{name: "password too short", email: "user@example.com", password: "short", wantErr: ErrPasswordTooShort, wantField: FieldPassword},
		{name: "password at minimum", email: "user@example.com", password: "12345678"},
		{name: "password too long", email: "user@example.com", password: strings.Repeat("p", MaxPasswordLength+1), wantErr: ErrPasswordTooLong, wantField: FieldPassword},
		{name: "whitespace password", email: "user@example.com", password: "          ", wantErr: ErrPasswordBlank, wantField: FieldPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), models.Credentials{Email: tt.email, Password: tt.password})
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field)
		})
	}
}

func TestCredentialsValidator_Signin(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	// signin has no length policy
	require.NoError(t, v.Validate(ctx, models.Credentials{Email: "x", Password: "1"}, FieldEmailRequired, FieldPasswordRequired))

	err := v.Validate(ctx, models.Credentials{Email: " ", Password: "1"}, FieldEmailRequired, FieldPasswordRequired)
	require.ErrorIs(t, err, ErrEmptyEmail)

	err = v.Validate(ctx, models.Credentials{Email: "x", Password: ""}, FieldEmailRequired, FieldPasswordRequired)
	require.ErrorIs(t, err, ErrEmptyPassword)
}

func TestFieldError(t *testing.T) {
	err := fieldError(FieldTitle, "Task title is required", ErrInvalidTitle)
	assert.Equal(t, "title: Task title is required", err.Error())
	assert.ErrorIs(t, err, ErrInvalidTitle)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
}
