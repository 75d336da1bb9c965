package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTaskValidationService_NormalizesBeforeDelegating(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockTaskService(ctrl)
	svc := NewTaskValidationService().Wrap(inner)

	blank := "   "
	inner.EXPECT().Create(gomock.Any(), testUserID, models.TaskInput{Title: "Buy milk"}).Return(storedTask(), nil)

	_, err := svc.Create(context.Background(), testUserID, models.TaskInput{Title: "  Buy milk  ", Description: &blank})
	require.NoError(t, err)
}

func TestTaskValidationService_RejectsInvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockTaskService(ctrl)
	svc := NewTaskValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.Create(ctx, testUserID, models.TaskInput{Title: "   "})
	require.ErrorIs(t, err, validators.ErrInvalidTitle)

	_, err = svc.Update(ctx, testUserID, testTaskID, models.TaskInput{Title: strings.Repeat("t", validators.MaxTitleLength+1)})
	require.ErrorIs(t, err, validators.ErrTitleTooLong)

	long := strings.Repeat("d", validators.MaxDescriptionLength+1)
	_, err = svc.Update(ctx, testUserID, testTaskID, models.TaskInput{Title: "t", Description: &long})
	require.ErrorIs(t, err, validators.ErrDescriptionTooLong)
}

func TestTaskValidationService_PassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockTaskService(ctrl)
	svc := NewTaskValidationService().Wrap(inner)
	ctx := context.Background()

	inner.EXPECT().List(ctx, testUserID).Return([]models.Task{}, nil)
	inner.EXPECT().Get(ctx, testUserID, testTaskID).Return(storedTask(), nil)
	inner.EXPECT().Toggle(ctx, testUserID, testTaskID).Return(storedTask(), nil)
	inner.EXPECT().Delete(ctx, testUserID, testTaskID).Return(nil)

	_, err := svc.List(ctx, testUserID)
	require.NoError(t, err)
	_, err = svc.Get(ctx, testUserID, testTaskID)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, testUserID, testTaskID)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, testUserID, testTaskID))
}

func TestAuthValidationService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	_, _, err := svc.Signup(context.Background(), models.Credentials{Email: "not-an-email", Password: "password123"})
	require.ErrorIs(t, err, validators.ErrInvalidEmail)

	_, _, err = svc.Signup(context.Background(), models.Credentials{Email: "user@example.com", Password: "short"})
	require.ErrorIs(t, err, validators.ErrPasswordTooShort)

	credentials := models.Credentials{Email: "user@example.com", Password: "password123"}
	inner.EXPECT().Signup(gomock.Any(), credentials).Return(storedUser(), models.Token{}, nil)
	user, _, err := svc.Signup(context.Background(), credentials)
	require.NoError(t, err)
	assert.Equal(t, testUserID, user.UserID)
}

func TestAuthValidationService_Signin(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	_, _, err := svc.Signin(context.Background(), models.Credentials{Password: "password123"})
	require.ErrorIs(t, err, validators.ErrEmptyEmail)

	// no length policy on signin
	credentials := models.Credentials{Email: "user@example.com", Password: "x"}
	inner.EXPECT().Signin(gomock.Any(), credentials).Return(models.User{}, models.Token{}, ErrInvalidCredentials)
	_, _, err = svc.Signin(context.Background(), credentials)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	inner.EXPECT().ResolveUser(gomock.Any(), "token").Return(storedUser(), nil)
	_, err = svc.ResolveUser(context.Background(), "token")
	require.NoError(t, err)
}

func TestNewServices(t *testing.T) {
	_, err := NewServices(&store.Storages{}, config.StructuredConfig{App: config.App{Version: "1.0.0", PasswordHashCost: 1000}}, logger.Nop())
	require.Error(t, err)

	_, err = NewServices(&store.Storages{}, config.StructuredConfig{App: config.App{PasswordHashCost: 10}}, logger.Nop())
	require.ErrorIs(t, err, ErrVersionIsNotSpecified)

	services, err := NewServices(store.NewMemoryStorages(), config.StructuredConfig{App: config.App{Version: "1.0.0", PasswordHashCost: 4, TokenExpirationHours: 1}}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &TaskValidationService{}, services.TaskService)
	assert.IsType(t, &AuthValidationService{}, services.AuthService)
}
