package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/google/uuid"
)

// TaskValidationService normalizes and validates task input before handing
// it to the wrapped TaskService. Calls without input pass straight through.
type TaskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService() TaskServiceWrapper {
	return &TaskValidationService{
		validator: validators.NewTaskValidator(),
	}
}

func (v *TaskValidationService) Create(ctx context.Context, ownerID uuid.UUID, input models.TaskInput) (models.Task, error) {
	input = validators.NormalizeTaskInput(input)
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Task{}, fmt.Errorf("error during task validation before saving: %w", err)
	}

	return v.inner.Create(ctx, ownerID, input)
}

func (v *TaskValidationService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error) {
	return v.inner.List(ctx, ownerID)
}

func (v *TaskValidationService) Get(ctx context.Context, ownerID, taskID uuid.UUID) (models.Task, error) {
	return v.inner.Get(ctx, ownerID, taskID)
}

func (v *TaskValidationService) Update(ctx context.Context, ownerID, taskID uuid.UUID, input models.TaskInput) (models.Task, error) {
	input = validators.NormalizeTaskInput(input)
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Task{}, fmt.Errorf("error during task validation before updating: %w", err)
	}

	return v.inner.Update(ctx, ownerID, taskID, input)
}

func (v *TaskValidationService) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	return v.inner.Delete(ctx, ownerID, taskID)
}

func (v *TaskValidationService) Toggle(ctx context.Context, ownerID, taskID uuid.UUID) (models.Task, error) {
	return v.inner.Toggle(ctx, ownerID, taskID)
}

func (v *TaskValidationService) Wrap(wrapped TaskService) TaskService {
	v.inner = wrapped
	return v
}

// AuthValidationService applies the signup credential policy, and presence
// checks on signin, before delegating to the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewCredentialsValidator(),
	}
}

func (v *AuthValidationService) Signup(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("error during signup validation: %w", err)
	}

	return v.inner.Signup(ctx, credentials)
}

func (v *AuthValidationService) Signin(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	if err := v.validator.Validate(ctx, credentials, validators.FieldEmailRequired, validators.FieldPasswordRequired); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("error during signin validation: %w", err)
	}

	return v.inner.Signin(ctx, credentials)
}

func (v *AuthValidationService) ResolveUser(ctx context.Context, tokenString string) (models.User, error) {
	return v.inner.ResolveUser(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
