package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=TaskServiceWrapper,AuthServiceWrapper

// AuthService turns credentials into sessions and sessions back into
// accounts.
type AuthService interface {
	// Signup creates an account and issues its first token.
	Signup(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
	// Signin checks credentials and issues a fresh token. An unknown email
	// and a wrong password both yield ErrInvalidCredentials.
	Signin(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
	// ResolveUser verifies a bearer token and loads the account it names.
	ResolveUser(ctx context.Context, tokenString string) (models.User, error)
}

// TaskService manages the tasks of one owner. The owner is always the
// authenticated account and is never read from the task payload.
type TaskService interface {
	Create(ctx context.Context, ownerID uuid.UUID, input models.TaskInput) (models.Task, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error)
	Get(ctx context.Context, ownerID, taskID uuid.UUID) (models.Task, error)
	Update(ctx context.Context, ownerID, taskID uuid.UUID, input models.TaskInput) (models.Task, error)
	Delete(ctx context.Context, ownerID, taskID uuid.UUID) error
	Toggle(ctx context.Context, ownerID, taskID uuid.UUID) (models.Task, error)
}

// AppInfoService exposes build and liveness information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.InfoResponse
	GetHealth(ctx context.Context) models.HealthResponse
}

// IDGenerator produces identifiers for new accounts and tasks.
type IDGenerator interface {
	Generate() uuid.UUID
}

// TaskServiceWrapper defines middleware composition for TaskService.
// Implementations wrap an existing TaskService to add behavior such as
// validation.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService // returns a decorated TaskService applying additional behavior
}

// AuthServiceWrapper is the AuthService counterpart of TaskServiceWrapper.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
