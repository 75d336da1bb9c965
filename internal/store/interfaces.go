package store

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser inserts a new account. A duplicate email yields
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail looks an account up by its normalized email.
	// A missing account yields [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID looks an account up by its identifier.
	// A missing account yields [ErrUserNotFound].
	FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
}

// TaskRepository persists tasks. Every method that addresses a single task
// takes the owner identifier and matches it in the same predicate as the
// task identifier, so a foreign task is reported as [ErrTaskNotFound].
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	// ListTasksByOwner returns the owner's tasks, newest first. The result is
	// never nil.
	ListTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error)
	FindTaskByIDAndOwner(ctx context.Context, taskID, ownerID uuid.UUID) (models.Task, error)
	// UpdateTask overwrites title, description, completion flag and
	// updated_at of the task identified by task.ID and task.UserID.
	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)
	DeleteTask(ctx context.Context, taskID, ownerID uuid.UUID) error
}

// Transactor runs a function atomically. Repository calls made with the
// context passed to fn take part in the same transaction. fn may run more
// than once when the backend reports a transient failure.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
