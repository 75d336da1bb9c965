package service

import (
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

// Services bundles the services handed to the transport layer. Auth and
// task services are returned already wrapped with their validation
// decorators.
type Services struct {
	AuthService    AuthService
	TaskService    TaskService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	passwordHasher, err := crypto.NewPasswordHasher(cfg.App.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthService(storages.UserRepository, passwordHasher, cfg.App, logger)
	taskService := NewTaskService(storages.TaskRepository, storages.Transactor, logger)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(authService),
		TaskService:    NewTaskValidationService().Wrap(taskService),
		AppInfoService: appInfoService,
	}, nil
}
