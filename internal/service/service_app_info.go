package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	appName       = "Todo API"
	healthPath    = "/health"
	healthyStatus = "healthy"
)

// appInfoService serves the static liveness and version payloads.
type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.InfoResponse {
	return models.InfoResponse{
		Message: appName,
		Version: s.appVersion,
		Health:  healthPath,
	}
}

// GetHealth reports liveness only; it does not probe the database.
func (s *appInfoService) GetHealth(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:  healthyStatus,
		Message: appName + " is running",
	}
}
