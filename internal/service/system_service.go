package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/database"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/version"
)

// SystemService reports the health and version of the running service.
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// Health checks database connectivity. It never returns an error; failures are
// described in the returned status.
func (s *SystemService) Health(ctx context.Context) model.HealthStatus {
	if err := database.HealthCheck(ctx, s.db); err != nil {
		return model.HealthStatus{Status: "unhealthy", Database: "disconnected", Error: err.Error()}
	}
	return model.HealthStatus{Status: "healthy", Database: "connected"}
}

// GetVersionInfo reports the application version and the schema version of the database.
// MigrationNeeded is set when embedded migrations have not been applied yet.
func (s *SystemService) GetVersionInfo(ctx context.Context) (*model.VersionInfo, error) {
	status, err := database.Status(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetVersionInfo, err)
	}

	info := &model.VersionInfo{
		AppVersion:      version.Version,
		DbVersion:       fmt.Sprintf("%d", status.Version),
		MigrationNeeded: status.Pending,
	}
	if status.Pending {
		msg := "database schema is behind the application, run migrations"
		info.MigrationMessage = &msg
	}
	return info, nil
}
