// server/internal/database/seeder.go
package database

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"jiffy-backoffice-api-server/config"
	"jiffy-backoffice-api-server/internal/auth"
	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/repository"
)

var ErrAdminCredentialsMissing = errors.New("admin email and password must be configured")

// SeedAdmin creates the first admin employee unless one with the configured email exists.
// It reports whether a new account was written.
func SeedAdmin(ctx context.Context, employees repository.EmployeeRepository, cfg config.AdminConfig, log *zap.Logger) (bool, error) {
	if cfg.Email == "" || cfg.Password == "" {
		return false, ErrAdminCredentialsMissing
	}

	_, err := employees.FindByEmail(ctx, cfg.Email)
	if err == nil {
		log.Info("admin already exists, seeding skipped", zap.String("email", cfg.Email))
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("database.SeedAdmin: %w", err)
	}

	log.Info("admin not found, seeding", zap.String("email", cfg.Email))
	hashedPassword, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return false, fmt.Errorf("database.SeedAdmin hash: %w", err)
	}

	admin := &models.Employee{
		Name:     "Administrator",
		Email:    cfg.Email,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	}
	if err := employees.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("database.SeedAdmin: %w", err)
	}

	log.Info("admin seeded", zap.String("id", admin.ID.Hex()))
	return true, nil
}
