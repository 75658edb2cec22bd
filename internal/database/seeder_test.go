package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/config"
	"jiffy-backoffice-api-server/internal/auth"
	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/repository"
	"jiffy-backoffice-api-server/internal/repository/repomock"
)

func TestSeedAdmin(t *testing.T) {
	ctx := context.Background()
	cfg := config.AdminConfig{Email: "admin@jiffy.local", Password: "Adm1n!pass"}

	t.Run("creates admin when absent", func(t *testing.T) {
		repo := new(repomock.EmployeeRepository)
		repo.On("FindByEmail", ctx, cfg.Email).Return(nil, repository.ErrNotFound)
		repo.On("Create", ctx, mock.MatchedBy(func(e *models.Employee) bool {
			return e.Email == cfg.Email && e.Role == models.RoleAdmin && auth.CheckPasswordHash(cfg.Password, e.Password)
		})).Return(nil)

		created, err := SeedAdmin(ctx, repo, cfg, zap.NewNop())
		require.NoError(t, err)
		assert.True(t, created)
		repo.AssertExpectations(t)
	})

	t.Run("skips when present", func(t *testing.T) {
		repo := new(repomock.EmployeeRepository)
		repo.On("FindByEmail", ctx, cfg.Email).Return(&models.Employee{Email: cfg.Email}, nil)

		created, err := SeedAdmin(ctx, repo, cfg, zap.NewNop())
		require.NoError(t, err)
		assert.False(t, created)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(repomock.EmployeeRepository)
		repo.On("FindByEmail", ctx, cfg.Email).Return(nil, errors.New("down"))

		_, err := SeedAdmin(ctx, repo, cfg, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := SeedAdmin(ctx, new(repomock.EmployeeRepository), config.AdminConfig{}, zap.NewNop())
		assert.ErrorIs(t, err, ErrAdminCredentialsMissing)
	})
}
