package services

import (
	"context"
	"database/sql"

	"github.com/ezilbeari/pennywise/internal/common"
	"github.com/ezilbeari/pennywise/internal/server/models"
	"github.com/ezilbeari/pennywise/internal/server/repositories/repomanager"
)

// SettingsService reads and stores per-user preferences.
type SettingsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(db *sql.DB, m repomanager.RepositoryManager) *SettingsService {
	return &SettingsService{db: db, repomanager: m}
}

// Get returns the user's settings, falling back to defaults.
func (s *SettingsService) Get(ctx context.Context, userID string) (*models.Settings, error) {
	return s.repomanager.Settings(s.db).Get(ctx, userID)
}

// Update stores the user's settings. Currency is required.
func (s *SettingsService) Update(ctx context.Context, settings *models.Settings) error {
	if settings.Currency == "" {
		return common.ErrorValidation
	}
	return s.repomanager.Settings(s.db).Upsert(ctx, settings)
}
