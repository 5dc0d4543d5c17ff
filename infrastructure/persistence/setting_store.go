package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wijnkelder/cellar/domain/wine"
	"github.com/wijnkelder/cellar/internal/database"
)

// SettingStore persists per-owner settings. It backs the durable side of the
// API key cache.
type SettingStore struct {
	db database.Database
}

// NewSettingStore creates a SettingStore.
func NewSettingStore(db database.Database) *SettingStore {
	return &SettingStore{db: db}
}

// APIKey returns the owner's stored API key, or ("", nil) when none is set.
func (s *SettingStore) APIKey(ctx context.Context, ownerID uuid.UUID) (string, error) {
	var model UserSettingModel
	err := s.db.Session(ctx).
		Where("user_id = ?", ownerID.String()).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: load settings: %v", wine.ErrTransportFailure, err)
	}
	return model.OpenAIAPIKey, nil
}

// SetAPIKey upserts the owner's API key.
func (s *SettingStore) SetAPIKey(ctx context.Context, ownerID uuid.UUID, key string) error {
	model := UserSettingModel{
		UserID:       ownerID.String(),
		OpenAIAPIKey: key,
		UpdatedAt:    time.Now().UTC(),
	}

	err := s.db.Session(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"openai_api_key", "updated_at"}),
		}).
		Create(&model).Error
	if err != nil {
		return fmt.Errorf("%w: store settings: %v", wine.ErrWriteFailed, err)
	}
	return nil
}
