package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wijnkelder/cellar/domain/wine"
	"github.com/wijnkelder/cellar/internal/database"
)

// wineColumns are the mutable columns replaced wholesale on update. Identity,
// ownership and creation time never change after create.
var wineColumns = []string{
	"name", "year", "grapes", "quantity", "country", "region", "type",
	"best_before", "taste_profile", "pairing_advice", "notes", "rating",
}

// WineStore is the GORM-backed wine store. All queries are owner-scoped.
type WineStore struct {
	db     database.Database
	mapper WineMapper
}

var _ wine.Store = (*WineStore)(nil)

// NewWineStore creates a WineStore.
func NewWineStore(db database.Database) *WineStore {
	return &WineStore{db: db}
}

// List returns the owner's wines, newest first.
func (s *WineStore) List(ctx context.Context, ownerID uuid.UUID) ([]wine.Wine, error) {
	var models []WineModel
	err := s.db.Session(ctx).
		Where("user_id = ?", ownerID.String()).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list wines: %v", wine.ErrTransportFailure, err)
	}

	wines := make([]wine.Wine, 0, len(models))
	for _, m := range models {
		wines = append(wines, s.mapper.ToDomain(m))
	}
	return wines, nil
}

// Create persists a draft wine and returns the stored entity with its
// server-assigned identity and creation time.
func (s *WineStore) Create(ctx context.Context, ownerID uuid.UUID, w wine.Wine) (wine.Wine, error) {
	model := s.mapper.ToModel(w, ownerID)
	model.ID = uuid.NewString()
	model.CreatedAt = time.Now().UTC()

	if err := s.db.Session(ctx).Create(&model).Error; err != nil {
		return wine.Wine{}, fmt.Errorf("%w: create wine: %v", wine.ErrWriteFailed, err)
	}
	return s.mapper.ToDomain(model), nil
}

// Update replaces the mutable fields of an owned wine. A zero-row result
// means no owned row matched, reported as ErrNotFound.
func (s *WineStore) Update(ctx context.Context, ownerID uuid.UUID, w wine.Wine) (wine.Wine, error) {
	model := s.mapper.ToModel(w, ownerID)

	res := s.db.Session(ctx).
		Model(&WineModel{}).
		Where("id = ? AND user_id = ?", model.ID, model.UserID).
		Select(wineColumns).
		Updates(&model)
	if res.Error != nil {
		return wine.Wine{}, fmt.Errorf("%w: update wine %s: %v", wine.ErrWriteFailed, model.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return wine.Wine{}, fmt.Errorf("%w: wine %s", wine.ErrNotFound, model.ID)
	}

	var stored WineModel
	err := s.db.Session(ctx).
		Where("id = ? AND user_id = ?", model.ID, model.UserID).
		First(&stored).Error
	if err != nil {
		return wine.Wine{}, fmt.Errorf("%w: reload wine %s: %v", wine.ErrWriteFailed, model.ID, err)
	}
	return s.mapper.ToDomain(stored), nil
}

// Delete removes an owned wine. A missing row is success; only transport
// failures return an error.
func (s *WineStore) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	err := s.db.Session(ctx).
		Where("id = ? AND user_id = ?", id.String(), ownerID.String()).
		Delete(&WineModel{}).Error
	if err != nil {
		return fmt.Errorf("%w: delete wine %s: %v", wine.ErrWriteFailed, id, err)
	}
	return nil
}
