// Package service contains the application services that tie the domain,
// stores and AI layer together.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wijnkelder/cellar/domain/wine"
)

// Cellar orchestrates owner-scoped wine CRUD.
type Cellar struct {
	store    wine.Store
	resolver wine.OwnerResolver
	logger   *slog.Logger
}

// NewCellar creates a Cellar service.
func NewCellar(store wine.Store, resolver wine.OwnerResolver, logger *slog.Logger) *Cellar {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cellar{
		store:    store,
		resolver: resolver,
		logger:   logger,
	}
}

// List returns the owner's wines, newest first. Failures degrade to an empty
// cellar: the error is logged, never returned, so presentation always has a
// safe default.
func (s *Cellar) List(ctx context.Context) []wine.Wine {
	wines, err := s.list(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list wines failed", "error", err)
		return []wine.Wine{}
	}
	return wines
}

// list is the error-returning read behind List. Callers that must distinguish
// a definitely-empty cellar from a failed read use this path.
func (s *Cellar) list(ctx context.Context) ([]wine.Wine, error) {
	ownerID, ok := s.resolver.CurrentOwner(ctx)
	if !ok {
		return nil, wine.ErrUnauthenticated
	}

	wines, err := s.store.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list wines: %w", err)
	}
	return wines, nil
}

// owner resolves the authenticated owner for sibling services.
func (s *Cellar) owner(ctx context.Context) (uuid.UUID, bool) {
	return s.resolver.CurrentOwner(ctx)
}

// Save persists a new wine for the authenticated owner.
func (s *Cellar) Save(ctx context.Context, w wine.Wine) (wine.Wine, error) {
	ownerID, ok := s.resolver.CurrentOwner(ctx)
	if !ok {
		return wine.Wine{}, wine.ErrUnauthenticated
	}

	stored, err := s.store.Create(ctx, ownerID, w)
	if err != nil {
		return wine.Wine{}, fmt.Errorf("save wine: %w", err)
	}
	s.logger.InfoContext(ctx, "wine saved", "owner", ownerID, "wine_id", stored.ID())
	return stored, nil
}

// Update replaces the mutable fields of an owned wine.
func (s *Cellar) Update(ctx context.Context, w wine.Wine) (wine.Wine, error) {
	ownerID, ok := s.resolver.CurrentOwner(ctx)
	if !ok {
		return wine.Wine{}, wine.ErrUnauthenticated
	}

	stored, err := s.store.Update(ctx, ownerID, w)
	if err != nil {
		return wine.Wine{}, fmt.Errorf("update wine: %w", err)
	}
	return stored, nil
}

// Delete removes an owned wine. Deleting a missing wine is success.
func (s *Cellar) Delete(ctx context.Context, id uuid.UUID) error {
	ownerID, ok := s.resolver.CurrentOwner(ctx)
	if !ok {
		return wine.ErrUnauthenticated
	}

	if err := s.store.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete wine: %w", err)
	}
	s.logger.InfoContext(ctx, "wine deleted", "owner", ownerID, "wine_id", id)
	return nil
}

// DrinkBottle removes one bottle from a wine's stock, clamped at zero, and
// persists the change.
func (s *Cellar) DrinkBottle(ctx context.Context, w wine.Wine) (wine.Wine, error) {
	return s.Update(ctx, w.DrinkBottle())
}

// Find returns a single owned wine by id, or ErrNotFound.
func (s *Cellar) Find(ctx context.Context, id uuid.UUID) (wine.Wine, error) {
	ownerID, ok := s.resolver.CurrentOwner(ctx)
	if !ok {
		return wine.Wine{}, wine.ErrUnauthenticated
	}

	wines, err := s.store.List(ctx, ownerID)
	if err != nil {
		return wine.Wine{}, fmt.Errorf("find wine: %w", err)
	}
	for _, w := range wines {
		if w.ID() == id {
			return w, nil
		}
	}
	return wine.Wine{}, fmt.Errorf("%w: %s", wine.ErrNotFound, id)
}
