package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wijnkelder/cellar/domain/wine"
	"github.com/wijnkelder/cellar/infrastructure/credential"
	"github.com/wijnkelder/cellar/infrastructure/sommelier"
)

// Advice runs the AI flows: it gates every request on the owner's cached API
// key and delegates to the sommelier.
type Advice struct {
	sommelier *sommelier.Sommelier
	keys      *credential.KeyCache
	cellar    *Cellar
	logger    *slog.Logger
}

// NewAdvice creates an Advice service.
func NewAdvice(som *sommelier.Sommelier, keys *credential.KeyCache, cellar *Cellar, logger *slog.Logger) *Advice {
	if logger == nil {
		logger = slog.Default()
	}
	return &Advice{
		sommelier: som,
		keys:      keys,
		cellar:    cellar,
		logger:    logger,
	}
}

// Enrich fetches AI-derived attributes for a single wine. Fails fast with
// ErrMissingCredential when the owner has no cached key; no request leaves
// the process.
func (s *Advice) Enrich(ctx context.Context, name string, year int, grapes string) (wine.Info, error) {
	apiKey, err := s.apiKey(ctx)
	if err != nil {
		return wine.Info{}, err
	}

	info, err := s.sommelier.EnrichWine(ctx, apiKey, name, year, grapes)
	if err != nil {
		return wine.Info{}, fmt.Errorf("enrich wine: %w", err)
	}
	return info, nil
}

// Pair matches a dish against the owner's in-stock wines. Out-of-stock wines
// never reach the model; an all-out-of-stock cellar fails with
// ErrEmptyCandidateSet before any completion call. A failed cellar read is
// never mistaken for an empty cellar: the store error propagates instead.
func (s *Advice) Pair(ctx context.Context, dish string) (wine.Pairing, error) {
	apiKey, err := s.apiKey(ctx)
	if err != nil {
		return wine.Pairing{}, err
	}

	wines, err := s.cellar.list(ctx)
	if err != nil {
		return wine.Pairing{}, fmt.Errorf("pair dish: %w", err)
	}

	pairing, err := s.sommelier.PairDish(ctx, apiKey, dish, inStock(wines))
	if err != nil {
		return wine.Pairing{}, fmt.Errorf("pair dish: %w", err)
	}
	return pairing, nil
}

// apiKey resolves the authenticated owner and returns their cached key.
func (s *Advice) apiKey(ctx context.Context) (string, error) {
	ownerID, ok := s.cellar.owner(ctx)
	if !ok {
		return "", wine.ErrUnauthenticated
	}

	apiKey, ok := s.keys.Get(ownerID)
	if !ok {
		return "", wine.ErrMissingCredential
	}
	return apiKey, nil
}

func inStock(wines []wine.Wine) []wine.Wine {
	candidates := make([]wine.Wine, 0, len(wines))
	for _, w := range wines {
		if w.InStock() {
			candidates = append(candidates, w)
		}
	}
	return candidates
}
