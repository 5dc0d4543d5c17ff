package sommelier

import (
	"context"
	"log/slog"

	"github.com/wijnkelder/cellar/domain/wine"
	"github.com/wijnkelder/cellar/infrastructure/provider"
)

// GeneratorFactory builds a TextGenerator for an API key. Keys are supplied
// per owner at call time, so the generator cannot be constructed up front.
type GeneratorFactory func(apiKey string) provider.TextGenerator

// Sommelier orchestrates the AI conversations: it renders the prompt, runs
// the completion and validates the answer.
type Sommelier struct {
	factory     GeneratorFactory
	temperature float32
	logger      *slog.Logger
}

// NewSommelier creates a Sommelier.
func NewSommelier(factory GeneratorFactory, temperature float32, logger *slog.Logger) *Sommelier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sommelier{
		factory:     factory,
		temperature: temperature,
		logger:      logger,
	}
}

// EnrichWine asks the model for the attributes of a single wine.
func (s *Sommelier) EnrichWine(ctx context.Context, apiKey, name string, year int, grapes string) (wine.Info, error) {
	prompt := EnrichmentPrompt(name, year, grapes)

	content, err := s.complete(ctx, apiKey, prompt)
	if err != nil {
		return wine.Info{}, err
	}

	info, err := ParseEnrichment(content)
	if err != nil {
		s.logger.WarnContext(ctx, "enrichment response rejected", "wine", name, "error", err)
		return wine.Info{}, err
	}

	s.logger.DebugContext(ctx, "wine enriched", "wine", name, "country", info.Country())
	return info, nil
}

// PairDish asks the model to match a dish against the candidate wines.
// An empty candidate set fails before any completion call.
func (s *Sommelier) PairDish(ctx context.Context, apiKey, dish string, candidates []wine.Wine) (wine.Pairing, error) {
	if len(candidates) == 0 {
		return wine.Pairing{}, wine.ErrEmptyCandidateSet
	}

	prompt := PairingPrompt(dish, candidates)

	content, err := s.complete(ctx, apiKey, prompt)
	if err != nil {
		return wine.Pairing{}, err
	}

	pairing, err := ParsePairing(content, candidates)
	if err != nil {
		s.logger.WarnContext(ctx, "pairing response rejected", "dish", dish, "error", err)
		return wine.Pairing{}, err
	}

	s.logger.DebugContext(ctx, "dish paired",
		"dish", dish,
		"candidates", len(candidates),
		"recommendations", len(pairing.Recommendations()))
	return pairing, nil
}

func (s *Sommelier) complete(ctx context.Context, apiKey, prompt string) (string, error) {
	generator := s.factory(apiKey)

	req := provider.NewChatCompletionRequest([]provider.Message{
		provider.NewMessage(provider.RoleUser, prompt),
	}).WithTemperature(s.temperature)

	resp, err := generator.ChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Content(), nil
}
