package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wijnkelder/cellar/domain/wine"
	"github.com/wijnkelder/cellar/infrastructure/auth"
	"github.com/wijnkelder/cellar/infrastructure/credential"
	"github.com/wijnkelder/cellar/infrastructure/provider"
	"github.com/wijnkelder/cellar/infrastructure/sommelier"
)

type fakeGenerator struct {
	response string
	calls    int
}

func (f *fakeGenerator) ChatCompletion(context.Context, provider.ChatCompletionRequest) (provider.ChatCompletionResponse, error) {
	f.calls++
	return provider.NewChatCompletionResponse(f.response, "stop"), nil
}

type memorySettings struct {
	keys map[uuid.UUID]string
}

func (m *memorySettings) APIKey(_ context.Context, ownerID uuid.UUID) (string, error) {
	return m.keys[ownerID], nil
}

func (m *memorySettings) SetAPIKey(_ context.Context, ownerID uuid.UUID, key string) error {
	m.keys[ownerID] = key
	return nil
}

func newTestAdvice(t *testing.T, gen *fakeGenerator, store *fakeStore, withKey bool) *Advice {
	t.Helper()

	owner := uuid.New()
	cellar := NewCellar(store, auth.NewStaticResolver(owner), nil)

	keys := credential.NewKeyCache(&memorySettings{keys: map[uuid.UUID]string{}}, nil, nil)
	if withKey {
		keys.Set(context.Background(), owner, "sk-test")
		keys.Wait()
	}

	som := sommelier.NewSommelier(func(string) provider.TextGenerator { return gen }, 0.7, nil)
	return NewAdvice(som, keys, cellar, nil)
}

func TestAdviceEnrich(t *testing.T) {
	t.Run("missing credential fails fast", func(t *testing.T) {
		gen := &fakeGenerator{}
		advice := newTestAdvice(t, gen, &fakeStore{}, false)

		_, err := advice.Enrich(context.Background(), "Barolo", 2017, "")
		assert.ErrorIs(t, err, wine.ErrMissingCredential)
		assert.Zero(t, gen.calls)
	})

	t.Run("returns parsed info", func(t *testing.T) {
		gen := &fakeGenerator{response: `{"grapes":"Nebbiolo","country":"Italy","region":"Piedmont",` +
			`"type":"red","bestBefore":"2027-2035","tasteProfile":"Tar and roses","pairingAdvice":"Braised beef"}`}
		advice := newTestAdvice(t, gen, &fakeStore{}, true)

		info, err := advice.Enrich(context.Background(), "Barolo", 2017, "")
		require.NoError(t, err)
		assert.Equal(t, "Italy", info.Country())
	})
}

func TestAdvicePair(t *testing.T) {
	t.Run("missing credential fails before anything else", func(t *testing.T) {
		gen := &fakeGenerator{}
		advice := newTestAdvice(t, gen, &fakeStore{}, false)

		_, err := advice.Pair(context.Background(), "steak")
		assert.ErrorIs(t, err, wine.ErrMissingCredential)
		assert.Zero(t, gen.calls)
	})

	t.Run("empty cellar fails before completion", func(t *testing.T) {
		gen := &fakeGenerator{}
		advice := newTestAdvice(t, gen, &fakeStore{}, true)

		_, err := advice.Pair(context.Background(), "steak")
		assert.ErrorIs(t, err, wine.ErrEmptyCandidateSet)
		assert.Zero(t, gen.calls)
	})

	t.Run("failed cellar read is not an empty cellar", func(t *testing.T) {
		gen := &fakeGenerator{}
		store := &fakeStore{listErr: wine.ErrTransportFailure}
		advice := newTestAdvice(t, gen, store, true)

		_, err := advice.Pair(context.Background(), "steak")
		assert.ErrorIs(t, err, wine.ErrTransportFailure)
		assert.NotErrorIs(t, err, wine.ErrEmptyCandidateSet)
		assert.Zero(t, gen.calls)
	})

	t.Run("another owner's key is not used", func(t *testing.T) {
		gen := &fakeGenerator{}
		store := &fakeStore{wines: []wine.Wine{wine.NewWine("Barolo", 2017, "", 1)}}
		advice := newTestAdvice(t, gen, store, false)
		advice.keys.Set(context.Background(), uuid.New(), "sk-someone-else")
		advice.keys.Wait()

		_, err := advice.Pair(context.Background(), "steak")
		assert.ErrorIs(t, err, wine.ErrMissingCredential)
		assert.Zero(t, gen.calls)
	})

	t.Run("out-of-stock wines are not candidates", func(t *testing.T) {
		gen := &fakeGenerator{}
		store := &fakeStore{wines: []wine.Wine{wine.NewWine("Finished", 2015, "", 0)}}
		advice := newTestAdvice(t, gen, store, true)

		_, err := advice.Pair(context.Background(), "steak")
		assert.ErrorIs(t, err, wine.ErrEmptyCandidateSet)
		assert.Zero(t, gen.calls)
	})

	t.Run("returns pairing over in-stock wines", func(t *testing.T) {
		gen := &fakeGenerator{response: `{"recommendations":[{"wineIndex":1,"reason":"Bold","score":8}],` +
			`"generalAdvice":"Red with red meat."}`}
		store := &fakeStore{wines: []wine.Wine{
			wine.NewWine("Barolo", 2017, "Nebbiolo", 2),
			wine.NewWine("Empty Bottle", 2010, "", 0),
		}}
		advice := newTestAdvice(t, gen, store, true)

		pairing, err := advice.Pair(context.Background(), "steak")
		require.NoError(t, err)
		require.Len(t, pairing.Recommendations(), 1)
		assert.Equal(t, "Barolo", pairing.Recommendations()[0].Wine().Name())
		assert.Equal(t, 1, gen.calls)
	})
}
