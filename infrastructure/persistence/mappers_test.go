package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wijnkelder/cellar/domain/wine"
)

func TestWineMapperRoundTrip(t *testing.T) {
	mapper := WineMapper{}
	owner := uuid.New()

	t.Run("fully populated wine", func(t *testing.T) {
		original := wine.ReconstructWine(
			uuid.New(), "Barolo", 2017, "Nebbiolo", 2,
			"Italy", "Piedmont", wine.TypeRed, "2027-2035",
			"Tar and roses", "Braised beef", "bought at auction", 5,
			time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		)

		got := mapper.ToDomain(mapper.ToModel(original, owner))
		assert.Equal(t, original, got)
	})

	t.Run("minimal wine keeps optionals unset", func(t *testing.T) {
		original := wine.ReconstructWine(
			uuid.New(), "Mystery", 2020, "", 1,
			"", "", wine.TypeWhite, "", "", "", "", 0,
			time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		)

		model := mapper.ToModel(original, owner)
		assert.Nil(t, model.Grapes)
		assert.Nil(t, model.Country)
		assert.Nil(t, model.Region)
		assert.Nil(t, model.BestBefore)
		assert.Nil(t, model.Notes)
		assert.Nil(t, model.Rating)

		got := mapper.ToDomain(model)
		assert.Equal(t, original, got)
	})
}

func TestWineMapperToDomainCoercesType(t *testing.T) {
	mapper := WineMapper{}

	tests := []struct {
		stored string
		want   wine.Type
	}{
		{"red", wine.TypeRed},
		{"white", wine.TypeWhite},
		{"rosé", wine.TypeRose},
		{"sparkling", wine.TypeSparkling},
		{"purple", wine.TypeRed},
		{"ROOD", wine.TypeRed},
		{"", wine.TypeRed},
	}
	for _, tt := range tests {
		t.Run("stored "+tt.stored, func(t *testing.T) {
			model := WineModel{
				ID:        uuid.NewString(),
				UserID:    uuid.NewString(),
				Name:      "Test",
				Year:      2020,
				Quantity:  1,
				Type:      tt.stored,
				CreatedAt: time.Now().UTC(),
			}
			got := mapper.ToDomain(model)
			assert.Equal(t, tt.want, got.Style())
			assert.True(t, got.Style().IsValid())
		})
	}
}

func TestWineMapperOwnership(t *testing.T) {
	mapper := WineMapper{}
	owner := uuid.New()

	model := mapper.ToModel(wine.NewWine("Barolo", 2017, "", 1), owner)
	require.Equal(t, owner.String(), model.UserID)
}
