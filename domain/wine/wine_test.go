package wine_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wijnkelder/cellar/domain/wine"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  wine.Type
	}{
		{"red", "red", wine.TypeRed},
		{"white", "white", wine.TypeWhite},
		{"rose", "rosé", wine.TypeRose},
		{"sparkling", "sparkling", wine.TypeSparkling},
		{"unknown coerces to red", "purple", wine.TypeRed},
		{"empty coerces to red", "", wine.TypeRed},
		{"case sensitive", "Red", wine.TypeRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wine.ParseType(tt.input))
		})
	}
}

func TestNewWine(t *testing.T) {
	w := wine.NewWine("Chateau Margaux", 2015, "Cabernet Sauvignon", 3)

	assert.Equal(t, uuid.Nil, w.ID())
	assert.Equal(t, "Chateau Margaux", w.Name())
	assert.Equal(t, 2015, w.Year())
	assert.Equal(t, "Cabernet Sauvignon", w.Grapes())
	assert.Equal(t, 3, w.Quantity())
	assert.Equal(t, wine.TypeRed, w.Style())
	assert.True(t, w.InStock())
}

func TestNewWineClampsNegativeQuantity(t *testing.T) {
	w := wine.NewWine("Test", 2020, "", -5)
	assert.Equal(t, 0, w.Quantity())
	assert.False(t, w.InStock())
}

func TestReconstructWineCoercesInvalidType(t *testing.T) {
	id := uuid.New()
	w := wine.ReconstructWine(id, "Old Row", 1999, "", 1,
		"France", "Loire", wine.Type("orange"), "", "", "", "", 0, time.Now())

	assert.Equal(t, wine.TypeRed, w.Style())
	assert.Equal(t, id, w.ID())
}

func TestDrinkBottle(t *testing.T) {
	t.Run("decrements by one", func(t *testing.T) {
		w := wine.NewWine("Test", 2020, "", 2).DrinkBottle()
		assert.Equal(t, 1, w.Quantity())
	})

	t.Run("clamps at zero", func(t *testing.T) {
		w := wine.NewWine("Test", 2020, "", 0).DrinkBottle()
		assert.Equal(t, 0, w.Quantity())
	})

	t.Run("original is unchanged", func(t *testing.T) {
		w := wine.NewWine("Test", 2020, "", 2)
		_ = w.DrinkBottle()
		assert.Equal(t, 2, w.Quantity())
	})
}

func TestWithRating(t *testing.T) {
	w := wine.NewWine("Test", 2020, "", 1)

	assert.Equal(t, 4, w.WithRating(4).Rating())
	assert.Equal(t, 0, w.WithRating(6).Rating())
	assert.Equal(t, 0, w.WithRating(-1).Rating())
	assert.Equal(t, 0, w.WithRating(4).WithRating(0).Rating())
}

func TestWithEnrichment(t *testing.T) {
	info := wine.NewInfo("Sangiovese", "Italy", "Tuscany", "red",
		"2024-2030", "Cherry and leather", "Pasta with ragù")

	t.Run("fills AI fields", func(t *testing.T) {
		w := wine.NewWine("Brunello", 2018, "", 1).WithEnrichment(info)

		assert.Equal(t, "Italy", w.Country())
		assert.Equal(t, "Tuscany", w.Region())
		assert.Equal(t, wine.TypeRed, w.Style())
		assert.Equal(t, "2024-2030", w.DrinkWindow())
		assert.Equal(t, "Cherry and leather", w.TasteProfile())
		assert.Equal(t, "Pasta with ragù", w.PairingAdvice())
		assert.Equal(t, "Sangiovese", w.Grapes())
	})

	t.Run("keeps user-entered grapes", func(t *testing.T) {
		w := wine.NewWine("Brunello", 2018, "Sangiovese Grosso", 1).WithEnrichment(info)
		assert.Equal(t, "Sangiovese Grosso", w.Grapes())
	})
}

func TestNewInfoCoercesType(t *testing.T) {
	info := wine.NewInfo("", "", "", "purple", "", "", "")
	require.Equal(t, wine.TypeRed, info.Style())
}
