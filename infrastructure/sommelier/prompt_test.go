package sommelier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wijnkelder/cellar/domain/wine"
)

func TestEnrichmentPrompt(t *testing.T) {
	t.Run("includes wine details and JSON keys", func(t *testing.T) {
		prompt := EnrichmentPrompt("Barolo", 2017, "Nebbiolo")

		assert.Contains(t, prompt, `"Barolo"`)
		assert.Contains(t, prompt, "2017")
		assert.Contains(t, prompt, "Nebbiolo")
		for _, key := range []string{"grapes", "country", "region", "type", "bestBefore", "tasteProfile", "pairingAdvice"} {
			assert.Contains(t, prompt, `"`+key+`"`)
		}
		assert.Contains(t, prompt, "red, white, rosé, sparkling")
		assert.Contains(t, prompt, "ONLY with a JSON object")
	})

	t.Run("omits grapes line when unknown", func(t *testing.T) {
		prompt := EnrichmentPrompt("Barolo", 2017, "")
		assert.NotContains(t, prompt, "grape varieties are")
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t,
			EnrichmentPrompt("Barolo", 2017, "Nebbiolo"),
			EnrichmentPrompt("Barolo", 2017, "Nebbiolo"))
	})
}

func TestPairingPrompt(t *testing.T) {
	candidates := []wine.Wine{
		wine.NewWine("Barolo", 2017, "Nebbiolo", 2).WithEnrichment(
			wine.NewInfo("", "Italy", "Piedmont", "red", "", "Tar and roses", "")),
		wine.NewWine("Mystery White", 2020, "", 1),
	}

	prompt := PairingPrompt("wild mushroom risotto", candidates)

	t.Run("numbers candidates from one in order", func(t *testing.T) {
		lines := strings.Split(prompt, "\n")
		var listed []string
		for _, line := range lines {
			if strings.HasPrefix(line, "1. ") || strings.HasPrefix(line, "2. ") {
				listed = append(listed, line)
			}
		}
		assert.Len(t, listed, 2)
		assert.Contains(t, listed[0], "Barolo (2017)")
		assert.Contains(t, listed[0], "Italy")
		assert.Contains(t, listed[1], "Mystery White (2020)")
	})

	t.Run("lists the taste profile", func(t *testing.T) {
		assert.Contains(t, prompt, "taste: Tar and roses")
	})

	t.Run("unknown placeholders for missing attributes", func(t *testing.T) {
		assert.Contains(t, prompt, "taste: unknown")
	})

	t.Run("asks for capped ranked JSON answer", func(t *testing.T) {
		assert.Contains(t, prompt, "wild mushroom risotto")
		assert.Contains(t, prompt, "at most 3")
		assert.Contains(t, prompt, "ranked from best to worst")
		assert.Contains(t, prompt, "still answer, with lower scores")
		assert.Contains(t, prompt, `"wineIndex"`)
		assert.Contains(t, prompt, `"generalAdvice"`)
	})
}
