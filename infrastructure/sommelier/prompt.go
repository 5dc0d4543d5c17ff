// Package sommelier builds the AI prompts for wine enrichment and dish
// pairing and validates the model's answers. Model output is treated as
// untrusted: everything passes through the parser before reaching a domain
// type.
package sommelier

import (
	"fmt"
	"strings"

	"github.com/wijnkelder/cellar/domain/wine"
)

// MaxRecommendations caps the number of pairing suggestions requested.
const MaxRecommendations = 3

// EnrichmentPrompt renders the request for a single wine's attributes. The
// same inputs always produce the same prompt.
func EnrichmentPrompt(name string, year int, grapes string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Give information about the wine %q from the year %d.", name, year)
	if grapes != "" {
		fmt.Fprintf(&b, " The grape varieties are: %s.", grapes)
	}
	b.WriteString("\n\n")
	b.WriteString("Answer ONLY with a JSON object in exactly this format:\n")
	b.WriteString(`{
  "grapes": "the grape varieties",
  "country": "the country of origin",
  "region": "the region or appellation",
  "type": "one of: red, white, rosé, sparkling",
  "bestBefore": "the recommended drinking window, e.g. 2025-2030",
  "tasteProfile": "a short description of the taste",
  "pairingAdvice": "which dishes this wine pairs well with"
}`)

	return b.String()
}

// PairingPrompt renders the dish-to-cellar pairing request over the given
// candidates. Wines are listed 1-indexed in the exact order given; the parser
// resolves wineIndex against the same order. Missing attributes are shown
// with literal "unknown" placeholders so the listing shape is stable.
func PairingPrompt(dish string, candidates []wine.Wine) string {
	var b strings.Builder

	fmt.Fprintf(&b, "I want to eat: %s.\n\n", dish)
	b.WriteString("These wines are in my cellar:\n")

	for i, w := range candidates {
		fmt.Fprintf(&b, "%d. %s (%d) - %s from %s, %s - taste: %s\n",
			i+1,
			w.Name(),
			w.Year(),
			orUnknown(string(w.Style())),
			orUnknown(w.Country()),
			orUnknown(w.Region()),
			orUnknown(w.TasteProfile()),
		)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Recommend at most %d wines from this list for the dish, ranked from best to worst match. ", MaxRecommendations)
	b.WriteString("If nothing fits well, still answer, with lower scores.\n\n")
	b.WriteString("Answer ONLY with a JSON object in exactly this format:\n")
	b.WriteString(`{
  "recommendations": [
    {"wineIndex": 1, "reason": "why this wine fits", "score": 8}
  ],
  "generalAdvice": "overall advice for this dish"
}`)
	b.WriteString("\nwineIndex refers to the number in the list above.")

	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
