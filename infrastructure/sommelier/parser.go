package sommelier

import (
	"encoding/json"
	"fmt"

	"github.com/wijnkelder/cellar/domain/wine"
)

// enrichmentPayload mirrors the JSON shape requested by EnrichmentPrompt.
type enrichmentPayload struct {
	Grapes        string `json:"grapes"`
	Country       string `json:"country"`
	Region        string `json:"region"`
	Type          string `json:"type"`
	BestBefore    string `json:"bestBefore"`
	TasteProfile  string `json:"tasteProfile"`
	PairingAdvice string `json:"pairingAdvice"`
}

// pairingPayload mirrors the JSON shape requested by PairingPrompt. Numbers
// decode as float64 so a fractional or out-of-range value never aborts the
// whole response.
type pairingPayload struct {
	Recommendations []struct {
		WineIndex float64 `json:"wineIndex"`
		Reason    string  `json:"reason"`
		Score     float64 `json:"score"`
	} `json:"recommendations"`
	GeneralAdvice string `json:"generalAdvice"`
}

// extractJSONObject returns the first balanced JSON object found in s. Models
// routinely wrap their JSON in prose or code fences; everything outside the
// braces is discarded. Brace characters inside JSON strings are skipped.
func extractJSONObject(s string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range s {
		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}

		switch r {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return s[start : i+1], nil
				}
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}

	return "", wine.ErrNoStructuredOutput
}

// ParseEnrichment extracts and validates a wine-info response. An invalid
// type value falls back to red rather than failing: the surrounding data is
// still useful.
func ParseEnrichment(raw string) (wine.Info, error) {
	obj, err := extractJSONObject(raw)
	if err != nil {
		return wine.Info{}, err
	}

	var payload enrichmentPayload
	if err := json.Unmarshal([]byte(obj), &payload); err != nil {
		return wine.Info{}, fmt.Errorf("%w: %v", wine.ErrMalformedOutput, err)
	}

	return wine.NewInfo(
		payload.Grapes,
		payload.Country,
		payload.Region,
		payload.Type,
		payload.BestBefore,
		payload.TasteProfile,
		payload.PairingAdvice,
	), nil
}

// ParsePairing extracts and validates a pairing response against the exact
// candidate slice the prompt was built from. Recommendations with an
// out-of-range, zero, fractional or duplicate wineIndex are dropped; the
// rest keep their order. A missing generalAdvice becomes the empty string.
func ParsePairing(raw string, candidates []wine.Wine) (wine.Pairing, error) {
	obj, err := extractJSONObject(raw)
	if err != nil {
		return wine.Pairing{}, err
	}

	var payload pairingPayload
	if err := json.Unmarshal([]byte(obj), &payload); err != nil {
		return wine.Pairing{}, fmt.Errorf("%w: %v", wine.ErrMalformedOutput, err)
	}

	seen := make(map[int]bool, len(payload.Recommendations))
	recommendations := make([]wine.Recommendation, 0, len(payload.Recommendations))
	for _, rec := range payload.Recommendations {
		idx := int(rec.WineIndex)
		if float64(idx) != rec.WineIndex {
			continue
		}
		// wineIndex is 1-based per the prompt
		if idx < 1 || idx > len(candidates) || seen[idx] {
			continue
		}
		seen[idx] = true
		recommendations = append(recommendations,
			wine.NewRecommendation(candidates[idx-1], rec.Reason, int(rec.Score)))
	}

	return wine.NewPairing(recommendations, payload.GeneralAdvice), nil
}
