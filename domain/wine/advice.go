package wine

// Info carries the AI-derived attributes for a single wine, as validated by
// the response parser. It is merged into an entity via Wine.WithEnrichment.
type Info struct {
	grapes        string
	country       string
	region        string
	typ           Type
	drinkWindow   string
	tasteProfile  string
	pairingAdvice string
}

// NewInfo creates enrichment info. The type string is coerced onto the enum.
func NewInfo(grapes, country, region, typ, drinkWindow, tasteProfile, pairingAdvice string) Info {
	return Info{
		grapes:        grapes,
		country:       country,
		region:        region,
		typ:           ParseType(typ),
		drinkWindow:   drinkWindow,
		tasteProfile:  tasteProfile,
		pairingAdvice: pairingAdvice,
	}
}

// Grapes returns the grape varieties.
func (i Info) Grapes() string { return i.grapes }

// Country returns the country of origin.
func (i Info) Country() string { return i.country }

// Region returns the region or appellation.
func (i Info) Region() string { return i.region }

// Style returns the wine type.
func (i Info) Style() Type { return i.typ }

// DrinkWindow returns the recommended drinking period.
func (i Info) DrinkWindow() string { return i.drinkWindow }

// TasteProfile returns the taste description.
func (i Info) TasteProfile() string { return i.tasteProfile }

// PairingAdvice returns the food pairing advice.
func (i Info) PairingAdvice() string { return i.pairingAdvice }

// Recommendation is a single validated pairing suggestion. The wine is the
// resolved candidate, not an index: invalid references never leave the
// parsing boundary.
type Recommendation struct {
	wine   Wine
	reason string
	score  int
}

// NewRecommendation creates a recommendation for a resolved candidate.
func NewRecommendation(w Wine, reason string, score int) Recommendation {
	return Recommendation{wine: w, reason: reason, score: score}
}

// Wine returns the recommended wine.
func (r Recommendation) Wine() Wine { return r.wine }

// Reason returns the model's explanation for the match.
func (r Recommendation) Reason() string { return r.reason }

// Score returns the model's suitability score, accepted as given.
func (r Recommendation) Score() int { return r.score }

// Pairing is the validated result of a dish-to-cellar pairing request.
type Pairing struct {
	recommendations []Recommendation
	generalAdvice   string
}

// NewPairing creates a pairing result.
func NewPairing(recommendations []Recommendation, generalAdvice string) Pairing {
	return Pairing{recommendations: recommendations, generalAdvice: generalAdvice}
}

// Recommendations returns the suggestions in the model's ranking order.
func (p Pairing) Recommendations() []Recommendation { return p.recommendations }

// GeneralAdvice returns the overall advice, empty when the model gave none.
func (p Pairing) GeneralAdvice() string { return p.generalAdvice }
