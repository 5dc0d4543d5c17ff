// Package v1 contains the HTTP handlers for the /api/v1 surface.
package v1

import (
	"time"

	"github.com/wijnkelder/cellar/domain/wine"
)

// WineRequest is the create/update body. Updates replace all mutable fields.
type WineRequest struct {
	Name          string `json:"name"`
	Year          int    `json:"year"`
	Grapes        string `json:"grapes,omitempty"`
	Quantity      int    `json:"quantity"`
	Country       string `json:"country,omitempty"`
	Region        string `json:"region,omitempty"`
	Type          string `json:"type,omitempty"`
	BestBefore    string `json:"bestBefore,omitempty"`
	TasteProfile  string `json:"tasteProfile,omitempty"`
	PairingAdvice string `json:"pairingAdvice,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Rating        int    `json:"rating,omitempty"`
}

// WineResponse is the JSON rendering of a wine.
type WineResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Year          int       `json:"year"`
	Grapes        string    `json:"grapes,omitempty"`
	Quantity      int       `json:"quantity"`
	Country       string    `json:"country,omitempty"`
	Region        string    `json:"region,omitempty"`
	Type          string    `json:"type"`
	BestBefore    string    `json:"bestBefore,omitempty"`
	TasteProfile  string    `json:"tasteProfile,omitempty"`
	PairingAdvice string    `json:"pairingAdvice,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Rating        int       `json:"rating,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewWineResponse renders a wine.
func NewWineResponse(w wine.Wine) WineResponse {
	return WineResponse{
		ID:            w.ID().String(),
		Name:          w.Name(),
		Year:          w.Year(),
		Grapes:        w.Grapes(),
		Quantity:      w.Quantity(),
		Country:       w.Country(),
		Region:        w.Region(),
		Type:          string(w.Style()),
		BestBefore:    w.DrinkWindow(),
		TasteProfile:  w.TasteProfile(),
		PairingAdvice: w.PairingAdvice(),
		Notes:         w.Notes(),
		Rating:        w.Rating(),
		CreatedAt:     w.CreatedAt(),
	}
}

// NewWineListResponse renders a wine list.
func NewWineListResponse(wines []wine.Wine) []WineResponse {
	out := make([]WineResponse, 0, len(wines))
	for _, w := range wines {
		out = append(out, NewWineResponse(w))
	}
	return out
}

// PairingRequest is the body of a pairing call.
type PairingRequest struct {
	Dish string `json:"dish"`
}

// RecommendationResponse is a single pairing suggestion.
type RecommendationResponse struct {
	Wine   WineResponse `json:"wine"`
	Reason string       `json:"reason"`
	Score  int          `json:"score"`
}

// PairingResponse is the JSON rendering of a pairing result.
type PairingResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
	GeneralAdvice   string                   `json:"generalAdvice"`
}

// NewPairingResponse renders a pairing.
func NewPairingResponse(p wine.Pairing) PairingResponse {
	recs := make([]RecommendationResponse, 0, len(p.Recommendations()))
	for _, r := range p.Recommendations() {
		recs = append(recs, RecommendationResponse{
			Wine:   NewWineResponse(r.Wine()),
			Reason: r.Reason(),
			Score:  r.Score(),
		})
	}
	return PairingResponse{
		Recommendations: recs,
		GeneralAdvice:   p.GeneralAdvice(),
	}
}

// KeyRequest is the body for storing an API key.
type KeyRequest struct {
	Key string `json:"key"`
}

// KeyStatusResponse reports whether a key is configured.
type KeyStatusResponse struct {
	Configured bool `json:"configured"`
}
