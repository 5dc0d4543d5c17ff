package v1

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wijnkelder/cellar/application/service"
	"github.com/wijnkelder/cellar/infrastructure/api/middleware"
)

// Advice handles the pairing endpoint.
type Advice struct {
	advice *service.Advice
}

// NewAdvice creates the advice handler.
func NewAdvice(advice *service.Advice) *Advice {
	return &Advice{advice: advice}
}

// Routes registers the advice routes.
func (h *Advice) Routes(r chi.Router) {
	r.Post("/pairings", h.pair)
}

func (h *Advice) pair(w http.ResponseWriter, r *http.Request) {
	var req PairingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Dish == "" {
		middleware.WriteError(w, http.StatusBadRequest, "dish is required")
		return
	}

	pairing, err := h.advice.Pair(r.Context(), req.Dish)
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, NewPairingResponse(pairing))
}
