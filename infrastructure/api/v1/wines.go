package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wijnkelder/cellar/application/service"
	"github.com/wijnkelder/cellar/domain/wine"
	"github.com/wijnkelder/cellar/infrastructure/api/middleware"
)

// Wines handles the wine CRUD and enrichment endpoints.
type Wines struct {
	cellar *service.Cellar
	advice *service.Advice
}

// NewWines creates the wines handler.
func NewWines(cellar *service.Cellar, advice *service.Advice) *Wines {
	return &Wines{cellar: cellar, advice: advice}
}

// Routes registers the wine routes.
func (h *Wines) Routes(r chi.Router) {
	r.Get("/wines", h.list)
	r.Post("/wines", h.create)
	r.Put("/wines/{id}", h.update)
	r.Delete("/wines/{id}", h.delete)
	r.Post("/wines/{id}/enrich", h.enrich)
}

func (h *Wines) list(w http.ResponseWriter, r *http.Request) {
	wines := h.cellar.List(r.Context())
	middleware.WriteJSON(w, http.StatusOK, NewWineListResponse(wines))
}

func (h *Wines) create(w http.ResponseWriter, r *http.Request) {
	var req WineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		middleware.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	stored, err := h.cellar.Save(r.Context(), req.toWine(uuid.Nil, time.Time{}))
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, NewWineResponse(stored))
}

func (h *Wines) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "invalid wine id")
		return
	}

	var req WineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.cellar.Update(r.Context(), req.toWine(id, time.Time{}))
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, NewWineResponse(updated))
}

func (h *Wines) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "invalid wine id")
		return
	}

	if err := h.cellar.Delete(r.Context(), id); err != nil {
		middleware.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// enrich fetches AI-derived attributes for a stored wine, merges them into
// the record and persists the result.
func (h *Wines) enrich(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "invalid wine id")
		return
	}

	stored, err := h.cellar.Find(r.Context(), id)
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}

	info, err := h.advice.Enrich(r.Context(), stored.Name(), stored.Year(), stored.Grapes())
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}

	updated, err := h.cellar.Update(r.Context(), stored.WithEnrichment(info))
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, NewWineResponse(updated))
}

func (req WineRequest) toWine(id uuid.UUID, createdAt time.Time) wine.Wine {
	return wine.ReconstructWine(
		id,
		req.Name,
		req.Year,
		req.Grapes,
		req.Quantity,
		req.Country,
		req.Region,
		wine.ParseType(req.Type),
		req.BestBefore,
		req.TasteProfile,
		req.PairingAdvice,
		req.Notes,
		req.Rating,
		createdAt,
	)
}
