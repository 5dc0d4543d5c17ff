package v1

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wijnkelder/cellar/domain/wine"
	"github.com/wijnkelder/cellar/infrastructure/api/middleware"
	"github.com/wijnkelder/cellar/infrastructure/credential"
)

// Settings handles the API key endpoints. The key itself is never echoed
// back; callers only learn whether one is configured.
type Settings struct {
	keys     *credential.KeyCache
	resolver wine.OwnerResolver
}

// NewSettings creates the settings handler.
func NewSettings(keys *credential.KeyCache, resolver wine.OwnerResolver) *Settings {
	return &Settings{keys: keys, resolver: resolver}
}

// Routes registers the settings routes.
func (h *Settings) Routes(r chi.Router) {
	r.Get("/settings/key", h.status)
	r.Put("/settings/key", h.set)
	r.Delete("/settings/key", h.clear)
}

// status reports whether the owner has a key, hydrating their slot from
// storage on first call.
func (h *Settings) status(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.resolver.CurrentOwner(r.Context())
	if !ok {
		middleware.WriteDomainError(w, wine.ErrUnauthenticated)
		return
	}

	if _, ok := h.keys.Get(ownerID); ok {
		middleware.WriteJSON(w, http.StatusOK, KeyStatusResponse{Configured: true})
		return
	}

	key, err := h.keys.Load(r.Context(), ownerID)
	if err != nil {
		middleware.WriteDomainError(w, err)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, KeyStatusResponse{Configured: key != ""})
}

func (h *Settings) set(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.resolver.CurrentOwner(r.Context())
	if !ok {
		middleware.WriteDomainError(w, wine.ErrUnauthenticated)
		return
	}

	var req KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Key == "" {
		middleware.WriteError(w, http.StatusBadRequest, "key is required")
		return
	}

	h.keys.Set(r.Context(), ownerID, req.Key)
	middleware.WriteJSON(w, http.StatusOK, KeyStatusResponse{Configured: true})
}

func (h *Settings) clear(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.resolver.CurrentOwner(r.Context())
	if !ok {
		middleware.WriteDomainError(w, wine.ErrUnauthenticated)
		return
	}

	h.keys.Clear(ownerID)
	w.WriteHeader(http.StatusNoContent)
}
