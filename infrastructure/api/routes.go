package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wijnkelder/cellar/application/service"
	"github.com/wijnkelder/cellar/domain/wine"
	"github.com/wijnkelder/cellar/infrastructure/api/middleware"
	v1 "github.com/wijnkelder/cellar/infrastructure/api/v1"
	"github.com/wijnkelder/cellar/infrastructure/auth"
	"github.com/wijnkelder/cellar/infrastructure/credential"
)

// Dependencies carries everything the route tree needs.
type Dependencies struct {
	Cellar   *service.Cellar
	Advice   *service.Advice
	Keys     *credential.KeyCache
	Resolver wine.OwnerResolver
	Verifier *auth.Verifier
	Logger   *slog.Logger
}

// MountRoutes registers the health check and the authenticated /api/v1
// surface on the server's router.
func MountRoutes(s Server, deps Dependencies) {
	r := s.Router()
	r.Use(middleware.Logging(deps.Logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(deps.Verifier))

		v1.NewWines(deps.Cellar, deps.Advice).Routes(r)
		v1.NewAdvice(deps.Advice).Routes(r)
		v1.NewSettings(deps.Keys, deps.Resolver).Routes(r)
	})
}
