package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wijnkelder/cellar/domain/wine"
	"github.com/wijnkelder/cellar/infrastructure/provider"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a JSON error body with the given status.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

// WriteDomainError maps the error taxonomy onto HTTP statuses and writes the
// error's one-line message.
func WriteDomainError(w http.ResponseWriter, err error) {
	WriteError(w, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, wine.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, wine.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, wine.ErrMissingCredential):
		return http.StatusPreconditionFailed
	case errors.Is(err, wine.ErrEmptyCandidateSet):
		return http.StatusUnprocessableEntity
	case errors.Is(err, wine.ErrNoStructuredOutput),
		errors.Is(err, wine.ErrMalformedOutput),
		errors.Is(err, wine.ErrTransportFailure):
		return http.StatusBadGateway
	}

	var provErr *provider.ProviderError
	if errors.As(err, &provErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
