package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/wijnkelder/cellar/domain/wine"
	"github.com/wijnkelder/cellar/infrastructure/provider"
)

func TestWriteDomainError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", wine.ErrUnauthenticated, 401},
		{"not found", wine.ErrNotFound, 404},
		{"missing credential", wine.ErrMissingCredential, 412},
		{"empty candidate set", wine.ErrEmptyCandidateSet, 422},
		{"no structured output", wine.ErrNoStructuredOutput, 502},
		{"malformed output", wine.ErrMalformedOutput, 502},
		{"transport failure", wine.ErrTransportFailure, 502},
		{"unknown", errors.New("boom"), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteDomainError(w, tc.err)

			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestWriteDomainError_WrappedErrorsStillMap(t *testing.T) {
	err := fmt.Errorf("update wine: %w", wine.ErrNotFound)

	w := httptest.NewRecorder()
	WriteDomainError(w, err)

	if w.Code != 404 {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestWriteDomainError_ProviderError(t *testing.T) {
	err := &provider.ProviderError{
		Operation:  "chat completion",
		StatusCode: 429,
		Message:    "rate limited",
	}

	w := httptest.NewRecorder()
	WriteDomainError(w, fmt.Errorf("enrich: %w", err))

	if w.Code != 502 {
		t.Errorf("status = %d, want 502", w.Code)
	}
}

func TestWriteDomainError_BodyCarriesMessage(t *testing.T) {
	w := httptest.NewRecorder()
	WriteDomainError(w, wine.ErrMissingCredential)

	var body ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != wine.ErrMissingCredential.Error() {
		t.Errorf("body.Error = %q, want %q", body.Error, wine.ErrMissingCredential.Error())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}
