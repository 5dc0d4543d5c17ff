package middleware

import (
	"net/http"
	"strings"

	"github.com/wijnkelder/cellar/infrastructure/auth"
)

// Auth returns a middleware that verifies the bearer token and places the
// authenticated owner in the request context. Requests without a valid token
// get 401.
func Auth(verifier *auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			ownerID, err := verifier.Verify(token)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "invalid bearer token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithOwner(r.Context(), ownerID)))
		})
	}
}
