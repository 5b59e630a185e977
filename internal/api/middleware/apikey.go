// Package middleware provides HTTP middleware for request logging, CORS and
// access control.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/api/response"
)

// APIKeyMiddleware guards internal endpoints (price import) with the
// X-API-Key header, compared against the INTERNAL_API_KEY environment
// variable. With no key configured every request is rejected.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := os.Getenv("INTERNAL_API_KEY")

		key := r.Header.Get("X-API-Key")
		if key == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}

		if expected == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}
