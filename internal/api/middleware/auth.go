package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

const tokenHeader = "X-Webhook-Token"

// WebhookAuth rejects requests whose shared token does not match. With
// an empty configured token the check is disabled (local development).
func WebhookAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token != "" {
				got := r.Header.Get(tokenHeader)
				if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
