package middleware

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mithaikart/storefront-service/internal/infrastructure/http/response"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
)

// NewAdminAuthMiddleware guards the back-office endpoints. The caller sends
// the raw admin API key as a bearer token; the config stores only its bcrypt
// hash.
func NewAdminAuthMiddleware(apiKeyHash string, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKeyHash == "" {
				log.Error("Admin API key hash not configured, rejecting request", "path", r.URL.Path)
				response.WriteError(w, http.StatusUnauthorized, response.StatusUnauthorized, "Unauthorized")
				return
			}

			key := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if key == "" || key == r.Header.Get("Authorization") {
				response.WriteError(w, http.StatusUnauthorized, response.StatusUnauthorized, "Missing bearer token")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(apiKeyHash), []byte(key)); err != nil {
				log.Warn("Admin auth failed",
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
				)
				response.WriteError(w, http.StatusUnauthorized, response.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
