package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/rishabhparsediya7/expensemanager-psql/config"
	"github.com/rishabhparsediya7/expensemanager-psql/pkg/logger"
	"github.com/rishabhparsediya7/expensemanager-psql/pkg/utils"
)

type contextKey string

const userIDKey contextKey = "userId"

// UserIDFromContext returns the authenticated user id set by AuthenticateJWT.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// AuthenticateJWT verifies a Bearer token and stores the userId claim in
// the request context. Tokens are issued by the auth service; this server
// only verifies them.
func AuthenticateJWT(cfg config.Config, lg logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if token == "" {
				writeAuthError(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}

			userID, err := utils.ParseUserID(token, cfg)
			if err != nil {
				lg.Warn("token verification failed", "err", err)
				writeAuthError(w, http.StatusForbidden, "Invalid or expired token.")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
