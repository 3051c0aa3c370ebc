package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/iudanet/solace/internal/server/auth"
	"github.com/iudanet/solace/internal/server/handlers"
	"github.com/iudanet/solace/internal/server/metrics"
	"github.com/iudanet/solace/internal/server/sessions"
)

// AuthGateMiddleware runs every protected request through the authorization
// gate before the handler does any work. Rejections are terminal and carry a
// distinguishable reason; nothing downstream (store, LLM) is touched for a
// rejected request.
func AuthGateMiddleware(logger *slog.Logger, gate *auth.Gate, recorder metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := gate.Authorize(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				reason, message := rejection(err)
				logger.Warn("request rejected by authorization gate",
					"reason", reason,
					"path", r.URL.Path,
				)
				recorder.RecordAuthRejection(reason)
				unauthorized(w, message)
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				recorder.RecordAuthRejection("malformed_token")
				unauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), handlers.UserIDKey, userID)
			ctx = context.WithValue(ctx, handlers.UsernameKey, claims.Username)
			ctx = context.WithValue(ctx, handlers.SessionIDKey, claims.SessionID())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// rejection maps a gate error to a metrics reason and a client message.
func rejection(err error) (reason, message string) {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return "missing_token", "missing token"
	case errors.Is(err, auth.ErrTokenExpired):
		return "expired_token", "token expired"
	case errors.Is(err, sessions.ErrSessionExpired):
		return "session_expired", "session expired, please log in again"
	default:
		return "malformed_token", "invalid token"
	}
}

// unauthorized writes a 401 JSON response.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = fmt.Fprintf(w, `{"error":"Unauthorized","message":%q}`, message)
}
