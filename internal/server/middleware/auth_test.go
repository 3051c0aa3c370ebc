package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/solace/internal/server/auth"
	"github.com/iudanet/solace/internal/server/handlers"
	"github.com/iudanet/solace/internal/server/sessions"
)

// mockSessionChecker implements auth.SessionChecker.
type mockSessionChecker struct {
	err   error
	calls int
}

func (m *mockSessionChecker) BeginOrCheck(ctx context.Context, sessionID string, userID int64) error {
	m.calls++
	return m.err
}

// mockRecorder counts auth rejections by reason.
type mockRecorder struct {
	authRejections map[string]int
}

func newMockRecorder() *mockRecorder {
	return &mockRecorder{authRejections: make(map[string]int)}
}

func (m *mockRecorder) RecordHTTPStatus(statusCode int)             {}
func (m *mockRecorder) RecordRequestLatency(duration time.Duration) {}
func (m *mockRecorder) RecordEscalation()                           {}
func (m *mockRecorder) RecordLLMCall()                              {}
func (m *mockRecorder) RecordLLMFailure()                           {}
func (m *mockRecorder) RecordAuthRejection(reason string)           { m.authRejections[reason]++ }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func gateHandler(tokens *auth.TokenService, checker *mockSessionChecker, recorder *mockRecorder, next http.Handler) http.Handler {
	gate := auth.NewGate(tokens, checker)
	return AuthGateMiddleware(testLogger(), gate, recorder)(next)
}

func TestAuthGateMiddlewareAllowsValidToken(t *testing.T) {
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	token, _, err := tokens.Issue(42, "alice")
	require.NoError(t, err)

	checker := &mockSessionChecker{}
	recorder := newMockRecorder()

	var gotUserID int64
	var gotUsername, gotSessionID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = handlers.GetUserID(r.Context())
		gotUsername, _ = handlers.GetUsername(r.Context())
		gotSessionID, _ = handlers.GetSessionID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	gateHandler(tokens, checker, recorder, next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotUserID)
	assert.Equal(t, "alice", gotUsername)
	assert.NotEmpty(t, gotSessionID)
	assert.Equal(t, 1, checker.calls)
	assert.Empty(t, recorder.authRejections)
}

func TestAuthGateMiddlewareRejections(t *testing.T) {
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	expiredTokens := auth.NewTokenService([]byte("test-secret"), -time.Hour)

	validToken, _, err := tokens.Issue(42, "alice")
	require.NoError(t, err)
	expiredToken, _, err := expiredTokens.Issue(42, "alice")
	require.NoError(t, err)

	tests := []struct {
		name        string
		authHeader  string
		sessionErr  error
		wantReason  string
		wantMessage string
	}{
		{
			name:        "missing header",
			authHeader:  "",
			wantReason:  "missing_token",
			wantMessage: "missing token",
		},
		{
			name:        "not bearer",
			authHeader:  "Basic dXNlcjpwYXNz",
			wantReason:  "missing_token",
			wantMessage: "missing token",
		},
		{
			name:        "garbage token",
			authHeader:  "Bearer not-a-jwt",
			wantReason:  "malformed_token",
			wantMessage: "invalid token",
		},
		{
			name:        "expired token",
			authHeader:  "Bearer " + expiredToken,
			wantReason:  "expired_token",
			wantMessage: "token expired",
		},
		{
			name:        "session cap reached",
			authHeader:  "Bearer " + validToken,
			sessionErr:  sessions.ErrSessionExpired,
			wantReason:  "session_expired",
			wantMessage: "session expired, please log in again",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := &mockSessionChecker{err: tt.sessionErr}
			recorder := newMockRecorder()

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			gateHandler(tokens, checker, recorder, next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, nextCalled, "rejected request must not reach the handler")
			assert.Equal(t, 1, recorder.authRejections[tt.wantReason])

			var resp struct {
				Error   string `json:"error"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}
