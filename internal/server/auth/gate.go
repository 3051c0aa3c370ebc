package auth

import (
	"context"
	"errors"
	"strings"
)

// ErrMissingToken indicates the Authorization header is absent or not of the
// form "Bearer <token>".
var ErrMissingToken = errors.New("missing token")

// SessionChecker enforces the session-duration cap for a verified identity.
// Implemented by sessions.Tracker.
type SessionChecker interface {
	// BeginOrCheck records the window start on the first call for a session
	// and returns sessions.ErrSessionExpired once the cap has elapsed.
	BeginOrCheck(ctx context.Context, sessionID string, userID int64) error
}

// Gate is the single authorization choke point. Every protected endpoint
// calls Authorize before touching any collaborator; each step is a hard gate
// with a distinct error, checked in order:
//
//  1. header present and of form "Bearer <token>" (ErrMissingToken)
//  2. token signature and expiry (ErrTokenMalformed / ErrTokenExpired)
//  3. session window within cap (sessions.ErrSessionExpired, propagated
//     unchanged)
type Gate struct {
	tokens   *TokenService
	sessions SessionChecker
}

// NewGate creates an authorization gate.
func NewGate(tokens *TokenService, sessions SessionChecker) *Gate {
	return &Gate{
		tokens:   tokens,
		sessions: sessions,
	}
}

// Authorize runs the full gate against an Authorization header value and
// returns the recovered claims for downstream use (attributing mood logs,
// addressing the user in chat).
func (g *Gate) Authorize(ctx context.Context, authHeader string) (*Claims, error) {
	token, err := parseBearer(authHeader)
	if err != nil {
		return nil, err
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, ErrTokenMalformed
	}

	if err := g.sessions.BeginOrCheck(ctx, claims.SessionID(), userID); err != nil {
		return nil, err
	}

	return claims, nil
}

// parseBearer extracts the token from a "Bearer <token>" header value.
func parseBearer(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrMissingToken
	}

	return parts[1], nil
}
