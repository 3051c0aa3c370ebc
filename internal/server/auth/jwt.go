// Package auth implements the token service and the authorization gate that
// every protected endpoint passes through.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token verification errors. Handlers map these to distinguishable HTTP
// responses; they must never be collapsed into a generic failure.
var (
	// ErrTokenMalformed indicates the token cannot be parsed or its
	// signature does not verify.
	ErrTokenMalformed = errors.New("malformed token")

	// ErrTokenExpired indicates a structurally valid token past its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Claims are the JWT claims issued at login. The registered ID (jti) is a
// fresh UUID per login and doubles as the session-window handle: a new login
// always opens a new tracking scope.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserID returns the numeric user id carried in the subject claim.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject claim: %w", err)
	}
	return id, nil
}

// SessionID returns the jti claim used to key the session window.
func (c *Claims) SessionID() string {
	return c.ID
}

// TokenService issues and verifies HS256-signed access tokens. The signing
// secret is loaded once at startup and constant for the process lifetime;
// rotating it invalidates all outstanding tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService.
// secret must be a cryptographically secure random value; ttl is the token
// lifetime (2h in production configuration).
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates a signed access token for the given user.
// Returns the token string and its lifetime in seconds.
func (s *TokenService) Issue(userID int64, username string) (string, int64, error) {
	now := s.now()

	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "solace",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, int64(s.ttl.Seconds()), nil
}

// Verify validates a token string and returns its claims.
// The signature is checked before any embedded field is trusted. Returns
// ErrTokenExpired for valid-but-expired tokens and ErrTokenMalformed for
// everything else.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Reject any non-HMAC algorithm, including "none".
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
