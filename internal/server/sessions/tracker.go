// Package sessions enforces the absolute session-duration cap. Every login
// opens at most one window, keyed by the token's session id (jti); the window
// starts on the first protected request and is never extended or renewed.
// Once the cap elapses the window is terminal; a fresh login (new jti) is
// the only way to obtain a new one.
package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.etcd.io/bbolt"
)

// ErrSessionExpired indicates that the session window for this login has
// elapsed. The caller must surface it as terminal: the client has to
// re-authenticate.
var ErrSessionExpired = errors.New("session expired")

var bucketWindows = []byte("windows")

// window is the stored per-session state. StartedAt is set exactly once, on
// the first protected request after login.
type window struct {
	UserID    int64     `json:"user_id"`
	StartedAt time.Time `json:"started_at"`
}

// Tracker is the bbolt-backed session-window store. bbolt serializes Update
// transactions, which gives the check-and-set the required atomicity:
// concurrent first requests for the same session record exactly one
// started_at (first writer wins). Persisting windows also keeps the cap
// intact across process restarts.
type Tracker struct {
	db       *bbolt.DB
	logger   *slog.Logger
	cleanupC chan struct{}
	cap      time.Duration
	// retention bounds how long an expired window is kept. Windows are keyed
	// by jti, so a window is garbage once its token has expired; retention
	// must therefore be >= the token TTL.
	retention time.Duration
	now       func() time.Time
}

// NewTracker opens (or creates) the window store at path.
// cap is the session-duration cap (60 minutes in production configuration).
func NewTracker(path string, cap, retention time.Duration, logger *slog.Logger) (*Tracker, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketWindows)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create windows bucket: %w", err)
	}

	t := &Tracker{
		db:        db,
		cap:       cap,
		retention: retention,
		logger:    logger,
		now:       time.Now,
		cleanupC:  make(chan struct{}),
	}

	go t.cleanup()

	return t, nil
}

// Close stops the cleanup goroutine and closes the store.
func (t *Tracker) Close() error {
	close(t.cleanupC)
	return t.db.Close()
}

// BeginOrCheck records the window start on the first call for a session and
// enforces the cap on every subsequent call:
//   - no window recorded: started_at = now, Ok
//   - now - started_at > cap: ErrSessionExpired (the window is NOT reset)
//   - otherwise: Ok, started_at untouched (absolute cap, not sliding)
func (t *Tracker) BeginOrCheck(ctx context.Context, sessionID string, userID int64) error {
	if sessionID == "" {
		return fmt.Errorf("session id cannot be empty")
	}

	return t.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWindows)
		if bucket == nil {
			return fmt.Errorf("windows bucket not found")
		}

		key := []byte(sessionID)

		data := bucket.Get(key)
		if data == nil {
			w := window{UserID: userID, StartedAt: t.now()}
			encoded, err := json.Marshal(w)
			if err != nil {
				return fmt.Errorf("failed to marshal window: %w", err)
			}
			return bucket.Put(key, encoded)
		}

		var w window
		if err := json.Unmarshal(data, &w); err != nil {
			return fmt.Errorf("failed to unmarshal window: %w", err)
		}

		if t.now().Sub(w.StartedAt) > t.cap {
			return ErrSessionExpired
		}

		return nil
	})
}

// cleanup periodically prunes windows old enough that their token has
// expired too.
func (t *Tracker) cleanup() {
	ticker := time.NewTicker(t.retention)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := t.pruneStale(); err != nil {
				t.logger.Warn("failed to prune session windows", "error", err)
			}
		case <-t.cleanupC:
			return
		}
	}
}

// pruneStale deletes windows whose started_at is older than retention.
func (t *Tracker) pruneStale() error {
	cutoff := t.now().Add(-t.retention)

	return t.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWindows)
		if bucket == nil {
			return fmt.Errorf("windows bucket not found")
		}

		var stale [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			var w window
			if err := json.Unmarshal(v, &w); err != nil {
				// Unreadable entries are dropped with the stale ones.
				stale = append(stale, append([]byte(nil), k...))
				return nil
			}
			if w.StartedAt.Before(cutoff) {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range stale {
			if err := bucket.Delete(k); err != nil {
				return fmt.Errorf("failed to delete window: %w", err)
			}
		}

		return nil
	})
}
