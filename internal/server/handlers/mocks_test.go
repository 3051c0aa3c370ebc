package handlers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/iudanet/solace/internal/models"
	"github.com/iudanet/solace/internal/server/storage"
)

// testLogger returns a logger that discards output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockUserStorage implements storage.UserStorage for tests.
type mockUserStorage struct {
	createFunc  func(ctx context.Context, user *models.User) error
	byEmailFunc func(ctx context.Context, email string) (*models.User, error)
	byIDFunc    func(ctx context.Context, userID int64) (*models.User, error)
	createCalls int
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.byEmailFunc != nil {
		return m.byEmailFunc(ctx, email)
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	if m.byIDFunc != nil {
		return m.byIDFunc(ctx, userID)
	}
	return nil, storage.ErrUserNotFound
}

// mockMoodStorage implements storage.MoodStorage for tests.
type mockMoodStorage struct {
	appendFunc func(ctx context.Context, entry *models.MoodEntry) error
	listFunc   func(ctx context.Context, userID int64) ([]*models.MoodEntry, error)
	appended   []*models.MoodEntry
}

func (m *mockMoodStorage) AppendMood(ctx context.Context, entry *models.MoodEntry) error {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, entry)
	}
	m.appended = append(m.appended, entry)
	return nil
}

func (m *mockMoodStorage) ListMoods(ctx context.Context, userID int64) ([]*models.MoodEntry, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return nil, nil
}

// mockRecorder implements metrics.Recorder and counts recordings.
type mockRecorder struct {
	escalations    int
	llmCalls       int
	llmFailures    int
	authRejections map[string]int
}

func newMockRecorder() *mockRecorder {
	return &mockRecorder{authRejections: make(map[string]int)}
}

func (m *mockRecorder) RecordHTTPStatus(statusCode int)             {}
func (m *mockRecorder) RecordRequestLatency(duration time.Duration) {}
func (m *mockRecorder) RecordEscalation()                           { m.escalations++ }
func (m *mockRecorder) RecordLLMCall()                              { m.llmCalls++ }
func (m *mockRecorder) RecordLLMFailure()                           { m.llmFailures++ }
func (m *mockRecorder) RecordAuthRejection(reason string)           { m.authRejections[reason]++ }
