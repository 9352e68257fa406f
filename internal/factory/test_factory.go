package factory

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/vocabquest/vocabquest-go/internal/dependencies/mocks"
	"github.com/vocabquest/vocabquest-go/internal/services/auth"
	"github.com/vocabquest/vocabquest-go/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, auth.DefaultConfig(), logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// SeedDictionary loads the built-in starter entries
func (t *TestApp) SeedDictionary(ctx context.Context) error {
	return t.DictionaryService.Seed(ctx)
}
