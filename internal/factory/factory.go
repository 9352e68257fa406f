package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/vocabquest/vocabquest-go/internal/dependencies/clock"
	"github.com/vocabquest/vocabquest-go/internal/dependencies/random"
	"github.com/vocabquest/vocabquest-go/internal/services/auth"
	"github.com/vocabquest/vocabquest-go/internal/services/dictionary"
	"github.com/vocabquest/vocabquest-go/internal/services/game"
	"github.com/vocabquest/vocabquest-go/internal/services/registry"
	"github.com/vocabquest/vocabquest-go/internal/services/roomlock"
	"github.com/vocabquest/vocabquest-go/internal/services/scoring"
	"github.com/vocabquest/vocabquest-go/internal/services/session"
	"github.com/vocabquest/vocabquest-go/internal/services/social"
	"github.com/vocabquest/vocabquest-go/internal/services/vocab"
	"github.com/vocabquest/vocabquest-go/internal/storage"
	"github.com/vocabquest/vocabquest-go/internal/storage/memory"
	redisstorage "github.com/vocabquest/vocabquest-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Event fan-out; every controller publishes into it
	Notifier *session.Notifier

	// Services
	DictionaryService  *dictionary.Service
	ScoringService     *scoring.Service
	RegistryController *registry.Controller
	GameController     *game.Controller
	SessionService     *session.Service
	AuthService        *auth.Service
	VocabService       *vocab.Service
	SocialService      *social.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) *App {
	// Room controllers share one keyed lock and publish into one notifier
	locks := roomlock.New()
	notifier := session.NewNotifier(logger)

	dictService := dictionary.New(store)
	scoringService := scoring.New()
	registryController := registry.NewController(store, locks, clk, rnd, notifier)
	gameController := game.NewController(store, scoringService, locks, clk, rnd, logger, notifier)
	sessionService := session.NewService(registryController, gameController, notifier)
	authService := auth.New(store, clk, authCfg)
	vocabService := vocab.New(store, clk, rnd)
	socialService := social.New(store, clk, rnd)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		Notifier:           notifier,
		DictionaryService:  dictService,
		ScoringService:     scoringService,
		RegistryController: registryController,
		GameController:     gameController,
		SessionService:     sessionService,
		AuthService:        authService,
		VocabService:       vocabService,
		SocialService:      socialService,
	}
}
