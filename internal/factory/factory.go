package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/scripturemastery/server/internal/dependencies/clock"
	"github.com/scripturemastery/server/internal/dependencies/random"
	"github.com/scripturemastery/server/internal/services/auth"
	"github.com/scripturemastery/server/internal/services/challenge"
	"github.com/scripturemastery/server/internal/services/daily"
	"github.com/scripturemastery/server/internal/services/grading"
	"github.com/scripturemastery/server/internal/services/leaderboard"
	"github.com/scripturemastery/server/internal/services/profile"
	"github.com/scripturemastery/server/internal/services/selection"
	"github.com/scripturemastery/server/internal/sse"
	"github.com/scripturemastery/server/internal/storage"
	"github.com/scripturemastery/server/internal/storage/memory"
	redisstorage "github.com/scripturemastery/server/internal/storage/redis"
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

	// Services
	SelectionService    *selection.Service
	GradingService      *grading.Service
	AuthService         *auth.Service
	ProfileService      *profile.Service
	ChallengeController *challenge.Controller
	LeaderboardService  *leaderboard.Service
	DailyService        *daily.Service
	HubManager          *sse.HubManager
	Broadcaster         *sse.Broadcaster
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
	// Create services
	selectionService := selection.New()
	gradingService := grading.New()
	authService := auth.New(store, clk, authCfg)
	profileService := profile.NewService(store, clk)
	challengeController := challenge.NewController(store, selectionService, clk, rnd, logger)
	leaderboardService := leaderboard.NewService(store, clk, logger)
	dailyService := daily.NewService(store, selectionService, clk, logger)
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)

	return &App{
		Storage:             store,
		Clock:               clk,
		Random:              rnd,
		SelectionService:    selectionService,
		GradingService:      gradingService,
		AuthService:         authService,
		ProfileService:      profileService,
		ChallengeController: challengeController,
		LeaderboardService:  leaderboardService,
		DailyService:        dailyService,
		HubManager:          hubManager,
		Broadcaster:         broadcaster,
	}
}
