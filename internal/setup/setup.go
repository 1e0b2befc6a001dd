package setup

import (
	"context"

	"github.com/promptforge/promptforge/internal/database"
	"github.com/promptforge/promptforge/internal/redis"
	"github.com/promptforge/promptforge/internal/setup/config"
	"github.com/promptforge/promptforge/internal/setup/logging"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

// App bundles all core dependencies needed by the application.
type App struct {
	Config   *config.Config  // Application configuration
	Logger   *zap.Logger     // Main application logger
	DBLogger *zap.Logger     // Database-specific logger
	DB       database.Client // Database connection pool
	Redis    rueidis.Client  // Redis client for the leaderboard cache
}

// InitializeApp bootstraps all application dependencies in the correct
// order, ensuring each component has its required dependencies available.
func InitializeApp(ctx context.Context, logDir string) (*App, error) {
	// Load app configuration
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Logging system is initialized next to capture setup issues
	logger, dbLogger, err := logging.SetupLogging(logDir, cfg.Debug.LogLevel, cfg.Debug.MaxLogsToKeep)
	if err != nil {
		return nil, err
	}

	// Initialize database with automatic migrations
	db, err := database.NewConnection(ctx, &cfg.PostgreSQL, dbLogger, true)
	if err != nil {
		return nil, err
	}

	// Seed the static badge catalog; insert-if-absent so restarts are safe
	if err := db.Service().Reputation().SyncBadgeCatalog(ctx); err != nil {
		return nil, err
	}

	// Redis backs the reputation leaderboard cache
	redisClient, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:   cfg,
		Logger:   logger,
		DBLogger: dbLogger,
		DB:       db,
		Redis:    redisClient,
	}, nil
}

// Cleanup releases all resources.
func (a *App) Cleanup(_ context.Context) {
	a.Redis.Close()

	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Failed to close database connection", zap.Error(err))
	}

	_ = a.Logger.Sync()
	_ = a.DBLogger.Sync()
}
