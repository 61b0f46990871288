package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/rosterhub/devstore/internal/dependencies/clock"
	"github.com/rosterhub/devstore/internal/dependencies/identifier"
	"github.com/rosterhub/devstore/internal/services/account"
	"github.com/rosterhub/devstore/internal/services/chat"
	"github.com/rosterhub/devstore/internal/services/integrity"
	"github.com/rosterhub/devstore/internal/services/notify"
	"github.com/rosterhub/devstore/internal/services/roster"
	"github.com/rosterhub/devstore/internal/services/snapshot"
	"github.com/rosterhub/devstore/internal/store"
	"github.com/rosterhub/devstore/internal/store/file"
	"github.com/rosterhub/devstore/internal/store/memory"
	redisstore "github.com/rosterhub/devstore/internal/store/redis"
)

// Store backend constants
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store store.DocumentStore

	// External dependencies
	Clock clock.Clock
	IDs   identifier.Source

	// Services
	Integrity *integrity.Engine
	Snapshot  *snapshot.Engine
	Sweeper   *snapshot.Sweeper
	Notify    *notify.Service
	Chat      *chat.Controller
	Account   *account.Service
	Roster    *roster.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Backend selects the document store backend ("file", "memory", "redis")
	// If empty, defaults to "file".
	Backend string
	// FilePath is the backing document path (file backend)
	FilePath string
	// RedisConfig holds Redis connection settings (required for "redis")
	RedisConfig *redisstore.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used.
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	backend := cfg.Backend
	if backend == "" {
		backend = BackendFile
	}

	var docStore store.DocumentStore
	switch backend {
	case BackendFile:
		if cfg.FilePath == "" {
			return nil, errors.New("FilePath required when Backend is file")
		}
		docStore = file.New(cfg.FilePath, logger)
	case BackendMemory:
		docStore = memory.New()
	case BackendRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when Backend is redis")
		}
		redisStore, err := redisstore.New(*cfg.RedisConfig, logger)
		if err != nil {
			return nil, err
		}
		docStore = redisStore
	default:
		return nil, errors.New("invalid Backend: must be 'file', 'memory' or 'redis'")
	}

	return newWithDependencies(docStore, clock.New(), identifier.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(docStore store.DocumentStore, clk clock.Clock, ids identifier.Source, logger *slog.Logger) *App {
	integrityEngine := integrity.NewEngine(logger)
	snapshotEngine := snapshot.NewEngine(docStore, clk, logger)
	sweeper := snapshot.NewSweeper(snapshotEngine, logger)
	notifyService := notify.New(docStore, ids, clk, logger)
	chatController := chat.NewController(docStore, notifyService, ids, clk, logger)
	accountService := account.New(docStore, ids, clk, logger)
	rosterService := roster.New(docStore, integrityEngine, ids, clk, logger)

	return &App{
		Store:     docStore,
		Clock:     clk,
		IDs:       ids,
		Integrity: integrityEngine,
		Snapshot:  snapshotEngine,
		Sweeper:   sweeper,
		Notify:    notifyService,
		Chat:      chatController,
		Account:   accountService,
		Roster:    rosterService,
	}
}
