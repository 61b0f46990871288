package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rosterhub/devstore/internal/model"
	"github.com/rosterhub/devstore/internal/store"
)

// Store is a Redis-backed implementation of the document store. The whole
// document lives under one key; SET replaces it atomically. The mutex gives
// the same single-process writer serialization as the file backend — shared
// Redis instances with multiple writer processes are out of scope.
type Store struct {
	client *redis.Client
	cfg    Config
	logger *slog.Logger

	mu sync.Mutex
}

// New creates a new Redis store instance
func New(cfg Config, logger *slog.Logger) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Store{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// NewWithClient creates a Redis store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config, logger *slog.Logger) *Store {
	return &Store{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements the interface
var _ store.DocumentStore = (*Store)(nil)

func (s *Store) Load(ctx context.Context) *model.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Store) Save(ctx context.Context, st *model.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, st)
}

func (s *Store) Update(ctx context.Context, fn func(*model.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(ctx)
	if err := fn(st); err != nil {
		return err
	}
	return s.save(ctx, st)
}

func (s *Store) load(ctx context.Context) *model.State {
	data, err := s.client.Get(ctx, documentKey(s.cfg.KeyPrefix)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("document unreadable, starting empty",
				slog.String("error", err.Error()),
			)
		}
		return model.NewState()
	}

	st := &model.State{}
	if err := json.Unmarshal(data, st); err != nil {
		s.logger.Warn("document corrupt, starting empty",
			slog.String("error", err.Error()),
		)
		return model.NewState()
	}
	st.Normalize()
	return st
}

func (s *Store) save(ctx context.Context, st *model.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := s.client.Set(ctx, documentKey(s.cfg.KeyPrefix), data, 0).Err(); err != nil {
		return fmt.Errorf("replacing document: %w", err)
	}
	return nil
}
