package snapshot

import (
	"context"
	"log/slog"
	"time"

	"github.com/rosterhub/devstore/internal/model"
)

// Sweeper runs the daily sweep once at local midnight and every 24h after.
// At each firing it snapshots the day that just ended.
type Sweeper struct {
	engine *Engine
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a sweeper for the given engine
func NewSweeper(engine *Engine, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		engine: engine,
		logger: logger,
	}
}

// Start launches the sweep loop. Call Stop to shut it down.
func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)
	s.logger.Info("snapshot sweeper started")
}

// Stop shuts the sweep loop down and waits for it to exit
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("snapshot sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	for {
		now := s.engine.clock.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
		timer := time.NewTimer(next.Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		yesterday := next.AddDate(0, 0, -1).Format(model.DateLayout)
		if err := s.engine.SweepDay(ctx, yesterday); err != nil {
			s.logger.Error("daily sweep failed",
				slog.String("date", yesterday),
				slog.String("error", err.Error()),
			)
		}
	}
}
