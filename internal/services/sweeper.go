package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/avdeyev/go-todo-api/internal/storage"
)

// Sweeper periodically marks overdue, incomplete, non-deleted todos as
// completed. A failed sweep is logged and swallowed; the predicate is
// idempotent so the next run corrects a missed one.
type Sweeper struct {
	logger   zerolog.Logger
	todos    storage.TodoStore
	interval time.Duration
}

func NewSweeper(
	logger zerolog.Logger,
	todos storage.TodoStore,
	interval time.Duration,
) *Sweeper {
	return &Sweeper{
		logger:   logger,
		todos:    todos,
		interval: interval,
	}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("stopped sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	affected, err := s.todos.CompleteOverdue(ctx, time.Now())
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to sweep overdue todos")
		return
	}

	s.logger.Info().
		Int64("affected", affected).
		Msg("swept overdue todos")
}
