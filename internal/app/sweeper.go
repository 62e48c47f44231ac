package app

import (
	"context"

	"github.com/avdeyev/go-todo-api/internal/config"
	"github.com/avdeyev/go-todo-api/internal/services"
	"github.com/avdeyev/go-todo-api/internal/storage/postgres"
)

// StartSweeper launches the expiration sweeper on its own schedule,
// independent of request traffic. The returned function stops it.
func StartSweeper() context.CancelFunc {
	cfg := config.Global().Sweeper

	todoStore := postgres.NewTodoStore(globalLogger, globalPostgresPool)
	sweeper := services.NewSweeper(globalLogger, todoStore, cfg.Interval)

	ctx, cancel := context.WithCancel(context.Background())
	go sweeper.Run(ctx)

	globalLogger.Info().
		Dur("interval", cfg.Interval).
		Msg("started sweeper")
	return cancel
}
