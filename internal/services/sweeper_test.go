package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeyev/go-todo-api/internal/models"
)

func seedTodo(t *testing.T, todos *memTodoStore, dueDate time.Time, completed, isDeleted bool) string {
	t.Helper()

	id := uuid.NewString()
	now := time.Now()
	err := todos.Create(context.Background(), &models.Todo{
		ID:        id,
		OwnerID:   "owner",
		Title:     "seeded",
		DueDate:   dueDate,
		Completed: completed,
		IsDeleted: isDeleted,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	return id
}

func TestSweep_CompletesOverdueOnly(t *testing.T) {
	t.Parallel()

	todos := newMemTodoStore()
	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	overdueID := seedTodo(t, todos, past, false, false)
	deletedID := seedTodo(t, todos, past, false, true)
	futureID := seedTodo(t, todos, future, false, false)
	alreadyDoneID := seedTodo(t, todos, past, true, false)

	sweeper := NewSweeper(zerolog.Nop(), todos, time.Hour)
	sweeper.sweep(context.Background())

	assert.True(t, todos.raw(overdueID).Completed, "overdue incomplete todo must flip to completed")
	assert.False(t, todos.raw(deletedID).Completed, "soft-deleted todo must be untouched")
	assert.False(t, todos.raw(futureID).Completed, "future todo must be untouched")
	assert.True(t, todos.raw(alreadyDoneID).Completed)
}

func TestSweep_ErrorIsSwallowed(t *testing.T) {
	t.Parallel()

	todos := newMemTodoStore()
	todos.completeOverdueErr = errors.New("store unavailable")

	sweeper := NewSweeper(zerolog.Nop(), todos, time.Hour)
	// Must log and return, never panic or propagate.
	sweeper.sweep(context.Background())
}

func TestSweep_Idempotent(t *testing.T) {
	t.Parallel()

	todos := newMemTodoStore()
	seedTodo(t, todos, time.Now().Add(-time.Hour), false, false)

	first, err := todos.CompleteOverdue(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := todos.CompleteOverdue(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(0), second, "already-completed todos are excluded from the next run")
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	sweeper := NewSweeper(zerolog.Nop(), newMemTodoStore(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("sweeper did not stop after context cancellation")
	}
}
