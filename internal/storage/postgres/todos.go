package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/avdeyev/go-todo-api/internal/models"
	"github.com/avdeyev/go-todo-api/internal/storage"
)

type TodoStore struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewTodoStore(logger zerolog.Logger, pgPool *pgxpool.Pool) *TodoStore {
	return &TodoStore{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *TodoStore) Create(ctx context.Context, todo *models.Todo) error {
	const insertTodoQuery = `
INSERT INTO todos (id,
                   owner_id,
                   title,
                   description,
                   due_date,
                   completed,
                   is_deleted,
                   created_at,
                   updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	_, err := s.pgPool.Exec(
		ctx,
		insertTodoQuery,
		todo.ID,
		todo.OwnerID,
		todo.Title,
		todo.Description,
		todo.DueDate,
		todo.Completed,
		todo.IsDeleted,
		todo.CreatedAt,
		todo.UpdatedAt,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert todo")
		return err
	}
	s.logger.Debug().
		Str("todo_id", todo.ID).
		Msg("inserted todo")

	return nil
}

func (s *TodoStore) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	todo := new(models.Todo)

	const selectTodoByIDQuery = `
SELECT id,
       owner_id,
       title,
       description,
       due_date,
       completed,
       is_deleted,
       created_at,
       updated_at
FROM todos
WHERE id = $1 AND
      is_deleted = FALSE
`
	err := s.pgPool.QueryRow(
		ctx,
		selectTodoByIDQuery,
		id,
	).Scan(
		&todo.ID,
		&todo.OwnerID,
		&todo.Title,
		&todo.Description,
		&todo.DueDate,
		&todo.Completed,
		&todo.IsDeleted,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		s.logger.Error().
			Err(err).
			Str("todo_id", id).
			Msg("failed to select todo by id")
		return nil, err
	}

	return todo, nil
}

func (s *TodoStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Todo, error) {
	const selectTodosByOwnerQuery = `
SELECT id,
       owner_id,
       title,
       description,
       due_date,
       completed,
       is_deleted,
       created_at,
       updated_at
FROM todos
WHERE owner_id = $1 AND
      is_deleted = FALSE
ORDER BY due_date ASC
`
	rows, err := s.pgPool.Query(
		ctx,
		selectTodosByOwnerQuery,
		ownerID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("owner_id", ownerID).
			Msg("failed to select todos by owner")
		return nil, err
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		var todo models.Todo
		err = rows.Scan(
			&todo.ID,
			&todo.OwnerID,
			&todo.Title,
			&todo.Description,
			&todo.DueDate,
			&todo.Completed,
			&todo.IsDeleted,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan todo")
			return nil, err
		}
		todos = append(todos, todo)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	return todos, nil
}

func (s *TodoStore) Update(ctx context.Context, todo *models.Todo) error {
	const updateTodoQuery = `
UPDATE todos
SET title = $1,
    description = $2,
    due_date = $3,
    completed = $4,
    updated_at = $5
WHERE id = $6 AND
      is_deleted = FALSE
`
	tag, err := s.pgPool.Exec(
		ctx,
		updateTodoQuery,
		todo.Title,
		todo.Description,
		todo.DueDate,
		todo.Completed,
		todo.UpdatedAt,
		todo.ID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("todo_id", todo.ID).
			Msg("failed to update todo")
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	s.logger.Debug().
		Str("todo_id", todo.ID).
		Msg("updated todo")

	return nil
}

func (s *TodoStore) SoftDelete(ctx context.Context, id string) error {
	const softDeleteTodoQuery = `
UPDATE todos
SET is_deleted = TRUE,
    updated_at = $1
WHERE id = $2 AND
      is_deleted = FALSE
`
	tag, err := s.pgPool.Exec(
		ctx,
		softDeleteTodoQuery,
		time.Now(),
		id,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("todo_id", id).
			Msg("failed to soft delete todo")
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	s.logger.Debug().
		Str("todo_id", id).
		Msg("soft deleted todo")

	return nil
}

func (s *TodoStore) CompleteOverdue(ctx context.Context, now time.Time) (int64, error) {
	const completeOverdueQuery = `
UPDATE todos
SET completed = TRUE,
    updated_at = $1
WHERE due_date < $1 AND
      completed = FALSE AND
      is_deleted = FALSE
`
	tag, err := s.pgPool.Exec(
		ctx,
		completeOverdueQuery,
		now,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to complete overdue todos")
		return 0, err
	}

	return tag.RowsAffected(), nil
}
