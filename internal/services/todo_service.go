package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/avdeyev/go-todo-api/internal/models"
	"github.com/avdeyev/go-todo-api/internal/storage"
)

type todoServiceImpl struct {
	logger zerolog.Logger
	users  storage.UserStore
	todos  storage.TodoStore
}

func NewTodoService(
	logger zerolog.Logger,
	users storage.UserStore,
	todos storage.TodoStore,
) TodoService {
	return &todoServiceImpl{
		logger: logger,
		users:  users,
		todos:  todos,
	}
}

func (s *todoServiceImpl) Create(ctx context.Context, params CreateTodoParams) error {
	err := s.requireUser(ctx, params.OwnerID)
	if err != nil {
		return err
	}

	todoUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate todo uuid")
		return err
	}

	now := time.Now()
	todo := &models.Todo{
		ID:          todoUUID.String(),
		OwnerID:     params.OwnerID,
		Title:       params.Title,
		Description: params.Description,
		DueDate:     params.DueDate,
		Completed:   false,
		IsDeleted:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.todos.Create(ctx, todo)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert todo")
		return err
	}

	s.logger.Info().
		Str("todo_id", todo.ID).
		Str("owner_id", todo.OwnerID).
		Msg("created todo")
	return nil
}

func (s *todoServiceImpl) ListAll(ctx context.Context, userID string) ([]models.Todo, error) {
	err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	todos, err := s.todos.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("owner_id", userID).
			Msg("failed to select todos by owner")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(todos)).
		Str("owner_id", userID).
		Msg("selected todos by owner")

	return todos, nil
}

func (s *todoServiceImpl) Edit(ctx context.Context, params EditTodoParams) error {
	err := s.requireUser(ctx, params.OwnerID)
	if err != nil {
		return err
	}

	todo, err := s.getOwnedTodo(ctx, params.OwnerID, params.TodoID)
	if err != nil {
		return err
	}

	if params.Title != nil {
		todo.Title = *params.Title
	}
	if params.Description != nil {
		todo.Description = *params.Description
	}
	if params.DueDate != nil {
		todo.DueDate = *params.DueDate
	}
	if params.Completed != nil {
		todo.Completed = *params.Completed
	}
	todo.UpdatedAt = time.Now()

	err = s.todos.Update(ctx, todo)
	if err != nil {
		// The record may have been soft-deleted between the lookup
		// and the write; last write wins otherwise.
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTodoNotFound
		}

		s.logger.Error().
			Err(err).
			Str("todo_id", todo.ID).
			Msg("failed to update todo")
		return err
	}

	s.logger.Info().
		Str("todo_id", todo.ID).
		Str("owner_id", todo.OwnerID).
		Msg("edited todo")
	return nil
}

func (s *todoServiceImpl) Delete(ctx context.Context, userID, todoID string) error {
	err := s.requireUser(ctx, userID)
	if err != nil {
		return err
	}

	todo, err := s.getOwnedTodo(ctx, userID, todoID)
	if err != nil {
		return err
	}

	err = s.todos.SoftDelete(ctx, todo.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTodoNotFound
		}

		s.logger.Error().
			Err(err).
			Str("todo_id", todo.ID).
			Msg("failed to soft delete todo")
		return err
	}

	s.logger.Info().
		Str("todo_id", todo.ID).
		Str("owner_id", userID).
		Msg("deleted todo")
	return nil
}

// requireUser re-confirms the authenticated user still exists. A verified
// token may outlive its account.
func (s *todoServiceImpl) requireUser(ctx context.Context, userID string) error {
	_, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("user_id", userID).
				Msg("user not found")
			return ErrUserNotFound
		}

		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select user by id")
		return err
	}
	return nil
}

func (s *todoServiceImpl) getOwnedTodo(ctx context.Context, userID, todoID string) (*models.Todo, error) {
	todo, err := s.todos.GetByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("todo_id", todoID).
				Msg("todo not found")
			return nil, ErrTodoNotFound
		}

		s.logger.Error().
			Err(err).
			Str("todo_id", todoID).
			Msg("failed to select todo by id")
		return nil, err
	}

	if todo.OwnerID != userID {
		s.logger.Error().
			Str("todo_id", todoID).
			Str("owner_id", todo.OwnerID).
			Str("user_id", userID).
			Msg("todo belongs to another user")
		return nil, ErrTodoAccessDenied
	}

	return todo, nil
}
